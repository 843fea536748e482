// Copyright © 2024 The Gochess Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package search implements iterative-deepening negamax with
// alpha-beta pruning and principal variation search. Rather than
// mutating one shared board through make/unmake, search copies the
// position per recursive call (see
// internal/position.Position.MakeMove): Position is small, and handing
// each call frame its own copy means a cutoff never needs an explicit
// undo.
package search

import (
	"errors"
	"fmt"
	"io"
	"time"

	"laptudirm.com/x/gochess/internal/eval"
	"laptudirm.com/x/gochess/internal/move"
	"laptudirm.com/x/gochess/internal/position"
	searchtime "laptudirm.com/x/gochess/internal/search/time"
	"laptudirm.com/x/gochess/internal/search/tt"
)

// MaxDepth bounds both the iterative deepening loop and search's
// recursion, as a backstop against runaway extensions.
const MaxDepth = 128

// NewContext creates a search Context backed by a transposition table
// at the engine's default 64 MB Hash size.
func NewContext(out io.Writer) *Context {
	return &Context{
		tt:      tt.NewTable(64),
		out:     out,
		stopped: true,
	}
}

// Context holds everything a single search run needs: the position to
// search from, the shared transposition table, search limits, and
// bookkeeping counters. Reuse one Context across a game so the
// transposition table's contents survive between moves; start a new one
// per game so stale entries from an unrelated position don't linger.
type Context struct {
	Root position.Position

	tt  *tt.Table
	out io.Writer

	depth    int
	seldepth int
	stopped  bool

	nodes  int
	ttHits int

	limits Limits
}

// Limits bounds how long and how deep a search may run.
type Limits struct {
	Nodes int
	Depth int

	Infinite bool
	Time     searchtime.Manager
}

// Resize changes the transposition table's size in megabytes.
func (c *Context) Resize(mbs int) {
	c.tt.Resize(mbs)
}

// ClearHash empties the transposition table, e.g. on a UCI "ucinewgame".
func (c *Context) ClearHash() {
	c.tt.Clear()
}

// Search runs iterative deepening from root under the given limits and
// returns the principal variation and its evaluation.
func (c *Context) Search(root position.Position, limits Limits) (move.Variation, eval.Eval, error) {
	if root.Board.IsAttacked(root.Board.King(root.SideToMove.Other()), root.SideToMove) {
		return move.Variation{}, eval.Inf, errors.New("search: position is illegal, side not to move is in check")
	}

	c.Root = root
	c.start(limits)
	defer c.Stop()

	pv, score := c.iterativeDeepening()
	return pv, score, nil
}

// InProgress reports whether a search is currently running on c.
func (c *Context) InProgress() bool {
	return !c.stopped
}

// Stop requests that any in-progress search return as soon as it next
// checks; it does not block until the search has actually returned.
func (c *Context) Stop() {
	c.stopped = true
}

func (c *Context) start(limits Limits) {
	if limits.Depth <= 0 || limits.Depth > MaxDepth {
		limits.Depth = MaxDepth
	}
	c.limits = limits

	c.nodes = 0
	c.ttHits = 0
	c.seldepth = 0
	c.stopped = false

	if c.limits.Time != nil {
		c.limits.Time.GetDeadline()
	}
}

// shouldStop is polled periodically (not every node, to keep the check
// cheap) by negamax and quiescence.
func (c *Context) shouldStop() bool {
	switch {
	case c.stopped:
		return true
	case c.nodes&2047 != 0:
		return false
	case c.limits.Infinite:
		return false
	case c.limits.Nodes > 0 && c.nodes > c.limits.Nodes:
		c.Stop()
		return true
	case c.limits.Time != nil && c.limits.Time.Expired():
		c.Stop()
		return true
	default:
		return false
	}
}

// drawScore returns the evaluation used for a drawn position.
func (c *Context) drawScore() eval.Eval {
	return eval.Draw
}

func (c *Context) printInfo(depth int, score eval.Eval, pv move.Variation, elapsed time.Duration) {
	if c.out == nil {
		return
	}
	nps := float64(c.nodes) / elapsed.Seconds()
	if elapsed < time.Millisecond {
		nps = 0
	}
	fmt.Fprintf(c.out, "info depth %d seldepth %d score %s nodes %d nps %.0f time %d pv %s\n",
		depth, c.seldepth, score, c.nodes, nps, elapsed.Milliseconds(), pv.String())
}
