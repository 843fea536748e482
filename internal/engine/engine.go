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

// Package engine wires internal/position, internal/search, and
// internal/uci together into a runnable UCI subprocess: one struct
// holding the live position and the shared search.Context, with one
// function per UCI command that mutates or reads that state.
package engine

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"laptudirm.com/x/gochess/internal/piece"
	"laptudirm.com/x/gochess/internal/position"
	"laptudirm.com/x/gochess/internal/search"
	searchtime "laptudirm.com/x/gochess/internal/search/time"
	"laptudirm.com/x/gochess/internal/uci"
)

const (
	name   = "gochess"
	author = "The Gochess Authors"

	defaultHashMB = 64
	minHashMB     = 32
	maxHashMB     = 256
)

// Engine holds the UCI session's mutable state: the current position
// and the search.Context carrying the transposition table across moves
// within the same game.
type Engine struct {
	pos    position.Position
	search *search.Context

	hashMB int
}

// NewClient builds a uci.Client with every UCI command wired to a fresh
// Engine, ready to have Start called on it.
func NewClient() *uci.Client {
	root, err := position.NewFromFEN(position.StartFEN)
	if err != nil {
		// the startpos FEN is a compile-time constant; a parse failure
		// here means the FEN parser itself is broken.
		panic(err)
	}

	client := uci.NewClient()

	e := &Engine{
		pos:    root,
		hashMB: defaultHashMB,
		search: search.NewContext(client.Out),
	}

	client.Handle("uci", e.cmdUCI(client))
	client.Handle("isready", e.cmdIsReady(client))
	client.Handle("ucinewgame", e.cmdUCINewGame)
	client.Handle("position", e.cmdPosition)
	client.Handle("go", e.cmdGo(client))
	client.Handle("stop", e.cmdStop)
	client.Handle("setoption", e.cmdSetOption)
	client.Handle("quit", e.cmdQuit)
	client.Handle("d", e.cmdDisplay(client))

	return client
}

func (e *Engine) cmdUCI(c *uci.Client) uci.Handler {
	return func(args []string) error {
		c.Printf("id name %s\n", name)
		c.Printf("id author %s\n", author)
		c.Printf("option name Hash type spin default %d min %d max %d\n",
			defaultHashMB, minHashMB, maxHashMB)
		c.Printf("uciok\n")
		return nil
	}
}

func (e *Engine) cmdIsReady(c *uci.Client) uci.Handler {
	return func(args []string) error {
		c.Printf("readyok\n")
		return nil
	}
}

func (e *Engine) cmdUCINewGame(args []string) error {
	if e.search.InProgress() {
		return errors.New("ucinewgame: search currently in progress")
	}
	e.search.ClearHash()
	root, err := position.NewFromFEN(position.StartFEN)
	if err != nil {
		panic(err)
	}
	e.pos = root
	return nil
}

// cmdPosition implements "position [startpos | fen <fen>] [moves <m> ...]".
func (e *Engine) cmdPosition(args []string) error {
	if len(args) == 0 {
		return errors.New("position: no startpos or fen given")
	}

	var root position.Position
	var err error
	rest := args

	switch args[0] {
	case "startpos":
		root, err = position.NewFromFEN(position.StartFEN)
		rest = args[1:]
	case "fen":
		rest = args[1:]
		end := 0
		for end < len(rest) && rest[end] != "moves" {
			end++
		}
		root, err = position.NewFromFEN(strings.Join(rest[:end], " "))
		rest = rest[end:]
	default:
		return fmt.Errorf("position: unknown token %q", args[0])
	}
	if err != nil {
		return fmt.Errorf("position: %w", err)
	}

	if len(rest) > 0 {
		if rest[0] != "moves" {
			return fmt.Errorf("position: unknown token %q", rest[0])
		}
		for _, lan := range rest[1:] {
			m, err := root.NewMoveFromString(lan)
			if err != nil {
				return fmt.Errorf("position: %w", err)
			}
			root = root.MakeMove(m)
		}
	}

	e.pos = root
	return nil
}

// cmdGo implements "go [...]". The actual search runs on its own
// goroutine so that a "stop" line arriving on the REPL loop can still
// be read and dispatched while the search is in flight.
func (e *Engine) cmdGo(c *uci.Client) uci.Handler {
	return func(args []string) error {
		if e.search.InProgress() {
			return errors.New("go: search currently in progress")
		}

		limits, err := parseSearchLimits(e.pos.SideToMove, args)
		if err != nil {
			return err
		}

		root := e.pos
		go func() {
			pv, _, err := e.search.Search(root, limits)
			if err != nil {
				c.Printf("info string %s\n", err)
				return
			}
			c.Printf("bestmove %s\n", pv.Move(0))
		}()

		return nil
	}
}

func (e *Engine) cmdStop(args []string) error {
	e.search.Stop()
	return nil
}

// cmdSetOption implements "setoption name <id> value <x>"; Hash is the
// only option this engine advertises.
func (e *Engine) cmdSetOption(args []string) error {
	var name, value string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "name":
			i++
			if i < len(args) {
				name = args[i]
			}
		case "value":
			i++
			if i < len(args) {
				value = args[i]
			}
		}
	}

	switch strings.ToLower(name) {
	case "hash":
		mb, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("setoption: bad Hash value %q", value)
		}
		if mb < minHashMB {
			mb = minHashMB
		}
		if mb > maxHashMB {
			mb = maxHashMB
		}
		e.hashMB = mb
		e.search.Resize(mb)
		return nil
	default:
		return fmt.Errorf("setoption: unknown option %q", name)
	}
}

func (e *Engine) cmdQuit(args []string) error {
	e.search.Stop()
	return uci.ErrQuit
}

func (e *Engine) cmdDisplay(c *uci.Client) uci.Handler {
	return func(args []string) error {
		c.Printf("%s\n", e.pos.FEN())
		return nil
	}
}

// parseSearchLimits turns a "go" command's arguments into search.Limits.
func parseSearchLimits(us piece.Color, args []string) (search.Limits, error) {
	limits := search.Limits{Depth: search.MaxDepth, Nodes: math.MaxInt32}

	values := make(map[string]string)
	infinite := false
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "infinite":
			infinite = true
		case "ponder":
			// ponder search is treated as an ordinary search in this
			// engine; there is no separate ponder-hit protocol.
		default:
			if i+1 < len(args) {
				values[args[i]] = args[i+1]
				i++
			}
		}
	}

	if d, ok := values["depth"]; ok {
		n, err := strconv.Atoi(d)
		if err != nil {
			return limits, fmt.Errorf("go: bad depth %q", d)
		}
		limits.Depth = n
	}
	if n, ok := values["nodes"]; ok {
		v, err := strconv.Atoi(n)
		if err != nil {
			return limits, fmt.Errorf("go: bad nodes %q", n)
		}
		limits.Nodes = v
	}

	switch {
	case values["movetime"] != "":
		t, err := strconv.Atoi(values["movetime"])
		if err != nil {
			return limits, fmt.Errorf("go: bad movetime %q", values["movetime"])
		}
		limits.Time = &searchtime.MoveManager{Duration: t}

	case values["wtime"] != "":
		tc := &searchtime.NormalManager{Us: us}

		wtime, err := strconv.Atoi(values["wtime"])
		if err != nil {
			return limits, fmt.Errorf("go: bad wtime %q", values["wtime"])
		}
		btime, err := strconv.Atoi(values["btime"])
		if err != nil {
			return limits, fmt.Errorf("go: bad btime %q", values["btime"])
		}
		tc.Time[piece.White] = wtime
		tc.Time[piece.Black] = btime

		if values["winc"] != "" {
			winc, err := strconv.Atoi(values["winc"])
			if err != nil {
				return limits, fmt.Errorf("go: bad winc %q", values["winc"])
			}
			binc, err := strconv.Atoi(values["binc"])
			if err != nil {
				return limits, fmt.Errorf("go: bad binc %q", values["binc"])
			}
			tc.Increment[piece.White] = winc
			tc.Increment[piece.Black] = binc
		}

		if values["movestogo"] != "" {
			mtg, err := strconv.Atoi(values["movestogo"])
			if err != nil {
				return limits, fmt.Errorf("go: bad movestogo %q", values["movestogo"])
			}
			tc.MovesToGo = mtg
		}

		limits.Time = tc

	case infinite:
		limits.Infinite = true
		limits.Time = &searchtime.MoveManager{Duration: math.MaxInt32}

	default:
		limits.Time = &searchtime.MoveManager{Duration: math.MaxInt32}
	}

	return limits, nil
}
