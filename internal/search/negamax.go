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

package search

import (
	"laptudirm.com/x/gochess/internal/eval"
	"laptudirm.com/x/gochess/internal/move"
	"laptudirm.com/x/gochess/internal/movegen"
	"laptudirm.com/x/gochess/internal/position"
	"laptudirm.com/x/gochess/internal/search/tt"
)

// negamax searches pos to the given depth and returns its score from
// the side to move's perspective, using alpha-beta pruning and
// principal variation search: the first move at a PV node is searched
// with the full window, every other move (and every move at a
// non-PV node) with a null window that's only re-searched at full width
// if it beats alpha. https://www.chessprogramming.org/Principal_Variation_Search
func (c *Context) negamax(pos position.Position, ply, depth int, alpha, beta eval.Eval, pv *move.Variation) eval.Eval {
	c.nodes++

	switch {
	case c.shouldStop():
		return 0
	case pos.IsDraw():
		return c.drawScore()
	case depth <= 0 || ply >= MaxDepth:
		return c.quiescence(pos, ply, alpha, beta)
	}

	isPVNode := beta-alpha != 1

	moves := movegen.Generate(&pos)
	if moves.Len() == 0 {
		if pos.InCheck() {
			return eval.MatedIn(ply)
		}
		return eval.Draw
	}

	originalAlpha := alpha
	bestMove := move.Null
	bestEval := -eval.Inf

	ttMove := move.Null
	if entry, hit := c.tt.Probe(pos.Hash); hit {
		ttMove = entry.Move
		if !isPVNode && entry.Depth >= uint8(depth) {
			c.ttHits++
			value := entry.Value.Eval(ply)
			switch entry.Type {
			case tt.ExactEntry:
				return value
			case tt.LowerBound:
				if value > alpha {
					alpha = value
				}
			case tt.UpperBound:
				if value < beta {
					beta = value
				}
			}
			if alpha >= beta {
				return value
			}
		}
	}

	ordered := newOrderedMoves(moves, ttMove)
	for i := 0; i < ordered.len(); i++ {
		m := ordered.pick(i)
		child := pos.MakeMove(m)

		var childPV move.Variation
		var score eval.Eval

		if !isPVNode || i > 0 {
			score = -c.negamax(child, ply+1, depth-1, -alpha-1, -alpha, &childPV)
		}
		if isPVNode && (i == 0 || (score > alpha && score < beta)) {
			score = -c.negamax(child, ply+1, depth-1, -beta, -alpha, &childPV)
		}

		if score > bestEval {
			bestMove = m
			bestEval = score

			if score > alpha {
				alpha = score
				pv.Update(m, childPV)

				if alpha >= beta {
					break
				}
			}
		}
	}

	if !c.stopped {
		var entryType tt.EntryType
		switch {
		case bestEval <= originalAlpha:
			entryType = tt.UpperBound
		case bestEval >= beta:
			entryType = tt.LowerBound
		default:
			entryType = tt.ExactEntry
		}

		c.tt.Store(tt.Entry{
			Hash:  pos.Hash,
			Value: tt.EvalFrom(bestEval, ply),
			Move:  bestMove,
			Depth: uint8(depth),
			Type:  entryType,
		})
	}

	return bestEval
}
