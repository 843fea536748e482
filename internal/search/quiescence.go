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
)

// quiescence extends the search past the nominal depth limit along
// "loud" lines only (captures and promotions), so that negamax doesn't
// misjudge a position that happens to have a hanging piece sitting
// right at the horizon. https://www.chessprogramming.org/Quiescence_Search
func (c *Context) quiescence(pos position.Position, ply int, alpha, beta eval.Eval) eval.Eval {
	c.nodes++
	if ply > c.seldepth {
		c.seldepth = ply
	}

	if c.shouldStop() {
		return 0
	}

	standPat := eval.Evaluate(&pos)
	if standPat > alpha {
		alpha = standPat
	}
	if alpha >= beta {
		return standPat
	}

	if pos.IsDraw() {
		return c.drawScore()
	}

	// a position with no quiet escape still needs a full legality check
	// when in check, since every evasion (not just captures) must be
	// tried to tell checkmate from "nothing loud to do here".
	if pos.InCheck() {
		return c.quiescenceInCheck(pos, ply, alpha, beta)
	}

	best := standPat
	captures := movegen.GenerateCaptures(&pos)
	ordered := newOrderedMoves(captures, move.Null)
	for i := 0; i < ordered.len(); i++ {
		m := ordered.pick(i)
		child := pos.MakeMove(m)
		score := -c.quiescence(child, ply+1, -beta, -alpha)

		if score > best {
			best = score
			if score > alpha {
				alpha = score
				if alpha >= beta {
					break
				}
			}
		}
	}

	return best
}

// quiescenceInCheck falls back to full legal move generation: captures
// alone might all be illegal (pinned, say) while a quiet king step out
// of check is the only legal reply, so restricting to loud moves here
// would misreport a legal position as checkmate.
func (c *Context) quiescenceInCheck(pos position.Position, ply int, alpha, beta eval.Eval) eval.Eval {
	moves := movegen.Generate(&pos)
	if moves.Len() == 0 {
		return eval.MatedIn(ply)
	}

	ordered := newOrderedMoves(moves, move.Null)
	best := -eval.Inf
	for i := 0; i < ordered.len(); i++ {
		m := ordered.pick(i)
		child := pos.MakeMove(m)
		score := -c.quiescence(child, ply+1, -beta, -alpha)

		if score > best {
			best = score
			if score > alpha {
				alpha = score
				if alpha >= beta {
					break
				}
			}
		}
	}
	return best
}
