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
	"laptudirm.com/x/gochess/internal/move"
	"laptudirm.com/x/gochess/internal/piece"
)

// orderedMoves ranks a move list so that alpha-beta sees its most
// promising moves first, by scoreMove: the transposition table's
// remembered best move, then mostly captures by MVV-LVA (most valuable
// victim, least valuable attacker), then castles and quiet moves; see
// scoreMove for the captures that score lower. A parallel score slice is kept
// alongside the moves and consumed by a partial selection sort.
type orderedMoves struct {
	moves  []move.Move
	scores []int32
}

// newOrderedMoves scores every move in list, giving ttMove (if it
// appears) priority over everything else.
func newOrderedMoves(list move.List, ttMove move.Move) orderedMoves {
	n := list.Len()
	o := orderedMoves{
		moves:  make([]move.Move, n),
		scores: make([]int32, n),
	}
	for i := 0; i < n; i++ {
		m := list.At(i)
		o.moves[i] = m
		o.scores[i] = scoreMove(m, ttMove)
	}
	return o
}

// pick performs one partial-selection-sort step: it finds the
// highest-scoring move at or after index, swaps it into index, and
// returns it. Since alpha-beta usually prunes after the first few
// moves, fully sorting the list would waste time on moves that are
// never examined.
func (o *orderedMoves) pick(index int) move.Move {
	best := index
	for i := index + 1; i < len(o.moves); i++ {
		if o.scores[i] > o.scores[best] {
			best = i
		}
	}
	o.moves[index], o.moves[best] = o.moves[best], o.moves[index]
	o.scores[index], o.scores[best] = o.scores[best], o.scores[index]
	return o.moves[index]
}

func (o *orderedMoves) len() int {
	return len(o.moves)
}

const (
	ttMoveScore = 1 << 20
	castleScore = 1000
)

// scoreMove assigns a move its ordering priority, higher first: the tt
// move at ttMoveScore, a capture at 8*victim value - attacker value
// (MVV-LVA), castling at a fixed 1000, and everything else at zero.
// Capture scores are not offset above the others: a non-king piece
// taking a pawn scores 0 to 700, below a castle (a queen taking a pawn
// ties a quiet move), and a king capture is always negative. Among
// captures by non-king pieces the victim's value decides first and the
// attacker's value breaks ties.
// https://www.chessprogramming.org/MVV-LVA
func scoreMove(m, ttMove move.Move) int32 {
	if m == ttMove {
		return ttMoveScore
	}
	if m.IsCapture() {
		victim := piece.Value[m.Capture]
		attacker := piece.Value[m.Role]
		return int32(victim*8 - attacker)
	}
	if m.IsCastle() {
		return castleScore
	}
	return 0
}
