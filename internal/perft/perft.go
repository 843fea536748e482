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

// Package perft implements the leaf-count correctness oracle for the
// move generator. Unlike search, which copies the Position per ply
// (see internal/position.Position.MakeMove), perft walks the tree with
// Make/Unmake in place: there's no branching requiring siblings to stay
// alive, so mutate-then-restore is the faster choice here.
package perft

import (
	"fmt"

	"laptudirm.com/x/gochess/internal/move"
	"laptudirm.com/x/gochess/internal/movegen"
	"laptudirm.com/x/gochess/internal/position"
)

// Count returns the number of leaf nodes reachable from pos at the
// given depth. Count(pos, 0) is 1 by definition (the position itself).
func Count(pos *position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	moves := movegen.Generate(pos)
	if depth == 1 {
		return uint64(moves.Len())
	}

	var nodes uint64
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		undo := pos.Make(m)
		nodes += Count(pos, depth-1)
		pos.Unmake(m, undo)
	}
	return nodes
}

// Divide splits Count(pos, depth) by the root's legal moves, printing
// each move's subtree count in UCI "divide" convention: one
// "move: count" line per root move followed by the total. This is the
// standard way to bisect a perft mismatch down to the offending line.
func Divide(pos *position.Position, depth int, out func(string)) uint64 {
	moves := movegen.Generate(pos)
	var total uint64
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		undo := pos.Make(m)
		n := Count(pos, depth-1)
		pos.Unmake(m, undo)

		total += n
		out(fmt.Sprintf("%s: %d", m, n))
	}
	out(fmt.Sprintf("\nnodes searched: %d", total))
	return total
}

// Leaves returns, for each legal move at the root, the move itself and
// the size of its subtree at depth-1. Used by tests that need
// structured results rather than the printed lines of Divide.
func Leaves(pos *position.Position, depth int) map[move.Move]uint64 {
	moves := movegen.Generate(pos)
	result := make(map[move.Move]uint64, moves.Len())
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		undo := pos.Make(m)
		result[m] = Count(pos, depth-1)
		pos.Unmake(m, undo)
	}
	return result
}
