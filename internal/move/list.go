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

package move

// MaxMoves is a fixed capacity that comfortably exceeds the theoretical
// maximum of 218 legal moves in a single chess position.
const MaxMoves = 256

// List is an append-only, fixed-capacity move list used to avoid a heap
// allocation per call to the move generator.
type List struct {
	moves [MaxMoves]Move
	n     int
}

// Append adds a move to the list. It panics if the list is already at
// MaxMoves capacity, which would indicate a move-generator bug since no
// legal chess position has that many legal moves.
func (l *List) Append(m Move) {
	l.moves[l.n] = m
	l.n++
}

// Len returns the number of moves currently in the list.
func (l *List) Len() int {
	return l.n
}

// At returns the move at the given index.
func (l *List) At(i int) Move {
	return l.moves[i]
}

// Set overwrites the move at the given index, used by move-ordering
// sorts that swap entries in place.
func (l *List) Set(i int, m Move) {
	l.moves[i] = m
}

// Slice returns the populated prefix of the list as a plain slice. The
// returned slice aliases the list's backing array.
func (l *List) Slice() []Move {
	return l.moves[:l.n]
}
