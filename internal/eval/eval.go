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

// Package eval scores a position from the perspective of the side to
// move: material plus a single piece-square table per role. The table
// values are PeSTO's midgame numbers, used single-phase rather than
// blended against an endgame set.
package eval

import (
	"fmt"
	"math"
)

// Eval is a relative centipawn evaluation: positive favors the side to
// move, negative favors the opponent.
type Eval int32

const (
	Inf  Eval = math.MaxInt32 / 2
	Mate Eval = Inf - 1
	Draw Eval = 0

	// WinInMaxPly/LoseInMaxPly bound how close to Mate a score has to be
	// before it's treated as a forced mate rather than a large but
	// ordinary material/positional advantage.
	WinInMaxPly  Eval = Mate - 2*10000
	LoseInMaxPly Eval = -WinInMaxPly
)

// MatedIn returns the score for being checkmated in the given number of
// plies from the root; longer mating sequences score higher (less bad)
// so that search prefers delaying an inevitable mate.
func MatedIn(plies int) Eval {
	return -Mate + Eval(plies)
}

// MateIn returns the score for delivering checkmate in the given number
// of plies from the root.
func MateIn(plies int) Eval {
	return Mate - Eval(plies)
}

// String renders the score in UCI "info score" form: "cp N" normally,
// "mate N" (N = full moves, not plies, to the mate) near the mate bound.
func (e Eval) String() string {
	switch {
	case e > WinInMaxPly:
		plies := Mate - e
		return fmt.Sprintf("mate %d", (plies/2)+(plies%2))
	case e < LoseInMaxPly:
		plies := e + Mate
		return fmt.Sprintf("mate %d", -((plies/2)+(plies%2)))
	default:
		return fmt.Sprintf("cp %d", e)
	}
}
