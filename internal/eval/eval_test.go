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

package eval_test

import (
	"testing"

	"laptudirm.com/x/gochess/internal/eval"
)

func TestOrdinaryScoreRendersAsCentipawns(t *testing.T) {
	if got := eval.Eval(150).String(); got != "cp 150" {
		t.Errorf("150.String() = %q, want %q", got, "cp 150")
	}
	if got := eval.Draw.String(); got != "cp 0" {
		t.Errorf("Draw.String() = %q, want %q", got, "cp 0")
	}
}

func TestMateInRendersPositiveMateScore(t *testing.T) {
	// mate in 1 ply (White delivers checkmate on its next move).
	score := eval.MateIn(1)
	if got := score.String(); got != "mate 1" {
		t.Errorf("MateIn(1).String() = %q, want %q", got, "mate 1")
	}

	// mate in 3 plies (2 full moves to mate from the side to move's view).
	score = eval.MateIn(3)
	if got := score.String(); got != "mate 2" {
		t.Errorf("MateIn(3).String() = %q, want %q", got, "mate 2")
	}
}

func TestMatedInRendersNegativeMateScore(t *testing.T) {
	// being mated in 1 ply: the opponent delivers mate next move.
	score := eval.MatedIn(1)
	if got := score.String(); got != "mate -1" {
		t.Errorf("MatedIn(1).String() = %q, want %q", got, "mate -1")
	}

	score = eval.MatedIn(3)
	if got := score.String(); got != "mate -2" {
		t.Errorf("MatedIn(3).String() = %q, want %q", got, "mate -2")
	}
}

func TestWinLoseInMaxPlyAreSymmetric(t *testing.T) {
	if eval.WinInMaxPly != -eval.LoseInMaxPly {
		t.Errorf("WinInMaxPly (%v) should be the negation of LoseInMaxPly (%v)", eval.WinInMaxPly, eval.LoseInMaxPly)
	}
}

func TestMateBoundsAreOrdered(t *testing.T) {
	if !(eval.Draw < eval.WinInMaxPly && eval.WinInMaxPly < eval.Mate && eval.Mate < eval.Inf) {
		t.Errorf("score constants out of expected order: Draw=%v WinInMaxPly=%v Mate=%v Inf=%v",
			eval.Draw, eval.WinInMaxPly, eval.Mate, eval.Inf)
	}
}
