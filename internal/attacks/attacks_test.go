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

package attacks_test

import (
	"testing"

	"laptudirm.com/x/gochess/internal/attacks"
	"laptudirm.com/x/gochess/internal/bitboard"
	"laptudirm.com/x/gochess/internal/piece"
	"laptudirm.com/x/gochess/internal/square"
)

func TestKnightAttacksFromCenter(t *testing.T) {
	got := attacks.Knight[square.D4]
	if got.Count() != 8 {
		t.Fatalf("knight on d4 has %d attacked squares, want 8", got.Count())
	}
	for _, s := range []square.Square{square.B3, square.B5, square.C2, square.C6, square.E2, square.E6, square.F3, square.F5} {
		if !got.IsSet(s) {
			t.Errorf("knight on d4 should attack %v", s)
		}
	}
}

func TestKnightAttacksFromCornerAreFewer(t *testing.T) {
	if got := attacks.Knight[square.A1].Count(); got != 2 {
		t.Errorf("knight on a1 has %d attacked squares, want 2", got)
	}
}

func TestKingAttacksFromCenter(t *testing.T) {
	if got := attacks.King[square.D4].Count(); got != 8 {
		t.Errorf("king on d4 has %d attacked squares, want 8", got)
	}
	if got := attacks.King[square.A1].Count(); got != 3 {
		t.Errorf("king on a1 has %d attacked squares, want 3", got)
	}
}

func TestPawnAttacksAreColorDependent(t *testing.T) {
	white := attacks.Pawn[piece.White][square.E4]
	if !white.IsSet(square.D5) || !white.IsSet(square.F5) {
		t.Errorf("white pawn on e4 should attack d5 and f5, got %v", white)
	}
	if white.Count() != 2 {
		t.Errorf("white pawn on e4 should attack exactly 2 squares, got %d", white.Count())
	}

	black := attacks.Pawn[piece.Black][square.E4]
	if !black.IsSet(square.D3) || !black.IsSet(square.F3) {
		t.Errorf("black pawn on e4 should attack d3 and f3, got %v", black)
	}
}

func TestPawnAttacksFromFileEdgeDoNotWrap(t *testing.T) {
	white := attacks.Pawn[piece.White][square.A4]
	if white.Count() != 1 || !white.IsSet(square.B5) {
		t.Errorf("white pawn on a4 should attack only b5, got %v", white)
	}
}

func TestRookOnOpenBoardAttacksFullRankAndFile(t *testing.T) {
	got := attacks.Rook(square.D4, bitboard.Empty)
	if got.Count() != 14 {
		t.Errorf("rook on d4 with no blockers attacks %d squares, want 14", got.Count())
	}
}

func TestRookStopsAtFirstBlockerAndIncludesIt(t *testing.T) {
	var blockers bitboard.Board
	blockers.Set(square.D6) // two squares north of d4
	got := attacks.Rook(square.D4, blockers)
	if !got.IsSet(square.D5) || !got.IsSet(square.D6) {
		t.Error("rook should attack up to and including the blocker")
	}
	if got.IsSet(square.D7) || got.IsSet(square.D8) {
		t.Error("rook should not see past the blocker")
	}
}

func TestBishopOnOpenBoardAttacksBothDiagonals(t *testing.T) {
	got := attacks.Bishop(square.D4, bitboard.Empty)
	if got.Count() != 13 {
		t.Errorf("bishop on d4 with no blockers attacks %d squares, want 13", got.Count())
	}
}

func TestQueenIsUnionOfRookAndBishop(t *testing.T) {
	var blockers bitboard.Board
	blockers.Set(square.D7)
	blockers.Set(square.B6)

	want := attacks.Rook(square.D4, blockers) | attacks.Bishop(square.D4, blockers)
	if got := attacks.Queen(square.D4, blockers); got != want {
		t.Error("Queen should equal the union of Rook and Bishop attacks")
	}
}

func TestOfDispatchesByRole(t *testing.T) {
	if attacks.Of(piece.Knight, piece.White, square.D4, bitboard.Empty) != attacks.Knight[square.D4] {
		t.Error("Of(Knight, ...) should match the Knight table")
	}
	if attacks.Of(piece.King, piece.White, square.D4, bitboard.Empty) != attacks.King[square.D4] {
		t.Error("Of(King, ...) should match the King table")
	}
	if attacks.Of(piece.Pawn, piece.White, square.E4, bitboard.Empty) != attacks.Pawn[piece.White][square.E4] {
		t.Error("Of(Pawn, White, ...) should match the White pawn table")
	}
	if attacks.Of(piece.Rook, piece.White, square.D4, bitboard.Empty) != attacks.Rook(square.D4, bitboard.Empty) {
		t.Error("Of(Rook, ...) should match Rook(...)")
	}
}

func TestOfPanicsOnUnknownRole(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Of(NoRole, ...) should panic")
		}
	}()
	attacks.Of(piece.NoRole, piece.White, square.D4, bitboard.Empty)
}

func TestBetweenIncludesFarSquare(t *testing.T) {
	// a rook on a1 checking a king on a8: between must include every
	// blocking square on the file AND the checker's own square a1, so
	// that capturing the checker resolves check.
	got := attacks.Between[square.A8][square.A1]
	for _, s := range []square.Square{square.A1, square.A2, square.A3, square.A4, square.A5, square.A6, square.A7} {
		if !got.IsSet(s) {
			t.Errorf("Between[a8][a1] should include %v", s)
		}
	}
	if got.Count() != 7 {
		t.Errorf("Between[a8][a1] has %d squares, want 7 (a1..a7)", got.Count())
	}
}

func TestBetweenIsEmptyForUnalignedSquares(t *testing.T) {
	if got := attacks.Between[square.A1][square.B3]; got != bitboard.Empty {
		t.Errorf("Between[a1][b3] = %v, want Empty (not aligned)", got)
	}
}

func TestBetweenSameSquareIsEmpty(t *testing.T) {
	if got := attacks.Between[square.E4][square.E4]; got != bitboard.Empty {
		t.Errorf("Between[e4][e4] = %v, want Empty", got)
	}
}

func TestBetweenAdjacentSquaresIsJustTheFarSquare(t *testing.T) {
	got := attacks.Between[square.E4][square.E5]
	if got.Count() != 1 || !got.IsSet(square.E5) {
		t.Errorf("Between[e4][e5] = %v, want just e5", got)
	}
}

func TestBetweenDiagonal(t *testing.T) {
	got := attacks.Between[square.A1][square.D4]
	for _, s := range []square.Square{square.B2, square.C3, square.D4} {
		if !got.IsSet(s) {
			t.Errorf("Between[a1][d4] should include %v", s)
		}
	}
	if got.Count() != 3 {
		t.Errorf("Between[a1][d4] has %d squares, want 3", got.Count())
	}
}
