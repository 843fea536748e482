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

package bitboard_test

import (
	"testing"

	"laptudirm.com/x/gochess/internal/bitboard"
	"laptudirm.com/x/gochess/internal/piece"
	"laptudirm.com/x/gochess/internal/square"
)

func TestSetUnsetIsSet(t *testing.T) {
	var b bitboard.Board
	if b.IsSet(square.E4) {
		t.Fatal("fresh bitboard should have no squares set")
	}

	b.Set(square.E4)
	if !b.IsSet(square.E4) {
		t.Error("E4 should be set after Set")
	}

	b.Unset(square.E4)
	if b.IsSet(square.E4) {
		t.Error("E4 should not be set after Unset")
	}
}

func TestCountAndPop(t *testing.T) {
	var b bitboard.Board
	b.Set(square.A1)
	b.Set(square.D4)
	b.Set(square.H8)

	if got := b.Count(); got != 3 {
		t.Fatalf("Count() = %d, want 3", got)
	}

	var popped []square.Square
	for b != bitboard.Empty {
		popped = append(popped, b.Pop())
	}
	if len(popped) != 3 || popped[0] != square.A1 || popped[1] != square.D4 || popped[2] != square.H8 {
		t.Errorf("Pop order = %v, want [A1 D4 H8] (ascending square order)", popped)
	}
}

func TestNorthSouthEastWestNoWraparound(t *testing.T) {
	a1 := bitboard.Squares[square.A1]
	if got := a1.West(); got != bitboard.Empty {
		t.Errorf("A1.West() = %v, want Empty (no wraparound off the board)", got)
	}

	h1 := bitboard.Squares[square.H1]
	if got := h1.East(); got != bitboard.Empty {
		t.Errorf("H1.East() = %v, want Empty (no wraparound off the board)", got)
	}

	e4 := bitboard.Squares[square.E4]
	if got := e4.North(); got != bitboard.Squares[square.E5] {
		t.Errorf("E4.North() = %v, want E5", got)
	}
	if got := e4.South(); got != bitboard.Squares[square.E3] {
		t.Errorf("E4.South() = %v, want E3", got)
	}
}

func TestUpDownRespectsColor(t *testing.T) {
	e4 := bitboard.Squares[square.E4]
	if got := e4.Up(piece.White); got != bitboard.Squares[square.E5] {
		t.Errorf("white Up(E4) = %v, want E5", got)
	}
	if got := e4.Up(piece.Black); got != bitboard.Squares[square.E3] {
		t.Errorf("black Up(E4) = %v, want E3", got)
	}
	if got := e4.Down(piece.White); got != bitboard.Squares[square.E3] {
		t.Errorf("white Down(E4) = %v, want E3", got)
	}
	if got := e4.Down(piece.Black); got != bitboard.Squares[square.E5] {
		t.Errorf("black Down(E4) = %v, want E5", got)
	}
}

func TestFileAndRankMasks(t *testing.T) {
	if bitboard.FileA.Count() != 8 {
		t.Errorf("FileA has %d squares, want 8", bitboard.FileA.Count())
	}
	if bitboard.Rank1.Count() != 8 {
		t.Errorf("Rank1 has %d squares, want 8", bitboard.Rank1.Count())
	}
	if !bitboard.FileA.IsSet(square.A1) || !bitboard.FileA.IsSet(square.A8) {
		t.Error("FileA should contain A1 and A8")
	}
	if bitboard.FileA.IsSet(square.B1) {
		t.Error("FileA should not contain B1")
	}
	if overlap := bitboard.FileA & bitboard.Rank1; overlap != bitboard.Squares[square.A1] {
		t.Errorf("FileA & Rank1 = %v, want just A1", overlap)
	}
}

func TestNoneIsNeverSet(t *testing.T) {
	var b bitboard.Board
	b.Set(square.None) // must be a silent no-op
	if b != bitboard.Empty {
		t.Errorf("Set(None) mutated the bitboard: %v", b)
	}
	if b.IsSet(square.None) {
		t.Error("IsSet(None) must always report false")
	}
}
