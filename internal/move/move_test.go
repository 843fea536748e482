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

package move_test

import (
	"testing"

	"laptudirm.com/x/gochess/internal/move"
	"laptudirm.com/x/gochess/internal/piece"
	"laptudirm.com/x/gochess/internal/square"
)

func TestNullMoveStringAndIsNull(t *testing.T) {
	if !move.Null.IsNull() {
		t.Error("move.Null should report IsNull")
	}
	if move.Null.String() != "0000" {
		t.Errorf("Null.String() = %q, want %q", move.Null.String(), "0000")
	}
}

func TestStandardMoveString(t *testing.T) {
	m := move.NewStandard(square.E2, square.E4, piece.Pawn, piece.NoRole, piece.NoRole, square.E3)
	if got := m.String(); got != "e2e4" {
		t.Errorf("String() = %q, want %q", got, "e2e4")
	}
	if m.IsCapture() || m.IsPromotion() {
		t.Error("a quiet double push should be neither a capture nor a promotion")
	}
	if !m.IsQuiet() {
		t.Error("a quiet double push should report IsQuiet")
	}
	if m.IsReversible() {
		t.Error("a pawn move should never be reversible (resets the 50-move clock)")
	}
}

func TestPromotionMoveString(t *testing.T) {
	m := move.NewStandard(square.A7, square.A8, piece.Pawn, piece.NoRole, piece.Queen, square.None)
	if got := m.String(); got != "a7a8q" {
		t.Errorf("String() = %q, want %q", got, "a7a8q")
	}
	if !m.IsPromotion() {
		t.Error("should report IsPromotion")
	}
}

func TestCaptureIsNotReversible(t *testing.T) {
	m := move.NewStandard(square.E4, square.D5, piece.Pawn, piece.Pawn, piece.NoRole, square.None)
	if !m.IsCapture() {
		t.Error("should report IsCapture")
	}
	if m.IsReversible() {
		t.Error("a capture should never be reversible")
	}
}

func TestQuietKnightMoveIsReversible(t *testing.T) {
	m := move.NewStandard(square.G1, square.F3, piece.Knight, piece.NoRole, piece.NoRole, square.None)
	if !m.IsReversible() {
		t.Error("a quiet non-pawn move should be reversible")
	}
}

func TestEnPassantFields(t *testing.T) {
	m := move.NewEnPassant(square.E5, square.D6, square.D5)
	if m.Kind != move.EnPassant {
		t.Errorf("Kind = %v, want EnPassant", m.Kind)
	}
	if !m.IsCapture() {
		t.Error("en passant should report IsCapture")
	}
	if m.EPCaptureSquare != square.D5 {
		t.Errorf("EPCaptureSquare = %v, want D5", m.EPCaptureSquare)
	}
	if got := m.String(); got != "e5d6" {
		t.Errorf("String() = %q, want %q", got, "e5d6")
	}
}

func TestCastleFields(t *testing.T) {
	m := move.NewCastle(move.CastleShort, square.E1, square.G1)
	if m.Role != piece.King {
		t.Errorf("castle move Role = %v, want King", m.Role)
	}
	if m.IsCapture() || m.IsPromotion() {
		t.Error("castling is neither a capture nor a promotion")
	}
	if got := m.String(); got != "e1g1" {
		t.Errorf("String() = %q, want %q", got, "e1g1")
	}
}

func TestListAppendAndAt(t *testing.T) {
	var l move.List
	if l.Len() != 0 {
		t.Fatalf("fresh list Len() = %d, want 0", l.Len())
	}

	a := move.NewStandard(square.E2, square.E4, piece.Pawn, piece.NoRole, piece.NoRole, square.E3)
	b := move.NewStandard(square.D2, square.D4, piece.Pawn, piece.NoRole, piece.NoRole, square.D3)
	l.Append(a)
	l.Append(b)

	if l.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", l.Len())
	}
	if l.At(0) != a || l.At(1) != b {
		t.Error("At() did not return moves in append order")
	}

	l.Set(0, b)
	if l.At(0) != b {
		t.Error("Set() did not overwrite the entry")
	}

	if got := len(l.Slice()); got != 2 {
		t.Errorf("Slice() length = %d, want 2", got)
	}
}

func TestVariationUpdateAndString(t *testing.T) {
	var child move.Variation
	child.Update(move.NewStandard(square.E7, square.E5, piece.Pawn, piece.NoRole, piece.NoRole, square.E6), move.Variation{})

	var pv move.Variation
	pv.Update(move.NewStandard(square.E2, square.E4, piece.Pawn, piece.NoRole, piece.NoRole, square.E3), child)

	if pv.Move(0).String() != "e2e4" || pv.Move(1).String() != "e7e5" {
		t.Errorf("pv = %q, want first two moves e2e4 e7e5", pv.String())
	}
	if !pv.Move(2).IsNull() {
		t.Error("reading past the end of a Variation should return Null")
	}

	pv.Clear()
	if !pv.Move(0).IsNull() {
		t.Error("Clear() should empty the variation")
	}
}
