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

package castling_test

import (
	"testing"

	"laptudirm.com/x/gochess/internal/castling"
)

func TestNewFromStringAndString(t *testing.T) {
	tests := []struct{ in, want string }{
		{"KQkq", "KQkq"},
		{"Kq", "Kq"},
		{"-", "-"},
		{"", "-"},
		{"Qk", "Qk"},
	}
	for _, tc := range tests {
		r, err := castling.NewFromString(tc.in)
		if err != nil {
			t.Fatalf("NewFromString(%q) returned error: %v", tc.in, err)
		}
		if got := r.String(); got != tc.want {
			t.Errorf("NewFromString(%q).String() = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNewFromStringErrorsOnUnknownLetters(t *testing.T) {
	if _, err := castling.NewFromString("KQkqx"); err == nil {
		t.Error("NewFromString with a stray letter should error")
	}
}

func TestRightsLostFromRevokesCorrectSide(t *testing.T) {
	if castling.RightsLostFrom[4] != castling.White { // e1
		t.Errorf("RightsLostFrom[e1] = %v, want White", castling.RightsLostFrom[4])
	}
	r := castling.All &^ castling.RightsLostFrom[0] // a1
	if r != castling.All&^castling.WhiteQueenside {
		t.Errorf("revoking from a1 should only clear WhiteQueenside, got %v", r)
	}
}

func TestRookMovesIndexedByKingDestination(t *testing.T) {
	// white kingside castle: king lands on g1, rook h1->f1.
	const g1 = 6
	rm := castling.RookMoves[g1]
	if rm.From != 7 || rm.To != 5 { // h1=7, f1=5
		t.Errorf("white kingside RookMove = %+v, want From=h1(7) To=f1(5)", rm)
	}
}

func TestMonotonicRevocationNeverRestoresRights(t *testing.T) {
	r := castling.WhiteKingside
	r &^= castling.RightsLostFrom[4] // king moves from e1: loses both white rights
	r |= castling.BlackKingside      // unrelated right gained elsewhere is fine
	if r&castling.White != 0 {
		t.Errorf("white rights should stay cleared once revoked, got %v", r&castling.White)
	}
}
