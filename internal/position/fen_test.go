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

package position_test

import (
	"testing"

	"laptudirm.com/x/gochess/internal/piece"
	"laptudirm.com/x/gochess/internal/position"
	"laptudirm.com/x/gochess/internal/square"
)

func TestFENRoundTrip(t *testing.T) {
	tests := []string{
		position.StartFEN,
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	}

	for n, fen := range tests {
		t.Run(fen, func(t *testing.T) {
			pos, err := position.NewFromFEN(fen)
			if err != nil {
				t.Fatalf("test %d: NewFromFEN: %v", n, err)
			}
			got := pos.FEN()
			if got != fen {
				t.Errorf("test %d: round trip mismatch\n got: %s\nwant: %s", n, got, fen)
			}
		})
	}
}

func TestFENRejectsMalformedInput(t *testing.T) {
	tests := []string{
		"",
		"not a fen at all",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0", // missing field
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",        // 7 ranks only
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1", // bad piece letter
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR z KQkq - 0 1", // bad color
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkqx - 0 1", // bad castling rights
	}

	for _, fen := range tests {
		t.Run(fen, func(t *testing.T) {
			if _, err := position.NewFromFEN(fen); err == nil {
				t.Errorf("expected an error parsing %q, got none", fen)
			}
		})
	}
}

func TestPieceQueriesAfterParse(t *testing.T) {
	pos, err := position.NewFromFEN(position.StartFEN)
	if err != nil {
		t.Fatalf("NewFromFEN: %v", err)
	}

	if got := pos.Board.PieceOn(square.E1); got != piece.New(piece.King, piece.White) {
		t.Errorf("PieceOn(e1) = %v, want the white king", got)
	}
	if got := pos.Board.PieceOn(square.D8); got != piece.New(piece.Queen, piece.Black) {
		t.Errorf("PieceOn(d8) = %v, want the black queen", got)
	}
	if got := pos.Board.PieceOn(square.E4); got != piece.NoPiece {
		t.Errorf("PieceOn(e4) = %v, want NoPiece", got)
	}

	if got := pos.Board.RoleOn(square.A1); got != piece.Rook {
		t.Errorf("RoleOn(a1) = %v, want Rook", got)
	}
	if got := pos.Board.ColorOn(square.A8); got != piece.Black {
		t.Errorf("ColorOn(a8) = %v, want Black", got)
	}
}

func TestStartPositionHashIsStable(t *testing.T) {
	a, err := position.NewFromFEN(position.StartFEN)
	if err != nil {
		t.Fatalf("NewFromFEN: %v", err)
	}
	b, err := position.NewFromFEN(position.StartFEN)
	if err != nil {
		t.Fatalf("NewFromFEN: %v", err)
	}
	if a.Hash != b.Hash {
		t.Errorf("two parses of the same FEN hashed differently: %#x vs %#x", a.Hash, b.Hash)
	}
}
