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

// Package castling implements the per-color castling rights bitmask
// and the fixed geometry of a castling move.
package castling

import (
	"fmt"

	"laptudirm.com/x/gochess/internal/bitboard"
	"laptudirm.com/x/gochess/internal/piece"
	"laptudirm.com/x/gochess/internal/square"
)

// Rights is a bitmask of the four individual castling permissions. It is
// revocable only monotonically: a move never restores a right that has
// been cleared.
type Rights uint8

const (
	WhiteKingside Rights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	None Rights = 0

	White = WhiteKingside | WhiteQueenside
	Black = BlackKingside | BlackQueenside

	Kingside  = WhiteKingside | BlackKingside
	Queenside = WhiteQueenside | BlackQueenside

	All Rights = White | Black

	// N is the number of distinct Rights values (2^4), used to size the
	// Zobrist castling-rights key table.
	N = 16
)

// NewFromString parses Rights from a FEN castling field, e.g. "KQkq",
// "Kq", or "-". Any character outside "KQkq-" is an error.
func NewFromString(s string) (Rights, error) {
	if s == "-" {
		return None, nil
	}
	var r Rights
	for _, c := range s {
		switch c {
		case 'K':
			r |= WhiteKingside
		case 'Q':
			r |= WhiteQueenside
		case 'k':
			r |= BlackKingside
		case 'q':
			r |= BlackQueenside
		default:
			return None, fmt.Errorf("castling: invalid rights field %q", s)
		}
	}
	return r, nil
}

// String renders Rights as a FEN castling field.
func (r Rights) String() string {
	if r == None {
		return "-"
	}
	var s string
	if r&WhiteKingside != 0 {
		s += "K"
	}
	if r&WhiteQueenside != 0 {
		s += "Q"
	}
	if r&BlackKingside != 0 {
		s += "k"
	}
	if r&BlackQueenside != 0 {
		s += "q"
	}
	return s
}

// RookMove describes the rook relocation that accompanies a king's
// castling move.
type RookMove struct {
	From, To square.Square
	Rook     piece.Piece
}

// RookMoves is indexed by the king's destination square during a castle
// and gives the matching rook move. Every other index is the zero value
// and unused.
var RookMoves = [square.N]RookMove{
	square.G1: {From: square.H1, To: square.F1, Rook: piece.New(piece.Rook, piece.White)},
	square.C1: {From: square.A1, To: square.D1, Rook: piece.New(piece.Rook, piece.White)},
	square.G8: {From: square.H8, To: square.F8, Rook: piece.New(piece.Rook, piece.Black)},
	square.C8: {From: square.A8, To: square.D8, Rook: piece.New(piece.Rook, piece.Black)},
}

// RightsLostFrom maps a square to the castling rights permanently lost
// when a piece moves from (or a capture lands on) that square: the
// starting squares of the kings and rooks. Used to revoke rights
// incrementally in MakeMove.
var RightsLostFrom = [square.N]Rights{
	square.E1: White,
	square.A1: WhiteQueenside,
	square.H1: WhiteKingside,
	square.E8: Black,
	square.A8: BlackQueenside,
	square.H8: BlackKingside,
}

// pathEmpty/pathSafe are the squares that must be respectively unoccupied
// and unattacked for a given castle to be legal.
var (
	PathEmptyWhiteK = squareSet(square.F1, square.G1)
	PathEmptyWhiteQ = squareSet(square.B1, square.C1, square.D1)
	PathEmptyBlackK = squareSet(square.F8, square.G8)
	PathEmptyBlackQ = squareSet(square.B8, square.C8, square.D8)

	// the king only needs its transit+destination squares unattacked;
	// on the queenside the rook's transit square (b-file) does not need
	// to be unattacked since the king never crosses it.
	PathSafeWhiteK = squareSet(square.F1, square.G1)
	PathSafeWhiteQ = squareSet(square.C1, square.D1)
	PathSafeBlackK = squareSet(square.F8, square.G8)
	PathSafeBlackQ = squareSet(square.C8, square.D8)
)

func squareSet(squares ...square.Square) bitboard.Board {
	var bb bitboard.Board
	for _, s := range squares {
		bb.Set(s)
	}
	return bb
}
