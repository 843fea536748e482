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

// Package bitboard implements a 64-bit bitboard and related helpers for
// manipulating sets of squares.
//
// Squares follow internal/square's A1=0..H8=63 Little-Endian-Rank-File
// numbering, so bit i corresponds to square i, and shifting the whole
// word left by 8 moves every set bit one rank towards H8 (north, from
// White's perspective).
package bitboard

import (
	"math/bits"
	"strings"

	"laptudirm.com/x/gochess/internal/piece"
	"laptudirm.com/x/gochess/internal/square"
)

// Board is a set of squares packed into a 64-bit word.
type Board uint64

// Empty and Universe are the zero-element and all-elements bitboards.
const (
	Empty    Board = 0
	Universe Board = 0xFFFFFFFFFFFFFFFF
)

// Squares is a lookup table from a square to its singleton bitboard.
var Squares [square.N]Board

// file and rank masks, used throughout attack generation and pawn logic.
var (
	FileA, FileB, FileC, FileD, FileE, FileF, FileG, FileH Board
	Rank1, Rank2, Rank3, Rank4, Rank5, Rank6, Rank7, Rank8 Board
)

func init() {
	for s := square.Square(0); s < square.N; s++ {
		Squares[s] = Board(1) << uint(s)
	}

	for f := square.FileA; f <= square.FileH; f++ {
		var bb Board
		for r := square.Rank1; r <= square.Rank8; r++ {
			bb |= Squares[square.New(f, r)]
		}
		switch f {
		case square.FileA:
			FileA = bb
		case square.FileB:
			FileB = bb
		case square.FileC:
			FileC = bb
		case square.FileD:
			FileD = bb
		case square.FileE:
			FileE = bb
		case square.FileF:
			FileF = bb
		case square.FileG:
			FileG = bb
		case square.FileH:
			FileH = bb
		}
	}

	for r := square.Rank1; r <= square.Rank8; r++ {
		var bb Board
		for f := square.FileA; f <= square.FileH; f++ {
			bb |= Squares[square.New(f, r)]
		}
		switch r {
		case square.Rank1:
			Rank1 = bb
		case square.Rank2:
			Rank2 = bb
		case square.Rank3:
			Rank3 = bb
		case square.Rank4:
			Rank4 = bb
		case square.Rank5:
			Rank5 = bb
		case square.Rank6:
			Rank6 = bb
		case square.Rank7:
			Rank7 = bb
		case square.Rank8:
			Rank8 = bb
		}
	}
}

// String returns a human-readable 8x8 rendering of the bitboard, rank 8
// first, matching FEN's top-to-bottom reading order.
func (b Board) String() string {
	var s strings.Builder
	for r := square.Rank8; r >= square.Rank1; r-- {
		for f := square.FileA; f <= square.FileH; f++ {
			if b.IsSet(square.New(f, r)) {
				s.WriteByte('1')
			} else {
				s.WriteByte('0')
			}
			if f != square.FileH {
				s.WriteByte(' ')
			}
		}
		s.WriteByte('\n')
		if r == square.Rank1 {
			break
		}
	}
	return s.String()
}

// Up shifts the bitboard one rank towards the given color's promotion
// rank: north (+8) for White, south (-8) for Black.
func (b Board) Up(c piece.Color) Board {
	if c == piece.White {
		return b.North()
	}
	return b.South()
}

// Down shifts the bitboard one rank away from the given color's
// promotion rank.
func (b Board) Down(c piece.Color) Board {
	if c == piece.White {
		return b.South()
	}
	return b.North()
}

// North shifts the bitboard towards rank 8.
func (b Board) North() Board {
	return b << 8
}

// South shifts the bitboard towards rank 1.
func (b Board) South() Board {
	return b >> 8
}

// East shifts the bitboard towards the H file, discarding wraparound.
func (b Board) East() Board {
	return (b &^ FileH) << 1
}

// West shifts the bitboard towards the A file, discarding wraparound.
func (b Board) West() Board {
	return (b &^ FileA) >> 1
}

// Pop returns the least-significant set square and clears it.
func (b *Board) Pop() square.Square {
	sq := b.FirstOne()
	*b &= *b - 1
	return sq
}

// Count returns the number of set squares.
func (b Board) Count() int {
	return bits.OnesCount64(uint64(b))
}

// FirstOne returns the least-significant set square without modifying b.
func (b Board) FirstOne() square.Square {
	return square.Square(bits.TrailingZeros64(uint64(b)))
}

// IsSet reports whether the given square is a member of the bitboard.
func (b Board) IsSet(s square.Square) bool {
	if s == square.None {
		return false
	}
	return b&Squares[s] != Empty
}

// Set adds the given square to the bitboard.
func (b *Board) Set(s square.Square) {
	if s == square.None {
		return
	}
	*b |= Squares[s]
}

// Unset removes the given square from the bitboard.
func (b *Board) Unset(s square.Square) {
	if s == square.None {
		return
	}
	*b &^= Squares[s]
}
