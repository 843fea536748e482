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

package attacks

import (
	"laptudirm.com/x/gochess/internal/bitboard"
	"laptudirm.com/x/gochess/internal/piece"
	"laptudirm.com/x/gochess/internal/square"
)

// Pawn[color][s] is the set of squares a pawn of the given color
// standing on s attacks (not pushes to).
var Pawn [piece.ColorN][square.N]bitboard.Board

// Knight[s] and King[s] are the non-sliding attack sets for a knight or
// king standing on s.
var Knight [square.N]bitboard.Board
var King [square.N]bitboard.Board

func init() {
	for s := square.Square(0); s < square.N; s++ {
		single := bitboard.Squares[s]

		Pawn[piece.White][s] = single.Up(piece.White).East() | single.Up(piece.White).West()
		Pawn[piece.Black][s] = single.Up(piece.Black).East() | single.Up(piece.Black).West()

		Knight[s] = knightAttacksOf(single)
		King[s] = kingAttacksOf(single)
	}
}

// knightAttacksOf computes a knight's attack set from its source square
// bitboard by shifting in each of the 8 L-shapes, masking out file
// wraparound the same way (bishop/rook shifts do.
func knightAttacksOf(b bitboard.Board) bitboard.Board {
	l1 := (b &^ bitboard.FileA) >> 1 // one west
	l2 := (b &^ (bitboard.FileA | bitboard.FileB)) >> 2
	r1 := (b &^ bitboard.FileH) << 1 // one east
	r2 := (b &^ (bitboard.FileG | bitboard.FileH)) << 2

	h1 := l1 | r1 // horizontal distance 1
	h2 := l2 | r2 // horizontal distance 2

	return (h1 << 16) | (h1 >> 16) | (h2 << 8) | (h2 >> 8)
}

// kingAttacksOf computes a king's attack set from its source square
// bitboard.
func kingAttacksOf(b bitboard.Board) bitboard.Board {
	east := (b &^ bitboard.FileH) << 1
	west := (b &^ bitboard.FileA) >> 1
	row := b | east | west
	return (row | row<<8 | row>>8) &^ b
}

// PawnPush returns the result of pushing every pawn in the given set one
// square forward.
func PawnPush(pawns bitboard.Board, color piece.Color) bitboard.Board {
	return pawns.Up(color)
}

// PawnsLeft returns the result of every pawn in the set capturing
// towards the A file.
func PawnsLeft(pawns bitboard.Board, color piece.Color) bitboard.Board {
	return pawns.Up(color).West()
}

// PawnsRight returns the result of every pawn in the set capturing
// towards the H file.
func PawnsRight(pawns bitboard.Board, color piece.Color) bitboard.Board {
	return pawns.Up(color).East()
}
