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

package eval

import (
	"laptudirm.com/x/gochess/internal/piece"
)

// pieceValue is the centipawn material value per role, taken from
// PeSTO's midgame values.
var pieceValue = [piece.RoleN]Eval{
	piece.Pawn:   82,
	piece.Knight: 337,
	piece.Bishop: 365,
	piece.Rook:   477,
	piece.Queen:  1025,
	piece.King:   0,
}

// The tables below are PeSTO's midgame piece-square tables, written (as
// in the source they're taken from) with index 0 for a8 and index 63
// for h1 -- i.e. top rank first. The package's init function converts
// them to this module's a1=0 square numbering before use.
var pawnPST = [64]Eval{
	0, 0, 0, 0, 0, 0, 0, 0,
	98, 134, 61, 95, 68, 126, 34, -11,
	-6, 7, 26, 31, 65, 56, 25, -20,
	-14, 13, 6, 21, 23, 12, 17, -23,
	-27, -2, -5, 12, 17, 6, 10, -25,
	-26, -4, -4, -10, 3, 3, 33, -12,
	-35, -1, -20, -23, -15, 24, 38, -22,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightPST = [64]Eval{
	-167, -89, -34, -49, 61, -97, -15, -107,
	-73, -41, 72, 36, 23, 62, 7, -17,
	-47, 60, 37, 65, 84, 129, 73, 44,
	-9, 17, 19, 53, 37, 69, 18, 22,
	-13, 4, 16, 13, 28, 19, 21, -8,
	-23, -9, 12, 10, 19, 17, 25, -16,
	-29, -53, -12, -3, -1, 18, -14, -19,
	-105, -21, -58, -33, -17, -28, -19, -23,
}

var bishopPST = [64]Eval{
	-29, 4, -82, -37, -25, -42, 7, -8,
	-26, 16, -18, -13, 30, 59, 18, -47,
	-16, 37, 43, 40, 35, 50, 37, -2,
	-4, 5, 19, 50, 37, 37, 7, -2,
	-6, 13, 13, 26, 34, 12, 10, 4,
	0, 15, 15, 15, 14, 27, 18, 10,
	4, 15, 16, 0, 7, 21, 33, 1,
	-33, -3, -14, -21, -13, -12, -39, -21,
}

var rookPST = [64]Eval{
	32, 42, 32, 51, 63, 9, 31, 43,
	27, 32, 58, 62, 80, 67, 26, 44,
	-5, 19, 26, 36, 17, 45, 61, 16,
	-24, -11, 7, 26, 24, 35, -8, -20,
	-36, -26, -12, -1, 9, -7, 6, -23,
	-45, -25, -16, -17, 3, 0, -5, -33,
	-44, -16, -20, -9, -1, 11, -6, -71,
	-19, -13, 1, 17, 16, 7, -37, -26,
}

var queenPST = [64]Eval{
	-28, 0, 29, 12, 59, 44, 43, 45,
	-24, -39, -5, 1, -16, 57, 28, 54,
	-13, -17, 7, 8, 29, 56, 47, 57,
	-27, -27, -16, -16, -1, 17, -2, 1,
	-9, -26, -9, -10, -2, -4, 3, -3,
	-14, 2, -11, -2, -5, 2, 14, 5,
	-35, -8, 11, 2, 8, 15, -3, 1,
	-1, -18, -9, 10, -15, -25, -31, -50,
}

var kingPST = [64]Eval{
	-65, 23, 16, -15, -56, -34, 2, 13,
	29, -1, -20, -7, -8, -4, -38, -29,
	-9, 24, 2, -16, -20, 6, 22, -22,
	-17, -20, -12, -27, -30, -25, -14, -36,
	-49, -1, -27, -39, -46, -44, -33, -51,
	-14, -14, -22, -46, -44, -30, -15, -27,
	1, 7, -8, -64, -43, -16, 9, 8,
	-15, 36, 12, -54, 8, -28, 24, 14,
}

// table[role][s] is the combined material+positional value of a White
// piece of the given role standing on square s (our numbering).
// blackTable mirrors it vertically for Black's perspective.
var table [piece.RoleN][64]Eval
var blackTable [piece.RoleN][64]Eval

func init() {
	raw := [piece.RoleN][64]Eval{
		piece.Pawn:   pawnPST,
		piece.Knight: knightPST,
		piece.Bishop: bishopPST,
		piece.Rook:   rookPST,
		piece.Queen:  queenPST,
		piece.King:   kingPST,
	}

	for role := piece.Pawn; role <= piece.King; role++ {
		for s := 0; s < 64; s++ {
			sourceIndex := (7-(s/8))*8 + s%8
			table[role][s] = pieceValue[role] + raw[role][sourceIndex]
		}
		for s := 0; s < 64; s++ {
			blackTable[role][s] = table[role][s^56]
		}
	}
}
