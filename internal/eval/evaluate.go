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
	"laptudirm.com/x/gochess/internal/bitboard"
	"laptudirm.com/x/gochess/internal/piece"
	"laptudirm.com/x/gochess/internal/position"
)

// Evaluate scores pos from the perspective of the side to move: for
// every piece on the board, look up its role+square value from White's
// point of view (or the vertically-mirrored table for Black), sum per
// color, then return the White-minus-Black total negated if Black is
// to move.
func Evaluate(pos *position.Position) Eval {
	var white, black Eval

	for role := piece.Pawn; role <= piece.King; role++ {
		for bb := rolePieces(pos, role, piece.White); bb != bitboard.Empty; {
			white += table[role][bb.Pop()]
		}
		for bb := rolePieces(pos, role, piece.Black); bb != bitboard.Empty; {
			black += blackTable[role][bb.Pop()]
		}
	}

	score := white - black
	if pos.SideToMove == piece.Black {
		return -score
	}
	return score
}

func rolePieces(pos *position.Position, role piece.Role, c piece.Color) bitboard.Board {
	switch role {
	case piece.Pawn:
		return pos.Board.Pawns(c)
	case piece.Knight:
		return pos.Board.Knights(c)
	case piece.Bishop:
		return pos.Board.Bishops(c)
	case piece.Rook:
		return pos.Board.Rooks(c)
	case piece.Queen:
		return pos.Board.Queens(c)
	case piece.King:
		return pos.Board.Kings(c)
	default:
		return bitboard.Empty
	}
}
