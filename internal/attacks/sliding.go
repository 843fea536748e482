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

// direction offsets for the four rook rays and four bishop rays.
const (
	dirN  = 8
	dirS  = -8
	dirE  = 1
	dirW  = -1
	dirNE = 9
	dirNW = 7
	dirSE = -7
	dirSW = -9
)

// castRay walks one direction from s until it runs off the board or hits
// a blocker, returning the squares visited. If trimEdges is true, the
// final square of a ray that would otherwise end on the board edge is
// excluded (used only for building relevant-blocker masks).
func castRay(s square.Square, dir int, blockers bitboard.Board, trimEdges bool) bitboard.Board {
	var bb bitboard.Board

	cur := s
	for {
		prevFile := cur.File()
		next := cur + square.Square(dir)
		if next < 0 || next >= square.N {
			break
		}

		// detect file wraparound for the horizontal/diagonal directions
		fileDelta := int(next.File()) - int(prevFile)
		switch dir {
		case dirE, dirNE, dirSE:
			if fileDelta != 1 {
				return bb
			}
		case dirW, dirNW, dirSW:
			if fileDelta != -1 {
				return bb
			}
		}

		cur = next

		if trimEdges && rayEnds(cur, dir) {
			// the last square of a ray is never a "relevant" blocker:
			// the ray stops there regardless of occupancy.
			return bb
		}

		bb.Set(cur)

		if blockers.IsSet(cur) {
			return bb
		}
	}

	return bb
}

// rayEnds reports whether cur is the final on-board square of a ray
// travelling in dir, i.e. the next step in dir would leave the board.
func rayEnds(cur square.Square, dir int) bool {
	switch dir {
	case dirN:
		return cur.Rank() == square.Rank8
	case dirS:
		return cur.Rank() == square.Rank1
	case dirE:
		return cur.File() == square.FileH
	case dirW:
		return cur.File() == square.FileA
	case dirNE:
		return cur.File() == square.FileH || cur.Rank() == square.Rank8
	case dirNW:
		return cur.File() == square.FileA || cur.Rank() == square.Rank8
	case dirSE:
		return cur.File() == square.FileH || cur.Rank() == square.Rank1
	case dirSW:
		return cur.File() == square.FileA || cur.Rank() == square.Rank1
	}
	return false
}

func rookRay(s square.Square, blockers bitboard.Board, trimEdges bool) bitboard.Board {
	return castRay(s, dirN, blockers, trimEdges) |
		castRay(s, dirS, blockers, trimEdges) |
		castRay(s, dirE, blockers, trimEdges) |
		castRay(s, dirW, blockers, trimEdges)
}

func bishopRay(s square.Square, blockers bitboard.Board, trimEdges bool) bitboard.Board {
	return castRay(s, dirNE, blockers, trimEdges) |
		castRay(s, dirNW, blockers, trimEdges) |
		castRay(s, dirSE, blockers, trimEdges) |
		castRay(s, dirSW, blockers, trimEdges)
}

// rookTable and bishopTable are built once at process start: 102,400
// entries for rooks, 5,248 for bishops.
var rookTable *magicTable
var bishopTable *magicTable

func init() {
	rookTable = buildMagicTable(rookRay, 102400)
	bishopTable = buildMagicTable(bishopRay, 5248)
}

// Rook returns a rook's attack set on square s given the occupied-square
// blocker set.
func Rook(s square.Square, blockers bitboard.Board) bitboard.Board {
	return rookTable.probe(s, blockers)
}

// Bishop returns a bishop's attack set on square s given the occupied-
// square blocker set.
func Bishop(s square.Square, blockers bitboard.Board) bitboard.Board {
	return bishopTable.probe(s, blockers)
}

// Queen returns a queen's attack set: the union of a rook's and a
// bishop's attack sets on the same square and blockers.
func Queen(s square.Square, blockers bitboard.Board) bitboard.Board {
	return Rook(s, blockers) | Bishop(s, blockers)
}

// Of returns the attack set of a piece with the given role and color on
// square s with the given blocker set. The blocker set is unused for
// non-sliding roles.
func Of(role piece.Role, color piece.Color, s square.Square, blockers bitboard.Board) bitboard.Board {
	switch role {
	case piece.Pawn:
		return Pawn[color][s]
	case piece.Knight:
		return Knight[s]
	case piece.Bishop:
		return Bishop(s, blockers)
	case piece.Rook:
		return Rook(s, blockers)
	case piece.Queen:
		return Queen(s, blockers)
	case piece.King:
		return King[s]
	default:
		panic("attacks.Of: unknown role")
	}
}
