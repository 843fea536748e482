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

// Package movegen implements strictly-legal move generation: every
// Move it emits is guaranteed playable, with no
// pseudo-legal-plus-filter pass. Legality is established up front by
// intersecting each piece's targets against a per-call check mask and
// per-square pin masks; the only post-hoc probe left is the en-passant
// discovered-check case, which no precomputed mask can express.
package movegen

import (
	"laptudirm.com/x/gochess/internal/attacks"
	"laptudirm.com/x/gochess/internal/bitboard"
	"laptudirm.com/x/gochess/internal/piece"
	"laptudirm.com/x/gochess/internal/position"
	"laptudirm.com/x/gochess/internal/square"
)

// state is the per-call scratch space of one Generate run: the check
// mask, the per-square pin masks, and the set of squares the enemy
// sees, all computed once up front so that each piece-generation phase
// can just intersect against them.
type state struct {
	pos *position.Position
	us  piece.Color
	them piece.Color

	occ    bitboard.Board
	ownOcc bitboard.Board

	// checkMask is the set of squares that resolve the current check:
	// Universe if not in check, the checking piece's square (plus the
	// ray to it, for a slider) if in check by one piece, and Empty if
	// in check by two (only the king can move).
	checkMask bitboard.Board

	// pinMask[s] is Universe for an unpinned piece, or the ray between
	// the king and the pinning slider (inclusive of the pinner's
	// square) for a pinned piece standing on s.
	pinMask [square.N]bitboard.Board

	// seen is every square attacked by the side NOT to move, used to
	// forbid the king from stepping into attack and to validate
	// castling safety squares.
	seen bitboard.Board
}

func newState(pos *position.Position) *state {
	us, them := pos.SideToMove, pos.SideToMove.Other()
	s := &state{
		pos:    pos,
		us:     us,
		them:   them,
		occ:    pos.Board.Occupied(),
		ownOcc: pos.Board.Occupancy(us),
	}

	for i := range s.pinMask {
		s.pinMask[i] = bitboard.Universe
	}

	s.seen = pos.Board.AttackedSquares(them)
	s.calculateCheckMask()
	s.calculatePinMask()

	return s
}

func (s *state) calculateCheckMask() {
	king := s.pos.Board.King(s.us)

	checkers := attacks.Pawn[s.us][king] & s.pos.Board.Pawns(s.them)
	checkers |= attacks.Knight[king] & s.pos.Board.Knights(s.them)

	sliders := (attacks.Bishop(king, s.occ) & (s.pos.Board.Bishops(s.them) | s.pos.Board.Queens(s.them))) |
		(attacks.Rook(king, s.occ) & (s.pos.Board.Rooks(s.them) | s.pos.Board.Queens(s.them)))
	checkers |= sliders

	switch checkers.Count() {
	case 0:
		s.checkMask = bitboard.Universe
	case 1:
		checker := checkers.FirstOne()
		if s.pos.Board.RoleOn(checker) == piece.Knight || s.pos.Board.RoleOn(checker) == piece.Pawn {
			s.checkMask = bitboard.Squares[checker]
		} else {
			s.checkMask = attacks.Between[king][checker]
		}
	default:
		// double check: no non-king move can resolve both checks at once
		s.checkMask = bitboard.Empty
	}
}

// calculatePinMask finds absolutely pinned pieces via the x-ray trick:
// cast a slider ray from the king through a blocker set that only
// includes enemy pieces (own pieces are transparent), and see which
// enemy sliders it reaches. If exactly one own piece sits on the ray to
// such a slider, that piece is pinned and may only move within the ray.
func (s *state) calculatePinMask() {
	king := s.pos.Board.King(s.us)
	xrayBlockers := s.occ &^ s.ownOcc

	s.applyPins(attacks.Rook(king, xrayBlockers)&(s.pos.Board.Rooks(s.them)|s.pos.Board.Queens(s.them)), king)
	s.applyPins(attacks.Bishop(king, xrayBlockers)&(s.pos.Board.Bishops(s.them)|s.pos.Board.Queens(s.them)), king)
}

func (s *state) applyPins(pinners bitboard.Board, king square.Square) {
	for pinners != bitboard.Empty {
		pinner := pinners.Pop()
		ray := attacks.Between[king][pinner]
		blockers := ray & s.ownOcc
		if blockers.Count() == 1 {
			s.pinMask[blockers.FirstOne()] = ray
		}
	}
}
