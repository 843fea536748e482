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

package movegen

import (
	"laptudirm.com/x/gochess/internal/attacks"
	"laptudirm.com/x/gochess/internal/bitboard"
	"laptudirm.com/x/gochess/internal/castling"
	"laptudirm.com/x/gochess/internal/move"
	"laptudirm.com/x/gochess/internal/piece"
	"laptudirm.com/x/gochess/internal/position"
	"laptudirm.com/x/gochess/internal/square"
)

// Generate returns every legal move in pos. Every entry is guaranteed
// playable as-is; there is no pseudo-legal-plus-filter pass.
func Generate(pos *position.Position) move.List {
	s := newState(pos)

	var list move.List
	s.generateKnightMoves(&list)
	s.generateKingMoves(&list)
	if s.checkMask != bitboard.Empty { // double check allows only king moves
		s.generateRookMoves(&list)
		s.generateBishopMoves(&list)
		s.generateQueenMoves(&list)
		s.generatePawnMoves(&list)
	}
	s.generateCastlingMoves(&list)
	return list
}

// GenerateCaptures returns every legal capturing or promoting move,
// used by quiescence search to narrow the tree to "loud" moves.
func GenerateCaptures(pos *position.Position) move.List {
	all := Generate(pos)
	var list move.List
	for i := 0; i < all.Len(); i++ {
		m := all.At(i)
		if m.IsCapture() || m.IsPromotion() {
			list.Append(m)
		}
	}
	return list
}

// IsCheckmate reports whether the side to move has been checkmated:
// no legal moves while in check.
func IsCheckmate(pos *position.Position) bool {
	list := Generate(pos)
	return list.Len() == 0 && pos.InCheck()
}

// IsStalemate reports whether the side to move has been stalemated:
// no legal moves while not in check.
func IsStalemate(pos *position.Position) bool {
	list := Generate(pos)
	return list.Len() == 0 && !pos.InCheck()
}

func (s *state) generateKingMoves(list *move.List) {
	king := s.pos.Board.King(s.us)
	targets := attacks.King[king] &^ s.ownOcc &^ s.seen

	for targets != bitboard.Empty {
		to := targets.Pop()
		list.Append(s.standardMove(king, to, piece.King))
	}
}

func (s *state) generateCastlingMoves(list *move.List) {
	if s.checkMask != bitboard.Universe {
		return // cannot castle out of check
	}

	king := s.pos.Board.King(s.us)
	rights := s.pos.Castling
	switch s.us {
	case piece.White:
		if rights&castling.WhiteKingside != 0 &&
			s.occ&castling.PathEmptyWhiteK == bitboard.Empty &&
			s.seen&castling.PathSafeWhiteK == bitboard.Empty {
			list.Append(move.NewCastle(move.CastleShort, king, square.G1))
		}
		if rights&castling.WhiteQueenside != 0 &&
			s.occ&castling.PathEmptyWhiteQ == bitboard.Empty &&
			s.seen&castling.PathSafeWhiteQ == bitboard.Empty {
			list.Append(move.NewCastle(move.CastleLong, king, square.C1))
		}
	case piece.Black:
		if rights&castling.BlackKingside != 0 &&
			s.occ&castling.PathEmptyBlackK == bitboard.Empty &&
			s.seen&castling.PathSafeBlackK == bitboard.Empty {
			list.Append(move.NewCastle(move.CastleShort, king, square.G8))
		}
		if rights&castling.BlackQueenside != 0 &&
			s.occ&castling.PathEmptyBlackQ == bitboard.Empty &&
			s.seen&castling.PathSafeBlackQ == bitboard.Empty {
			list.Append(move.NewCastle(move.CastleLong, king, square.C8))
		}
	}
}

func (s *state) generateKnightMoves(list *move.List) {
	knights := s.pos.Board.Knights(s.us)
	for knights != bitboard.Empty {
		from := knights.Pop()
		targets := attacks.Knight[from] &^ s.ownOcc & s.checkMask & s.pinMask[from]
		for targets != bitboard.Empty {
			list.Append(s.standardMove(from, targets.Pop(), piece.Knight))
		}
	}
}

func (s *state) generateBishopMoves(list *move.List) {
	s.generateSliderMoves(list, s.pos.Board.Bishops(s.us), piece.Bishop, attacks.Bishop)
}

func (s *state) generateRookMoves(list *move.List) {
	s.generateSliderMoves(list, s.pos.Board.Rooks(s.us), piece.Rook, attacks.Rook)
}

func (s *state) generateQueenMoves(list *move.List) {
	s.generateSliderMoves(list, s.pos.Board.Queens(s.us), piece.Queen, attacks.Queen)
}

func (s *state) generateSliderMoves(list *move.List, pieces bitboard.Board, role piece.Role, rays func(square.Square, bitboard.Board) bitboard.Board) {
	for pieces != bitboard.Empty {
		from := pieces.Pop()
		targets := rays(from, s.occ) &^ s.ownOcc & s.checkMask & s.pinMask[from]
		for targets != bitboard.Empty {
			list.Append(s.standardMove(from, targets.Pop(), role))
		}
	}
}

func (s *state) standardMove(from, to square.Square, role piece.Role) move.Move {
	capture := s.pos.Board.RoleOn(to)
	return move.NewStandard(from, to, role, capture, piece.NoRole, square.None)
}

var promotionRoles = [4]piece.Role{piece.Queen, piece.Rook, piece.Bishop, piece.Knight}

func (s *state) generatePawnMoves(list *move.List) {
	pawns := s.pos.Board.Pawns(s.us)
	promoRank := square.Rank8
	startRank := square.Rank2
	if s.us == piece.Black {
		promoRank = square.Rank1
		startRank = square.Rank7
	}

	for pawns != bitboard.Empty {
		from := pawns.Pop()
		allowed := s.checkMask & s.pinMask[from]

		s.pawnPushes(list, from, allowed, promoRank, startRank)
		s.pawnCaptures(list, from, allowed, promoRank)
		s.pawnEnPassant(list, from, allowed)
	}
}

func (s *state) pawnPushes(list *move.List, from square.Square, allowed bitboard.Board, promoRank, startRank square.Rank) {
	to := pushOne(from, s.us)
	if to == square.None || s.occ.IsSet(to) {
		return
	}
	if allowed.IsSet(to) {
		appendPawnMove(list, from, to, piece.NoRole, promoRank)
	}
	if from.Rank() != startRank {
		return
	}
	to2 := pushOne(to, s.us)
	if to2 == square.None || s.occ.IsSet(to2) {
		return
	}
	if allowed.IsSet(to2) {
		list.Append(move.NewStandard(from, to2, piece.Pawn, piece.NoRole, piece.NoRole, to))
	}
}

func (s *state) pawnCaptures(list *move.List, from square.Square, allowed bitboard.Board, promoRank square.Rank) {
	targets := attacks.Pawn[s.us][from] & s.pos.Board.Occupancy(s.them) & allowed
	for targets != bitboard.Empty {
		to := targets.Pop()
		capture := s.pos.Board.RoleOn(to)
		appendPawnMove(list, from, to, capture, promoRank)
	}
}

func appendPawnMove(list *move.List, from, to square.Square, capture piece.Role, promoRank square.Rank) {
	if to.Rank() == promoRank {
		for _, promo := range promotionRoles {
			list.Append(move.NewStandard(from, to, piece.Pawn, capture, promo, square.None))
		}
		return
	}
	list.Append(move.NewStandard(from, to, piece.Pawn, capture, piece.NoRole, square.None))
}

func (s *state) pawnEnPassant(list *move.List, from square.Square, allowed bitboard.Board) {
	ep := s.pos.EnPassant
	if ep == square.None {
		return
	}
	if attacks.Pawn[s.us][from]&bitboard.Squares[ep] == bitboard.Empty {
		return
	}

	captured := square.New(ep.File(), from.Rank())

	// the move must resolve any existing check, either by capturing the
	// checker or landing on a blocking square
	if !allowed.IsSet(ep) && !allowed.IsSet(captured) {
		return
	}

	if !s.enPassantSafe(from, captured, ep) {
		return
	}

	list.Append(move.NewEnPassant(from, ep, captured))
}

// enPassantSafe guards against the one case the per-square pin mask
// can't catch: two pawns side by side on the king's rank, where the
// capture vacates both simultaneously and exposes the king to a rook or
// queen down that rank. Normal pin detection only ever removes one
// piece at a time, so this is checked separately by actually trying the
// removal and re-probing for a rook/queen attack.
func (s *state) enPassantSafe(from, captured, to square.Square) bool {
	king := s.pos.Board.King(s.us)
	occAfter := s.occ &^ bitboard.Squares[from] &^ bitboard.Squares[captured]
	occAfter.Set(to)
	attackers := attacks.Rook(king, occAfter) & (s.pos.Board.Rooks(s.them) | s.pos.Board.Queens(s.them))
	return attackers == bitboard.Empty
}

func pushOne(s square.Square, c piece.Color) square.Square {
	r := s.Rank()
	if c == piece.White {
		if r == square.Rank8 {
			return square.None
		}
		return square.New(s.File(), r+1)
	}
	if r == square.Rank1 {
		return square.None
	}
	return square.New(s.File(), r-1)
}
