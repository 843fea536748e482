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

// Package move declares the tagged Move variant used throughout move
// generation and search.
//
// Go has no sum types, so the four cases (Standard, EnPassant,
// CastleShort, CastleLong) share one flat struct discriminated by Kind;
// callers are expected to switch on Kind exhaustively rather than read
// fields that aren't meaningful for the current variant.
package move

import (
	"laptudirm.com/x/gochess/internal/piece"
	"laptudirm.com/x/gochess/internal/square"
)

// Kind discriminates which of the four Move variants a value holds.
type Kind uint8

const (
	// Standard is an ordinary move of a piece from one square to
	// another, possibly a capture and/or a promotion. Capture is
	// NoRole when the move isn't a capture, Promotion is NoRole unless
	// the move is a promotion, and DoublePushEP holds the new
	// en-passant target square for a two-square pawn advance (None
	// otherwise).
	Standard Kind = iota

	// EnPassant is a pawn capturing the en-passant target square;
	// the captured pawn sits on EPCaptureSquare, not on To.
	EnPassant

	// CastleShort and CastleLong are kingside/queenside castling.
	// From/To are the king's source/destination squares; the
	// accompanying rook relocation is derived from To via
	// castling.RookMoves.
	CastleShort
	CastleLong
)

// Move is a single chess move, tagged by Kind (see the package doc).
type Move struct {
	Kind Kind

	From, To square.Square
	Role     piece.Role // role of the piece being moved (King for castling)

	Capture   piece.Role // captured role, NoRole if not a capture
	Promotion piece.Role // promoted-to role, NoRole if not a promotion

	// DoublePushEP is set only on a Standard two-square pawn advance: it
	// is the square a following enemy pawn would land on if it captured
	// this pawn en passant.
	DoublePushEP square.Square

	// EPCaptureSquare is set only on an EnPassant move: the square of
	// the pawn being captured (different from To).
	EPCaptureSquare square.Square
}

// Null is the sentinel "no move" value, used for TT/PV slots that have
// not been populated.
var Null = Move{From: square.None, To: square.None, DoublePushEP: square.None, EPCaptureSquare: square.None}

// IsNull reports whether m is the Null sentinel.
func (m Move) IsNull() bool {
	return m.From == square.None && m.To == square.None
}

// NewStandard creates a Standard move. capture and promotion should be
// piece.NoRole when not applicable; ep should be square.None unless this
// is a two-square pawn advance.
func NewStandard(from, to square.Square, role, capture, promotion piece.Role, ep square.Square) Move {
	return Move{
		Kind:            Standard,
		From:            from,
		To:              to,
		Role:            role,
		Capture:         capture,
		Promotion:       promotion,
		DoublePushEP:    ep,
		EPCaptureSquare: square.None,
	}
}

// NewEnPassant creates an EnPassant move.
func NewEnPassant(from, to, target square.Square) Move {
	return Move{
		Kind:            EnPassant,
		From:            from,
		To:              to,
		Role:            piece.Pawn,
		Capture:         piece.Pawn,
		Promotion:       piece.NoRole,
		DoublePushEP:    square.None,
		EPCaptureSquare: target,
	}
}

// NewCastle creates a CastleShort or CastleLong move for the king moving
// from `from` to `to`.
func NewCastle(kind Kind, from, to square.Square) Move {
	return Move{
		Kind:            kind,
		From:            from,
		To:              to,
		Role:            piece.King,
		Capture:         piece.NoRole,
		Promotion:       piece.NoRole,
		DoublePushEP:    square.None,
		EPCaptureSquare: square.None,
	}
}

// IsCapture reports whether the move removes an enemy piece from the
// board (en-passant counts as a capture).
func (m Move) IsCapture() bool {
	return m.Capture != piece.NoRole
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Promotion != piece.NoRole
}

// IsQuiet reports whether the move is neither a capture nor a promotion.
func (m Move) IsQuiet() bool {
	return !m.IsCapture() && !m.IsPromotion()
}

// IsCastle reports whether the move is a kingside or queenside castle.
func (m Move) IsCastle() bool {
	return m.Kind == CastleShort || m.Kind == CastleLong
}

// IsReversible reports whether the move leaves the 50-move draw clock
// running instead of resetting it, i.e. is neither a capture nor a pawn
// move.
func (m Move) IsReversible() bool {
	return !m.IsCapture() && m.Role != piece.Pawn
}

// String renders the move in long algebraic notation: source square,
// target square, and (for promotions) the lowercase promoted role
// letter. The null move renders as "0000".
func (m Move) String() string {
	if m.IsNull() {
		return "0000"
	}
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += m.Promotion.String()
	}
	return s
}
