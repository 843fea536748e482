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

package position

import (
	"laptudirm.com/x/gochess/internal/castling"
	"laptudirm.com/x/gochess/internal/move"
	"laptudirm.com/x/gochess/internal/piece"
	"laptudirm.com/x/gochess/internal/square"
	"laptudirm.com/x/gochess/internal/zobrist"
)

// MakeMove returns the position resulting from playing m, as a new
// value; p itself is unmodified. This is the copy-on-make style search
// uses: Position is small enough that copying it per ply is cheaper
// than maintaining a make/unmake undo stack, and it frees the search
// tree from ever having to restore state on a cutoff.
func (p Position) MakeMove(m move.Move) Position {
	p.doMove(m)
	return p
}

// Make applies m to p in place and returns an Undo that Unmake can use
// to reverse it. This is the make/unmake convention the perft driver
// uses instead of MakeMove, since a plain depth-first leaf count walk
// never needs to keep sibling positions alive simultaneously and
// mutate-then-restore is the cheaper option there.
func (p *Position) Make(m move.Move) Undo {
	return p.doMove(m)
}

// Unmake reverses a move previously applied with Make, given the Undo
// it returned.
func (p *Position) Unmake(m move.Move, u Undo) {
	p.undoMove(m, u)
}

func (p *Position) clearXOR(pc piece.Piece, s square.Square) {
	if pc == piece.NoPiece {
		return
	}
	p.Hash ^= zobrist.PieceSquare[pc][s]
	p.Board.Clear(s)
}

func (p *Position) putXOR(pc piece.Piece, s square.Square) {
	if pc == piece.NoPiece {
		return
	}
	p.Board.Put(pc, s)
	p.Hash ^= zobrist.PieceSquare[pc][s]
}

// doMove mutates p to reflect m being played and returns the Undo
// needed to reverse it: capture removal, piece relocation, en-passant
// bookkeeping, castling-rights revocation, the side-to-move flip, and
// the halfmove clock and repetition history, in that order, with the
// incremental Zobrist XORs applied alongside each step.
func (p *Position) doMove(m move.Move) Undo {
	us := p.SideToMove
	them := us.Other()

	u := Undo{
		Castling:      p.Castling,
		EnPassant:     p.EnPassant,
		HalfmoveClock: p.HalfmoveClock,
		Hash:          p.Hash,
		History:       p.History,
		Capture:       piece.NoRole,
		CaptureSquare: square.None,
	}

	if p.EnPassant != square.None {
		p.Hash ^= zobrist.EnPassant[p.EnPassant.File()]
	}
	newEP := square.None

	switch m.Kind {
	case move.Standard:
		if m.IsCapture() {
			u.Capture = m.Capture
			u.CaptureSquare = m.To
			p.clearXOR(piece.New(m.Capture, them), m.To)
		}
		p.clearXOR(piece.New(m.Role, us), m.From)
		destRole := m.Role
		if m.IsPromotion() {
			destRole = m.Promotion
		}
		p.putXOR(piece.New(destRole, us), m.To)
		if m.DoublePushEP != square.None {
			newEP = m.DoublePushEP
		}

	case move.EnPassant:
		u.Capture = piece.Pawn
		u.CaptureSquare = m.EPCaptureSquare
		p.clearXOR(piece.New(piece.Pawn, them), m.EPCaptureSquare)
		p.clearXOR(piece.New(piece.Pawn, us), m.From)
		p.putXOR(piece.New(piece.Pawn, us), m.To)

	case move.CastleShort, move.CastleLong:
		p.clearXOR(piece.New(piece.King, us), m.From)
		p.putXOR(piece.New(piece.King, us), m.To)
		rm := castling.RookMoves[m.To]
		p.clearXOR(rm.Rook, rm.From)
		p.putXOR(rm.Rook, rm.To)
	}

	if newEP != square.None {
		p.Hash ^= zobrist.EnPassant[newEP.File()]
	}
	p.EnPassant = newEP

	newRights := p.Castling &^ (castling.RightsLostFrom[m.From] | castling.RightsLostFrom[m.To])
	p.Hash ^= zobrist.Castling[p.Castling]
	p.Hash ^= zobrist.Castling[newRights]
	p.Castling = newRights

	p.Hash ^= zobrist.SideToMove
	p.SideToMove = them
	if us == piece.Black {
		p.FullMoveNumber++
	}

	if m.IsReversible() {
		p.HalfmoveClock++
		h := make([]zobrist.Key, len(p.History)+1)
		copy(h, p.History)
		h[len(p.History)] = p.Hash
		p.History = h
	} else {
		p.HalfmoveClock = 0
		p.History = nil
	}

	return u
}

// undoMove reverses doMove using the Undo it produced. Rather than
// re-derive the Zobrist key incrementally again, it is simply restored
// from the snapshot in u: doMove never mutates a History backing array
// in place (it always allocates fresh on append), so u.History still
// points at a valid, untouched slice.
func (p *Position) undoMove(m move.Move, u Undo) {
	them := p.SideToMove
	us := them.Other()

	switch m.Kind {
	case move.Standard:
		p.Board.Clear(m.To)
		if m.IsCapture() {
			p.Board.Put(piece.New(m.Capture, them), m.To)
		}
		p.Board.Put(piece.New(m.Role, us), m.From)

	case move.EnPassant:
		p.Board.Clear(m.To)
		p.Board.Put(piece.New(piece.Pawn, them), m.EPCaptureSquare)
		p.Board.Put(piece.New(piece.Pawn, us), m.From)

	case move.CastleShort, move.CastleLong:
		rm := castling.RookMoves[m.To]
		p.Board.Clear(m.To)
		p.Board.Clear(rm.To)
		p.Board.Put(piece.New(piece.King, us), m.From)
		p.Board.Put(rm.Rook, rm.From)
	}

	p.SideToMove = us
	p.Castling = u.Castling
	p.EnPassant = u.EnPassant
	p.HalfmoveClock = u.HalfmoveClock
	p.Hash = u.Hash
	p.History = u.History
	if us == piece.Black {
		p.FullMoveNumber--
	}
}

// MakeNull returns the position with the side to move flipped and the
// en-passant target cleared. Nothing in this module calls it (the search
// does no null-move pruning). No piece moves, so castling rights and the halfmove clock are untouched
// other than the clock ticking forward like any other non-capture,
// non-pawn move.
func (p Position) MakeNull() Position {
	if p.EnPassant != square.None {
		p.Hash ^= zobrist.EnPassant[p.EnPassant.File()]
		p.EnPassant = square.None
	}
	p.Hash ^= zobrist.SideToMove
	us := p.SideToMove
	p.SideToMove = us.Other()
	p.HalfmoveClock++
	if us == piece.Black {
		p.FullMoveNumber++
	}
	p.History = nil
	return p
}
