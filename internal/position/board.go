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

// Package position implements the chess board representation, the full
// game-state Position built on top of it, FEN I/O, and the incremental
// Zobrist hash.
package position

import (
	"fmt"

	"laptudirm.com/x/gochess/internal/attacks"
	"laptudirm.com/x/gochess/internal/bitboard"
	"laptudirm.com/x/gochess/internal/piece"
	"laptudirm.com/x/gochess/internal/square"
)

// Board is the piece-placement part of a position: six role bitboards,
// two color bitboards, and a mailbox for O(1) piece queries; occupancy
// is computed from the color bitboards on demand. It maintains the
// invariants:
//
//   - the six role bitboards are pairwise disjoint
//   - the two color bitboards are disjoint
//   - occupied == white|black == union of role bitboards
//   - each color has exactly one king
//   - no pawns on ranks 1 or 8
//
// Board is a plain value type: copying a Board copies the whole
// placement, which is exactly what search wants.
type Board struct {
	roles  [piece.RoleN]bitboard.Board
	colors [piece.ColorN]bitboard.Board

	mailbox [square.N]piece.Piece

	kings [piece.ColorN]square.Square
}

// Occupied returns the union of every occupied square.
func (b *Board) Occupied() bitboard.Board {
	return b.colors[piece.White] | b.colors[piece.Black]
}

// Occupancy returns every square occupied by a piece of the given color.
func (b *Board) Occupancy(c piece.Color) bitboard.Board {
	return b.colors[c]
}

// RoleOn returns the role of the piece on s, or piece.NoRole if empty.
func (b *Board) RoleOn(s square.Square) piece.Role {
	return b.mailbox[s].Role()
}

// ColorOn returns the color of the piece on s. The result is meaningless
// if the square is empty; check RoleOn first.
func (b *Board) ColorOn(s square.Square) piece.Color {
	return b.mailbox[s].Color()
}

// PieceOn returns the piece occupying s, or piece.NoPiece.
//
// If the mailbox and the bitboards disagree about a square, the Board
// has reached a state that cannot arise from legal play, and
// continuing would silently corrupt search results, so it panics
// rather than return a plausible-looking wrong answer.
func (b *Board) PieceOn(s square.Square) piece.Piece {
	p := b.mailbox[s]
	inWhite := b.colors[piece.White].IsSet(s)
	inBlack := b.colors[piece.Black].IsSet(s)

	switch {
	case p == piece.NoPiece && !inWhite && !inBlack:
		return piece.NoPiece
	case p != piece.NoPiece && b.roles[p.Role()].IsSet(s) && (inWhite || inBlack):
		return p
	default:
		panic(fmt.Sprintf("position: board corrupt at %s: mailbox=%s white=%v black=%v", s, p, inWhite, inBlack))
	}
}

// King returns the square of the given color's king.
func (b *Board) King(c piece.Color) square.Square {
	return b.kings[c]
}

func (b *Board) byRole(c piece.Color, r piece.Role) bitboard.Board {
	return b.roles[r] & b.colors[c]
}

func (b *Board) Pawns(c piece.Color) bitboard.Board   { return b.byRole(c, piece.Pawn) }
func (b *Board) Knights(c piece.Color) bitboard.Board { return b.byRole(c, piece.Knight) }
func (b *Board) Bishops(c piece.Color) bitboard.Board { return b.byRole(c, piece.Bishop) }
func (b *Board) Rooks(c piece.Color) bitboard.Board   { return b.byRole(c, piece.Rook) }
func (b *Board) Queens(c piece.Color) bitboard.Board  { return b.byRole(c, piece.Queen) }
func (b *Board) Kings(c piece.Color) bitboard.Board   { return b.byRole(c, piece.King) }

// Clear removes whatever piece (if any) occupies s.
func (b *Board) Clear(s square.Square) {
	p := b.mailbox[s]
	if p == piece.NoPiece {
		return
	}
	b.colors[p.Color()].Unset(s)
	b.roles[p.Role()].Unset(s)
	b.mailbox[s] = piece.NoPiece
}

// Put places p on s, first clearing whatever was there.
func (b *Board) Put(p piece.Piece, s square.Square) {
	b.Clear(s)
	if p == piece.NoPiece {
		return
	}
	b.colors[p.Color()].Set(s)
	b.roles[p.Role()].Set(s)
	b.mailbox[s] = p
	if p.Role() == piece.King {
		b.kings[p.Color()] = s
	}
}

// IsAttacked reports whether `s` is attacked by a piece of color `by`.
// Slider queries use the full occupancy; see AttackedSquares for the
// king-safety variant used when computing the squares a king cannot
// retreat to.
func (b *Board) IsAttacked(s square.Square, by piece.Color) bool {
	occ := b.Occupied()
	return b.isAttacked(s, by, occ)
}

func (b *Board) isAttacked(s square.Square, by piece.Color, occ bitboard.Board) bool {
	if attacks.Pawn[by.Other()][s]&b.Pawns(by) != bitboard.Empty {
		return true
	}
	if attacks.Knight[s]&b.Knights(by) != bitboard.Empty {
		return true
	}
	if attacks.King[s]&b.Kings(by) != bitboard.Empty {
		return true
	}

	queens := b.Queens(by)
	if attacks.Bishop(s, occ)&(b.Bishops(by)|queens) != bitboard.Empty {
		return true
	}
	return attacks.Rook(s, occ)&(b.Rooks(by)|queens) != bitboard.Empty
}

// AttackedSquares returns the union of every square attacked by a piece
// of the given color. Slider rays are cast
// through an occupancy with the OTHER color's king removed, so that a
// checked king cannot "hide" behind its own square when computing where
// it may legally retreat to.
func (b *Board) AttackedSquares(by piece.Color) bitboard.Board {
	occ := b.Occupied() &^ b.Kings(by.Other())

	var seen bitboard.Board
	seen |= attacks.PawnsLeft(b.Pawns(by), by) | attacks.PawnsRight(b.Pawns(by), by)

	for knights := b.Knights(by); knights != bitboard.Empty; {
		seen |= attacks.Knight[knights.Pop()]
	}
	for bishops := b.Bishops(by); bishops != bitboard.Empty; {
		seen |= attacks.Bishop(bishops.Pop(), occ)
	}
	for rooks := b.Rooks(by); rooks != bitboard.Empty; {
		seen |= attacks.Rook(rooks.Pop(), occ)
	}
	for queens := b.Queens(by); queens != bitboard.Empty; {
		seen |= attacks.Queen(queens.Pop(), occ)
	}
	seen |= attacks.King[b.King(by)]

	return seen
}
