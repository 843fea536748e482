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
	"laptudirm.com/x/gochess/internal/move"
	"laptudirm.com/x/gochess/internal/piece"
	"laptudirm.com/x/gochess/internal/square"
)

// NewMoveFromString parses a move given in the long algebraic notation
// UCI uses on its "position ... moves ..." line (e.g. "e2e4", "e7e8q",
// "e1g1") into a tagged Move, using the receiver's board state to
// disambiguate which of the four Move variants the squares describe.
// It does not itself check legality; the caller (normally the UCI
// front-end matching the string against the legal move list) is
// expected to do that.
func (p *Position) NewMoveFromString(s string) (move.Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return move.Move{}, &ParseError{Kind: ErrBadMove, Input: s}
	}

	from, err := square.NewFromString(s[0:2])
	if err != nil || from == square.None {
		return move.Move{}, &ParseError{Kind: ErrBadMove, Input: s, Cause: err}
	}
	to, err := square.NewFromString(s[2:4])
	if err != nil || to == square.None {
		return move.Move{}, &ParseError{Kind: ErrBadMove, Input: s, Cause: err}
	}

	role := p.Board.RoleOn(from)
	if role == piece.NoRole {
		return move.Move{}, &ParseError{Kind: ErrBadMove, Input: s}
	}

	if role == piece.King {
		if from == square.E1 && (to == square.G1 || to == square.C1) {
			kind := move.CastleShort
			if to == square.C1 {
				kind = move.CastleLong
			}
			return move.NewCastle(kind, from, to), nil
		}
		if from == square.E8 && (to == square.G8 || to == square.C8) {
			kind := move.CastleShort
			if to == square.C8 {
				kind = move.CastleLong
			}
			return move.NewCastle(kind, from, to), nil
		}
	}

	if role == piece.Pawn && to == p.EnPassant && p.EnPassant != square.None {
		target := square.New(to.File(), from.Rank())
		return move.NewEnPassant(from, to, target), nil
	}

	capture := p.Board.RoleOn(to)

	promotion := piece.NoRole
	if len(s) == 5 {
		promotion, err = piece.RoleFrom(s[4])
		if err != nil {
			return move.Move{}, &ParseError{Kind: ErrBadMove, Input: s, Cause: err}
		}
	}

	ep := square.None
	if role == piece.Pawn {
		delta := int(to) - int(from)
		if delta == 16 || delta == -16 {
			ep = square.New(from.File(), (from.Rank()+to.Rank())/2)
		}
	}

	return move.NewStandard(from, to, role, capture, promotion, ep), nil
}
