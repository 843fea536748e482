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
	"strconv"
	"strings"

	"laptudirm.com/x/gochess/internal/castling"
	"laptudirm.com/x/gochess/internal/piece"
	"laptudirm.com/x/gochess/internal/square"
	"laptudirm.com/x/gochess/internal/zobrist"
)

// StartFEN is the FEN of the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewFromFEN parses a Forsyth-Edwards Notation string into a Position.
func NewFromFEN(fen string) (Position, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return Position{}, &ParseError{Kind: ErrBadFieldCount, Input: fen}
	}

	var p Position

	if err := p.parsePlacement(fields[0]); err != nil {
		return Position{}, err
	}

	color, err := piece.ColorFrom(fields[1])
	if err != nil {
		return Position{}, &ParseError{Kind: ErrBadColor, Input: fields[1], Cause: err}
	}
	p.SideToMove = color

	rights, err := castling.NewFromString(fields[2])
	if err != nil {
		return Position{}, &ParseError{Kind: ErrBadCastling, Input: fields[2], Cause: err}
	}
	p.Castling = rights

	ep, err := square.NewFromString(fields[3])
	if err != nil {
		return Position{}, &ParseError{Kind: ErrBadEnPassant, Input: fields[3], Cause: err}
	}
	p.EnPassant = ep

	half, err := strconv.Atoi(fields[4])
	if err != nil {
		return Position{}, &ParseError{Kind: ErrBadCounter, Input: fields[4], Cause: err}
	}
	p.HalfmoveClock = half

	full, err := strconv.Atoi(fields[5])
	if err != nil {
		return Position{}, &ParseError{Kind: ErrBadCounter, Input: fields[5], Cause: err}
	}
	p.FullMoveNumber = full

	p.Hash = p.computeHash()
	return p, nil
}

func (p *Position) parsePlacement(field string) error {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return &ParseError{Kind: ErrBadPlacement, Input: field}
	}

	for i, rankStr := range ranks {
		r := square.Rank8 - square.Rank(i)
		f := square.FileA
		for _, c := range rankStr {
			if c >= '1' && c <= '8' {
				f += square.File(c - '0')
				continue
			}
			if f > square.FileH {
				return &ParseError{Kind: ErrBadPlacement, Input: field}
			}
			pc, err := piece.NewFromString(string(c))
			if err != nil {
				return &ParseError{Kind: ErrBadPlacement, Input: field, Cause: err}
			}
			p.Board.Put(pc, square.New(f, r))
			f++
		}
		if f != square.FileN {
			return &ParseError{Kind: ErrBadPlacement, Input: field}
		}
	}
	return nil
}

// computeHash recomputes the Zobrist key from scratch; used only at FEN
// parse time, since MakeMove maintains it incrementally from then on.
func (p *Position) computeHash() zobrist.Key {
	var h zobrist.Key
	for s := square.Square(0); s < square.N; s++ {
		if pc := p.Board.mailbox[s]; pc != piece.NoPiece {
			h ^= zobrist.PieceSquare[pc][s]
		}
	}
	h ^= zobrist.Castling[p.Castling]
	if p.EnPassant != square.None {
		h ^= zobrist.EnPassant[p.EnPassant.File()]
	}
	if p.SideToMove == piece.Black {
		h ^= zobrist.SideToMove
	}
	return h
}

// FEN serializes the position back to Forsyth-Edwards Notation.
func (p *Position) FEN() string {
	var s strings.Builder

	for r := square.Rank8; ; r-- {
		empty := 0
		for f := square.FileA; f <= square.FileH; f++ {
			pc := p.Board.mailbox[square.New(f, r)]
			if pc == piece.NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				s.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			s.WriteString(pc.String())
		}
		if empty > 0 {
			s.WriteString(strconv.Itoa(empty))
		}
		if r == square.Rank1 {
			break
		}
		s.WriteByte('/')
	}

	s.WriteByte(' ')
	s.WriteString(p.SideToMove.String())
	s.WriteByte(' ')
	s.WriteString(p.Castling.String())
	s.WriteByte(' ')
	s.WriteString(p.EnPassant.String())
	s.WriteByte(' ')
	s.WriteString(strconv.Itoa(p.HalfmoveClock))
	s.WriteByte(' ')
	s.WriteString(strconv.Itoa(p.FullMoveNumber))

	return s.String()
}
