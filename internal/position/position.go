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
	"laptudirm.com/x/gochess/internal/piece"
	"laptudirm.com/x/gochess/internal/square"
	"laptudirm.com/x/gochess/internal/zobrist"
)

// Position is a Board plus everything else needed to know whether a
// move is legal and whether the game has ended: the side to move,
// castling rights, the en-passant target square, the 50-move counter,
// the full-move counter, and an incremental Zobrist hash.
//
// Position is a plain value: copying one copies the whole game state,
// which is what lets search explore a move by copying the Position
// instead of mutating-and-restoring it (see MakeMove). The perft driver
// instead uses Make/Unmake in place, which is faster when no branching
// over siblings is required; see internal/perft.
type Position struct {
	Board

	SideToMove     piece.Color
	EnPassant      square.Square
	Castling       castling.Rights
	HalfmoveClock  int
	FullMoveNumber int

	Hash zobrist.Key

	// History holds the post-move Zobrist hash of every position since
	// the last irreversible move (capture, pawn move, or loss of
	// castling/en-passant rights would also do it, but spec only
	// requires capture/pawn-move precision here), used for threefold
	// repetition detection. It is reset to nil across an irreversible
	// move since no earlier position can recur across one.
	History []zobrist.Key
}

// Undo captures everything doMove mutates besides the board itself, so
// that undoMove can restore it without recomputing anything.
type Undo struct {
	Castling      castling.Rights
	EnPassant     square.Square
	HalfmoveClock int
	Hash          zobrist.Key
	History       []zobrist.Key

	Capture       piece.Role
	CaptureSquare square.Square
}

// InCheck reports whether the side to move is in check.
func (p *Position) InCheck() bool {
	us := p.SideToMove
	return p.Board.IsAttacked(p.Board.King(us), us.Other())
}

// IsDraw reports whether the position is a draw by the 50-move rule or
// by threefold repetition, independent of whether there are any legal
// moves (the stalemate/checkmate determination is the move generator's
// job, since it alone knows whether the side to move has a legal move).
func (p *Position) IsDraw() bool {
	if p.HalfmoveClock >= 100 {
		return true
	}
	seen := 0
	for _, h := range p.History {
		if h == p.Hash {
			seen++
			if seen >= 3 {
				return true
			}
		}
	}
	return false
}

// Copy returns an independent copy of the position. Since Position
// holds no pointers except the History slice, and History is always
// replaced wholesale rather than mutated in place (see doMove), a plain
// value copy already gives full independence; Copy exists so call sites
// don't need to know that.
func (p Position) Copy() Position {
	return p
}
