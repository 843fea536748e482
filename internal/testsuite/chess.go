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

// Package testsuite cross-checks this module's move generator and FEN
// handling against an independent reference implementation
// (github.com/notnil/chess), supplementing the exact perft node counts
// in internal/perft with a second, differently-written oracle.
package testsuite

import (
	"fmt"
	"io"

	"github.com/notnil/chess"

	"laptudirm.com/x/gochess/internal/movegen"
	"laptudirm.com/x/gochess/internal/position"
)

// LegalMoveCounts reports the number of legal root moves this module's
// generator and notnil/chess each find for the given FEN. A mismatch
// means one of the two generators disagrees about the rules, which is
// worth knowing about even though neither oracle is infallible on its
// own.
func LegalMoveCounts(fen string) (ours, reference int, err error) {
	pos, err := position.NewFromFEN(fen)
	if err != nil {
		return 0, 0, fmt.Errorf("testsuite: %w", err)
	}
	list := movegen.Generate(&pos)
	ours = list.Len()

	opt, err := chess.FEN(fen)
	if err != nil {
		return ours, 0, fmt.Errorf("testsuite: reference FEN rejected: %w", err)
	}
	game := chess.NewGame(opt)
	reference = len(game.ValidMoves())

	return ours, reference, nil
}

// FENRoundTrips parses fen, serializes it again with this module's FEN
// writer, and returns an error unless notnil/chess accepts the result.
// It checks FEN syntax only; the two parsed positions are not compared.
func FENRoundTrips(fen string) error {
	pos, err := position.NewFromFEN(fen)
	if err != nil {
		return fmt.Errorf("testsuite: %w", err)
	}

	roundTripped := pos.FEN()
	if _, err := chess.FEN(roundTripped); err != nil {
		return fmt.Errorf("testsuite: reference rejected round-tripped FEN %q: %w", roundTripped, err)
	}
	return nil
}

// ReplayPGN decodes a PGN game with notnil/chess and replays every ply
// of it through this module's own Position/MakeMove/move-generator
// machinery, asserting at each ply that the move notnil/chess played is
// present in this module's legal move list. This supplements the exact
// perft node counts with a second oracle driven off real game data
// instead of synthetic FENs.
// It returns the number of plies replayed and the final position.
func ReplayPGN(r io.Reader) (plies int, final position.Position, err error) {
	pgn, err := chess.PGN(r)
	if err != nil {
		return 0, position.Position{}, fmt.Errorf("testsuite: bad pgn: %w", err)
	}
	game := chess.NewGame(pgn)

	pos, err := position.NewFromFEN(position.StartFEN)
	if err != nil {
		return 0, position.Position{}, fmt.Errorf("testsuite: %w", err)
	}

	for _, m := range game.Moves() {
		lan := m.String()

		legal := movegen.Generate(&pos)
		found := false
		for i := 0; i < legal.Len(); i++ {
			if legal.At(i).String() == lan {
				found = true
				break
			}
		}
		if !found {
			return plies, pos, fmt.Errorf("testsuite: ply %d: reference move %s not found among our legal moves", plies+1, lan)
		}

		mv, err := pos.NewMoveFromString(lan)
		if err != nil {
			return plies, pos, fmt.Errorf("testsuite: ply %d: %w", plies+1, err)
		}

		pos = pos.MakeMove(mv)
		plies++
	}

	return plies, pos, nil
}
