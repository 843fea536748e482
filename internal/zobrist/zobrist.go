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

// Package zobrist provides the 64-bit incremental position fingerprint
// keys used for transposition detection.
package zobrist

import (
	"laptudirm.com/x/gochess/internal/castling"
	"laptudirm.com/x/gochess/internal/piece"
	"laptudirm.com/x/gochess/internal/square"
)

// Key is a Zobrist hash value.
type Key uint64

// PieceSquare[p][s], EnPassant[file], Castling[rights], and SideToMove
// are the random keys XORed in and out as a Position changes. They are
// seeded from a deterministic PRNG at init time so that any given
// position's hash is a stable constant across runs and processes.
var (
	PieceSquare [piece.N][square.N]Key
	EnPassant   [square.FileN]Key
	Castling    [castling.N]Key
	SideToMove  Key
)

func init() {
	var rng prng
	rng.seed(1070372) // arbitrary fixed seed; only determinism matters

	for p := piece.Piece(0); p < piece.N; p++ {
		for s := square.Square(0); s < square.N; s++ {
			PieceSquare[p][s] = Key(rng.next())
		}
	}

	for f := square.FileA; f <= square.FileH; f++ {
		EnPassant[f] = Key(rng.next())
	}

	for r := castling.None; r <= castling.All; r++ {
		Castling[r] = Key(rng.next())
	}

	SideToMove = Key(rng.next())
}

// prng is the xorshift64star generator: a single 64-bit state, passes
// the standard empirical randomness test batteries, needs no warm-up.
// https://vigna.di.unimi.it/ftp/papers/xorshift.pdf
type prng struct {
	state uint64
}

func (p *prng) seed(s uint64) {
	p.state = s
}

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 2685821657736338717
}
