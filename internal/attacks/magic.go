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

// Package attacks provides precomputed attack bitboards for every
// piece type, built once at process start.
//
// Sliding-piece (rook/bishop/queen) attacks are the performance-
// critical path. A hardware PEXT instruction would index them most
// directly, but Go exposes no portable PEXT intrinsic, so the classical
// magic-bitboard multiplication hash stands in: Rook(sq, occ) and
// Bishop(sq, occ) return the slider's attack set for a given blocker
// set either way.
package attacks

import (
	"laptudirm.com/x/gochess/internal/bitboard"
	"laptudirm.com/x/gochess/internal/square"
)

// magicSeeds are PRNG seeds, one per rank, chosen (as in many engines
// descended from the Stockfish lineage) to make a valid magic number
// for every square of that rank turn up quickly.
var magicSeeds = [8]uint64{255, 16645, 15100, 12281, 32803, 55013, 10316, 728}

// slidingRayFunc computes the attack set of a slider on square s given a
// blocker set. When trimEdges is true it must stop one square short of
// the board edge along rays that run off the board (used to build the
// "relevant occupancy" mask, which excludes edge squares because a piece
// sitting there never changes whether the ray escapes the board).
type slidingRayFunc func(s square.Square, blockers bitboard.Board, trimEdges bool) bitboard.Board

// magicEntry is the per-square data needed to hash a blocker subset into
// a dense attack-table index.
type magicEntry struct {
	number      uint64
	blockerMask bitboard.Board
	shift       uint
	offset      int
}

func (m *magicEntry) index(blockers bitboard.Board) uint64 {
	blockers &= m.blockerMask
	return (uint64(blockers) * m.number) >> m.shift
}

// magicTable is a flat magic hash table for one slider type: each
// square's entries live at a fixed offset into one global attacks
// array.
type magicTable struct {
	magics  [square.N]magicEntry
	attacks []bitboard.Board
}

func (t *magicTable) probe(s square.Square, blockers bitboard.Board) bitboard.Board {
	m := &t.magics[s]
	return t.attacks[m.offset+int(m.index(blockers))]
}

// buildMagicTable generates magic numbers and the attack table for
// every square by brute-force trial. This only runs once at package
// init.
func buildMagicTable(moveFunc slidingRayFunc, sizeHint int) *magicTable {
	t := &magicTable{attacks: make([]bitboard.Board, 0, sizeHint)}

	var rng prngXorshift

	for s := square.Square(0); s < square.N; s++ {
		m := &t.magics[s]
		m.blockerMask = moveFunc(s, bitboard.Empty, true)
		bitCount := m.blockerMask.Count()
		m.shift = 64 - uint(bitCount)

		permutationsN := 1 << bitCount
		permutations := make([]bitboard.Board, permutationsN)
		attacksOf := make([]bitboard.Board, permutationsN)

		blockers := bitboard.Empty
		for i := 0; blockers != bitboard.Empty || i == 0; i++ {
			permutations[i] = blockers
			attacksOf[i] = moveFunc(s, blockers, false)
			// Carry-Rippler trick: enumerate every subset of blockerMask.
			blockers = (blockers - m.blockerMask) & m.blockerMask
		}

		offset := len(t.attacks)
		table := make([]bitboard.Board, permutationsN)

		rng.seed(magicSeeds[s.Rank()])

	searchMagic:
		for {
			for i := range table {
				table[i] = bitboard.Empty
			}

			m.number = rng.sparseUint64()

			for i := 0; i < permutationsN; i++ {
				idx := m.index(permutations[i])
				if table[idx] != bitboard.Empty && table[idx] != attacksOf[i] {
					continue searchMagic
				}
				table[idx] = attacksOf[i]
			}
			break
		}

		m.offset = offset
		t.attacks = append(t.attacks, table...)
	}

	return t
}

// prngXorshift is the xorshift64star generator, the same construction
// internal/zobrist uses for its key tables.
type prngXorshift struct {
	state uint64
}

func (p *prngXorshift) seed(s uint64) {
	p.state = s
}

func (p *prngXorshift) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 2685821657736338717
}

// sparseUint64 returns a random number with relatively few set bits,
// which empirically yields valid magic numbers faster than a uniform
// random 64-bit value.
func (p *prngXorshift) sparseUint64() uint64 {
	return p.next() & p.next() & p.next()
}
