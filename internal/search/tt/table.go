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

// Package tt implements the shared transposition table: cached search
// results keyed by Zobrist hash, so a position reached by a different
// move order doesn't need to be re-searched from scratch. Slots are
// indexed by `hash & (size-1)`, so the table is always sized to a
// power of two entry count.
package tt

import (
	"math/bits"
	"sync"
	"unsafe"

	"laptudirm.com/x/gochess/internal/eval"
	"laptudirm.com/x/gochess/internal/move"
	"laptudirm.com/x/gochess/internal/zobrist"
)

// EntrySize is the size in bytes of one Entry, used to size a table to
// a megabyte budget.
var EntrySize = int(unsafe.Sizeof(Entry{}))

// Table is the shared transposition table, guarded by a mutex held
// only across a single slot access. The table is an optimization, not
// ground truth: every hit re-verifies the stored hash against the
// probing position, so an overwritten slot is a miss, never a wrong
// answer.
type Table struct {
	mu    sync.Mutex
	table []Entry
	mask  uint64
}

// NewTable creates a table sized from the given megabyte budget,
// rounded up to the next power of two entry count, so the table can be
// larger than the budget by less than a factor of two.
func NewTable(mbs int) *Table {
	want := (mbs * 1024 * 1024) / EntrySize
	size := nextPowerOfTwo(want)
	return &Table{
		table: make([]Entry, size),
		mask:  uint64(size - 1),
	}
}

func nextPowerOfTwo(n int) int {
	if n < 2 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// Clear empties every entry without changing the table's size.
func (tt *Table) Clear() {
	tt.mu.Lock()
	defer tt.mu.Unlock()
	clear(tt.table)
}

// Resize replaces the table with one sized to the new megabyte budget,
// discarding all entries.
func (tt *Table) Resize(mbs int) {
	tt.mu.Lock()
	defer tt.mu.Unlock()
	want := (mbs * 1024 * 1024) / EntrySize
	size := nextPowerOfTwo(want)
	tt.table = make([]Entry, size)
	tt.mask = uint64(size - 1)
}

// Store inserts entry, unconditionally overwriting whatever previously
// occupied its slot: one slot per bucket, always-replace.
func (tt *Table) Store(entry Entry) {
	tt.mu.Lock()
	defer tt.mu.Unlock()

	idx := uint64(entry.Hash) & tt.mask
	tt.table[idx] = entry
}

// Probe returns the entry stored for hash, and whether it is usable: it
// guards against an empty slot and against a hash collision aliasing
// onto the same slot.
func (tt *Table) Probe(hash zobrist.Key) (Entry, bool) {
	tt.mu.Lock()
	entry := tt.table[uint64(hash)&tt.mask]
	tt.mu.Unlock()
	return entry, entry.Type != NoEntry && entry.Hash == hash
}

// Entry is a single transposition table record.
type Entry struct {
	Hash zobrist.Key

	Move move.Move

	Value Eval
	Type  EntryType

	Depth uint8
}

// EntryType says what the entry's Value bounds.
type EntryType uint8

const (
	NoEntry    EntryType = iota // slot is empty
	ExactEntry                  // Value is the position's exact score
	LowerBound                  // Value is a fail-high lower bound
	UpperBound                  // Value is a fail-low upper bound
)

// Eval is a mate-relative score as stored in the table: "N plies to mate
// from this position" rather than search's root-relative "N plies to
// mate from the root". Storing it root-relative would make a cached
// mate score wrong whenever the entry is reused at a different depth
// from the root.
type Eval eval.Eval

// EvalFrom converts a root-relative search score into the table's
// position-relative representation, given the current ply from root.
func EvalFrom(score eval.Eval, ply int) Eval {
	switch {
	case score > eval.WinInMaxPly:
		score += eval.Eval(ply)
	case score < eval.LoseInMaxPly:
		score -= eval.Eval(ply)
	}
	return Eval(score)
}

// Eval converts a stored position-relative score back into a
// root-relative score at the given ply.
func (e Eval) Eval(ply int) eval.Eval {
	score := eval.Eval(e)
	switch {
	case score > eval.WinInMaxPly:
		score -= eval.Eval(ply)
	case score < eval.LoseInMaxPly:
		score += eval.Eval(ply)
	}
	return score
}
