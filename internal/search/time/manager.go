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

// Package time implements the search time budget: a Manager interface
// deciding when iterative deepening should stop, with one concrete
// manager for normal clock-plus-increment time controls and one for
// fixed per-move budgets.
package time

import (
	"time"

	"laptudirm.com/x/gochess/internal/piece"
)

// Manager decides when a search should stop.
type Manager interface {
	// GetDeadline computes the soft deadline: iterative deepening may
	// start a new iteration as long as it hasn't passed.
	GetDeadline()

	// ExtendDeadline pushes the current deadline later where the
	// manager allows it (MoveManager has a fixed budget and leaves it
	// unchanged). The iterative deepening loop does not call it.
	ExtendDeadline()

	// Expired reports whether the current deadline has passed.
	Expired() bool

	// Deadline returns the current deadline, so the iterative
	// deepening loop can decide whether it has time left for another
	// iteration given how long the last one took.
	Deadline() time.Time
}

// NormalManager computes a deadline from the UCI "go" time-control
// fields: remaining time, increment, and moves to the next time
// control. It budgets (time+increment)/movesToGo for this move,
// reserving a small fixed safety margin so increments with tiny
// remaining clocks don't get cut off by scheduling jitter.
type NormalManager struct {
	Us piece.Color

	Time, Increment [piece.ColorN]int
	MovesToGo       int

	deadline time.Time
}

var _ Manager = (*NormalManager)(nil)

// safetyMarginMillis is subtracted from the computed budget so a slow
// OS scheduler tick doesn't turn a legal move into a clock flag.
const safetyMarginMillis = 20

func (m *NormalManager) budgetMillis() int {
	movesToGo := m.MovesToGo
	if movesToGo <= 0 {
		// no explicit time control; plan as if 24 more moves remain
		movesToGo = 24
	}
	budget := (m.Time[m.Us] + m.Increment[m.Us]) / movesToGo
	budget -= safetyMarginMillis
	if budget < 1 {
		budget = 1
	}
	return budget
}

func (m *NormalManager) GetDeadline() {
	m.deadline = time.Now().Add(time.Duration(m.budgetMillis()) * time.Millisecond)
}

func (m *NormalManager) ExtendDeadline() {
	extra := time.Duration(m.budgetMillis()) * time.Millisecond / 2
	m.deadline = m.deadline.Add(extra)
}

func (m *NormalManager) Expired() bool {
	return time.Now().After(m.deadline)
}

func (m *NormalManager) Deadline() time.Time {
	return m.deadline
}

// MoveManager is used for a fixed "go movetime N" search: the deadline
// is exactly N milliseconds out and cannot be extended.
type MoveManager struct {
	Duration int
	deadline time.Time
}

var _ Manager = (*MoveManager)(nil)

func (m *MoveManager) GetDeadline() {
	m.deadline = time.Now().Add(time.Duration(m.Duration) * time.Millisecond)
}

func (m *MoveManager) ExtendDeadline() {
	// fixed movetime budget: nothing to extend
}

func (m *MoveManager) Expired() bool {
	return time.Now().After(m.deadline)
}

func (m *MoveManager) Deadline() time.Time {
	return m.deadline
}
