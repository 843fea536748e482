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

package time_test

import (
	"testing"
	gotime "time"

	"laptudirm.com/x/gochess/internal/piece"
	searchtime "laptudirm.com/x/gochess/internal/search/time"
)

func TestMoveManagerExpiresAfterDuration(t *testing.T) {
	m := &searchtime.MoveManager{Duration: 1}
	m.GetDeadline()
	if m.Expired() {
		t.Fatal("should not be expired immediately after GetDeadline")
	}
	gotime.Sleep(20 * gotime.Millisecond)
	if !m.Expired() {
		t.Error("should be expired after the movetime budget elapses")
	}
}

func TestMoveManagerExtendDeadlineIsANoOp(t *testing.T) {
	m := &searchtime.MoveManager{Duration: 1000}
	m.GetDeadline()
	before := m.Deadline()
	m.ExtendDeadline()
	if !m.Deadline().Equal(before) {
		t.Error("MoveManager.ExtendDeadline should not change a fixed-movetime deadline")
	}
}

func TestNormalManagerBudgetsAgainstMovesToGo(t *testing.T) {
	m := &searchtime.NormalManager{
		Us:        piece.White,
		MovesToGo: 10,
	}
	m.Time[piece.White] = 10000
	m.GetDeadline()

	budget := gotime.Until(m.Deadline())
	// 10000ms / 10 moves = 1000ms, minus the fixed safety margin; allow
	// generous slack for scheduling jitter between GetDeadline and this
	// check.
	if budget <= 0 || budget > 1100*gotime.Millisecond {
		t.Errorf("budgeted duration = %v, want roughly 980ms", budget)
	}
}

func TestNormalManagerExtendDeadlinePushesItLater(t *testing.T) {
	m := &searchtime.NormalManager{Us: piece.White, MovesToGo: 30}
	m.Time[piece.White] = 60000
	m.GetDeadline()
	before := m.Deadline()
	m.ExtendDeadline()
	if !m.Deadline().After(before) {
		t.Error("NormalManager.ExtendDeadline should push the deadline later")
	}
}

func TestNormalManagerDefaultsMovesToGoWhenUnset(t *testing.T) {
	// MovesToGo left at zero should fall back to the 24-move
	// assumption, not divide by zero.
	m := &searchtime.NormalManager{Us: piece.White}
	m.Time[piece.White] = 3000
	m.GetDeadline()
	if gotime.Until(m.Deadline()) <= 0 {
		t.Error("deadline should be in the future when MovesToGo is unset")
	}
}
