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

package search

import (
	"time"

	"laptudirm.com/x/gochess/internal/eval"
	"laptudirm.com/x/gochess/internal/move"
)

// iterativeDeepening repeatedly calls negamax at increasing depths
// until the depth limit or the time budget is exhausted. Each completed
// iteration also seeds the transposition table for the next one, which
// in practice makes searching to depth N after already having searched
// to depth N-1 much faster than searching to N directly.
// https://www.chessprogramming.org/Iterative_Deepening
func (c *Context) iterativeDeepening() (move.Variation, eval.Eval) {
	var score eval.Eval
	var pv move.Variation

	start := time.Now()
	var lastIteration time.Duration

	for c.depth = 1; c.depth <= c.limits.Depth; c.depth++ {
		var childPV move.Variation
		iterStart := time.Now()
		score = c.negamax(c.Root, 0, c.depth, -eval.Inf, eval.Inf, &childPV)
		lastIteration = time.Since(iterStart)

		if c.stopped {
			break
		}

		pv = childPV
		c.printInfo(c.depth, score, pv, time.Since(start))

		if !c.hasTimeForAnotherIteration(lastIteration) {
			break
		}
	}

	return pv, score
}

// hasTimeForAnotherIteration applies a rough continuation heuristic:
// the branching factor near the root is high enough that an iteration
// usually costs several times the previous one, so only start another
// if the last one took less than a fifth of the remaining budget. This
// can still occasionally overshoot at very low branching factors; the
// alternative of under-using the clock by stopping early every time
// was judged worse.
func (c *Context) hasTimeForAnotherIteration(lastIteration time.Duration) bool {
	if c.limits.Infinite || c.limits.Time == nil {
		return true
	}
	remaining := time.Until(c.limits.Time.Deadline())
	return lastIteration*5 < remaining
}
