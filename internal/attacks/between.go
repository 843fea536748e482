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

package attacks

import (
	"laptudirm.com/x/gochess/internal/bitboard"
	"laptudirm.com/x/gochess/internal/square"
)

// Between[a][b] is the set of squares strictly between a and b along a
// shared rank, file, or diagonal, PLUS b itself. A single sliding
// checker is resolved by capturing it or blocking any square in
// Between[king][checker], and since the checker square itself must
// also be a legal destination (to capture it), it is included in the
// mask rather than handled as a special case by callers.
//
// For squares not sharing a rank, file, or diagonal, Between[a][b] is
// empty.
var Between [square.N][square.N]bitboard.Board

func init() {
	for a := square.Square(0); a < square.N; a++ {
		for b := square.Square(0); b < square.N; b++ {
			Between[a][b] = betweenMask(a, b)
		}
	}
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

func betweenMask(a, b square.Square) bitboard.Board {
	if a == b {
		return bitboard.Empty
	}

	df := int(b.File()) - int(a.File())
	dr := int(b.Rank()) - int(a.Rank())

	if df != 0 && dr != 0 && abs(df) != abs(dr) {
		return bitboard.Empty // not aligned on a rank, file, or diagonal
	}

	stepFile, stepRank := sign(df), sign(dr)

	var bb bitboard.Board
	f, r := int(a.File())+stepFile, int(a.Rank())+stepRank
	for {
		s := square.New(square.File(f), square.Rank(r))
		bb.Set(s)
		if s == b {
			break
		}
		f += stepFile
		r += stepRank
	}
	return bb
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
