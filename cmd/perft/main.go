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

// Command perft is a standalone move-generator exerciser: it runs the
// standard perft node-count sweep (or a single position, with -fen and
// -divide) and reports a progress bar of how many (position, depth)
// pairs remain.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"

	"laptudirm.com/x/gochess/internal/perft"
	"laptudirm.com/x/gochess/internal/position"
)

// suite is the standard six-position perft fixture from the
// chessprogramming wiki.
var suite = []struct {
	name string
	fen  string
	d1   uint64
	d2   uint64
	d3   uint64
	d4   uint64
}{
	{"startpos", position.StartFEN, 20, 400, 8902, 197281},
	{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 48, 2039, 97862, 4085603},
	{"position3", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 14, 191, 2812, 43238},
	{"position4", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", 6, 264, 9467, 422333},
	{"position5", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", 44, 1486, 62379, 2103487},
	{"position6", "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10", 46, 2079, 89890, 3894594},
}

func main() {
	fen := flag.String("fen", "", "FEN of a single position to run (defaults to the standard six-position suite)")
	depth := flag.Int("depth", 4, "maximum perft depth")
	divide := flag.Bool("divide", false, "print per-root-move node counts for a single -fen position")
	flag.Parse()

	if *fen != "" {
		pos, err := position.NewFromFEN(*fen)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		if *divide {
			total := perft.Divide(&pos, *depth, func(line string) { fmt.Println(line) })
			fmt.Printf("total: %d\n", total)
			return
		}

		start := time.Now()
		nodes := perft.Count(&pos, *depth)
		elapsed := time.Since(start)
		fmt.Printf("nodes %d time %s nps %.0f\n", nodes, elapsed, float64(nodes)/elapsed.Seconds())
		return
	}

	runSuite(*depth)
}

func runSuite(maxDepth int) {
	bar := progressbar.Default(int64(len(suite) * maxDepth))

	var failed int
	for _, tc := range suite {
		pos, err := position.NewFromFEN(tc.fen)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", tc.name, err)
			os.Exit(1)
		}

		want := []uint64{tc.d1, tc.d2, tc.d3, tc.d4}
		for d := 1; d <= maxDepth; d++ {
			got := perft.Count(&pos, d)
			bar.Add(1)

			if d <= len(want) && got != want[d-1] {
				failed++
				fmt.Printf("\n%s depth %d: got %d, want %d\n", tc.name, d, got, want[d-1])
			}
		}
	}

	fmt.Println()
	if failed > 0 {
		fmt.Printf("%d mismatches\n", failed)
		os.Exit(1)
	}
	fmt.Println("all perft counts match")
}
