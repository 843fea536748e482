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

// Command gochess is the UCI subprocess entrypoint: a GUI (or a human,
// from a terminal) launches the binary and talks to it over stdin/stdout.
package main

import (
	"fmt"
	"os"
	"strings"

	"laptudirm.com/x/gochess/internal/engine"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	client := engine.NewClient()

	if args := os.Args[1:]; len(args) > 0 {
		// non-interactive: treat the command-line arguments as a single
		// UCI command and exit, instead of starting the REPL.
		return client.Run(strings.Join(args, " "))
	}

	return client.Start()
}
