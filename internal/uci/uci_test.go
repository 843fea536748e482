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

package uci_test

import (
	"bytes"
	"strings"
	"testing"

	"laptudirm.com/x/gochess/internal/uci"
)

func TestHandleDispatchesByCommandName(t *testing.T) {
	var out bytes.Buffer
	c := uci.NewClient()
	c.Out = &out

	var gotArgs []string
	c.Handle("go", func(args []string) error {
		gotArgs = args
		return nil
	})

	if err := c.Run("go depth 4\n"); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(gotArgs) != 2 || gotArgs[0] != "depth" || gotArgs[1] != "4" {
		t.Errorf("handler got args %v, want [depth 4]", gotArgs)
	}
}

func TestRunUnknownCommandReturnsError(t *testing.T) {
	c := uci.NewClient()
	if err := c.Run("notacommand\n"); err == nil {
		t.Error("Run should error on an unregistered command")
	}
}

func TestRunBlankLineIsANoOp(t *testing.T) {
	c := uci.NewClient()
	if err := c.Run("   \n"); err != nil {
		t.Errorf("Run on a blank line should not error, got %v", err)
	}
}

func TestPrintfWritesToOut(t *testing.T) {
	var out bytes.Buffer
	c := uci.NewClient()
	c.Out = &out
	c.Printf("id name %s\n", "gochess")
	if got := out.String(); got != "id name gochess\n" {
		t.Errorf("Printf wrote %q, want %q", got, "id name gochess\n")
	}
}

func TestRunStopsDispatchOnQuitSentinel(t *testing.T) {
	var out bytes.Buffer
	c := uci.NewClient()
	c.Out = &out
	quit := false
	c.Handle("quit", func(args []string) error {
		quit = true
		return uci.ErrQuit
	})
	c.Handle("echo", func(args []string) error {
		_, err := out.WriteString(strings.Join(args, " ") + "\n")
		return err
	})

	// drive Run line by line the way Start's loop does, stopping (as
	// Start does) the first time a handler returns ErrQuit.
	for _, line := range []string{"echo hello\n", "quit\n", "echo unreachable\n"} {
		err := c.Run(line)
		if err == uci.ErrQuit {
			break
		}
		if err != nil {
			t.Fatalf("Run(%q): %v", line, err)
		}
	}

	if !quit {
		t.Error("quit handler should have run")
	}
	if got := out.String(); got != "hello\n" {
		t.Errorf("output = %q, want %q (the line after quit must not run)", got, "hello\n")
	}
}
