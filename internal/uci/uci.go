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

// Package uci implements the line-oriented Universal Chess Interface
// protocol boundary: a Client reading commands off stdin and
// dispatching them by name to registered handlers. The command set is
// fixed and small, so dispatch is a plain map lookup rather than a
// generic command-schema layer.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Handler processes one UCI command's arguments. It returns ErrQuit (via
// the sentinel returned from the "quit" handler) to end the Client's
// Start loop.
type Handler func(args []string) error

// ErrQuit is returned by the "quit" handler to stop Start's loop.
var ErrQuit = fmt.Errorf("uci: quit")

// Client reads UCI commands from an input stream and dispatches them by
// name to registered Handlers, writing responses to an output stream.
type Client struct {
	in  io.Reader
	Out io.Writer

	handlers map[string]Handler
}

// NewClient creates a Client reading from stdin and writing to stdout.
func NewClient() *Client {
	return &Client{
		in:       os.Stdin,
		Out:      os.Stdout,
		handlers: make(map[string]Handler),
	}
}

// Handle registers a Handler for a command name.
func (c *Client) Handle(name string, h Handler) {
	c.handlers[name] = h
}

// Start runs the read-eval-print loop until the input stream is
// exhausted or a handler returns ErrQuit.
func (c *Client) Start() error {
	reader := bufio.NewReader(c.in)
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		if err := c.Run(line); err != nil {
			if err == ErrQuit {
				return nil
			}
			fmt.Fprintln(c.Out, err)
		}
	}
}

// Run dispatches a single line to its matching handler.
func (c *Client) Run(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	name, args := fields[0], fields[1:]
	h, ok := c.handlers[name]
	if !ok {
		return fmt.Errorf("%s: unknown command", name)
	}
	return h(args)
}

// Printf writes to the client's output stream.
func (c *Client) Printf(format string, a ...any) {
	fmt.Fprintf(c.Out, format, a...)
}
