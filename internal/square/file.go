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

package square

import "fmt"

// File represents a file (column) on a chessboard.
type File int8

// constants representing the eight files.
const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

// FileN is the number of files on a chessboard.
const FileN = 8

// FileFrom parses a File from its ASCII identifier, 'a' through 'h'.
func FileFrom(id byte) (File, error) {
	if id < 'a' || id > 'h' {
		return 0, fmt.Errorf("square: invalid file %q", id)
	}
	return File(id - 'a'), nil
}

// String converts a File to its single-character string form.
func (f File) String() string {
	return string(rune('a' + f))
}
