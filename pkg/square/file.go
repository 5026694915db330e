// Copyright © 2022 Rak Laptudirm <raklaptudirm@gmail.com>
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

// File represents a file (column) on the chessboard, a..h from 0.
type File int8

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

// FileN is the number of files.
const FileN = 8

func (f File) String() string {
	const letters = "abcdefgh"
	return string(letters[f])
}

// FileFrom parses a single file letter.
func FileFrom(id byte) (File, error) {
	if id < 'a' || id > 'h' {
		return 0, fmt.Errorf("square: invalid file %q", id)
	}
	return File(id - 'a'), nil
}
