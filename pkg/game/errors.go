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

package game

import "errors"

// Sentinel errors surfaced to callers of this package. Call sites wrap
// these with fmt.Errorf("%w: ...") to add position-specific detail.
var (
	// ErrInvalidFEN is returned when a FEN string cannot be parsed.
	// The game state a caller held before calling FromFEN is untouched.
	ErrInvalidFEN = errors.New("game: invalid fen")

	// ErrNoPieceAtSource is returned by Apply when a move names no
	// piece at its source square for the color to move. Legal and
	// pseudo-legal moves are always generated from the current board,
	// so seeing this indicates a bug in the caller, not a game-state
	// outcome to recover from.
	ErrNoPieceAtSource = errors.New("game: no piece at move source")

	// ErrIllegalMove is returned when a move or position submitted by
	// an external caller is not a member of the current legal move
	// set, or is otherwise not reachable by a legal game.
	ErrIllegalMove = errors.New("game: illegal move")
)
