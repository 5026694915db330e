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

package attacks

import (
	"github.com/corvidlabs/chessforge/pkg/bitboard"
	"github.com/corvidlabs/chessforge/pkg/square"
)

// Rook returns the rook attack set from s given the full board
// occupancy occ, looked up in O(1) from the magic-hashed table built
// at init time.
func Rook(s square.Square, occ bitboard.Board) bitboard.Board {
	magic := RookMagics[s]
	blockers := occ & magic.BlockerMask
	return RookMoves[s][magic.index(blockers)]
}
