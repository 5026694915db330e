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
	"github.com/corvidlabs/chessforge/pkg/piece"
	"github.com/corvidlabs/chessforge/pkg/square"
)

// PawnAttacks[color][s] is the set of squares a pawn of color attacks
// (diagonal captures, including en passant) from s. Unlike the other
// leaper tables this is the only pawn attack pattern callers need
// precomputed: pushes depend on occupancy and are generated directly
// from bitboard.Up in the move generator.
var PawnAttacks [piece.NColor][square.N]bitboard.Board

func init() {
	for s := square.A8; s <= square.H1; s++ {
		for c := piece.White; c <= piece.Black; c++ {
			origin := bitboard.Squares[s]
			dy := 1
			if c == piece.White {
				dy = -1
			}
			var b bitboard.Board
			b |= bitboard.ShiftFiles(shiftRanks(origin, dy), 1)
			b |= bitboard.ShiftFiles(shiftRanks(origin, dy), -1)
			PawnAttacks[c][s] = b
		}
	}
}
