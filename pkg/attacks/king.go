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

var kingAttacks [square.N]bitboard.Board

var kingOffsets = [8]struct{ dx, dy int }{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

// kingAttacksFrom builds a king's attack set the same file-safe-shift
// way as a knight's, just with unit leaps.
func kingAttacksFrom(from square.Square) bitboard.Board {
	origin := bitboard.Squares[from]
	var b bitboard.Board
	for _, o := range kingOffsets {
		b |= bitboard.ShiftFiles(shiftRanks(origin, o.dy), o.dx)
	}
	return b
}

func init() {
	for s := square.A8; s <= square.H1; s++ {
		kingAttacks[s] = kingAttacksFrom(s)
	}
}

// King returns the king's attack set from s, not including castling:
// castling is generated separately since it depends on castling
// rights and the full board occupancy, not just the king's square.
func King(s square.Square, friends bitboard.Board) bitboard.Board {
	return kingAttacks[s] &^ friends
}
