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

var knightAttacks [square.N]bitboard.Board

// knightOffsets are the eight (file, rank) leaps of a knight.
var knightOffsets = [8]struct{ dx, dy int }{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

// knightAttacksFrom builds a knight's attack set using file-safe
// shifts: each leap is a rank shift (which never wraps) composed with
// a file shift (which masks off the files that would wrap).
func knightAttacksFrom(from square.Square) bitboard.Board {
	origin := bitboard.Squares[from]
	var b bitboard.Board
	for _, o := range knightOffsets {
		b |= bitboard.ShiftFiles(shiftRanks(origin, o.dy), o.dx)
	}
	return b
}

// shiftRanks shifts b by dy ranks, discarding bits that fall off the
// top or bottom of the board. A rank shift never wraps across a file
// boundary, so unlike ShiftFiles no masking is required.
func shiftRanks(b bitboard.Board, dy int) bitboard.Board {
	switch {
	case dy == 0:
		return b
	case dy > 0:
		if dy >= 8 {
			return bitboard.Empty
		}
		return b << uint(8*dy)
	default:
		if -dy >= 8 {
			return bitboard.Empty
		}
		return b >> uint(-8*dy)
	}
}

func init() {
	for s := square.A8; s <= square.H1; s++ {
		knightAttacks[s] = knightAttacksFrom(s)
	}
}

// Knight acts as a wrapper method on the precalculated attacks bitboards
// of knights from every square on the board. It returns the attack
// bitboard for the provided square.
func Knight(s square.Square, friends bitboard.Board) bitboard.Board {
	return knightAttacks[s] &^ friends
}
