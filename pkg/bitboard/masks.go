// Copyright © 2022 Rak Laptudirm <rak@laptudirm.com>
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

package bitboard

import "github.com/corvidlabs/chessforge/pkg/square"

// file bitboards
const (
	FileA Board = 0x0101010101010101
	FileB Board = 0x0202020202020202
	FileC Board = 0x0404040404040404
	FileD Board = 0x0808080808080808
	FileE Board = 0x1010101010101010
	FileF Board = 0x2020202020202020
	FileG Board = 0x4040404040404040
	FileH Board = 0x8080808080808080
)

// Files is indexed by square.File.
var Files = [square.FileN]Board{FileA, FileB, FileC, FileD, FileE, FileF, FileG, FileH}

// rank bitboards
const (
	Rank8 Board = 0x00000000000000ff
	Rank7 Board = 0x000000000000ff00
	Rank6 Board = 0x0000000000ff0000
	Rank5 Board = 0x00000000ff000000
	Rank4 Board = 0x000000ff00000000
	Rank3 Board = 0x0000ff0000000000
	Rank2 Board = 0x00ff000000000000
	Rank1 Board = 0xff00000000000000
)

// Ranks is indexed by square.Rank.
var Ranks = [square.RankN]Board{Rank8, Rank7, Rank6, Rank5, Rank4, Rank3, Rank2, Rank1}

// Diagonals is indexed by square.Diagonal, and AntiDiagonals by
// square.AntiDiagonal; both are filled in at init time by walking every
// square once, rather than transcribing 30 magic constants by hand.
var Diagonals [15]Board
var AntiDiagonals [15]Board

// Between[a][b] is the bitboard of squares strictly between a and b
// along a shared rank, file, or diagonal; Empty if a and b don't share
// one. pkg/game uses it to check that a castling path is empty.
var Between [square.N][square.N]Board

func init() {
	for s := square.A8; s <= square.H1; s++ {
		Diagonals[s.Diagonal()] |= Squares[s]
		AntiDiagonals[s.AntiDiagonal()] |= Squares[s]
	}

	for a := square.A8; a <= square.H1; a++ {
		for _, dir := range allDirections {
			b := Board(0)
			cur := a
			for {
				next, ok := step(cur, dir)
				if !ok {
					break
				}
				cur = next
				if cur == a {
					break
				}
				Between[a][cur] = b
				b.Set(cur)
			}
		}
	}
}

// direction is a (dx, dy) ray step used only to precompute Between.
type direction struct{ dx, dy int }

var allDirections = []direction{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

func step(s square.Square, d direction) (square.Square, bool) {
	f := int(s.File()) + d.dx
	r := int(s.Rank()) + d.dy
	if f < 0 || f > int(square.FileH) || r < 0 || r > int(square.Rank1) {
		return square.None, false
	}
	return square.From(square.File(f), square.Rank(r)), true
}
