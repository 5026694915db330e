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

// ray walks from s in the given (dx, dy) direction, setting every
// square up to and including the first occupied one (a slider is
// stopped by the piece it is about to capture). It is the reference
// implementation magic table construction hashes against, and is also
// used directly to build the blocker masks the magics index on.
func ray(s square.Square, occ bitboard.Board, dx, dy int) bitboard.Board {
	var b bitboard.Board

	f, r := int(s.File()), int(s.Rank())
	for {
		f += dx
		r += dy
		if f < 0 || f > int(square.FileH) || r < 0 || r > int(square.Rank1) {
			break
		}
		cur := square.From(square.File(f), square.Rank(r))
		b.Set(cur)
		if occ.IsSet(cur) {
			break
		}
	}
	return b
}

var rookDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
var bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

// rookAttacks is the slow, ray-casting reference rook attack set given
// actual occupancy. It is only used to populate the magic tables.
func rookAttacks(s square.Square, occ bitboard.Board) bitboard.Board {
	var b bitboard.Board
	for _, d := range rookDirs {
		b |= ray(s, occ, d[0], d[1])
	}
	return b
}

// bishopAttacks is the slow, ray-casting reference bishop attack set.
func bishopAttacks(s square.Square, occ bitboard.Board) bitboard.Board {
	var b bitboard.Board
	for _, d := range bishopDirs {
		b |= ray(s, occ, d[0], d[1])
	}
	return b
}

// rookBlockerMask returns the squares whose occupancy can affect a
// rook's attack set from s, excluding the board edge: a blocker on the
// edge can never be jumped over, so including it would only shrink the
// usable index space without changing the result.
func rookBlockerMask(s square.Square) bitboard.Board {
	b := rookAttacks(s, bitboard.Empty)
	b &^= edgeMask(s)
	return b
}

// bishopBlockerMask is rookBlockerMask's bishop equivalent.
func bishopBlockerMask(s square.Square) bitboard.Board {
	b := bishopAttacks(s, bitboard.Empty)
	b &^= edgeMask(s)
	return b
}

// edgeMask returns the board edges not already coincident with s,
// since a piece standing on an edge still attacks along that edge.
func edgeMask(s square.Square) bitboard.Board {
	var m bitboard.Board
	if s.File() != square.FileA {
		m |= bitboard.FileA
	}
	if s.File() != square.FileH {
		m |= bitboard.FileH
	}
	if s.Rank() != square.Rank1 {
		m |= bitboard.Rank1
	}
	if s.Rank() != square.Rank8 {
		m |= bitboard.Rank8
	}
	return m
}
