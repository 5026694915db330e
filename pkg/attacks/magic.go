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
	"errors"
	"fmt"

	"github.com/corvidlabs/chessforge/internal/xrand"
	"github.com/corvidlabs/chessforge/pkg/bitboard"
	"github.com/corvidlabs/chessforge/pkg/square"
)

// ErrMagicTableInit is panicked (never returned, since table
// construction runs in an init() with no caller to hand an error to)
// when a square's magic search exhausts maxMagicAttempts without
// finding a collision-free multiplier.
var ErrMagicTableInit = errors.New("attacks: magic table init failure")

const MaxRookBlockerSets = 4096
const MaxBishopBlockerSets = 512

var RookMagics [square.N]Magic
var BishopMagics [square.N]Magic

var RookMoves [square.N][]bitboard.Board
var BishopMoves [square.N][]bitboard.Board

// MagicSeeds are per-rank seeds for the sparse-random magic search,
// chosen (following the well-known Stockfish table) to converge fast;
// any sufficiently sparse seed works, these just need no retries.
var MagicSeeds = [8]uint64{255, 16645, 15100, 12281, 32803, 55013, 10316, 728}

// maxMagicAttempts bounds the search for a collision-free magic. In
// practice one of the seeded PRNGs below finds a fit within a handful
// of tries; if every attempt within the bound fails the mask or search
// is broken, not unlucky, and continuing would spin forever.
const maxMagicAttempts = 100_000_000

// Magic is a single square's magic multiplier and the blocker mask and
// shift it was constructed against.
type Magic struct {
	Number      uint64
	BlockerMask bitboard.Board
	Shift       byte
}

// index hashes occ (already ANDed with m.BlockerMask by the caller)
// down to a slot in the square's attack table.
func (m Magic) index(occ bitboard.Board) uint64 {
	return (uint64(occ) * m.Number) >> m.Shift
}

// blockerSubsets enumerates every subset of mask using the
// Carry-Rippler trick: starting from Empty and repeatedly computing
// (subset - mask) & mask visits every one of the 2^popcount(mask)
// subsets exactly once before returning to Empty.
func blockerSubsets(mask bitboard.Board) []bitboard.Board {
	n := 1 << mask.Count()
	subsets := make([]bitboard.Board, 0, n)
	subset := bitboard.Empty
	for {
		subsets = append(subsets, subset)
		subset = (subset - mask) & mask
		if subset == bitboard.Empty {
			break
		}
	}
	return subsets
}

func generateMagics(magics *[square.N]Magic, moves *[square.N][]bitboard.Board, blockerMask func(square.Square) bitboard.Board, slowAttacks func(square.Square, bitboard.Board) bitboard.Board) {
	for s := square.A8; s <= square.H1; s++ {
		magic := &magics[s]

		magic.BlockerMask = blockerMask(s)
		bits := magic.BlockerMask.Count()
		magic.Shift = byte(64 - bits)

		subsets := blockerSubsets(magic.BlockerMask)
		attacksFor := make([]bitboard.Board, len(subsets))
		for i, blockers := range subsets {
			attacksFor[i] = slowAttacks(s, blockers)
		}

		var rand xrand.PRNG
		rand.Seed(MagicSeeds[s.Rank()])

		table := make([]bitboard.Board, len(subsets))

		attempt := 0
	searching:
		for {
			attempt++
			if attempt > maxMagicAttempts {
				panic(fmt.Errorf("%w: %s", ErrMagicTableInit, s))
			}

			candidate := rand.SparseUint64()
			magic.Number = candidate

			for i := range table {
				table[i] = bitboard.Empty
			}

			for i, blockers := range subsets {
				index := magic.index(blockers)
				attacks := attacksFor[i]

				if table[index] != bitboard.Empty && table[index] != attacks {
					continue searching
				}
				table[index] = attacks
			}

			break
		}

		moves[s] = table
	}
}

func generateRookMagics() {
	generateMagics(&RookMagics, &RookMoves, rookBlockerMask, rookAttacks)
}

func generateBishopMagics() {
	generateMagics(&BishopMagics, &BishopMoves, bishopBlockerMask, bishopAttacks)
}

func init() {
	generateRookMagics()
	generateBishopMagics()
}
