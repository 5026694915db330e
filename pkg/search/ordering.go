// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
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

package search

import (
	"math"
	"sort"

	"github.com/corvidlabs/chessforge/pkg/move"
	"github.com/corvidlabs/chessforge/pkg/piece"
)

// squashConstant is the base c > 1 of the history squash function: it
// controls how quickly an accumulated history score approaches its
// upper bound of 2. A value close to 1 saturates over many cutoffs
// rather than a handful.
const squashConstant = 1.001

// squash maps an unbounded history count onto (0, 1) with a logistic
// curve, so moveScore can fold a raw cutoff count in alongside a
// capture score without one dominating the other at large counts.
func squash(v int) float64 {
	return 1 / (1 + math.Pow(squashConstant, -float64(v)))
}

// isBackward reports whether m moves towards its own back rank rather
// than the opponent's: towards rank 1 for White, towards rank 8 for
// Black. Square ranks run 0 (rank 8) to 7 (rank 1).
func isBackward(m move.Move) bool {
	if m.Color == piece.White {
		return m.To.Rank() > m.From.Rank()
	}
	return m.To.Rank() < m.From.Rank()
}

// moveScore ranks a move for search ordering. A capture scores
// 1+value(captured); a quiet move scores 1, minus 1 if it retreats
// towards its own back rank. Either is compared against a history
// score of 1+squash(history), which is bounded to (1, 2) by squash,
// and the larger of the two wins: history reorders non-captures among
// themselves, but never outranks a capture, since every capture scores
// at least 2.
func (c *Context) moveScore(m move.Move) float64 {
	var base float64
	switch {
	case m.IsCapture():
		base = float64(1 + m.Capture.Value())
	case isBackward(m):
		base = 0
	default:
		base = 1
	}

	history := 1 + squash(c.history[m.Color][m.From][m.To])
	return math.Max(base, history)
}

// orderMoves sorts moves in place, most promising first.
func (c *Context) orderMoves(moves []move.Move) {
	sort.SliceStable(moves, func(i, j int) bool {
		return c.moveScore(moves[i]) > c.moveScore(moves[j])
	})
}

// recordCutoff rewards a quiet move that caused a beta cutoff: the
// bonus grows with the square of the remaining depth, so cutoffs found
// deep in the tree carry more weight than shallow ones.
func (c *Context) recordCutoff(m move.Move, depth int) {
	if m.IsQuiet() {
		c.history[m.Color][m.From][m.To] += depth * depth
	}
}
