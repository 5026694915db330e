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

package search

import (
	"github.com/corvidlabs/chessforge/pkg/game"
	"github.com/corvidlabs/chessforge/pkg/move"
)

// negamax is a simplified minimax that exploits chess being a zero-sum
// game: the score of a position for the side to move is the negation of
// its score for the opponent, so a single recursive function serves
// both the maximizing and minimizing player.
// https://www.chessprogramming.org/Negamax
//
// alpha-beta pruning cuts branches that a prior sibling has already
// proven worse than, so not every leaf of the full game tree needs to
// be visited. https://www.chessprogramming.org/Alpha-Beta
func (c *Context) negamax(s *game.State, plys, depth int, alpha, beta Eval, pv *[]move.Move) Eval {
	c.nodes++

	switch {
	case c.shouldStop():
		// result is discarded: the caller keeps the previous
		// iteration's pv when the search is stopped mid-iteration
		return 0

	case plys > 0 && (s.IsFiftyMoveDraw() || s.IsRepetitionDraw()):
		return Draw

	case depth <= 0, plys >= MaxDepth:
		return c.quiescence(s, plys, alpha, beta)
	}

	moves := s.LegalMoves()
	if len(moves) == 0 {
		if s.Board.IsInCheck(s.SideToMove) {
			return MatedIn(plys)
		}
		return Draw
	}

	c.orderMoves(moves)

	bestEval := -Inf
	for _, m := range moves {
		child := s.Clone()
		if err := child.Apply(m); err != nil {
			panic("search: movegen produced an inapplicable move: " + err.Error())
		}

		var childPV []move.Move
		score := -c.negamax(child, plys+1, depth-1, -beta, -alpha, &childPV)

		if score > bestEval {
			bestEval = score

			if score > alpha {
				alpha = score
				*pv = append((*pv)[:0], m)
				*pv = append(*pv, childPV...)

				if alpha >= beta {
					c.recordCutoff(m, depth)
					break
				}
			}
		}
	}

	return bestEval
}
