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

import "github.com/corvidlabs/chessforge/pkg/game"

// quiescence extends the search past depth 0 along capturing and
// promoting lines only, so negamax doesn't stop mid-exchange and
// misjudge a position that is about to lose material.
// https://www.chessprogramming.org/Quiescence_Search
func (c *Context) quiescence(s *game.State, plys int, alpha, beta Eval) Eval {
	c.nodes++

	if c.shouldStop() {
		return 0
	}

	standPat := Evaluate(s)
	if standPat >= beta {
		return standPat
	}
	if standPat > alpha {
		alpha = standPat
	}

	moves := s.LegalMoves()
	if len(moves) == 0 {
		if s.Board.IsInCheck(s.SideToMove) {
			return MatedIn(plys)
		}
		return Draw
	}

	c.orderMoves(moves)

	best := standPat
	for _, m := range moves {
		if m.IsQuiet() {
			continue
		}

		child := s.Clone()
		if err := child.Apply(m); err != nil {
			panic("search: movegen produced an inapplicable move: " + err.Error())
		}

		score := -c.quiescence(child, plys+1, -beta, -alpha)
		if score > best {
			best = score
			if score > alpha {
				alpha = score
			}
		}

		if alpha >= beta {
			break
		}
	}

	return best
}
