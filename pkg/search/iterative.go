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
	"fmt"
	"time"

	"github.com/corvidlabs/chessforge/pkg/move"
)

// iterativeDeepening calls negamax once per depth from 1 up to the
// limit, keeping the best move seen by the deepest completed iteration.
// Searching shallow depths first seeds move ordering (the history
// table) for the deeper ones, which in practice finds the same result
// faster than searching the target depth directly.
// https://www.chessprogramming.org/Iterative_Deepening
func (c *Context) iterativeDeepening() (move.Move, Eval, error) {
	var pv []move.Move
	var score Eval

	for depth := 1; depth <= c.limits.depth(); depth++ {
		var childPV []move.Move
		s := c.negamax(c.State, 0, depth, -Inf, Inf, &childPV)

		if c.stopped && depth > 1 {
			// the completed iterations already gave us a move;
			// a partial deeper search isn't trustworthy
			break
		}

		score = s
		pv = childPV

		c.Logger.Info(depth, score, c.nodes, time.Since(c.start), pv)

		if c.stopped {
			break
		}
	}

	if len(pv) == 0 {
		return move.Move{}, score, fmt.Errorf("search: no legal moves")
	}

	return pv[0], score, nil
}
