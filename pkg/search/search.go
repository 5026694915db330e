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
	"fmt"
	"time"

	"github.com/corvidlabs/chessforge/pkg/game"
	"github.com/corvidlabs/chessforge/pkg/move"
	"github.com/corvidlabs/chessforge/pkg/piece"
	"github.com/corvidlabs/chessforge/pkg/square"
)

// MaxDepth bounds both the iterative deepening loop and the ply counter
// passed down the search tree, so a mate score can never be confused
// with a regular evaluation.
const MaxDepth = 128

// Logger receives one Info call per completed iterative deepening pass.
// A nil Logger on a Context is replaced with a no-op at Search time.
type Logger interface {
	Info(depth int, score Eval, nodes int, elapsed time.Duration, pv []move.Move)
}

type noopLogger struct{}

func (noopLogger) Info(int, Eval, int, time.Duration, []move.Move) {}

// Context carries everything a single Search call needs: the position,
// the move-ordering history table it learns across iterations, and
// bookkeeping for when to stop. A Context can be reused across searches
// on the same game by swapping out State; start with a fresh one for a
// new game so history doesn't carry over stale bias.
type Context struct {
	State  *game.State
	Logger Logger

	limits  Limits
	start   time.Time
	nodes   int
	stopped bool

	history [piece.NColor][square.N][square.N]int
}

// NewContext returns a Context ready to search s. s is never mutated
// directly; every search node clones it before applying a move.
func NewContext(s *game.State) *Context {
	return &Context{State: s, Logger: noopLogger{}}
}

// Search runs iterative deepening over c.State up to limits and returns
// the best move found, its score, and an error if the position is
// illegal (the side not to move is in check, so its king could be
// captured).
func (c *Context) Search(limits Limits) (move.Move, Eval, error) {
	if c.Logger == nil {
		c.Logger = noopLogger{}
	}

	if c.State.Board.IsInCheck(c.State.SideToMove.Other()) {
		return move.Move{}, -Inf, fmt.Errorf("search: %w: opponent king is in check", game.ErrIllegalMove)
	}

	c.start = time.Now()
	c.nodes = 0
	c.stopped = false
	c.limits = limits

	return c.iterativeDeepening()
}

// shouldStop reports whether the current search should abort immediately.
// The node count is only sampled every 2048 nodes so the time.Since call
// doesn't dominate the hot path.
func (c *Context) shouldStop() bool {
	switch {
	case c.stopped:
		return true
	case c.limits.Infinite:
		return false
	case c.nodes&2047 != 0:
		return false
	case c.nodes >= c.limits.nodes():
		c.stopped = true
		return true
	case c.limits.budget() > 0 && time.Since(c.start) >= c.limits.budget():
		c.stopped = true
		return true
	default:
		return false
	}
}
