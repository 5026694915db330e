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
	"testing"
	"time"

	"github.com/corvidlabs/chessforge/pkg/game"
	"github.com/corvidlabs/chessforge/pkg/move"
)

// loggerFunc adapts a plain function to the Logger interface for tests.
type loggerFunc func(depth int, score Eval, nodes int, elapsed time.Duration, pv []move.Move)

func (f loggerFunc) Info(depth int, score Eval, nodes int, elapsed time.Duration, pv []move.Move) {
	f(depth, score, nodes, elapsed, pv)
}

func TestSearchFindsMateInOne(t *testing.T) {
	// white to move: Ra1-a8 is a back-rank mate, the black king boxed
	// in by its own pawns with the whole eighth rank undefended.
	s, err := game.FromFEN("6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	ctx := NewContext(s)
	best, score, err := ctx.Search(Limits{Depth: 3})
	if err != nil {
		t.Fatal(err)
	}

	if best.String() != "a1a8" {
		t.Fatalf("bestmove = %s, want a1a8", best)
	}
	if !score.IsMateScore() {
		t.Fatalf("score = %s, want a mate score", score)
	}
}

func TestSearchRejectsIllegalPosition(t *testing.T) {
	// white to move, but black's king is already attacked along the open
	// h-file: black's last move left its own king in check, which can't
	// happen in a legal game.
	s, err := game.FromFEN("7k/8/8/8/8/8/8/6KQ w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	ctx := NewContext(s)
	if _, _, err := ctx.Search(Limits{Depth: 1}); err == nil {
		t.Fatal("Search should reject a position where the side not to move is in check")
	}
}

func TestEvaluateMaterialBalance(t *testing.T) {
	s, err := game.FromFEN("4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if e := Evaluate(s); e <= Draw {
		t.Fatalf("Evaluate() = %s, want a positive score for the side with an extra queen", e)
	}
}

func TestIterativeDeepeningCallsLogger(t *testing.T) {
	s := game.New()

	var calls int
	ctx := NewContext(s)
	ctx.Logger = loggerFunc(func(depth int, score Eval, nodes int, elapsed time.Duration, pv []move.Move) {
		calls++
	})

	if _, _, err := ctx.Search(Limits{Depth: 2}); err != nil {
		t.Fatal(err)
	}
	if calls == 0 {
		t.Fatal("Logger.Info should be called at least once during a depth-2 search")
	}
}
