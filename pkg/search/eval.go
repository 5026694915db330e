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

// Package search implements iterative-deepening negamax search over a
// game.State: alpha-beta pruning, a quiescence extension, capture- and
// history-based move ordering, and a material-plus-check static
// evaluation.
package search

import (
	"fmt"

	"github.com/corvidlabs/chessforge/pkg/game"
	"github.com/corvidlabs/chessforge/pkg/piece"
)

// Eval is a centipawn score from the perspective of the side to move:
// positive favors the mover.
type Eval int

const (
	Draw  Eval = 0
	Inf   Eval = 32000
	Mate  Eval = 31000
	Pawn  Eval = 100
)

// MatedIn returns the score of being checkmated plys moves from the
// search root: closer mates score worse, so the search prefers
// delaying an inevitable loss and hastening an inevitable win.
func MatedIn(plys int) Eval {
	return -Mate + Eval(plys)
}

// IsMateScore reports whether e represents a forced mate.
func (e Eval) IsMateScore() bool {
	return e > Mate-Eval(MaxDepth) || e < -Mate+Eval(MaxDepth)
}

func (e Eval) String() string {
	if e.IsMateScore() {
		plys := Mate - e
		if e < 0 {
			plys = Mate + e
		}
		moves := (int(plys) + 1) / 2
		if e < 0 {
			return fmt.Sprintf("mate -%d", moves)
		}
		return fmt.Sprintf("mate %d", moves)
	}
	return fmt.Sprintf("cp %d", int(e))
}

// Evaluate returns the static evaluation of s from the perspective of
// the side to move: material balance, scaled to centipawns, plus a
// symmetric check bonus/penalty (giving check is rewarded, being in
// check is punished, both by the same constant).
func Evaluate(s *game.State) Eval {
	us := s.SideToMove
	them := us.Other()

	var score int
	for t := piece.Pawn; t <= piece.Queen; t++ {
		count := (s.Board.PieceBBs[t] & s.Board.ColorBBs[us]).Count()
		count -= (s.Board.PieceBBs[t] & s.Board.ColorBBs[them]).Count()
		score += count * t.Value() * int(Pawn)
	}

	if s.Board.IsInCheck(them) {
		score += 50
	}
	if s.Board.IsInCheck(us) {
		score -= 50
	}

	return Eval(score)
}
