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
	"io"
	"strings"
	"time"

	"github.com/corvidlabs/chessforge/pkg/move"
)

// TextLogger writes one UCI-style "info" line per completed iterative
// deepening pass to W.
type TextLogger struct {
	W io.Writer
}

func (l TextLogger) Info(depth int, score Eval, nodes int, elapsed time.Duration, pv []move.Move) {
	nps := float64(nodes) / maxFloat(0.001, elapsed.Seconds())

	moves := make([]string, len(pv))
	for i, m := range pv {
		moves[i] = m.String()
	}

	fmt.Fprintf(l.W, "info depth %d score %s nodes %d nps %.f time %d pv %s\n",
		depth, score, nodes, nps, elapsed.Milliseconds(), strings.Join(moves, " "))
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
