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

// Command datagen walks a directory of PGN files, replays every game,
// and prints one "<result> <fen>" line per quiet position to stdout.
// The result is the game's outcome from White's perspective: [1.0],
// [0.5], or [0.0]. The output feeds cmd/tune's material tuner.
package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/notnil/chess"

	"github.com/corvidlabs/chessforge/pkg/game"
	"github.com/corvidlabs/chessforge/pkg/move"
	"github.com/corvidlabs/chessforge/pkg/search"
	"github.com/corvidlabs/chessforge/pkg/square"
)

func main() {
	dir := flag.String("dir", "./data", "directory to walk for .pgn files")
	depth := flag.Int("depth", 4, "search depth used to skip positions with a tactical best move")
	flag.Parse()

	fenCount := 0

	err := filepath.WalkDir(*dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.HasSuffix(path, ".pgn") {
			return err
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		scanner := chess.NewScanner(f)
		for scanner.Scan() {
			g := scanner.Next()

			var result string
			switch g.GetTagPair("Result").Value {
			case "1-0":
				result = "[1.0]"
			case "0-1":
				result = "[0.0]"
			case "1/2-1/2":
				result = "[0.5]"
			default:
				continue
			}

			n, err := emitGame(g, result, *depth)
			if err != nil {
				fmt.Fprintln(os.Stderr, "datagen:", err)
				continue
			}
			fenCount += n
			fmt.Fprintf(os.Stderr, "datagen: %s: %d fens so far\n", path, fenCount)
		}

		return nil
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "datagen:", err)
		os.Exit(1)
	}
}

// emitGame replays g move by move, printing a "<result> <fen>" line for
// every position whose engine-chosen best move is quiet: a position
// about to be resolved by a capture or promotion is a poor training
// sample since its static evaluation doesn't reflect the exchange.
func emitGame(g *chess.Game, result string, depth int) (int, error) {
	state, err := game.FromFEN(game.StartFEN)
	if err != nil {
		return 0, err
	}

	moves := g.Moves()
	count := 0

	for i, gm := range moves {
		if i == len(moves)-1 {
			break
		}

		m, err := convertMove(state, gm)
		if err != nil {
			return count, err
		}
		if err := state.Apply(m); err != nil {
			return count, err
		}

		if state.Board.IsInCheck(state.SideToMove) {
			continue
		}

		ctx := search.NewContext(state)
		best, _, err := ctx.Search(search.Limits{Depth: depth})
		if err != nil || best.IsCapture() || best.IsPromotion() {
			continue
		}

		fmt.Println(result, state.FEN())
		count++
	}

	return count, nil
}

// convertMove translates a notnil/chess move, whose square indices run
// a1=0..h8=63, into the equivalent move.Move for state. It is resolved
// against state's own legal move list rather than constructed directly,
// so captures, en passant, and promotions come out fully described.
func convertMove(state *game.State, gm *chess.Move) (move.Move, error) {
	from := convertSquare(gm.S1())
	to := convertSquare(gm.S2())

	for _, m := range state.LegalMoves() {
		if m.From != from || m.To != to {
			continue
		}
		if m.IsPromotion() && !matchesPromotion(m, gm) {
			continue
		}
		return m, nil
	}
	return move.Move{}, fmt.Errorf("%w: %s%s in position %s", game.ErrIllegalMove, from, to, state.FEN())
}

func matchesPromotion(m move.Move, gm *chess.Move) bool {
	want := map[chess.PieceType]byte{
		chess.Knight: 'n',
		chess.Bishop: 'b',
		chess.Rook:   'r',
		chess.Queen:  'q',
	}[gm.Promo()]
	if want == 0 {
		return true
	}
	s := m.String()
	return s[len(s)-1] == want
}

// convertSquare maps a notnil/chess square (file = s%8, rank 0 = rank
// 1) onto this module's square numbering (file = s%8, rank 0 = rank 8).
func convertSquare(s chess.Square) square.Square {
	file := square.File(int(s) % 8)
	rank := square.Rank(7 - int(s)/8)
	return square.From(file, rank)
}
