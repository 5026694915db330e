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

// Command engine is a minimal console front-end for chessforge: a
// read-eval-print loop that accepts a handful of UCI-flavored commands
// over stdin. It is not a protocol-complete UCI engine, just enough to
// drive a search interactively or from a script.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/corvidlabs/chessforge/pkg/game"
	"github.com/corvidlabs/chessforge/pkg/move"
	"github.com/corvidlabs/chessforge/pkg/search"
)

func main() {
	fen := flag.String("fen", game.StartFEN, "starting position")
	flag.Parse()

	state, err := game.FromFEN(*fen)
	if err != nil {
		fmt.Fprintln(os.Stderr, "engine:", err)
		os.Exit(1)
	}

	fmt.Println("chessforge console, type \"help\" for commands")

	ctx := search.NewContext(state)
	ctx.Logger = search.TextLogger{W: os.Stdout}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "quit", "exit":
			return

		case "help":
			printHelp()

		case "d", "display":
			fmt.Println(state.Board.String())
			fmt.Println(state.FEN())

		case "position":
			if err := applyPosition(state, fields[1:]); err != nil {
				fmt.Fprintln(os.Stderr, "engine:", err)
			}

		case "go":
			limits := parseGoLimits(fields[1:])
			ctx.State = state
			best, score, err := ctx.Search(limits)
			if err != nil {
				fmt.Fprintln(os.Stderr, "engine:", err)
				continue
			}
			fmt.Printf("bestmove %s (%s)\n", best, score)

		default:
			fmt.Fprintf(os.Stderr, "engine: unknown command %q\n", fields[0])
		}
	}
}

func printHelp() {
	fmt.Println(`commands:
  position startpos [moves <m1> <m2> ...]
  position fen <fen> [moves <m1> <m2> ...]
  go [depth <n>] [movetime <ms>] [timeleft <ms>] [nodes <n>] [infinite]
  d                 print the board and current FEN
  quit`)
}

// applyPosition resets state to the position named by args, then
// applies any trailing "moves" in long algebraic notation (e2e4, e7e8q).
func applyPosition(state *game.State, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("position: missing startpos or fen")
	}

	var rest []string
	switch args[0] {
	case "startpos":
		fresh, err := game.FromFEN(game.StartFEN)
		if err != nil {
			return err
		}
		*state = *fresh
		rest = args[1:]

	case "fen":
		end := 1
		for end < len(args) && args[end] != "moves" {
			end++
		}
		fresh, err := game.FromFEN(strings.Join(args[1:end], " "))
		if err != nil {
			return err
		}
		*state = *fresh
		rest = args[end:]

	default:
		return fmt.Errorf("position: expected startpos or fen, got %q", args[0])
	}

	if len(rest) == 0 {
		return nil
	}
	if rest[0] != "moves" {
		return fmt.Errorf("position: expected \"moves\", got %q", rest[0])
	}

	for _, uci := range rest[1:] {
		m, err := findMove(state, uci)
		if err != nil {
			return err
		}
		if err := state.Apply(m); err != nil {
			return err
		}
	}
	return nil
}

// findMove resolves a long algebraic move string (e.g. "e2e4", "e7e8q")
// against state's legal moves.
func findMove(state *game.State, uci string) (move.Move, error) {
	for _, m := range state.LegalMoves() {
		if strings.EqualFold(m.String(), uci) {
			return m, nil
		}
	}
	return move.Move{}, fmt.Errorf("%w: %q", game.ErrIllegalMove, uci)
}

func parseGoLimits(args []string) search.Limits {
	var limits search.Limits
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "depth":
			i++
			if i < len(args) {
				limits.Depth, _ = strconv.Atoi(args[i])
			}
		case "nodes":
			i++
			if i < len(args) {
				limits.Nodes, _ = strconv.Atoi(args[i])
			}
		case "movetime":
			i++
			if i < len(args) {
				ms, _ := strconv.Atoi(args[i])
				limits.MoveTime = time.Duration(ms) * time.Millisecond
			}
		case "timeleft":
			i++
			if i < len(args) {
				ms, _ := strconv.Atoi(args[i])
				limits.TimeLeft = time.Duration(ms) * time.Millisecond
			}
		case "infinite":
			limits.Infinite = true
		}
	}
	return limits
}
