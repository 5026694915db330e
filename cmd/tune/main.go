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

// Command tune runs Texel tuning over a dataset produced by cmd/datagen
// to fit the five material weights pkg/search/eval.go starts from: a
// logistic regression of each position's material balance against its
// game result, trained by gradient descent. It writes an error-over-
// epoch chart to error-plot.html and prints the tuned weights.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/schollz/progressbar/v3"

	"github.com/corvidlabs/chessforge/pkg/game"
	"github.com/corvidlabs/chessforge/pkg/piece"
)

// entry is one training sample: White's piece count minus Black's for
// each piece type, and the game's result from White's perspective.
type entry struct {
	counts [piece.NType - 1]int // material difference, White minus Black, per type below King
	result float64
}

func main() {
	dataset := flag.String("data", "", "dataset file produced by cmd/datagen")
	epochs := flag.Int("epochs", 200, "number of gradient descent epochs")
	rate := flag.Float64("rate", 1.0, "gradient descent learning rate")
	flag.Parse()

	if *dataset == "" {
		fmt.Fprintln(os.Stderr, "tune: -data is required")
		os.Exit(1)
	}

	entries, err := loadDataset(*dataset)
	if err != nil {
		fmt.Fprintln(os.Stderr, "tune:", err)
		os.Exit(1)
	}
	if len(entries) == 0 {
		fmt.Fprintln(os.Stderr, "tune: dataset is empty")
		os.Exit(1)
	}

	k := computeK(entries)
	fmt.Printf("tune: %d positions, K = %.4f\n", len(entries), k)

	weights := [piece.NType - 1]float64{1, 3, 3, 5, 9} // starting point: textbook values
	errorEpoch := make([]string, 0, *epochs+1)
	errorValue := make([]opts.LineData, 0, *epochs+1)

	record := func(epoch int) {
		e := meanSquaredError(entries, weights[:], k)
		errorEpoch = append(errorEpoch, strconv.Itoa(epoch))
		errorValue = append(errorValue, opts.LineData{Value: e})
	}
	record(0)

	bar := progressbar.NewOptions(*epochs,
		progressbar.OptionSetElapsedTime(true),
		progressbar.OptionSetItsString("epoch"),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionShowCount(),
	)

	for epoch := 1; epoch <= *epochs; epoch++ {
		gradient := computeGradient(entries, weights[:], k)
		for i := range weights {
			weights[i] -= *rate * gradient[i]
		}
		record(epoch)
		_ = bar.Add(1)
	}
	_ = bar.Close()

	plot := charts.NewLine()
	plot.SetXAxis(errorEpoch).AddSeries("error", errorValue)
	if f, err := os.Create("error-plot.html"); err == nil {
		_ = plot.Render(f)
		f.Close()
	}

	names := [piece.NType - 1]string{"pawn", "knight", "bishop", "rook", "queen"}
	fmt.Println("tuned weights:")
	for i, w := range weights {
		fmt.Printf("  %-7s %.1f\n", names[i], w)
	}
}

// loadDataset reads the "<result> <fen>" lines cmd/datagen emits and
// reduces each FEN to a material count, which is all a material-only
// tuner needs.
func loadDataset(path string) ([]entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var entries []entry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		resultToken, fen, found := strings.Cut(line, " ")
		if !found {
			return nil, errors.New("tune: malformed dataset line: " + line)
		}

		var result float64
		switch resultToken {
		case "[1.0]":
			result = 1.0
		case "[0.0]":
			result = 0.0
		case "[0.5]":
			result = 0.5
		default:
			return nil, errors.New("tune: unknown result token: " + resultToken)
		}

		s, err := game.FromFEN(fen)
		if err != nil {
			return nil, err
		}

		var e entry
		e.result = result
		for t := piece.Pawn; t < piece.King; t++ {
			e.counts[t] = (s.Board.PieceBBs[t] & s.Board.ColorBBs[piece.White]).Count() -
				(s.Board.PieceBBs[t] & s.Board.ColorBBs[piece.Black]).Count()
		}
		entries = append(entries, e)
	}
	return entries, scanner.Err()
}

func static(e entry, weights []float64) float64 {
	var total float64
	for i, w := range weights {
		total += float64(e.counts[i]) * w
	}
	return total
}

func sigmoid(k, x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-k*x/400.0))
}

func meanSquaredError(entries []entry, weights []float64, k float64) float64 {
	var total float64
	for _, e := range entries {
		diff := e.result - sigmoid(k, static(e, weights))
		total += diff * diff
	}
	return total / float64(len(entries))
}

// computeK does a coarse-to-fine line search for the sigmoid scale that
// minimizes error against the textbook starting weights, the same way
// a from-scratch Texel tuner calibrates before touching the weights.
func computeK(entries []entry) float64 {
	weights := []float64{1, 3, 3, 5, 9}
	start, end, step := 0.0, 10.0, 1.0
	best := meanSquaredError(entries, weights, start)

	for pass := 0; pass < 6; pass++ {
		for k := start; k <= end; k += step {
			if e := meanSquaredError(entries, weights, k); e < best {
				best, start = e, k
			}
		}
		end = start + step
		start = start - step
		step /= 10.0
	}
	return start
}

// computeGradient returns the partial derivative of the mean squared
// error with respect to each weight, via the chain rule through the
// sigmoid: this is what gradient descent follows downhill.
func computeGradient(entries []entry, weights []float64, k float64) []float64 {
	gradient := make([]float64, len(weights))
	scale := -2 * k / 400.0 / float64(len(entries))

	for _, e := range entries {
		sig := sigmoid(k, static(e, weights))
		factor := scale * (e.result - sig) * sig * (1 - sig)
		for i := range weights {
			gradient[i] += factor * float64(e.counts[i])
		}
	}
	return gradient
}
