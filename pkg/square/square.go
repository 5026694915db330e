// Copyright © 2022 Rak Laptudirm <raklaptudirm@gmail.com>
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

// Package square declares constants representing every square on a
// chessboard, and related utility functions.
//
// Squares are represented using the algebraic notation.
// https://www.chessprogramming.org/Algebraic_Chess_Notation
// The null square is represented using the "-" symbol.
//
// A Square doubles as the bit index into a bitboard.Board: index =
// rank*8 + file, with A8 (Black's back rank, file a) at index 0. This
// is the same y*8+x bijection the core specification uses to relate a
// Position(x, y) to its bit index.
package square

import "fmt"

// Square represents a square on a chessboard.
type Square int8

// None represents the absence of a square, e.g. no en passant target.
const None Square = -1

// N is the number of squares on a chessboard.
const N = 64

// constants representing every square.
const (
	A8 Square = iota
	B8
	C8
	D8
	E8
	F8
	G8
	H8

	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7

	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6

	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5

	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4

	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3

	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2

	A1
	B1
	C1
	D1
	E1
	F1
	G1
	H1
)

// From creates a new instance of a Square from the given file and rank.
func From(file File, rank Rank) Square {
	return Square(int(rank)*8 + int(file))
}

// New parses a Square from its two-character algebraic notation, e.g.
// "e4", or "-" for None.
func New(id string) (Square, error) {
	if id == "-" {
		return None, nil
	}
	if len(id) != 2 {
		return None, fmt.Errorf("square: invalid square id %q", id)
	}

	file, err := FileFrom(id[0])
	if err != nil {
		return None, err
	}
	rank, err := RankFrom(id[1])
	if err != nil {
		return None, err
	}
	return From(file, rank), nil
}

// String converts a square into its algebraic string representation.
func (s Square) String() string {
	if s == None {
		return "-"
	}
	return s.File().String() + s.Rank().String()
}

// File returns the file of the given square.
func (s Square) File() File {
	return File(s % 8)
}

// Rank returns the rank of the given square.
func (s Square) Rank() Rank {
	return Rank(s / 8)
}

// Diagonal returns the index of the NE-SW diagonal the square lies on.
func (s Square) Diagonal() Diagonal {
	return 14 - Diagonal(s.Rank()) - Diagonal(s.File())
}

// AntiDiagonal returns the index of the NW-SE anti-diagonal the square
// lies on.
func (s Square) AntiDiagonal() AntiDiagonal {
	return 7 - AntiDiagonal(s.Rank()) + AntiDiagonal(s.File())
}

// Position is the (x, y) coordinate pair used at the external boundary
// (FEN, move lists handed to an orchestrator): x counts files from a,
// y counts ranks from 8, both zero-based. It relates to Square by the
// same bijection index = y*8 + x.
type Position struct {
	X, Y int
}

// ToPosition converts a Square into its (x, y) Position.
func (s Square) ToPosition() Position {
	return Position{X: int(s.File()), Y: int(s.Rank())}
}

// FromPosition converts a Position into the Square it names.
func FromPosition(p Position) Square {
	return Square(p.Y*8 + p.X)
}

// ToFileAndRank converts a Position into the algebraic (file, rank)
// character pair used for display, e.g. {0, 0} -> ('a', '8').
func (p Position) ToFileAndRank() (file, rank byte) {
	return byte('a' + p.X), byte('8' - p.Y)
}
