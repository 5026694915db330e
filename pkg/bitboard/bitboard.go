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

// Package bitboard implements a 64-bit bitboard and the related shift,
// mask, and query helpers every other package builds on.
package bitboard

import (
	"math/bits"
	"strings"

	"github.com/corvidlabs/chessforge/pkg/piece"
	"github.com/corvidlabs/chessforge/pkg/square"
)

// Board is a 64-bit bitboard: bit i is set iff square.Square(i) is
// occupied (or, in an attack board, attacked/reachable).
type Board uint64

const (
	Empty    Board = 0
	Universe Board = 0xffffffffffffffff
)

// Squares holds the single-bit board for every square, built once at
// init so callers never need to compute 1<<s themselves.
var Squares [square.N]Board

func init() {
	for s := square.A8; s <= square.H1; s++ {
		Squares[s] = 1 << uint(s)
	}
}

// String renders the board as an 8x8 grid of 1s and 0s, a8 first.
func (b Board) String() string {
	var sb strings.Builder
	for s := square.A8; s <= square.H1; s++ {
		if b.IsSet(s) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
		if s.File() == square.FileH {
			sb.WriteByte('\n')
		} else {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

// IsSet reports whether square s is set in b.
func (b Board) IsSet(s square.Square) bool {
	return b&Squares[s] != Empty
}

// Set sets square s in b. Setting square.None is a no-op.
func (b *Board) Set(s square.Square) {
	if s == square.None {
		return
	}
	*b |= Squares[s]
}

// Unset clears square s in b. Clearing square.None is a no-op.
func (b *Board) Unset(s square.Square) {
	if s == square.None {
		return
	}
	*b &^= Squares[s]
}

// Pop removes and returns the least-significant set square of b.
func (b *Board) Pop() square.Square {
	s := b.FirstOne()
	*b &= *b - 1
	return s
}

// FirstOne returns the least-significant set square of b, without
// removing it. The result is meaningless if b is Empty.
func (b Board) FirstOne() square.Square {
	return square.Square(bits.TrailingZeros64(uint64(b)))
}

// Count returns the number of set squares in b.
func (b Board) Count() int {
	return bits.OnesCount64(uint64(b))
}

// North shifts b towards rank 8 (decreasing bit index).
func (b Board) North() Board { return b >> 8 }

// South shifts b towards rank 1 (increasing bit index).
func (b Board) South() Board { return b << 8 }

// East shifts b one file towards h, masking off wraparound from file h.
func (b Board) East() Board { return (b &^ FileH) << 1 }

// West shifts b one file towards a, masking off wraparound from file a.
func (b Board) West() Board { return (b &^ FileA) >> 1 }

// Up shifts b towards the given color's promotion rank.
func (b Board) Up(c piece.Color) Board {
	if c == piece.White {
		return b.North()
	}
	return b.South()
}

// Down shifts b towards the given color's own back rank.
func (b Board) Down(c piece.Color) Board {
	if c == piece.White {
		return b.South()
	}
	return b.North()
}

// ShiftFiles performs the "file-safe shift" of §4.2: shifting a board
// by dx files (positive = towards h) without letting bits wrap around
// the board edge. It is the primitive leaper-attack generation is built
// from: mask out the files that would wrap, then shift.
func ShiftFiles(b Board, dx int) Board {
	switch {
	case dx == 0:
		return b
	case dx > 0:
		return (b &^ fileWrapMaskEast(dx)) << uint(dx)
	default:
		return (b &^ fileWrapMaskWest(-dx)) >> uint(-dx)
	}
}

// fileWrapMaskEast returns the mask of the n rightmost files, which
// must be cleared before shifting n files to the east (towards h).
func fileWrapMaskEast(n int) Board {
	var m Board
	for f := square.FileH; f > square.FileH-File(n); f-- {
		m |= Files[f]
	}
	return m
}

// fileWrapMaskWest returns the mask of the n leftmost files, which must
// be cleared before shifting n files to the west (towards a).
func fileWrapMaskWest(n int) Board {
	var m Board
	for f := square.FileA; f < square.FileA+File(n); f++ {
		m |= Files[f]
	}
	return m
}

// File is a local alias so the mask helpers above can do file
// arithmetic without importing square.File under a different name.
type File = square.File
