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

// Package board implements the bitboard-backed piece placement layer:
// one bitboard per piece type, one per color, and a square-indexed
// mailbox kept in sync for O(1) "what's on this square" lookups.
package board

import (
	"fmt"
	"strings"

	"github.com/corvidlabs/chessforge/pkg/attacks"
	"github.com/corvidlabs/chessforge/pkg/bitboard"
	"github.com/corvidlabs/chessforge/pkg/piece"
	"github.com/corvidlabs/chessforge/pkg/square"
)

// Occupant is the piece, if any, standing on a square.
type Occupant struct {
	Color piece.Color
	Type  piece.Type
}

// Empty is the Occupant denoting an empty square. It is not the zero
// Occupant, whose fields name a white pawn.
var Empty = Occupant{Color: piece.Neutral, Type: piece.None}

// IsEmpty reports whether o names no piece.
func (o Occupant) IsEmpty() bool { return o.Type == piece.None }

// BitboardSet is the piece-placement layer of a position: one bitboard
// per piece type, one per color, and a mailbox for direct square
// lookup. It knows nothing about whose turn it is, castling rights, or
// move history; GameState layers that on top.
type BitboardSet struct {
	PieceBBs [piece.NType]bitboard.Board
	ColorBBs [piece.NColor]bitboard.Board
	Mailbox  [square.N]Occupant

	Kings [piece.NColor]square.Square
}

// NewEmptyBitboardSet returns a BitboardSet with every square empty.
func NewEmptyBitboardSet() BitboardSet {
	var set BitboardSet
	for s := range set.Mailbox {
		set.Mailbox[s] = Empty
	}
	set.Kings[piece.White] = square.None
	set.Kings[piece.Black] = square.None
	return set
}

// Occupied returns every occupied square, of either color.
func (b *BitboardSet) Occupied() bitboard.Board {
	return b.ColorBBs[piece.White] | b.ColorBBs[piece.Black]
}

// At returns the piece standing on s, or Empty.
func (b *BitboardSet) At(s square.Square) Occupant {
	return b.Mailbox[s]
}

// ClearSquare removes whatever piece is on s, if any. Clearing an
// already-empty square is a no-op.
func (b *BitboardSet) ClearSquare(s square.Square) {
	o := b.Mailbox[s]
	if o.IsEmpty() {
		return
	}

	b.ColorBBs[o.Color].Unset(s)
	b.PieceBBs[o.Type].Unset(s)
	b.Mailbox[s] = Empty
}

// FillSquare places piece (c, t) on s, overwriting whatever was there.
func (b *BitboardSet) FillSquare(s square.Square, c piece.Color, t piece.Type) {
	b.ClearSquare(s)

	b.ColorBBs[c].Set(s)
	b.PieceBBs[t].Set(s)
	b.Mailbox[s] = Occupant{Color: c, Type: t}

	if t == piece.King {
		b.Kings[c] = s
	}
}

// MoveSquare relocates whatever is on from to to, clearing whatever
// was on to. It is a no-op if from is empty.
func (b *BitboardSet) MoveSquare(from, to square.Square) {
	o := b.Mailbox[from]
	if o.IsEmpty() {
		return
	}
	b.ClearSquare(from)
	b.FillSquare(to, o.Color, o.Type)
}

func (b *BitboardSet) pieces(c piece.Color, t piece.Type) bitboard.Board {
	return b.PieceBBs[t] & b.ColorBBs[c]
}

func (b *BitboardSet) Pawns(c piece.Color) bitboard.Board   { return b.pieces(c, piece.Pawn) }
func (b *BitboardSet) Knights(c piece.Color) bitboard.Board { return b.pieces(c, piece.Knight) }
func (b *BitboardSet) Bishops(c piece.Color) bitboard.Board { return b.pieces(c, piece.Bishop) }
func (b *BitboardSet) Rooks(c piece.Color) bitboard.Board   { return b.pieces(c, piece.Rook) }
func (b *BitboardSet) Queens(c piece.Color) bitboard.Board  { return b.pieces(c, piece.Queen) }
func (b *BitboardSet) King(c piece.Color) bitboard.Board    { return b.pieces(c, piece.King) }

// IsInCheck reports whether c's king is currently attacked.
func (b *BitboardSet) IsInCheck(c piece.Color) bool {
	return b.IsAttacked(b.Kings[c], c.Other())
}

// IsAttacked reports whether s is attacked by any piece of color them.
func (b *BitboardSet) IsAttacked(s square.Square, them piece.Color) bool {
	if s == square.None {
		return false
	}

	occ := b.Occupied()

	if attacks.PawnAttacks[them.Other()][s]&b.Pawns(them) != bitboard.Empty {
		return true
	}
	if attacks.Knight(s, bitboard.Empty)&b.Knights(them) != bitboard.Empty {
		return true
	}
	if attacks.King(s, bitboard.Empty)&b.King(them) != bitboard.Empty {
		return true
	}

	queens := b.Queens(them)
	if attacks.Bishop(s, occ)&(b.Bishops(them)|queens) != bitboard.Empty {
		return true
	}
	return attacks.Rook(s, occ)&(b.Rooks(them)|queens) != bitboard.Empty
}

// String renders the board as an 8x8 grid of FEN piece letters and
// dots, a8 first, for debugging.
func (b *BitboardSet) String() string {
	var sb strings.Builder
	for s := square.A8; s <= square.H1; s++ {
		o := b.Mailbox[s]
		if o.IsEmpty() {
			sb.WriteByte('.')
		} else {
			sb.WriteByte(o.Type.Letter(o.Color))
		}
		if s.File() == square.FileH {
			sb.WriteByte('\n')
		} else {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

// DebugString returns the piece grid from String followed by the
// occupied-squares bitboard.
func (b *BitboardSet) DebugString() string {
	return fmt.Sprintf("%s\noccupied:\n%s", b, b.Occupied())
}
