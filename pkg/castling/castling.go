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

// Package castling declares the castling-rights bitmask and the FEN
// castling field parser/serializer.
package castling

import "github.com/corvidlabs/chessforge/pkg/piece"

// Rights is a bitmask of the four possible castling rights.
type Rights byte

const (
	WhiteKingside  Rights = 1 << 0
	WhiteQueenside Rights = 1 << 1
	BlackKingside  Rights = 1 << 2
	BlackQueenside Rights = 1 << 3

	None Rights = 0

	White Rights = WhiteKingside | WhiteQueenside
	Black Rights = BlackKingside | BlackQueenside

	Kingside  Rights = WhiteKingside | BlackKingside
	Queenside Rights = WhiteQueenside | BlackQueenside

	All Rights = White | Black

	N = 16
)

// NewRights parses the castling field of a FEN string, e.g. "KQkq" or
// "-".
func NewRights(r string) Rights {
	var rights Rights

	if r == "-" {
		return None
	}

	if r != "" && r[0] == 'K' {
		r = r[1:]
		rights |= WhiteKingside
	}

	if r != "" && r[0] == 'Q' {
		r = r[1:]
		rights |= WhiteQueenside
	}

	if r != "" && r[0] == 'k' {
		r = r[1:]
		rights |= BlackKingside
	}

	if r != "" && r[0] == 'q' {
		rights |= BlackQueenside
	}

	return rights
}

func (c Rights) String() string {
	var str string

	if c&WhiteKingside != 0 {
		str += "K"
	}

	if c&WhiteQueenside != 0 {
		str += "Q"
	}

	if c&BlackKingside != 0 {
		str += "k"
	}

	if c&BlackQueenside != 0 {
		str += "q"
	}

	if str == "" {
		str = "-"
	}

	return str
}

// ForColor returns the subset of rights belonging to the given color.
func ForColor(color piece.Color) Rights {
	if color == piece.White {
		return White
	}
	return Black
}

// KingsideFor and QueensideFor return the single-bit right for one
// color and side, for use when updating rights after a king or rook
// move.
func KingsideFor(color piece.Color) Rights {
	if color == piece.White {
		return WhiteKingside
	}
	return BlackKingside
}

func QueensideFor(color piece.Color) Rights {
	if color == piece.White {
		return WhiteQueenside
	}
	return BlackQueenside
}

// Has reports whether c grants every right in other.
func (c Rights) Has(other Rights) bool {
	return c&other == other
}

// Remove clears the given rights and returns the result.
func (c Rights) Remove(other Rights) Rights {
	return c &^ other
}
