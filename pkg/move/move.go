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

// Package move declares the Move type shared by move generation,
// search, and the game state mutator.
package move

import (
	"github.com/corvidlabs/chessforge/pkg/piece"
	"github.com/corvidlabs/chessforge/pkg/square"
)

// Move is a single ply, fully self-described so that neither applying
// nor ordering it needs to consult the board it was generated from.
type Move struct {
	From square.Square
	To   square.Square

	Color   piece.Color
	Piece   piece.Type // piece that is moving
	Capture piece.Type // piece.None if not a capture
	Promote piece.Type // piece.None unless this is a promotion

	EnPassant bool // this move is an en passant capture
	DoublePush bool // this move is a double pawn push
}

func (m Move) String() string {
	str := m.From.String() + m.To.String()
	if m.Promote != piece.None {
		str += string(m.Promote.Letter(piece.Black))
	}
	return str
}

// IsCapture reports whether m captures a piece, including en passant.
func (m Move) IsCapture() bool {
	return m.Capture != piece.None
}

// IsPromotion reports whether m promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Promote != piece.None
}

// IsQuiet reports whether m is neither a capture nor a promotion, i.e.
// it is excluded from quiescence search.
func (m Move) IsQuiet() bool {
	return !m.IsCapture() && !m.IsPromotion()
}

// IsCastle reports whether m is a king move of two files, the encoding
// used for castling.
func (m Move) IsCastle() bool {
	if m.Piece != piece.King {
		return false
	}
	df := int(m.To.File()) - int(m.From.File())
	return df == 2 || df == -2
}

// IsKingside reports whether a castling move m castles towards the
// h-file. The caller must have already checked IsCastle.
func (m Move) IsKingside() bool {
	return m.To.File() == square.FileG
}
