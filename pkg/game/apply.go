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

package game

import (
	"fmt"

	"github.com/corvidlabs/chessforge/pkg/castling"
	"github.com/corvidlabs/chessforge/pkg/move"
	"github.com/corvidlabs/chessforge/pkg/piece"
	"github.com/corvidlabs/chessforge/pkg/square"
)

// Apply mutates s in place to reflect playing m, returning
// ErrNoPieceAtSource if m.From holds no piece of m's color and type.
// Callers that need to keep the pre-move state must Clone first; Apply
// never does so itself, since search clones once per node and then
// applies moves directly to the clone.
//
// The steps, in order: locate the moving piece, remove the captured
// piece (including the en passant special case), move the piece,
// promote it if applicable, move the rook on a castle, update castling
// rights, set or clear the en passant target, update the halfmove
// clock and fullmove number, flip the side to move, and finally record
// the move in history.
func (s *State) Apply(m move.Move) error {
	us := m.Color
	them := us.Other()

	if o := s.Board.At(m.From); o.Type != m.Piece || o.Color != us {
		return fmt.Errorf("%w: %s at %s", ErrNoPieceAtSource, m.Piece, m.From)
	}

	if m.EnPassant {
		capturedSq := square.From(m.To.File(), m.From.Rank())
		s.Board.ClearSquare(capturedSq)
	} else if m.IsCapture() {
		s.Board.ClearSquare(m.To)
	}

	s.Board.MoveSquare(m.From, m.To)

	if m.IsPromotion() {
		s.Board.FillSquare(m.To, us, m.Promote)
	}

	if m.IsCastle() {
		rank := m.From.Rank()
		if m.IsKingside() {
			s.Board.MoveSquare(square.From(square.FileH, rank), square.From(square.FileF, rank))
		} else {
			s.Board.MoveSquare(square.From(square.FileA, rank), square.From(square.FileD, rank))
		}
	}

	s.Castling = s.Castling.Remove(castlingRightsLost(m))

	if m.DoublePush {
		epRank := m.From.Rank() + (m.To.Rank()-m.From.Rank())/2
		s.EnPassant = square.From(m.From.File(), epRank)
	} else {
		s.EnPassant = square.None
	}

	if m.Piece == piece.Pawn || m.IsCapture() {
		s.HalfmoveClock = 0
	} else {
		s.HalfmoveClock++
	}

	if us == piece.Black {
		s.FullmoveNumber++
	}

	s.SideToMove = them
	s.pushHistory(MoveHistoryNode{From: m.From, To: m.To, Player: us, Piece: m.Piece})
	return nil
}

// castlingRightsLost returns the castling rights a move invalidates: a
// king or rook moving off, or a rook being captured on, its starting
// square.
func castlingRightsLost(m move.Move) castling.Rights {
	var lost castling.Rights

	switch m.From {
	case square.E1:
		lost |= castling.White
	case square.E8:
		lost |= castling.Black
	case square.A1:
		lost |= castling.WhiteQueenside
	case square.H1:
		lost |= castling.WhiteKingside
	case square.A8:
		lost |= castling.BlackQueenside
	case square.H8:
		lost |= castling.BlackKingside
	}

	switch m.To {
	case square.A1:
		lost |= castling.WhiteQueenside
	case square.H1:
		lost |= castling.WhiteKingside
	case square.A8:
		lost |= castling.BlackQueenside
	case square.H8:
		lost |= castling.BlackKingside
	}

	return lost
}
