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

// Package game implements the full game-state layer on top of
// pkg/board: side to move, castling rights, the en passant target,
// move counters, move generation, and move application.
package game

import (
	"github.com/corvidlabs/chessforge/pkg/board"
	"github.com/corvidlabs/chessforge/pkg/castling"
	"github.com/corvidlabs/chessforge/pkg/piece"
	"github.com/corvidlabs/chessforge/pkg/square"
)

// State is a complete, self-contained chess position.
type State struct {
	Board board.BitboardSet

	SideToMove piece.Color
	Castling   castling.Rights
	EnPassant  square.Square

	HalfmoveClock  int
	FullmoveNumber int

	History []MoveHistoryNode
}

// PieceNode describes a single piece on the board in terms of the
// external (x, y) coordinate space, for handing a position's contents
// to an orchestrator without leaking the internal Square/bitboard
// representation.
type PieceNode struct {
	Position square.Position
	Color    piece.Color
	Type     piece.Type
}

// maxHistory is the capacity of State.History: only the last 8
// half-moves are kept, FIFO, which is all the repetition check (and
// the spec's clone-cost bound) needs.
const maxHistory = 8

// MoveHistoryNode is the move tuple recorded after applying a move:
// source, destination, the player who moved, and the piece type that
// moved. Repetition detection compares these tuples, not full board
// snapshots.
type MoveHistoryNode struct {
	From, To square.Square
	Player   piece.Color
	Piece    piece.Type
}

// New returns the standard starting position.
func New() *State {
	s, err := FromFEN(StartFEN)
	if err != nil {
		panic("game: invalid built-in start FEN: " + err.Error())
	}
	return s
}

// Pieces lists every piece currently on the board.
func (s *State) Pieces() []PieceNode {
	nodes := make([]PieceNode, 0, 32)
	for sq := square.A8; sq <= square.H1; sq++ {
		o := s.Board.At(sq)
		if o.IsEmpty() {
			continue
		}
		nodes = append(nodes, PieceNode{
			Position: sq.ToPosition(),
			Color:    o.Color,
			Type:     o.Type,
		})
	}
	return nodes
}

// pushHistory appends n to s.History, evicting from the front once the
// window exceeds maxHistory entries.
func (s *State) pushHistory(n MoveHistoryNode) {
	s.History = append(s.History, n)
	if len(s.History) > maxHistory {
		s.History = s.History[len(s.History)-maxHistory:]
	}
}

// Clone returns a deep copy of s. Search and the legality filter build
// on this: they apply each move to a clone, never to the state it was
// generated from.
func (s *State) Clone() *State {
	clone := *s
	clone.History = make([]MoveHistoryNode, len(s.History))
	copy(clone.History, s.History)
	return &clone
}

// IsRepetitionDraw reports whether the last eight recorded move tuples
// repeat four plies apart, i.e. entries 0..3 of the window equal
// entries 4..7 one-for-one. This is a narrower, cheaper check than
// full threefold repetition over the whole game: two different move
// sequences that return to the same board position are not caught
// unless the move tuples themselves also recur.
func (s *State) IsRepetitionDraw() bool {
	n := len(s.History)
	if n < 8 {
		return false
	}
	window := s.History[n-8:]
	for i := 0; i < 4; i++ {
		if window[i] != window[i+4] {
			return false
		}
	}
	return true
}

// IsFiftyMoveDraw reports whether the halfmove clock has reached the
// fifty-move rule threshold.
func (s *State) IsFiftyMoveDraw() bool {
	return s.HalfmoveClock >= 100
}
