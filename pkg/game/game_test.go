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

package game

import (
	"errors"
	"testing"

	"github.com/corvidlabs/chessforge/pkg/move"
	"github.com/corvidlabs/chessforge/pkg/piece"
	"github.com/corvidlabs/chessforge/pkg/square"
)

func TestFENRoundTrip(t *testing.T) {
	cases := []string{
		StartFEN,
		"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
		"8/8/8/4k3/8/8/4K3/8 w - - 0 1",
	}
	for _, fen := range cases {
		s, err := FromFEN(fen)
		if err != nil {
			t.Fatalf("FromFEN(%q): %v", fen, err)
		}
		if got := s.FEN(); got != fen {
			t.Fatalf("round trip mismatch: got %q, want %q", got, fen)
		}
	}
}

func TestStartingPositionMoveCount(t *testing.T) {
	s := New()
	moves := s.LegalMoves()
	if len(moves) != 20 {
		t.Fatalf("starting position has %d legal moves, want 20", len(moves))
	}
}

func TestPerftDepth3(t *testing.T) {
	// known perft values for the standard starting position.
	// https://www.chessprogramming.org/Perft_Results
	want := []int{1, 20, 400, 8902}
	s := New()
	for depth, w := range want {
		if got := perft(s, depth); got != w {
			t.Fatalf("perft(%d) = %d, want %d", depth, got, w)
		}
	}
}

func perft(s *State, depth int) int {
	if depth == 0 {
		return 1
	}
	moves := s.LegalMoves()
	if depth == 1 {
		return len(moves)
	}
	nodes := 0
	for _, m := range moves {
		child := s.Clone()
		if err := child.Apply(m); err != nil {
			panic(err)
		}
		nodes += perft(child, depth-1)
	}
	return nodes
}

func TestApplyCapture(t *testing.T) {
	s, err := FromFEN("8/8/8/3p4/4P3/8/8/4K2k w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	m := move.Move{From: square.E4, To: square.D5, Color: piece.White, Piece: piece.Pawn, Capture: piece.Pawn}
	if err := s.Apply(m); err != nil {
		t.Fatal(err)
	}

	if o := s.Board.At(square.D5); o.Type != piece.Pawn || o.Color != piece.White {
		t.Fatalf("D5 should hold a white pawn after the capture, got %+v", o)
	}
	if o := s.Board.At(square.E4); !o.IsEmpty() {
		t.Fatalf("E4 should be empty after the pawn moved, got %+v", o)
	}
}

func TestApplyEnPassant(t *testing.T) {
	s, err := FromFEN("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	if err != nil {
		t.Fatal(err)
	}
	m := move.Move{From: square.E5, To: square.D6, Color: piece.White, Piece: piece.Pawn, Capture: piece.Pawn, EnPassant: true}
	if err := s.Apply(m); err != nil {
		t.Fatal(err)
	}

	if o := s.Board.At(square.D5); !o.IsEmpty() {
		t.Fatal("the captured pawn on D5 should be removed by en passant")
	}
	if o := s.Board.At(square.D6); o.Type != piece.Pawn {
		t.Fatal("D6 should hold the capturing pawn")
	}
}

func TestApplyCastleMovesRook(t *testing.T) {
	s, err := FromFEN("4k3/8/8/8/8/8/8/R3K3 w Q - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	m := move.Move{From: square.E1, To: square.C1, Color: piece.White, Piece: piece.King, Capture: piece.None, Promote: piece.None}
	if err := s.Apply(m); err != nil {
		t.Fatal(err)
	}

	if o := s.Board.At(square.D1); o.Type != piece.Rook {
		t.Fatal("castling queenside should move the rook to D1")
	}
	if o := s.Board.At(square.A1); !o.IsEmpty() {
		t.Fatal("A1 should be empty after castling")
	}
	if s.Castling != 0 {
		t.Fatalf("castling rights should be cleared after castling, got %v", s.Castling)
	}
}

func TestApplyPromotion(t *testing.T) {
	s, err := FromFEN("4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	m := move.Move{From: square.A7, To: square.A8, Color: piece.White, Piece: piece.Pawn, Promote: piece.Queen}
	if err := s.Apply(m); err != nil {
		t.Fatal(err)
	}

	if o := s.Board.At(square.A8); o.Type != piece.Queen || o.Color != piece.White {
		t.Fatalf("A8 should hold a white queen after promotion, got %+v", o)
	}
}

func TestHistoryCapacityIsBoundedFIFO(t *testing.T) {
	s, err := FromFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	shuffle := []move.Move{
		{From: square.E1, To: square.D1, Color: piece.White, Piece: piece.King, Capture: piece.None, Promote: piece.None},
		{From: square.E8, To: square.D8, Color: piece.Black, Piece: piece.King, Capture: piece.None, Promote: piece.None},
		{From: square.D1, To: square.E1, Color: piece.White, Piece: piece.King, Capture: piece.None, Promote: piece.None},
		{From: square.D8, To: square.E8, Color: piece.Black, Piece: piece.King, Capture: piece.None, Promote: piece.None},
	}

	for i := 0; i < 3; i++ {
		for _, m := range shuffle {
			if err := s.Apply(m); err != nil {
				t.Fatal(err)
			}
		}
	}

	if len(s.History) != maxHistory {
		t.Fatalf("len(History) = %d after %d half-moves, want capped at %d", len(s.History), 3*len(shuffle), maxHistory)
	}

	want := MoveHistoryNode{From: square.D8, To: square.E8, Player: piece.Black, Piece: piece.King}
	if got := s.History[len(s.History)-1]; got != want {
		t.Fatalf("most recent history entry = %+v, want %+v", got, want)
	}
}

func TestApplyRejectsMissingPiece(t *testing.T) {
	s := New()
	m := move.Move{From: square.E4, To: square.E5, Color: piece.White, Piece: piece.Pawn}
	if err := s.Apply(m); !errors.Is(err, ErrNoPieceAtSource) {
		t.Fatalf("Apply on an empty source square: got %v, want ErrNoPieceAtSource", err)
	}
}

func TestFiftyMoveDraw(t *testing.T) {
	s := New()
	s.HalfmoveClock = 99
	if s.IsFiftyMoveDraw() {
		t.Fatal("99 halfmoves should not yet be a draw")
	}
	s.HalfmoveClock = 100
	if !s.IsFiftyMoveDraw() {
		t.Fatal("100 halfmoves should be a fifty-move draw")
	}
}

func TestRepetitionDraw(t *testing.T) {
	s, err := FromFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	shuffle := []move.Move{
		{From: square.E1, To: square.D1, Color: piece.White, Piece: piece.King, Capture: piece.None, Promote: piece.None},
		{From: square.E8, To: square.D8, Color: piece.Black, Piece: piece.King, Capture: piece.None, Promote: piece.None},
		{From: square.D1, To: square.E1, Color: piece.White, Piece: piece.King, Capture: piece.None, Promote: piece.None},
		{From: square.D8, To: square.E8, Color: piece.Black, Piece: piece.King, Capture: piece.None, Promote: piece.None},
	}
	for _, m := range shuffle {
		if err := s.Apply(m); err != nil {
			t.Fatal(err)
		}
	}
	if s.IsRepetitionDraw() {
		t.Fatal("position has only recurred once so far, not a draw yet")
	}

	for _, m := range shuffle {
		if err := s.Apply(m); err != nil {
			t.Fatal(err)
		}
	}
	if !s.IsRepetitionDraw() {
		t.Fatal("the same position recurring four plies apart should be flagged a draw")
	}
}
