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

package attacks

import (
	"testing"

	"github.com/corvidlabs/chessforge/pkg/bitboard"
	"github.com/corvidlabs/chessforge/pkg/piece"
	"github.com/corvidlabs/chessforge/pkg/square"
)

func squaresOf(b bitboard.Board) map[square.Square]bool {
	set := make(map[square.Square]bool)
	for b != bitboard.Empty {
		set[b.Pop()] = true
	}
	return set
}

func TestKnightCorner(t *testing.T) {
	got := squaresOf(Knight(square.A1, bitboard.Empty))
	want := map[square.Square]bool{square.B3: true, square.C2: true}
	if len(got) != len(want) {
		t.Fatalf("Knight(A1) = %v, want %v", got, want)
	}
	for s := range want {
		if !got[s] {
			t.Fatalf("Knight(A1) missing %v: got %v", s, got)
		}
	}
}

func TestKnightCenter(t *testing.T) {
	got := Knight(square.D4, bitboard.Empty)
	if n := got.Count(); n != 8 {
		t.Fatalf("Knight(D4) has %d targets, want 8", n)
	}
}

func TestKnightExcludesFriends(t *testing.T) {
	var friends bitboard.Board
	friends.Set(square.B3)
	got := Knight(square.A1, friends)
	if got.IsSet(square.B3) {
		t.Fatal("Knight() should mask out friendly-occupied squares")
	}
}

func TestKingCorner(t *testing.T) {
	got := King(square.A1, bitboard.Empty)
	if n := got.Count(); n != 3 {
		t.Fatalf("King(A1) has %d targets, want 3", n)
	}
}

func TestKingCenter(t *testing.T) {
	got := King(square.D4, bitboard.Empty)
	if n := got.Count(); n != 8 {
		t.Fatalf("King(D4) has %d targets, want 8", n)
	}
}

func TestPawnAttacksDirection(t *testing.T) {
	white := squaresOf(PawnAttacks[piece.White][square.E4])
	if !white[square.D5] || !white[square.F5] || len(white) != 2 {
		t.Fatalf("white pawn on E4 should attack D5 and F5, got %v", white)
	}

	black := squaresOf(PawnAttacks[piece.Black][square.E4])
	if !black[square.D3] || !black[square.F3] || len(black) != 2 {
		t.Fatalf("black pawn on E4 should attack D3 and F3, got %v", black)
	}
}

func TestRookOpenBoard(t *testing.T) {
	got := Rook(square.D4, bitboard.Empty)
	if n := got.Count(); n != 14 {
		t.Fatalf("Rook(D4) on an empty board has %d targets, want 14", n)
	}
}

func TestRookBlocked(t *testing.T) {
	var occ bitboard.Board
	occ.Set(square.D6) // two squares north of D4
	got := Rook(square.D4, occ)
	if !got.IsSet(square.D6) {
		t.Fatal("Rook attacks should include the blocker itself (it can be captured)")
	}
	if got.IsSet(square.D7) || got.IsSet(square.D8) {
		t.Fatal("Rook attacks should stop at the first blocker")
	}
}

func TestBishopOpenBoard(t *testing.T) {
	got := Bishop(square.D4, bitboard.Empty)
	if n := got.Count(); n != 13 {
		t.Fatalf("Bishop(D4) on an empty board has %d targets, want 13", n)
	}
}

func TestQueenIsRookPlusBishop(t *testing.T) {
	occ := bitboard.Empty
	want := Rook(square.D4, occ) | Bishop(square.D4, occ)
	got := Queen(square.D4, occ)
	if got != want {
		t.Fatalf("Queen(D4) = %v, want Rook|Bishop = %v", got, want)
	}
}
