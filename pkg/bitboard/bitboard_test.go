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

package bitboard

import (
	"testing"

	"github.com/corvidlabs/chessforge/pkg/piece"
	"github.com/corvidlabs/chessforge/pkg/square"
)

func TestSetUnsetIsSet(t *testing.T) {
	var b Board
	b.Set(square.E4)
	if !b.IsSet(square.E4) {
		t.Fatal("E4 should be set")
	}
	b.Unset(square.E4)
	if b.IsSet(square.E4) {
		t.Fatal("E4 should be unset")
	}
}

func TestSetNoneIsNoop(t *testing.T) {
	var b Board
	b.Set(square.None)
	if b != Empty {
		t.Fatalf("setting square.None mutated the board: %v", b)
	}
}

func TestPopOrder(t *testing.T) {
	var b Board
	b.Set(square.H8)
	b.Set(square.A8)
	b.Set(square.D5)

	var got []square.Square
	for b != Empty {
		got = append(got, b.Pop())
	}

	want := []square.Square{square.A8, square.H8, square.D5}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestCount(t *testing.T) {
	var b Board
	for _, s := range []square.Square{square.A1, square.B2, square.C3} {
		b.Set(s)
	}
	if c := b.Count(); c != 3 {
		t.Fatalf("Count() = %d, want 3", c)
	}
}

func TestNorthSouth(t *testing.T) {
	var b Board
	b.Set(square.E4)
	if n := b.North(); !n.IsSet(square.E5) {
		t.Fatalf("North() of E4 should set E5, got %v", n)
	}
	if s := b.South(); !s.IsSet(square.E3) {
		t.Fatalf("South() of E4 should set E3, got %v", s)
	}
}

func TestEastWestNoWraparound(t *testing.T) {
	var h Board
	h.Set(square.H4)
	if e := h.East(); e != Empty {
		t.Fatalf("East() of a file-h square should wrap to Empty, got %v", e)
	}

	var a Board
	a.Set(square.A4)
	if w := a.West(); w != Empty {
		t.Fatalf("West() of a file-a square should wrap to Empty, got %v", w)
	}
}

func TestUpDownRespectsColor(t *testing.T) {
	var b Board
	b.Set(square.E4)

	if up := b.Up(piece.White); !up.IsSet(square.E5) {
		t.Fatalf("White Up(E4) should set E5, got %v", up)
	}
	if up := b.Up(piece.Black); !up.IsSet(square.E3) {
		t.Fatalf("Black Up(E4) should set E3, got %v", up)
	}
	if down := b.Down(piece.White); !down.IsSet(square.E3) {
		t.Fatalf("White Down(E4) should set E3, got %v", down)
	}
	if down := b.Down(piece.Black); !down.IsSet(square.E5) {
		t.Fatalf("Black Down(E4) should set E5, got %v", down)
	}
}

func TestShiftFilesNoWraparound(t *testing.T) {
	var rankOfH Board
	for r := square.Rank8; r <= square.Rank1; r++ {
		rankOfH.Set(square.From(square.FileH, r))
	}

	shifted := ShiftFiles(rankOfH, 2)
	if shifted != Empty {
		t.Fatalf("shifting file h two files east should vanish, got %v", shifted)
	}

	var e4 Board
	e4.Set(square.E4)
	shifted = ShiftFiles(e4, 2)
	if !shifted.IsSet(square.G4) {
		t.Fatalf("ShiftFiles(E4, 2) should set G4, got %v", shifted)
	}

	shifted = ShiftFiles(e4, -2)
	if !shifted.IsSet(square.C4) {
		t.Fatalf("ShiftFiles(E4, -2) should set C4, got %v", shifted)
	}
}

func TestFirstOne(t *testing.T) {
	var b Board
	b.Set(square.D5)
	b.Set(square.A1)
	if first := b.FirstOne(); first != square.D5 {
		t.Fatalf("FirstOne() = %v, want D5 (lower bit index than A1)", first)
	}
}
