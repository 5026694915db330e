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

package move

import (
	"testing"

	"github.com/corvidlabs/chessforge/pkg/piece"
	"github.com/corvidlabs/chessforge/pkg/square"
)

func TestStringIncludesPromotion(t *testing.T) {
	m := Move{From: square.E7, To: square.E8, Piece: piece.Pawn, Promote: piece.Queen}
	if got, want := m.String(), "e7e8q"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestIsQuiet(t *testing.T) {
	quiet := Move{From: square.E2, To: square.E4, Piece: piece.Pawn, Capture: piece.None, Promote: piece.None}
	if !quiet.IsQuiet() {
		t.Fatal("a non-capturing, non-promoting move should be quiet")
	}

	capture := Move{From: square.E4, To: square.D5, Piece: piece.Pawn, Capture: piece.Pawn, Promote: piece.None}
	if capture.IsQuiet() {
		t.Fatal("a capture should not be quiet")
	}
}

func TestIsCastleAndIsKingside(t *testing.T) {
	kingside := Move{From: square.E1, To: square.G1, Piece: piece.King}
	if !kingside.IsCastle() || !kingside.IsKingside() {
		t.Fatal("E1G1 should be a kingside castle")
	}

	queenside := Move{From: square.E1, To: square.C1, Piece: piece.King}
	if !queenside.IsCastle() || queenside.IsKingside() {
		t.Fatal("E1C1 should be a queenside castle")
	}

	normal := Move{From: square.E1, To: square.F1, Piece: piece.King}
	if normal.IsCastle() {
		t.Fatal("a one-square king move should not count as castling")
	}
}
