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

package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/corvidlabs/chessforge/pkg/board"
	"github.com/corvidlabs/chessforge/pkg/castling"
	"github.com/corvidlabs/chessforge/pkg/piece"
	"github.com/corvidlabs/chessforge/pkg/square"
)

// StartFEN is the FEN of the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FromFEN parses a position from Forsyth-Edwards Notation.
// https://www.chessprogramming.org/Forsyth-Edwards_Notation
func FromFEN(fen string) (*State, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("%w: %q: need at least 4 fields", ErrInvalidFEN, fen)
	}
	// halfmove clock and fullmove number are optional in some FEN
	// producers; default to a fresh game's values.
	for len(fields) < 6 {
		if len(fields) == 4 {
			fields = append(fields, "0")
		} else {
			fields = append(fields, "1")
		}
	}

	s := &State{Board: board.NewEmptyBitboardSet()}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("%w: %q: need 8 ranks, got %d", ErrInvalidFEN, fen, len(ranks))
	}
	for rankID, rankData := range ranks {
		file := square.FileA
		for _, ch := range rankData {
			if ch >= '1' && ch <= '8' {
				file += square.File(ch - '0')
				continue
			}
			if int(file) > int(square.FileH) {
				return nil, fmt.Errorf("%w: %q: rank %d overflows", ErrInvalidFEN, fen, rankID)
			}
			t, c, err := piece.TypeFromLetter(byte(ch))
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %v", ErrInvalidFEN, fen, err)
			}
			sq := square.From(file, square.Rank(rankID))
			s.Board.FillSquare(sq, c, t)
			file++
		}
	}

	color, err := piece.ColorFromString(fields[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidFEN, fen, err)
	}
	s.SideToMove = color

	s.Castling = castling.NewRights(fields[2])

	ep, err := square.New(fields[3])
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidFEN, fen, err)
	}
	s.EnPassant = ep

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil {
		return nil, fmt.Errorf("%w: %q: bad halfmove clock: %v", ErrInvalidFEN, fen, err)
	}
	s.HalfmoveClock = halfmove

	fullmove, err := strconv.Atoi(fields[5])
	if err != nil {
		return nil, fmt.Errorf("%w: %q: bad fullmove number: %v", ErrInvalidFEN, fen, err)
	}
	s.FullmoveNumber = fullmove

	return s, nil
}

// FEN serializes s back into Forsyth-Edwards Notation.
func (s *State) FEN() string {
	var sb strings.Builder

	for rank := square.Rank8; rank <= square.Rank1; rank++ {
		empty := 0
		for file := square.FileA; file <= square.FileH; file++ {
			o := s.Board.At(square.From(file, rank))
			if o.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(o.Type.Letter(o.Color))
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank != square.Rank1 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(s.SideToMove.String())
	sb.WriteByte(' ')
	sb.WriteString(s.Castling.String())
	sb.WriteByte(' ')
	sb.WriteString(s.EnPassant.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(s.HalfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(s.FullmoveNumber))

	return sb.String()
}
