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
	"github.com/corvidlabs/chessforge/pkg/attacks"
	"github.com/corvidlabs/chessforge/pkg/bitboard"
	"github.com/corvidlabs/chessforge/pkg/castling"
	"github.com/corvidlabs/chessforge/pkg/move"
	"github.com/corvidlabs/chessforge/pkg/piece"
	"github.com/corvidlabs/chessforge/pkg/square"
)

// PseudoLegalMoves generates every move for the side to move without
// checking whether it leaves that side's own king in check. LegalMoves
// filters this list down by cloning the state and applying each move.
func (s *State) PseudoLegalMoves() []move.Move {
	moves := make([]move.Move, 0, 48)

	us := s.SideToMove
	friends := s.Board.ColorBBs[us]
	enemies := s.Board.ColorBBs[us.Other()]
	occ := s.Board.Occupied()

	s.genPawnMoves(&moves, us, friends, enemies)
	s.genLeaperMoves(&moves, piece.Knight, us, friends, func(sq square.Square) bitboard.Board {
		return attacks.Knight(sq, friends)
	})
	s.genSliderMoves(&moves, piece.Bishop, us, friends, func(sq square.Square) bitboard.Board {
		return attacks.Bishop(sq, occ) &^ friends
	})
	s.genSliderMoves(&moves, piece.Rook, us, friends, func(sq square.Square) bitboard.Board {
		return attacks.Rook(sq, occ) &^ friends
	})
	s.genSliderMoves(&moves, piece.Queen, us, friends, func(sq square.Square) bitboard.Board {
		return attacks.Queen(sq, occ) &^ friends
	})
	s.genLeaperMoves(&moves, piece.King, us, friends, func(sq square.Square) bitboard.Board {
		return attacks.King(sq, friends)
	})
	s.genCastlingMoves(&moves, us, occ)

	return moves
}

// LegalMoves filters PseudoLegalMoves down to moves that do not leave
// the mover's own king in check.
func (s *State) LegalMoves() []move.Move {
	pseudo := s.PseudoLegalMoves()
	legal := make([]move.Move, 0, len(pseudo))
	for _, m := range pseudo {
		clone := s.Clone()
		if err := clone.Apply(m); err != nil {
			panic("game: movegen produced an inapplicable move: " + err.Error())
		}
		if !clone.Board.IsInCheck(s.SideToMove) {
			legal = append(legal, m)
		}
	}
	return legal
}

// IsLegal reports whether m, as generated from s, is legal.
func (s *State) IsLegal(m move.Move) bool {
	clone := s.Clone()
	if err := clone.Apply(m); err != nil {
		panic("game: movegen produced an inapplicable move: " + err.Error())
	}
	return !clone.Board.IsInCheck(s.SideToMove)
}

func (s *State) genLeaperMoves(moves *[]move.Move, t piece.Type, us piece.Color, friends bitboard.Board, attacksFrom func(square.Square) bitboard.Board) {
	pieces := s.Board.PieceBBs[t] & s.Board.ColorBBs[us]
	for pieces != bitboard.Empty {
		from := pieces.Pop()
		targets := attacksFrom(from)
		s.serialize(moves, us, t, from, targets)
	}
}

func (s *State) genSliderMoves(moves *[]move.Move, t piece.Type, us piece.Color, friends bitboard.Board, attacksFrom func(square.Square) bitboard.Board) {
	pieces := s.Board.PieceBBs[t] & s.Board.ColorBBs[us]
	for pieces != bitboard.Empty {
		from := pieces.Pop()
		targets := attacksFrom(from)
		s.serialize(moves, us, t, from, targets)
	}
}

func (s *State) serialize(moves *[]move.Move, us piece.Color, t piece.Type, from square.Square, targets bitboard.Board) {
	for targets != bitboard.Empty {
		to := targets.Pop()
		capture := s.Board.At(to).Type
		*moves = append(*moves, move.Move{
			From:    from,
			To:      to,
			Color:   us,
			Piece:   t,
			Capture: capture,
			Promote: piece.None,
		})
	}
}

func (s *State) genPawnMoves(moves *[]move.Move, us piece.Color, friends, enemies bitboard.Board) {
	occ := friends | enemies
	pawns := s.Board.Pawns(us)

	promotionRank := bitboard.Rank8
	doublePushRank := bitboard.Rank4
	if us == piece.Black {
		promotionRank = bitboard.Rank1
		doublePushRank = bitboard.Rank5
	}

	for p := pawns; p != bitboard.Empty; {
		from := p.Pop()
		fromBB := bitboard.Squares[from]

		push1 := fromBB.Up(us) &^ occ
		if push1 != bitboard.Empty {
			to := push1.FirstOne()
			s.addPawnMove(moves, us, from, to, piece.None, false, false, push1&promotionRank != 0)

			push2 := push1.Up(us) &^ occ & doublePushRank
			if push2 != bitboard.Empty {
				to2 := push2.FirstOne()
				*moves = append(*moves, move.Move{From: from, To: to2, Color: us, Piece: piece.Pawn, Capture: piece.None, Promote: piece.None, DoublePush: true})
			}
		}

		attackTargets := attacks.PawnAttacks[us][from] & enemies
		for attackTargets != bitboard.Empty {
			to := attackTargets.Pop()
			capture := s.Board.At(to).Type
			s.addPawnMove(moves, us, from, to, capture, false, false, bitboard.Squares[to]&promotionRank != 0)
		}

		if s.EnPassant != square.None && attacks.PawnAttacks[us][from].IsSet(s.EnPassant) {
			*moves = append(*moves, move.Move{
				From: from, To: s.EnPassant, Color: us, Piece: piece.Pawn,
				Capture: piece.Pawn, Promote: piece.None, EnPassant: true,
			})
		}
	}
}

// addPawnMove appends a single pawn move, expanding it into the four
// promotion choices if onPromotionRank is set.
func (s *State) addPawnMove(moves *[]move.Move, us piece.Color, from, to square.Square, capture piece.Type, ep, double, onPromotionRank bool) {
	if onPromotionRank {
		for _, promote := range piece.PromotionTypes {
			*moves = append(*moves, move.Move{
				From: from, To: to, Color: us, Piece: piece.Pawn,
				Capture: capture, Promote: promote, EnPassant: ep,
			})
		}
		return
	}
	*moves = append(*moves, move.Move{
		From: from, To: to, Color: us, Piece: piece.Pawn,
		Capture: capture, Promote: piece.None, EnPassant: ep, DoublePush: double,
	})
}

// genCastlingMoves appends both castling moves for us if the king and
// rook haven't moved, the path between them is empty, and the squares
// the king crosses (including its origin) aren't attacked.
func (s *State) genCastlingMoves(moves *[]move.Move, us piece.Color, occ bitboard.Board) {
	if s.Board.IsInCheck(us) {
		return
	}

	them := us.Other()
	kingFrom := s.Board.Kings[us]

	tryCastle := func(right castling.Rights, kingTo, rookFrom square.Square) {
		if s.Castling&right == 0 {
			return
		}
		if occ&(bitboard.Between[kingFrom][rookFrom]) != bitboard.Empty {
			return
		}
		step := square.Square(1)
		if kingTo < kingFrom {
			step = -1
		}
		for sq := kingFrom; ; sq += step {
			if s.Board.IsAttacked(sq, them) {
				return
			}
			if sq == kingTo {
				break
			}
		}
		*moves = append(*moves, move.Move{
			From: kingFrom, To: kingTo, Color: us, Piece: piece.King, Capture: piece.None, Promote: piece.None,
		})
	}

	switch us {
	case piece.White:
		tryCastle(castling.WhiteKingside, square.G1, square.H1)
		tryCastle(castling.WhiteQueenside, square.C1, square.A1)
	case piece.Black:
		tryCastle(castling.BlackKingside, square.G8, square.H8)
		tryCastle(castling.BlackQueenside, square.C8, square.A8)
	}
}
