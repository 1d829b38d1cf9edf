package model

import (
	"encoding/json"
	"fmt"
)

var backRankOrder = [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// Board is an 8x8 grid indexed [rank][file]. A nil entry is an empty square.
type Board struct {
	squares [8][8]*Piece
}

func NewEmptyBoard() *Board {
	return &Board{}
}

// NewStandardBoard returns the 32-piece opening position.
func NewStandardBoard() *Board {
	b := &Board{}
	for file, t := range backRankOrder {
		b.squares[White.backRank()][file] = NewPiece(White, t)
		b.squares[Black.backRank()][file] = NewPiece(Black, t)
		b.squares[White.pawnRank()][file] = NewPiece(White, Pawn)
		b.squares[Black.pawnRank()][file] = NewPiece(Black, Pawn)
	}
	return b
}

func mustOnBoard(p Position) {
	if !p.OnBoard() {
		panic(fmt.Errorf("%w: %v", ErrInvalidCoordinate, p))
	}
}

// Get returns the piece at p or nil. p must be on the board.
func (b *Board) Get(p Position) *Piece {
	mustOnBoard(p)
	return b.squares[p.Rank][p.File]
}

func (b *Board) isEmpty(p Position) bool {
	return b.Get(p) == nil
}

func (b *Board) isEnemy(p Position, c Color) bool {
	pc := b.Get(p)
	return pc != nil && pc.Color != c
}

func (b *Board) Place(p Position, piece *Piece) {
	mustOnBoard(p)
	b.squares[p.Rank][p.File] = piece
}

// Remove clears p and returns whatever stood there.
func (b *Board) Remove(p Position) *Piece {
	mustOnBoard(p)
	prev := b.squares[p.Rank][p.File]
	b.squares[p.Rank][p.File] = nil
	return prev
}

// Relocate moves the occupant of from to to and returns the previous occupant
// of to. It does not check legality.
func (b *Board) Relocate(from, to Position) *Piece {
	mustOnBoard(from)
	mustOnBoard(to)
	captured := b.squares[to.Rank][to.File]
	b.squares[to.Rank][to.File] = b.squares[from.Rank][from.File]
	b.squares[from.Rank][from.File] = nil
	return captured
}

// Clone returns a deep copy sharing no pieces with b.
func (b *Board) Clone() *Board {
	c := &Board{}
	for r := range b.squares {
		for f := range b.squares[r] {
			c.squares[r][f] = b.squares[r][f].clone()
		}
	}
	return c
}

// Find returns every square holding a piece of the given color and type.
func (b *Board) Find(color Color, t PieceType) []Position {
	var found []Position
	for r := range b.squares {
		for f, pc := range b.squares[r] {
			if pc != nil && pc.Color == color && pc.Type == t {
				found = append(found, Position{File: f, Rank: r})
			}
		}
	}
	return found
}

// kingPosition panics with ErrCorruptState unless exactly one king of c is on the board.
func (b *Board) kingPosition(c Color) Position {
	kings := b.Find(c, King)
	if len(kings) != 1 {
		panic(fmt.Errorf("%w: %d %s kings on board", ErrCorruptState, len(kings), c))
	}
	return kings[0]
}

// MarshalJSON encodes the board as eight ranks, rank 1 first.
func (b *Board) MarshalJSON() ([]byte, error) {
	rows := make([][]*Piece, 8)
	for r := range b.squares {
		rows[r] = b.squares[r][:]
	}
	return json.Marshal(rows)
}
