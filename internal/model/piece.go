package model

type Color string

const (
	White Color = "white"
	Black Color = "black"
)

func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

// forward is the rank direction pawns of this color advance in.
func (c Color) forward() int {
	if c == White {
		return 1
	}
	return -1
}

func (c Color) backRank() int {
	if c == White {
		return 0
	}
	return 7
}

func (c Color) pawnRank() int {
	if c == White {
		return 1
	}
	return 6
}

func (c Color) promotionRank() int {
	return c.Opponent().backRank()
}

// enPassantRank is the rank a pawn of this color must stand on to capture en passant.
func (c Color) enPassantRank() int {
	if c == White {
		return 4
	}
	return 3
}

type PieceType string

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
)

func (t PieceType) IsValid() bool {
	return t == King || t == Pawn || t.IsPromotionChoice()
}

// IsPromotionChoice reports whether a pawn may promote to t.
func (t PieceType) IsPromotionChoice() bool {
	switch t {
	case Queen, Rook, Bishop, Knight:
		return true
	}
	return false
}

type Piece struct {
	Type     PieceType `json:"type"`
	Color    Color     `json:"color"`
	HasMoved bool      `json:"hasMoved"`
	// DoubleStepPly is the ply on which this pawn advanced two squares, 0 if never.
	DoubleStepPly int `json:"doubleStepPly,omitempty"`
}

func NewPiece(color Color, t PieceType) *Piece {
	return &Piece{Type: t, Color: color}
}

func (p *Piece) clone() *Piece {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}
