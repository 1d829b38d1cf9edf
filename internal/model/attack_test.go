package model

import "testing"

func TestIsSquareAttacked(t *testing.T) {
	tests := []struct {
		name     string
		pieces   map[string]*Piece
		square   string
		defender Color
		want     bool
	}{
		{
			name:     "rook on open file",
			pieces:   map[string]*Piece{"e8": NewPiece(Black, Rook)},
			square:   "e1",
			defender: White,
			want:     true,
		},
		{
			name: "rook blocked by own piece",
			pieces: map[string]*Piece{
				"e8": NewPiece(Black, Rook),
				"e5": NewPiece(Black, Knight),
			},
			square:   "e1",
			defender: White,
			want:     false,
		},
		{
			name: "rook blocked by defender piece",
			pieces: map[string]*Piece{
				"e8": NewPiece(Black, Rook),
				"e2": NewPiece(White, Pawn),
			},
			square:   "e1",
			defender: White,
			want:     false,
		},
		{
			name:     "bishop does not attack orthogonally",
			pieces:   map[string]*Piece{"e8": NewPiece(Black, Bishop)},
			square:   "e1",
			defender: White,
			want:     false,
		},
		{
			name:     "queen on diagonal",
			pieces:   map[string]*Piece{"a5": NewPiece(Black, Queen)},
			square:   "e1",
			defender: White,
			want:     true,
		},
		{
			name:     "own queen is not an attacker",
			pieces:   map[string]*Piece{"a5": NewPiece(White, Queen)},
			square:   "e1",
			defender: White,
			want:     false,
		},
		{
			name:     "knight",
			pieces:   map[string]*Piece{"f3": NewPiece(Black, Knight)},
			square:   "e1",
			defender: White,
			want:     true,
		},
		{
			name:     "adjacent king",
			pieces:   map[string]*Piece{"d2": NewPiece(Black, King)},
			square:   "e1",
			defender: White,
			want:     true,
		},
		{
			name:     "black pawn attacks downward",
			pieces:   map[string]*Piece{"d5": NewPiece(Black, Pawn)},
			square:   "e4",
			defender: White,
			want:     true,
		},
		{
			name:     "black pawn does not attack backwards",
			pieces:   map[string]*Piece{"d3": NewPiece(Black, Pawn)},
			square:   "e4",
			defender: White,
			want:     false,
		},
		{
			name:     "white pawn attacks upward",
			pieces:   map[string]*Piece{"f3": NewPiece(White, Pawn)},
			square:   "e4",
			defender: Black,
			want:     true,
		},
		{
			name:     "pawn does not attack straight ahead",
			pieces:   map[string]*Piece{"e3": NewPiece(White, Pawn)},
			square:   "e4",
			defender: Black,
			want:     false,
		},
		{
			name:     "edge square with no attackers",
			pieces:   map[string]*Piece{"h8": NewPiece(Black, Knight)},
			square:   "a1",
			defender: White,
			want:     false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewEmptyBoard()
			for name, p := range tt.pieces {
				b.Place(sq(t, name), p)
			}
			if got := IsSquareAttacked(b, sq(t, tt.square), tt.defender); got != tt.want {
				t.Fatalf("IsSquareAttacked(%s, %s) = %v, want %v", tt.square, tt.defender, got, tt.want)
			}
		})
	}
}

func TestIsInCheckPanicsWithoutKing(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic when king is missing")
		}
	}()
	IsInCheck(NewEmptyBoard(), White)
}
