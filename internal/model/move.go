package model

import "fmt"

type MoveKind string

const (
	MoveNormal    MoveKind = "normal"
	MoveCastle    MoveKind = "castle"
	MoveEnPassant MoveKind = "enPassant"
	MovePromotion MoveKind = "promotion"
)

type CastleSide string

const (
	KingSide  CastleSide = "king"
	QueenSide CastleSide = "queen"
)

// rookFiles returns the rook's origin and destination files for a castle on side.
func (s CastleSide) rookFiles() (from, to int) {
	if s == KingSide {
		return 7, 5
	}
	return 0, 3
}

func (s CastleSide) kingFile() int {
	if s == KingSide {
		return 6
	}
	return 2
}

// Move is one ply. Kind selects which of the optional fields apply: Side for
// castles, Promotion for promotions. For castles From and To are the king's
// squares.
//
// Piece and Captured are snapshots taken from the board the move was
// generated against; they are never recomputed after the board changes.
type Move struct {
	Kind      MoveKind   `json:"kind"`
	From      Position   `json:"from"`
	To        Position   `json:"to"`
	Color     Color      `json:"color"`
	Side      CastleSide `json:"side,omitempty"`
	Promotion PieceType  `json:"promotion,omitempty"`
	Piece     Piece      `json:"piece"`
	Captured  *Piece     `json:"captured,omitempty"`
	// Ply is set once the move has been applied; 0 for candidates.
	Ply int `json:"ply,omitempty"`
}

func (m Move) String() string {
	switch m.Kind {
	case MoveCastle:
		return fmt.Sprintf("%s castle %s-side", m.Color, m.Side)
	case MovePromotion:
		return fmt.Sprintf("%v-%v=%s", m.From, m.To, m.Promotion)
	default:
		return fmt.Sprintf("%v-%v", m.From, m.To)
	}
}

// sameShape reports whether m and o describe the same move, ignoring
// snapshots and the promotion choice.
func (m Move) sameShape(o Move) bool {
	return m.Kind == o.Kind && m.From == o.From && m.To == o.To && m.Side == o.Side
}

// isDoubleStep reports whether m is a pawn's two-square advance.
func (m Move) isDoubleStep() bool {
	return m.Kind == MoveNormal && m.Piece.Type == Pawn && m.From.File == m.To.File &&
		abs(m.To.Rank-m.From.Rank) == 2
}

func newMove(b *Board, kind MoveKind, from, to Position) Move {
	mover := b.Get(from)
	return Move{
		Kind:     kind,
		From:     from,
		To:       to,
		Color:    mover.Color,
		Piece:    *mover,
		Captured: b.Get(to).clone(),
	}
}

func newCastle(b *Board, from Position, side CastleSide) Move {
	m := newMove(b, MoveCastle, from, Position{File: side.kingFile(), Rank: from.Rank})
	m.Side = side
	return m
}

func newEnPassant(b *Board, from, to Position) Move {
	m := newMove(b, MoveEnPassant, from, to)
	m.Captured = b.Get(Position{File: to.File, Rank: from.Rank}).clone()
	return m
}

// applyTo mutates b according to m and returns the captured piece. ply is
// recorded on pieces that make a double step.
func (m Move) applyTo(b *Board, ply int) *Piece {
	var captured *Piece
	switch m.Kind {
	case MoveNormal:
		captured = b.Relocate(m.From, m.To)
	case MoveCastle:
		b.Relocate(m.From, m.To)
		rookFrom, rookTo := m.Side.rookFiles()
		b.Relocate(Position{File: rookFrom, Rank: m.From.Rank}, Position{File: rookTo, Rank: m.From.Rank})
		b.Get(Position{File: rookTo, Rank: m.From.Rank}).HasMoved = true
	case MoveEnPassant:
		b.Relocate(m.From, m.To)
		captured = b.Remove(Position{File: m.To.File, Rank: m.From.Rank})
	case MovePromotion:
		captured = b.Relocate(m.From, m.To)
		b.Get(m.To).Type = m.Promotion
	default:
		panic(fmt.Sprintf("unknown move kind %q", m.Kind))
	}
	moved := b.Get(m.To)
	moved.HasMoved = true
	if m.isDoubleStep() {
		moved.DoubleStepPly = ply
	}
	return captured
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
