package model

import (
	"fmt"
)

type StatusKind string

const (
	InProgress StatusKind = "inProgress"
	Check      StatusKind = "check"
	Checkmate  StatusKind = "checkmate"
	Stalemate  StatusKind = "stalemate"
)

// Status is the game's outcome so far. Color is the side in check for Check
// and the winner for Checkmate; it is empty otherwise.
type Status struct {
	Kind  StatusKind `json:"kind"`
	Color Color      `json:"color,omitempty"`
}

func (s Status) IsTerminal() bool {
	return s.Kind == Checkmate || s.Kind == Stalemate
}

// Winner returns the winning color, or "" if there is none (yet).
func (s Status) Winner() Color {
	if s.Kind == Checkmate {
		return s.Color
	}
	return ""
}

type CapturedPieces struct {
	White []Piece `json:"white"`
	Black []Piece `json:"black"`
}

// AppliedMove is what ApplyMove reports back to the caller for rendering.
type AppliedMove struct {
	Move     Move   `json:"move"`
	Captured *Piece `json:"captured,omitempty"`
	Status   Status `json:"status"`
}

// GameState owns the authoritative board of one game. It is not safe for
// concurrent use; callers serialize access.
type GameState struct {
	board    *Board
	toMove   Color
	ply      int
	history  []Move
	captured CapturedPieces
	status   Status
}

// NewGame starts a game from the standard opening position with White to move.
func NewGame() *GameState {
	g, err := NewGameFromBoard(NewStandardBoard(), White)
	if err != nil {
		panic(err)
	}
	return g
}

// NewGameFromBoard starts a game from an arbitrary setup. The board must hold
// exactly one king per side, and the side not to move must not be in check.
// The game takes ownership of b.
func NewGameFromBoard(b *Board, toMove Color) (*GameState, error) {
	if toMove != White && toMove != Black {
		return nil, fmt.Errorf("unknown side to move %q", toMove)
	}
	for _, c := range []Color{White, Black} {
		if n := len(b.Find(c, King)); n != 1 {
			return nil, fmt.Errorf("%w: %d %s kings on board", ErrCorruptState, n, c)
		}
	}
	if IsInCheck(b, toMove.Opponent()) {
		return nil, fmt.Errorf("%w: %s king is attacked with %s to move", ErrCorruptState, toMove.Opponent(), toMove)
	}
	g := &GameState{
		board:    b,
		toMove:   toMove,
		history:  make([]Move, 0),
		captured: CapturedPieces{White: make([]Piece, 0), Black: make([]Piece, 0)},
	}
	g.status = g.evaluate()
	return g, nil
}

func (g *GameState) ToMove() Color { return g.toMove }

func (g *GameState) Ply() int { return g.ply }

func (g *GameState) Status() Status { return g.status }

// Board returns a copy of the current board.
func (g *GameState) Board() *Board { return g.board.Clone() }

// History returns a copy of the applied moves, oldest first.
func (g *GameState) History() []Move {
	return append([]Move(nil), g.history...)
}

// Captured returns the pieces taken so far, keyed by the capturing color.
func (g *GameState) Captured() CapturedPieces {
	return CapturedPieces{
		White: append([]Piece{}, g.captured.White...),
		Black: append([]Piece{}, g.captured.Black...),
	}
}

func (g *GameState) lastMove() *Move {
	if len(g.history) == 0 {
		return nil
	}
	return &g.history[len(g.history)-1]
}

// LegalMoves returns the legal moves of the piece standing on from.
func (g *GameState) LegalMoves(from Position) ([]Move, error) {
	if !from.OnBoard() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCoordinate, from)
	}
	if g.board.Get(from) == nil {
		return nil, fmt.Errorf("%w: %v", ErrEmptySquare, from)
	}
	return LegalMoves(g.board, from, g.lastMove()), nil
}

// AllLegalMoves returns every legal move for the side to move.
func (g *GameState) AllLegalMoves() []Move {
	return AllLegalMoves(g.board, g.toMove, g.lastMove())
}

// FindMove looks up the legal move from -> to and attaches the promotion
// choice when the move is a promotion.
func (g *GameState) FindMove(from, to Position, promotion PieceType) (Move, error) {
	moves, err := g.LegalMoves(from)
	if err != nil {
		return Move{}, err
	}
	for _, m := range moves {
		if m.To == to {
			if m.Kind == MovePromotion {
				m.Promotion = promotion
			}
			return m, nil
		}
	}
	return Move{}, fmt.Errorf("%w: %v-%v", ErrIllegalMove, from, to)
}

// ApplyMove validates m against the legal moves of its origin and applies
// it. Nothing is mutated when an error is returned.
func (g *GameState) ApplyMove(m Move) (AppliedMove, error) {
	if g.status.IsTerminal() {
		return AppliedMove{}, ErrTerminalState
	}
	if !m.From.OnBoard() || !m.To.OnBoard() {
		return AppliedMove{}, fmt.Errorf("%w: %v", ErrInvalidCoordinate, m)
	}
	mover := g.board.Get(m.From)
	if mover == nil {
		return AppliedMove{}, fmt.Errorf("%w: %v", ErrEmptySquare, m.From)
	}
	if mover.Color != g.toMove {
		return AppliedMove{}, fmt.Errorf("%w: %s to move", ErrWrongTurn, g.toMove)
	}

	var legal *Move
	for _, candidate := range LegalMoves(g.board, m.From, g.lastMove()) {
		if candidate.sameShape(m) {
			legal = &candidate
			break
		}
	}
	if legal == nil {
		return AppliedMove{}, fmt.Errorf("%w: %v", ErrIllegalMove, m)
	}
	if legal.Kind == MovePromotion {
		if !m.Promotion.IsPromotionChoice() {
			return AppliedMove{}, fmt.Errorf("%w: %q", ErrInvalidPromotionChoice, m.Promotion)
		}
		legal.Promotion = m.Promotion
	}

	ply := g.ply + 1
	captured := legal.applyTo(g.board, ply)
	if captured != nil {
		g.captured.add(g.toMove, *captured)
	}
	legal.Ply = ply
	g.ply = ply
	g.toMove = g.toMove.Opponent()
	g.history = append(g.history, *legal)
	g.status = g.evaluate()

	return AppliedMove{Move: *legal, Captured: captured.clone(), Status: g.status}, nil
}

func (c *CapturedPieces) add(by Color, p Piece) {
	if by == White {
		c.White = append(c.White, p)
	} else {
		c.Black = append(c.Black, p)
	}
}

// evaluate computes the status for the side to move.
func (g *GameState) evaluate() Status {
	inCheck := IsInCheck(g.board, g.toMove)
	if HasLegalMove(g.board, g.toMove, g.lastMove()) {
		if inCheck {
			return Status{Kind: Check, Color: g.toMove}
		}
		return Status{Kind: InProgress}
	}
	if inCheck {
		return Status{Kind: Checkmate, Color: g.toMove.Opponent()}
	}
	return Status{Kind: Stalemate}
}
