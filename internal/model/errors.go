package model

import "errors"

var (
	ErrInvalidCoordinate      = errors.New("invalid coordinate")
	ErrEmptySquare            = errors.New("no piece at square")
	ErrIllegalMove            = errors.New("illegal move")
	ErrWrongTurn              = errors.New("not your turn")
	ErrInvalidPromotionChoice = errors.New("invalid promotion choice")
	ErrTerminalState          = errors.New("game is over")
	// ErrCorruptState means a board invariant (one king per side) is broken.
	ErrCorruptState = errors.New("corrupt game state")
)
