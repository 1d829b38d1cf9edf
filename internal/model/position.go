package model

import (
	"fmt"
	"strings"
)

// Position is a board square. File 0 is the a-file, rank 0 is White's back
// rank. Off-board values are allowed for arithmetic but must be checked with
// OnBoard before they are used to index a Board.
type Position struct {
	File int `json:"file"`
	Rank int `json:"rank"`
}

func (p Position) OnBoard() bool {
	return p.File >= 0 && p.File < 8 && p.Rank >= 0 && p.Rank < 8
}

// Add offsets p by d.
func (p Position) Add(d Position) Position {
	return Position{File: p.File + d.File, Rank: p.Rank + d.Rank}
}

func (p Position) String() string {
	if !p.OnBoard() {
		return fmt.Sprintf("(%d,%d)", p.File, p.Rank)
	}
	return fmt.Sprintf("%c%d", 'a'+p.File, p.Rank+1)
}

// ParsePosition reads a square name such as "e4".
func ParsePosition(s string) (Position, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
	}
	p := Position{File: int(s[0]) - 'a', Rank: int(s[1]) - '1'}
	if !p.OnBoard() {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
	}
	return p, nil
}

var (
	orthogonalDirs = []Position{{File: 1, Rank: 0}, {File: -1, Rank: 0}, {File: 0, Rank: 1}, {File: 0, Rank: -1}}
	diagonalDirs   = []Position{{File: 1, Rank: 1}, {File: 1, Rank: -1}, {File: -1, Rank: 1}, {File: -1, Rank: -1}}
	kingDirs       = append(append([]Position{}, orthogonalDirs...), diagonalDirs...)
	knightDirs     = []Position{
		{File: 2, Rank: 1}, {File: 2, Rank: -1}, {File: -2, Rank: 1}, {File: -2, Rank: -1},
		{File: 1, Rank: 2}, {File: 1, Rank: -2}, {File: -1, Rank: 2}, {File: -1, Rank: -2},
	}
)
