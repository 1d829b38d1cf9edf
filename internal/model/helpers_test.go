package model

import (
	"sort"
	"testing"
)

func sq(t *testing.T, name string) Position {
	t.Helper()
	p, err := ParsePosition(name)
	if err != nil {
		t.Fatalf("bad square %q: %v", name, err)
	}
	return p
}

// setup builds a game from a square -> piece map.
func setup(t *testing.T, toMove Color, pieces map[string]*Piece) *GameState {
	t.Helper()
	b := NewEmptyBoard()
	for name, p := range pieces {
		b.Place(sq(t, name), p)
	}
	g, err := NewGameFromBoard(b, toMove)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	return g
}

func destinations(moves []Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.To.String())
	}
	sort.Strings(out)
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func play(t *testing.T, g *GameState, from, to string) AppliedMove {
	t.Helper()
	m, err := g.FindMove(sq(t, from), sq(t, to), "")
	if err != nil {
		t.Fatalf("find %s-%s: %v", from, to, err)
	}
	res, err := g.ApplyMove(m)
	if err != nil {
		t.Fatalf("apply %s-%s: %v", from, to, err)
	}
	return res
}

func findKind(moves []Move, kind MoveKind) *Move {
	for i := range moves {
		if moves[i].Kind == kind {
			return &moves[i]
		}
	}
	return nil
}
