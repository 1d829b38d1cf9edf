package model

// IsSquareAttacked reports whether any piece of defender's opponent attacks p.
// Only the first piece met along a ray can attack along it.
func IsSquareAttacked(b *Board, p Position, defender Color) bool {
	attacker := defender.Opponent()
	holds := func(pos Position, types ...PieceType) bool {
		if !pos.OnBoard() {
			return false
		}
		pc := b.Get(pos)
		if pc == nil || pc.Color != attacker {
			return false
		}
		for _, t := range types {
			if pc.Type == t {
				return true
			}
		}
		return false
	}

	for _, dir := range kingDirs {
		if holds(p.Add(dir), King) {
			return true
		}
	}
	if rayHits(b, p, orthogonalDirs, attacker, Rook, Queen) {
		return true
	}
	if rayHits(b, p, diagonalDirs, attacker, Bishop, Queen) {
		return true
	}
	for _, dir := range knightDirs {
		if holds(p.Add(dir), Knight) {
			return true
		}
	}
	// Enemy pawns attacking p stand one rank ahead of it from the defender's side.
	ahead := defender.forward()
	return holds(Position{File: p.File - 1, Rank: p.Rank + ahead}, Pawn) ||
		holds(Position{File: p.File + 1, Rank: p.Rank + ahead}, Pawn)
}

// rayHits walks each direction from p to the first occupied square and
// reports whether it holds an attacker piece of one of the given types.
func rayHits(b *Board, p Position, dirs []Position, attacker Color, a, q PieceType) bool {
	for _, dir := range dirs {
		for target := p.Add(dir); target.OnBoard(); target = target.Add(dir) {
			pc := b.Get(target)
			if pc == nil {
				continue
			}
			if pc.Color == attacker && (pc.Type == a || pc.Type == q) {
				return true
			}
			break
		}
	}
	return false
}

// IsInCheck reports whether c's king is attacked on b.
func IsInCheck(b *Board, c Color) bool {
	return IsSquareAttacked(b, b.kingPosition(c), c)
}
