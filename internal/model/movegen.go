package model

// PseudoLegalMoves returns the moves of the piece at from that obey movement
// and occupancy rules, without checking whether they leave the mover's own
// king attacked. last is the most recently applied move, or nil at the start
// of a game; it decides en passant eligibility.
func PseudoLegalMoves(b *Board, from Position, last *Move) []Move {
	piece := b.Get(from)
	if piece == nil {
		return nil
	}
	switch piece.Type {
	case Pawn:
		return pawnMoves(b, from, piece, last)
	case Knight:
		return stepMoves(b, from, piece, knightDirs)
	case Bishop:
		return slidingMoves(b, from, piece, diagonalDirs)
	case Rook:
		return slidingMoves(b, from, piece, orthogonalDirs)
	case Queen:
		return slidingMoves(b, from, piece, kingDirs)
	case King:
		return append(stepMoves(b, from, piece, kingDirs), castleMoves(b, from, piece)...)
	default:
		return nil
	}
}

// LegalMoves filters PseudoLegalMoves down to the moves that do not leave
// the mover's king attacked. b is never modified.
func LegalMoves(b *Board, from Position, last *Move) []Move {
	pseudo := PseudoLegalMoves(b, from, last)
	legal := make([]Move, 0, len(pseudo))
	for _, move := range pseudo {
		if !leavesKingAttacked(b, move) {
			legal = append(legal, move)
		}
	}
	return legal
}

func leavesKingAttacked(b *Board, move Move) bool {
	probe := b.Clone()
	if move.Kind == MovePromotion && move.Promotion == "" {
		// The promoted type cannot affect the mover's own king.
		move.Promotion = Queen
	}
	move.applyTo(probe, 0)
	return IsInCheck(probe, move.Color)
}

// AllLegalMoves returns every legal move for color on b.
func AllLegalMoves(b *Board, color Color, last *Move) []Move {
	var moves []Move
	for _, from := range occupiedBy(b, color) {
		moves = append(moves, LegalMoves(b, from, last)...)
	}
	return moves
}

// HasLegalMove reports whether color has at least one legal move.
func HasLegalMove(b *Board, color Color, last *Move) bool {
	for _, from := range occupiedBy(b, color) {
		if len(LegalMoves(b, from, last)) > 0 {
			return true
		}
	}
	return false
}

func occupiedBy(b *Board, color Color) []Position {
	var squares []Position
	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			pos := Position{File: f, Rank: r}
			if pc := b.Get(pos); pc != nil && pc.Color == color {
				squares = append(squares, pos)
			}
		}
	}
	return squares
}

func stepMoves(b *Board, from Position, piece *Piece, dirs []Position) []Move {
	var moves []Move
	for _, dir := range dirs {
		target := from.Add(dir)
		if target.OnBoard() && (b.isEmpty(target) || b.isEnemy(target, piece.Color)) {
			moves = append(moves, newMove(b, MoveNormal, from, target))
		}
	}
	return moves
}

func slidingMoves(b *Board, from Position, piece *Piece, dirs []Position) []Move {
	var moves []Move
	for _, dir := range dirs {
		for target := from.Add(dir); target.OnBoard(); target = target.Add(dir) {
			if b.isEmpty(target) {
				moves = append(moves, newMove(b, MoveNormal, from, target))
				continue
			}
			if b.isEnemy(target, piece.Color) {
				moves = append(moves, newMove(b, MoveNormal, from, target))
			}
			break
		}
	}
	return moves
}

func pawnMoves(b *Board, from Position, piece *Piece, last *Move) []Move {
	var moves []Move
	dir := piece.Color.forward()
	advance := func(to Position) {
		kind := MoveNormal
		if to.Rank == piece.Color.promotionRank() {
			kind = MovePromotion
		}
		moves = append(moves, newMove(b, kind, from, to))
	}

	one := Position{File: from.File, Rank: from.Rank + dir}
	if one.OnBoard() && b.isEmpty(one) {
		advance(one)
		two := Position{File: from.File, Rank: from.Rank + 2*dir}
		if from.Rank == piece.Color.pawnRank() && b.isEmpty(two) {
			moves = append(moves, newMove(b, MoveNormal, from, two))
		}
	}
	for _, df := range []int{-1, 1} {
		target := Position{File: from.File + df, Rank: from.Rank + dir}
		if target.OnBoard() && b.isEnemy(target, piece.Color) {
			advance(target)
		}
	}
	for _, df := range []int{-1, 1} {
		if canCaptureEnPassant(b, from, piece, df, last) {
			moves = append(moves, newEnPassant(b, from, Position{File: from.File + df, Rank: from.Rank + dir}))
		}
	}
	return moves
}

// canCaptureEnPassant reports whether the pawn at from may capture the pawn
// beside it on file from.File+df. The victim must have made its double step
// on the move immediately before this one.
func canCaptureEnPassant(b *Board, from Position, piece *Piece, df int, last *Move) bool {
	if last == nil || from.Rank != piece.Color.enPassantRank() {
		return false
	}
	side := Position{File: from.File + df, Rank: from.Rank}
	if !side.OnBoard() {
		return false
	}
	victim := b.Get(side)
	if victim == nil || victim.Type != Pawn || victim.Color == piece.Color {
		return false
	}
	if !last.isDoubleStep() || last.To != side || last.Color != victim.Color {
		return false
	}
	if victim.DoubleStepPly != 0 && victim.DoubleStepPly != last.Ply {
		return false
	}
	return b.isEmpty(Position{File: side.File, Rank: from.Rank + piece.Color.forward()})
}

func castleMoves(b *Board, from Position, king *Piece) []Move {
	home := Position{File: 4, Rank: king.Color.backRank()}
	if king.HasMoved || from != home {
		return nil
	}
	var moves []Move
	for _, side := range []CastleSide{KingSide, QueenSide} {
		if canCastle(b, from, king.Color, side) {
			moves = append(moves, newCastle(b, from, side))
		}
	}
	return moves
}

func canCastle(b *Board, from Position, color Color, side CastleSide) bool {
	rookFile, _ := side.rookFiles()
	rook := b.Get(Position{File: rookFile, Rank: from.Rank})
	if rook == nil || rook.Type != Rook || rook.Color != color || rook.HasMoved {
		return false
	}
	lo, hi := rookFile+1, from.File-1
	if side == KingSide {
		lo, hi = from.File+1, rookFile-1
	}
	for f := lo; f <= hi; f++ {
		if !b.isEmpty(Position{File: f, Rank: from.Rank}) {
			return false
		}
	}
	step := 1
	if side == QueenSide {
		step = -1
	}
	for f := from.File; f != side.kingFile()+step; f += step {
		if IsSquareAttacked(b, Position{File: f, Rank: from.Rank}, color) {
			return false
		}
	}
	return true
}
