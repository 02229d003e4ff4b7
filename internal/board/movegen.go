package board

// diagonalDirs are the four diagonal step vectors {dRow, dCol}.
var diagonalDirs = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

// LegalMoves returns the legal moves for side, enforcing FMJD mandatory
// maximum capture: if any capture exists anywhere on the board for side,
// only the captures with the maximum capture count are legal; otherwise
// every non-capture step/slide is legal.
func (b *Board) LegalMoves(side Color) []Move {
	var captures []Move
	for r := 0; r < 10; r++ {
		for c := 0; c < 10; c++ {
			p := b.PieceAt(r, c)
			if p.Color() != side {
				continue
			}
			captures = append(captures, b.pieceCaptureMoves(r, c, p)...)
		}
	}

	if len(captures) > 0 {
		best := captures[0]
		for _, m := range captures {
			if m.CaptureCount() > best.CaptureCount() {
				best = m
			}
		}
		filtered := captures[:0:0]
		for _, m := range captures {
			if m.SameCaptureCount(best) {
				filtered = append(filtered, m)
			}
		}
		return filtered
	}

	var moves []Move
	for r := 0; r < 10; r++ {
		for c := 0; c < 10; c++ {
			p := b.PieceAt(r, c)
			if p.Color() != side {
				continue
			}
			if p.IsKing() {
				moves = append(moves, b.kingSlides(r, c)...)
			} else {
				moves = append(moves, b.manSteps(r, c, p)...)
			}
		}
	}
	return moves
}

// manSteps returns the non-capture forward-diagonal steps for a Man at
// (row,col).
func (b *Board) manSteps(row, col int, p Piece) []Move {
	dRow := 1
	if p.Color() == Black {
		dRow = -1
	}
	var moves []Move
	for _, dCol := range [2]int{-1, 1} {
		nr, nc := row+dRow, col+dCol
		if inBounds(nr, nc) && b.PieceAt(nr, nc) == NoPiece {
			moves = append(moves, Move{StartRow: row, StartCol: col, EndRow: nr, EndCol: nc})
		}
	}
	return moves
}

// kingSlides returns the non-capture diagonal slides for a King at
// (row,col): any positive distance while all traversed squares are empty.
func (b *Board) kingSlides(row, col int) []Move {
	var moves []Move
	for _, d := range diagonalDirs {
		step := 1
		for {
			nr, nc := row+d[0]*step, col+d[1]*step
			if !inBounds(nr, nc) || b.PieceAt(nr, nc) != NoPiece {
				break
			}
			moves = append(moves, Move{StartRow: row, StartCol: col, EndRow: nr, EndCol: nc})
			step++
		}
	}
	return moves
}

// jumpCandidate is one possible single jump discovered during capture DFS:
// the captured piece's square and the landing square it leads to.
type jumpCandidate struct {
	midRow, midCol   int
	landRow, landCol int
}

// pieceCaptureMoves explores all maximal jump sequences from (row,col) for
// piece, via DFS. Captured pieces stay on the board during the search (only
// Apply removes them) so occupancy checks see them as blocking; a
// "captured" set prevents jumping the same piece twice and a "visited"
// set of landing squares prevents a sequence from revisiting a landing.
// The sequence length is capped at the number of pieces on the board,
// which bounds pathological constructed positions without affecting any
// sequence reachable in normal play.
func (b *Board) pieceCaptureMoves(row, col int, piece Piece) []Move {
	var out []Move
	maxSeq := b.totalPieces()
	b.captureDFS(row, col, piece, row, col, nil, nil, maxSeq, &out)
	return out
}

func (b *Board) captureDFS(curRow, curCol int, piece Piece, startRow, startCol int, captured, visited []Square, maxSeq int, out *[]Move) {
	var jumps []jumpCandidate
	if len(captured) < maxSeq {
		if piece.IsKing() {
			jumps = b.kingJumps(curRow, curCol, piece, captured, visited)
		} else {
			jumps = b.manJumps(curRow, curCol, piece, captured, visited)
		}
	}

	if len(jumps) == 0 {
		if len(captured) > 0 {
			capList := make([]Square, len(captured))
			copy(capList, captured)
			*out = append(*out, Move{
				StartRow: startRow, StartCol: startCol,
				EndRow: curRow, EndCol: curCol,
				Captured: capList,
			})
		}
		return
	}

	for _, j := range jumps {
		newCaptured := append(append([]Square{}, captured...), NewSquare(j.midRow, j.midCol))
		newVisited := append(append([]Square{}, visited...), NewSquare(j.landRow, j.landCol))
		b.captureDFS(j.landRow, j.landCol, piece, startRow, startCol, newCaptured, newVisited, maxSeq, out)
	}
}

// manJumps returns the single jumps available to a Man at (row,col). Men
// may jump in any of the four diagonal directions, including backward.
func (b *Board) manJumps(row, col int, piece Piece, captured, visited []Square) []jumpCandidate {
	var res []jumpCandidate
	for _, d := range diagonalDirs {
		mr, mc := row+d[0], col+d[1]
		lr, lc := row+2*d[0], col+2*d[1]
		if !inBounds(lr, lc) {
			continue
		}
		mid := b.PieceAt(mr, mc)
		if mid.Color() != piece.Opponent() {
			continue
		}
		if containsSquare(captured, mr, mc) {
			continue
		}
		if b.PieceAt(lr, lc) != NoPiece {
			continue
		}
		if containsSquare(visited, lr, lc) {
			continue
		}
		res = append(res, jumpCandidate{midRow: mr, midCol: mc, landRow: lr, landCol: lc})
	}
	return res
}

// kingJumps returns the single jumps available to a King at (row,col):
// along each diagonal, the first non-empty square is the jumpable target
// (if an opponent not already captured), and every empty square strictly
// beyond it, up to the next blocker or the edge, is a valid landing.
func (b *Board) kingJumps(row, col int, piece Piece, captured, visited []Square) []jumpCandidate {
	var res []jumpCandidate
	for _, d := range diagonalDirs {
		step := 1
		midRow, midCol := -1, -1
		for {
			tr, tc := row+d[0]*step, col+d[1]*step
			if !inBounds(tr, tc) {
				break
			}
			target := b.PieceAt(tr, tc)
			if target == NoPiece {
				step++
				continue
			}
			if target.Color() != piece.Opponent() {
				break
			}
			if containsSquare(captured, tr, tc) {
				break
			}
			midRow, midCol = tr, tc
			break
		}
		if midRow == -1 {
			continue
		}

		lstep := step + 1
		for {
			lr, lc := row+d[0]*lstep, col+d[1]*lstep
			if !inBounds(lr, lc) || b.PieceAt(lr, lc) != NoPiece {
				break
			}
			if !containsSquare(visited, lr, lc) {
				res = append(res, jumpCandidate{midRow: midRow, midCol: midCol, landRow: lr, landCol: lc})
			}
			lstep++
		}
	}
	return res
}

func containsSquare(squares []Square, row, col int) bool {
	for _, sq := range squares {
		if sq.Row == row && sq.Col == col {
			return true
		}
	}
	return false
}
