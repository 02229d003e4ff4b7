package engine

import "github.com/hailam/draughts/internal/board"

// Man and King material values (spec §4.C.1).
const (
	manValue  = 1
	kingValue = 3
)

var centreSquares = [4][2]int{{4, 4}, {4, 5}, {5, 4}, {5, 5}}

var cornerTraps = [8][2]int{
	{0, 1}, {1, 0}, {0, 3}, {3, 0},
	{9, 8}, {8, 9}, {9, 6}, {6, 9},
}

// signed applies the Black-positive/White-negative sign convention shared by
// most of the nine heuristics: a raw magnitude favouring the piece's own
// side is returned as-is for Black and negated for White.
func signed(v float64, c board.Color) float64 {
	if c == board.Black {
		return v
	}
	return -v
}

// Evaluate scores b from engine's perspective using weight vector w.
// Terminal positions short-circuit to +-10000 (or 0 for a draw); otherwise
// the nine heuristics are summed with their weights and oriented.
func Evaluate(b *board.Board, engine board.Color, w Weights) int {
	if b.IsDraw() {
		return orient(0, engine)
	}
	if b.TerminalNoMoves() {
		if b.SideToMove() == board.White {
			return orient(10000, engine)
		}
		return orient(-10000, engine)
	}

	h := [9]float64{
		material(b),
		central(b),
		structure(b),
		mobility(b),
		kingActivity(b),
		promotionPotential(b),
		pieceSafety(b),
		tempo(b),
		locks(b),
	}
	wv := [9]float64{
		float64(w.Material), float64(w.Central), float64(w.Structure),
		float64(w.Mobility), float64(w.KingActivity), float64(w.PromotionPotential),
		float64(w.PieceSafety), float64(w.Tempo), float64(w.Locks),
	}

	raw := 0.0
	for i := range h {
		raw += wv[i] * h[i]
	}
	return orient(int(raw), engine)
}

func orient(raw int, engine board.Color) int {
	if engine == board.Black {
		return raw
	}
	return -raw
}

func material(b *board.Board) float64 {
	total := 0.0
	for r := 0; r < 10; r++ {
		for c := 0; c < 10; c++ {
			p := b.PieceAt(r, c)
			if p.Color() == board.NoColor {
				continue
			}
			v := float64(manValue)
			if p.IsKing() {
				v = float64(kingValue)
			}
			total += signed(v, p.Color())
		}
	}
	return total
}

func central(b *board.Board) float64 {
	total := 0.0
	for r := 0; r < 10; r++ {
		for c := 0; c < 10; c++ {
			p := b.PieceAt(r, c)
			if p.Color() == board.NoColor {
				continue
			}
			switch {
			case isCentre(r, c):
				total += signed(3, p.Color())
			case r >= 3 && r <= 6 && c >= 3 && c <= 6:
				total += signed(1, p.Color())
			}
		}
	}
	return total
}

func isCentre(r, c int) bool {
	for _, sq := range centreSquares {
		if sq[0] == r && sq[1] == c {
			return true
		}
	}
	return false
}

// structure penalizes an isolated Man and rewards one with an allied piece
// on a diagonal square behind it; "behind" is row-1 for White, row+1 for
// Black (the profile weights assume this exact orientation).
func structure(b *board.Board) float64 {
	total := 0.0
	for r := 0; r < 10; r++ {
		for c := 0; c < 10; c++ {
			p := b.PieceAt(r, c)
			if p.Color() == board.NoColor || p.IsKing() {
				continue
			}
			raw := 0.0
			if !hasAllyOnDiagonal(b, r, c, p.Color()) {
				raw -= 2
			}
			behindRow := r - 1
			if p.Color() == board.Black {
				behindRow = r + 1
			}
			if allyAt(b, behindRow, c-1, p.Color()) || allyAt(b, behindRow, c+1, p.Color()) {
				raw += 2
			}
			total += signed(raw, p.Color())
		}
	}
	return total
}

func hasAllyOnDiagonal(b *board.Board, r, c int, color board.Color) bool {
	for _, d := range diagOffsets {
		if allyAt(b, r+d[0], c+d[1], color) {
			return true
		}
	}
	return false
}

func allyAt(b *board.Board, r, c int, color board.Color) bool {
	return b.PieceAt(r, c).Color() == color
}

var diagOffsets = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

// mobility counts each side's legal moves independently of whose turn it
// actually is; LegalMoves takes the side to score as an explicit argument,
// so no board mutation/restoration is needed to evaluate both sides.
func mobility(b *board.Board) float64 {
	return float64(len(b.LegalMoves(board.Black)) - len(b.LegalMoves(board.White)))
}

func kingActivity(b *board.Board) float64 {
	total := 0.0
	for r := 0; r < 10; r++ {
		for c := 0; c < 10; c++ {
			p := b.PieceAt(r, c)
			if p.Color() == board.NoColor || !p.IsKing() {
				continue
			}
			edgeDist := min4(r, 9-r, c, 9-c)
			reach := 0
			for _, d := range diagOffsets {
				for step := 1; ; step++ {
					nr, nc := r+d[0]*step, c+d[1]*step
					if nr < 0 || nr > 9 || nc < 0 || nc > 9 || b.PieceAt(nr, nc).Color() != board.NoColor {
						break
					}
					reach++
				}
			}
			raw := float64(edgeDist) + 0.2*float64(reach)
			total += signed(raw, p.Color())
		}
	}
	return total
}

func min4(a, b, c, d int) int {
	m := a
	for _, v := range []int{b, c, d} {
		if v < m {
			m = v
		}
	}
	return m
}

// promotionPotential transcribes spec.md §4.C.6 literally: Black adds
// 10-(9-r) for each Man, White subtracts the row-mirrored symmetric value.
func promotionPotential(b *board.Board) float64 {
	total := 0.0
	for r := 0; r < 10; r++ {
		for c := 0; c < 10; c++ {
			p := b.PieceAt(r, c)
			if p.Color() == board.NoColor || p.IsKing() {
				continue
			}
			if p.Color() == board.Black {
				total += float64(10 - (9 - r))
			} else {
				total -= float64(10 - r)
			}
		}
	}
	return total
}

// pieceSafety penalizes a hanging piece: one with a diagonal neighbour
// holding an opponent and the square immediately beyond it empty, i.e. an
// immediate single-jump capture available to the opponent.
func pieceSafety(b *board.Board) float64 {
	total := 0.0
	for r := 0; r < 10; r++ {
		for c := 0; c < 10; c++ {
			p := b.PieceAt(r, c)
			if p.Color() == board.NoColor {
				continue
			}
			if isHanging(b, r, c, p.Color()) {
				total += signed(-4, p.Color())
			}
		}
	}
	return total
}

func isHanging(b *board.Board, r, c int, color board.Color) bool {
	for _, d := range diagOffsets {
		mr, mc := r+d[0], c+d[1]
		neighbour := b.PieceAt(mr, mc)
		if neighbour.Color() == board.NoColor || neighbour.Color() == color {
			continue
		}
		lr, lc := r+2*d[0], c+2*d[1]
		if lr < 0 || lr > 9 || lc < 0 || lc > 9 {
			continue
		}
		if b.PieceAt(lr, lc).Color() == board.NoColor {
			return true
		}
	}
	return false
}

// tempo scores each Man by its row, independently of promotionPotential's
// weighting: a Black Man adds r, a White Man subtracts 9-r. Under this
// formula a Man counts more for its side the nearer it stands to its own
// back rank, so advancing a Man lowers its side's tempo term.
func tempo(b *board.Board) float64 {
	total := 0.0
	for r := 0; r < 10; r++ {
		for c := 0; c < 10; c++ {
			p := b.PieceAt(r, c)
			if p.Color() == board.NoColor || p.IsKing() {
				continue
			}
			if p.Color() == board.Black {
				total += float64(r)
			} else {
				total -= float64(9 - r)
			}
		}
	}
	return total
}

func locks(b *board.Board) float64 {
	total := 0.0
	for _, sq := range cornerTraps {
		p := b.PieceAt(sq[0], sq[1])
		if p.Color() == board.NoColor || !p.IsKing() {
			continue
		}
		total += signed(-8, p.Color())
	}
	return total
}
