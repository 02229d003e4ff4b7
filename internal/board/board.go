package board

import (
	"fmt"
	"strings"
)

// repetitionLimit is the number of times a hash must recur for a draw by
// repetition (FMJD three-fold rule).
const repetitionLimit = 3

// quietLimit is the number of consecutive king-only, capture-free moves
// before the game is drawn.
const quietLimit = 25

// Board is a 10x10 international draughts position: a grid of optional
// pieces, the side to move, the position-hash history since the Board was
// constructed, and the quiet-move counter feeding the 25-move draw rule.
//
// A Board is owned exclusively by whatever holds it; the minimax searcher
// mutates it in place via Make/Undo, Monte Carlo forks it via Copy.
type Board struct {
	grid       [100]Piece
	side       Color
	history    []uint64
	quietCount int
}

// NewBoard returns the standard starting position: White Men on rows 0-3,
// Black Men on rows 6-9, rows 4-5 empty, White to move.
func NewBoard() *Board {
	b := &Board{}
	for i := range b.grid {
		b.grid[i] = NoPiece
	}
	for r := 0; r < 4; r++ {
		for c := 0; c < 10; c++ {
			if NewSquare(r, c).Dark() {
				b.SetPiece(r, c, NewPiece(White, false))
			}
		}
	}
	for r := 6; r < 10; r++ {
		for c := 0; c < 10; c++ {
			if NewSquare(r, c).Dark() {
				b.SetPiece(r, c, NewPiece(Black, false))
			}
		}
	}
	b.side = White
	return b
}

// PieceAt returns the occupant of (row,col), or NoPiece for an empty or
// out-of-range square.
func (b *Board) PieceAt(row, col int) Piece {
	if !inBounds(row, col) {
		return NoPiece
	}
	return b.grid[row*10+col]
}

// SetPiece places p at (row,col). Out-of-range coordinates are a no-op.
func (b *Board) SetPiece(row, col int, p Piece) {
	if !inBounds(row, col) {
		return
	}
	b.grid[row*10+col] = p
}

// SideToMove returns the color to move.
func (b *Board) SideToMove() Color {
	return b.side
}

// SetSideToMove sets the color to move.
func (b *Board) SetSideToMove(c Color) {
	b.side = c
}

// CountPieces returns the number of White and Black pieces (Men and Kings
// combined) on the board.
func (b *Board) CountPieces() (white, black int) {
	for _, p := range b.grid {
		switch p.Color() {
		case White:
			white++
		case Black:
			black++
		}
	}
	return
}

func (b *Board) totalPieces() int {
	w, bl := b.CountPieces()
	return w + bl
}

// Copy returns a deep copy of the board: grid, side to move, position
// history, and quiet counter.
func (b *Board) Copy() *Board {
	n := &Board{
		grid:       b.grid,
		side:       b.side,
		quietCount: b.quietCount,
	}
	n.history = make([]uint64, len(b.history))
	copy(n.history, b.history)
	return n
}

// Hash is a pure function of the grid contents and side to move, used as
// the transposition/repetition key.
func (b *Board) Hash() uint64 {
	var h uint64
	for sq, p := range b.grid {
		if p == NoPiece {
			continue
		}
		h ^= zobristPiece[p][sq]
	}
	if b.side == Black {
		h ^= zobristSide
	}
	return h
}

// String renders the board as a 10x10 grid with rank labels, for debugging.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 9; r >= 0; r-- {
		fmt.Fprintf(&sb, "%d  ", r)
		for c := 0; c < 10; c++ {
			sb.WriteString(b.PieceAt(r, c).String())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   0 1 2 3 4 5 6 7 8 9\n")
	fmt.Fprintf(&sb, "Side to move: %s\n", b.side)
	return sb.String()
}

// UndoToken carries the state Make needs to reverse its move: whether the
// moving piece was already a King before the move, the pieces captured (in
// the move's Captured order), and the quiet counter prior to the move.
type UndoToken struct {
	move           Move
	wasKing        bool
	capturedPieces []Piece
	prevQuiet      int
}

// Apply moves the piece from the move's start to its end, removes captured
// pieces, promotes the mover if it ends on its promotion rank as a Man,
// updates the quiet-move counter, and appends the hash of the resulting
// position, with the mover's opponent to move, to the position history.
func (b *Board) Apply(m Move) {
	piece := b.PieceAt(m.StartRow, m.StartCol)
	wasMan := !piece.IsKing()

	b.SetPiece(m.StartRow, m.StartCol, NoPiece)
	for _, sq := range m.Captured {
		b.SetPiece(sq.Row, sq.Col, NoPiece)
	}

	if wasMan {
		if (piece.Color() == White && m.EndRow == 9) || (piece.Color() == Black && m.EndRow == 0) {
			piece.Promote()
		}
	}
	b.SetPiece(m.EndRow, m.EndCol, piece)

	if m.IsCapture() || wasMan {
		b.quietCount = 0
	} else {
		b.quietCount++
	}

	// The caller hands the turn to the opponent after Apply, and IsDraw
	// compares the history against the hash with that side to move.
	mover := b.side
	b.side = piece.Color().Other()
	b.history = append(b.history, b.Hash())
	b.side = mover
}

// Make applies m and returns an opaque token that Undo can use to reverse
// it. Side-to-move is left untouched; the caller toggles it around
// Make/Undo.
func (b *Board) Make(m Move) UndoToken {
	piece := b.PieceAt(m.StartRow, m.StartCol)
	captured := make([]Piece, len(m.Captured))
	for i, sq := range m.Captured {
		captured[i] = b.PieceAt(sq.Row, sq.Col)
	}
	tok := UndoToken{
		move:           m,
		wasKing:        piece.IsKing(),
		capturedPieces: captured,
		prevQuiet:      b.quietCount,
	}
	b.Apply(m)
	return tok
}

// Undo reverses the effect of the immediately preceding Make. Behavior is
// undefined if tok was not produced by that call.
func (b *Board) Undo(tok UndoToken) {
	m := tok.move
	moved := b.PieceAt(m.EndRow, m.EndCol)
	b.SetPiece(m.EndRow, m.EndCol, NoPiece)

	if !tok.wasKing {
		moved.Demote()
	}
	b.SetPiece(m.StartRow, m.StartCol, moved)

	for i, sq := range m.Captured {
		b.SetPiece(sq.Row, sq.Col, tok.capturedPieces[i])
	}

	b.quietCount = tok.prevQuiet
	if len(b.history) > 0 {
		b.history = b.history[:len(b.history)-1]
	}
}

// TerminalNoMoves reports whether the side to move has no legal moves.
// This is the search-level terminal condition; the losing side is the one
// with no moves.
func (b *Board) TerminalNoMoves() bool {
	return len(b.LegalMoves(b.side)) == 0
}

// IsDraw reports whether the current position is drawn: the current hash
// has recurred at least repetitionLimit times, or the quiet counter has
// reached quietLimit.
func (b *Board) IsDraw() bool {
	if b.quietCount >= quietLimit {
		return true
	}
	current := b.Hash()
	count := 0
	for _, h := range b.history {
		if h == current {
			count++
		}
	}
	return count >= repetitionLimit
}

// TerminalWithDraw is the gameplay-level terminal condition: no legal
// moves, or a draw.
func (b *Board) TerminalWithDraw() bool {
	return b.TerminalNoMoves() || b.IsDraw()
}

// Winner reports the game outcome: 'd' for a draw, 'w'/'b' if the side to
// move has no moves (the other side wins), or "game in progress" text.
func (b *Board) Winner() string {
	if b.IsDraw() {
		return "d"
	}
	if b.TerminalNoMoves() {
		if b.side == White {
			return "b"
		}
		return "w"
	}
	return "game in progress"
}
