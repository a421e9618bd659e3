package tui

import (
	"github.com/gdamore/tcell/v2"

	"schach/internal/chess"
)

const (
	leftMargin  = 4
	topMargin   = 3
	squareWidth = 2 // two screen columns per square to look square
)

// DefStyle is the default style for tcell rendering.
var DefStyle = tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)

var whiteGlyphs = map[chess.Kind]rune{
	chess.King:   '♔',
	chess.Queen:  '♕',
	chess.Rook:   '♖',
	chess.Bishop: '♗',
	chess.Knight: '♘',
	chess.Pawn:   '♙',
}

var blackGlyphs = map[chess.Kind]rune{
	chess.King:   '♚',
	chess.Queen:  '♛',
	chess.Rook:   '♜',
	chess.Bishop: '♝',
	chess.Knight: '♞',
	chess.Pawn:   '♟',
}

// pieceRune returns the glyph for a piece: unicode chess symbols, or
// letters when ascii is set (uppercase white, lowercase black).
func pieceRune(p chess.Piece, ascii bool) rune {
	if ascii {
		letter := rune(p.Kind.Letter())
		if p.Colour == chess.Black {
			letter += 'a' - 'A'
		}
		return letter
	}
	if p.Colour == chess.White {
		return whiteGlyphs[p.Kind]
	}
	return blackGlyphs[p.Kind]
}

// drawText places text at the specified coordinates with the provided style.
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// drawRune places a rune at the specified coordinates with the provided style.
func drawRune(s tcell.Screen, x, y int, style tcell.Style, r rune) {
	s.SetContent(x, y, r, nil, style)
}

// boardToScreen maps a board square to the screen cell of its left
// column. Rank 7 renders at the top so White plays from the bottom.
func boardToScreen(sq chess.Square) (x, y int) {
	x = leftMargin + squareWidth + sq.File*squareWidth
	y = topMargin + (chess.BoardSize - 1 - sq.Rank)
	return x, y
}

// boardView is everything the renderer needs for one frame.
type boardView struct {
	pos      *chess.Position
	status   chess.GameStatus
	selected *chess.Square
	hints    map[chess.Square]bool
	ascii    bool
	msg      string
}

// squareBg picks the background colour of a square, with the more
// urgent states winning: check over hints over selection/last-move
// over the plain checkerboard colours.
func squareBg(v boardView, sq chess.Square, t Theme) tcell.Color {
	bg := t.SquareDark
	if (sq.File+sq.Rank)%2 == 1 {
		bg = t.SquareLight
	}
	if v.pos.Ply > 0 && (sq == v.pos.LastMove.From || sq == v.pos.LastMove.To) {
		bg = t.SquareHigh
	}
	if v.selected != nil && sq == *v.selected {
		bg = t.SquareHigh
	}
	if v.hints[sq] {
		bg = t.SquareHint
	}
	if v.status.Status == chess.Check || v.status.Status == chess.Checkmate {
		if king, ok := v.pos.Board.KingSquare(v.status.Colour); ok && sq == king {
			bg = t.SquareCheck
		}
	}
	return bg
}

// drawSquare draws one board square and its occupant, two columns wide.
func drawSquare(s tcell.Screen, v boardView, sq chess.Square, t Theme) {
	x, y := boardToScreen(sq)
	bg := squareBg(v, sq, t)
	bgStyle := tcell.StyleDefault.Background(bg)

	p := v.pos.Board.Get(sq)
	if p.IsEmpty() {
		s.SetContent(x, y, ' ', nil, bgStyle)
		s.SetContent(x+1, y, ' ', nil, bgStyle)
		return
	}

	fg := t.Black
	if p.Colour == chess.White {
		fg = t.White
	}
	s.SetContent(x, y, pieceRune(p, v.ascii), nil, bgStyle.Foreground(fg))
	s.SetContent(x+1, y, ' ', nil, bgStyle)
}

// drawBoard draws the 8x8 grid with rank and file gutters.
func drawBoard(s tcell.Screen, v boardView, t Theme) {
	rankStyle := tcell.StyleDefault.Foreground(t.Rank)
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		y := topMargin + (chess.BoardSize - 1 - rank)
		drawRune(s, leftMargin, y, rankStyle, rune('1'+rank))
		for file := 0; file < chess.BoardSize; file++ {
			drawSquare(s, v, chess.Square{File: file, Rank: rank}, t)
		}
	}
	fileStyle := tcell.StyleDefault.Foreground(t.File)
	drawText(s, leftMargin+squareWidth, topMargin+chess.BoardSize, fileStyle, "a b c d e f g h")
}

// drawStatusLabel displays whose move it is, or the terminal result,
// above the board.
func drawStatusLabel(s tcell.Screen, v boardView, t Theme) {
	var label string
	switch v.status.Status {
	case chess.Checkmate:
		label = " Checkmate — " + v.status.Colour.Opposite().String() + " wins "
	case chess.Stalemate:
		label = " Stalemate — draw "
	case chess.Check:
		label = " " + v.status.Colour.String() + " to move (in check) "
	default:
		label = " " + v.pos.SideToMove().String() + " to move "
	}
	labelStyle := tcell.StyleDefault.Background(t.LabelBg).Foreground(t.LabelFg)
	drawText(s, leftMargin+squareWidth, topMargin-2, labelStyle, label)
}

// drawMsgLabel displays the message line below the board.
func drawMsgLabel(s tcell.Screen, msg string, t Theme) {
	msgStyle := tcell.StyleDefault.Foreground(t.Msg)
	drawText(s, leftMargin, topMargin+chess.BoardSize+2, msgStyle, msg)
}

// drawHelp displays the key bindings.
func drawHelp(s tcell.Screen, t Theme) {
	helpStyle := tcell.StyleDefault.Foreground(t.Help)
	drawText(s, leftMargin, topMargin+chess.BoardSize+4, helpStyle,
		"arrows: move cursor   enter: select/move   esc: cancel   q: quit")
}
