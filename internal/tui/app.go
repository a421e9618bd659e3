package tui

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"schach/internal/chess"
	"schach/internal/config"
	"schach/internal/engine"
	"schach/internal/errors"
)

// App runs the interactive game: it owns the screen and a cursor, and
// drives the engine through its public surface only. The turn flow
// mirrors the selection state machine of the game: select an own
// piece, show its legal destinations, select a target (selecting
// another own piece switches the selection), apply, end turn.
type App struct {
	screen tcell.Screen
	game   *engine.Game
	cfg    *config.Config
	theme  Theme

	cursor   chess.Square
	selected *chess.Square
	hints    map[chess.Square]bool
	msg      string
}

// NewApp creates the application around an existing game.
func NewApp(game *engine.Game, cfg *config.Config) (*App, error) {
	theme, err := LookupTheme(cfg.Theme)
	if err != nil {
		return nil, err
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "tui: creating screen")
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "tui: initializing screen")
	}
	screen.SetStyle(DefStyle)

	return &App{
		screen: screen,
		game:   game,
		cfg:    cfg,
		theme:  theme,
		cursor: chess.Square{File: 4, Rank: 1}, // e2
	}, nil
}

// Run drives the event loop until the user quits. The screen is
// released before returning so the caller can print to the terminal.
func (a *App) Run() error {
	defer a.screen.Fini()
	for {
		a.render()
		switch ev := a.screen.PollEvent().(type) {
		case *tcell.EventResize:
			a.screen.Sync()
		case *tcell.EventKey:
			if a.handleKey(ev) {
				return nil
			}
		}
	}
}

func (a *App) render() {
	a.screen.Clear()
	view := boardView{
		pos:      a.game.Position(),
		status:   a.game.Status(),
		selected: a.selected,
		hints:    a.hints,
		ascii:    a.cfg.ASCIIPieces,
		msg:      a.msg,
	}
	drawStatusLabel(a.screen, view, a.theme)
	drawBoard(a.screen, view, a.theme)
	drawMsgLabel(a.screen, view.msg, a.theme)
	drawHelp(a.screen, a.theme)
	x, y := boardToScreen(a.cursor)
	a.screen.ShowCursor(x, y)
	a.screen.Show()
}

// handleKey processes one key event and reports whether to quit.
func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return true
	case tcell.KeyEscape:
		if a.selected != nil {
			a.clearSelection()
			return false
		}
		return true
	case tcell.KeyUp:
		a.moveCursor(0, 1)
	case tcell.KeyDown:
		a.moveCursor(0, -1)
	case tcell.KeyLeft:
		a.moveCursor(-1, 0)
	case tcell.KeyRight:
		a.moveCursor(1, 0)
	case tcell.KeyEnter:
		a.selectSquare()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'k':
			a.moveCursor(0, 1)
		case 'j':
			a.moveCursor(0, -1)
		case 'h':
			a.moveCursor(-1, 0)
		case 'l':
			a.moveCursor(1, 0)
		case ' ':
			a.selectSquare()
		}
	}
	return false
}

func (a *App) moveCursor(df, dr int) {
	if to, ok := a.cursor.Offset(df, dr); ok {
		a.cursor = to
	}
}

// selectSquare implements the selection flow. With nothing selected,
// the cursor must name an own piece; with a piece selected, the cursor
// either switches the selection to another own piece or names the
// move's destination.
func (a *App) selectSquare() {
	if a.game.Status().Terminal() {
		a.msg = "game over — press q to quit"
		return
	}
	a.msg = ""

	occupant := a.game.Position().PieceAt(a.cursor)
	ownPiece := !occupant.IsEmpty() && occupant.Colour == a.game.Turn()

	if a.selected == nil {
		if !ownPiece {
			return
		}
		a.setSelection(a.cursor)
		return
	}

	if a.cursor == *a.selected {
		a.clearSelection()
		return
	}
	if ownPiece {
		a.setSelection(a.cursor)
		return
	}

	candidate := chess.Move{From: *a.selected, To: a.cursor}
	status, err := a.game.ApplyMove(candidate)
	a.clearSelection()
	if err != nil {
		// Board stays unchanged; tell the player and let them pick again.
		a.msg = err.Error()
		log.Printf("rejected %s: %v", candidate, err)
		return
	}
	if status.Status != chess.InProgress {
		a.msg = status.String()
	}
}

func (a *App) setSelection(sq chess.Square) {
	sel := sq
	a.selected = &sel
	a.hints = make(map[chess.Square]bool)
	for _, m := range a.game.LegalMovesFrom(sq) {
		a.hints[m.To] = true
	}
}

func (a *App) clearSelection() {
	a.selected = nil
	a.hints = nil
}
