// Package tui renders the game on a terminal screen and runs the
// interactive move loop. It consumes only the engine's query and
// apply-move surface; all rule knowledge stays in the engine.
package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Theme is used for dynamically colouring the board UI.
// Themes should stay within the terminal safe colour palette.
type Theme struct {
	Name        string
	SquareDark  tcell.Color
	SquareLight tcell.Color
	SquareHigh  tcell.Color // selected piece and last-move squares
	SquareHint  tcell.Color // legal destinations of the selection
	SquareCheck tcell.Color // the checked king's square
	White       tcell.Color // white piece glyphs
	Black       tcell.Color // black piece glyphs
	Rank        tcell.Color
	File        tcell.Color
	LabelBg     tcell.Color
	LabelFg     tcell.Color
	Msg         tcell.Color
	Help        tcell.Color
}

// ThemeBasic is the default theme.
var ThemeBasic = Theme{
	Name:        "basic",
	SquareDark:  tcell.Color188,
	SquareLight: tcell.Color230,
	SquareHigh:  tcell.Color226,
	SquareHint:  tcell.Color223,
	SquareCheck: tcell.Color218,
	White:       tcell.Color232,
	Black:       tcell.Color232,
	Rank:        tcell.Color247,
	File:        tcell.Color247,
	LabelBg:     tcell.Color252,
	LabelFg:     tcell.ColorBlack,
	Msg:         tcell.Color160,
	Help:        tcell.Color247,
}

// ThemeForest is a darker green palette.
var ThemeForest = Theme{
	Name:        "forest",
	SquareDark:  tcell.Color65,
	SquareLight: tcell.Color151,
	SquareHigh:  tcell.Color178,
	SquareHint:  tcell.Color108,
	SquareCheck: tcell.Color167,
	White:       tcell.Color231,
	Black:       tcell.Color232,
	Rank:        tcell.Color244,
	File:        tcell.Color244,
	LabelBg:     tcell.Color238,
	LabelFg:     tcell.Color254,
	Msg:         tcell.Color203,
	Help:        tcell.Color244,
}

var themes = []Theme{ThemeBasic, ThemeForest}

// LookupTheme returns the theme with the given name.
func LookupTheme(name string) (Theme, error) {
	for _, t := range themes {
		if t.Name == name {
			return t, nil
		}
	}
	return Theme{}, fmt.Errorf("theme: no theme %q", name)
}
