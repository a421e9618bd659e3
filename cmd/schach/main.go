// schach is an interactive terminal chess game: full rule-correct
// movement, check, checkmate and stalemate detection.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fatih/color"

	"schach/internal/chess"
	"schach/internal/config"
	"schach/internal/engine"
	"schach/internal/tui"
)

const programVersion = "0.1.0"

var (
	themeFlag = flag.String("theme", "basic", "Colour theme: basic or forest")
	asciiFlag = flag.Bool("ascii", false, "Use letters instead of unicode piece glyphs")
	logFile   = flag.String("log", "", "Write diagnostics to this file")
	version   = flag.Bool("version", false, "Print version and exit")
)

func main() {
	flag.Parse()

	if *version {
		fmt.Printf("schach version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	cfg.Theme = *themeFlag
	cfg.ASCIIPieces = *asciiFlag
	cfg.LogFile = *logFile
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "schach: %v\n", err)
		os.Exit(1)
	}

	setupLog(cfg)

	game := engine.NewGame()
	app, err := tui.NewApp(game, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "schach: %v\n", err)
		os.Exit(1)
	}
	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "schach: %v\n", err)
		os.Exit(1)
	}

	printResult(game.Status())
}

// setupLog sends diagnostics to the configured file, or nowhere: the
// TUI owns the terminal while it runs.
func setupLog(cfg *config.Config) {
	if cfg.LogFile == "" {
		log.SetOutput(io.Discard)
		return
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
	if err != nil {
		fmt.Fprintf(os.Stderr, "schach: opening log file: %v\n", err)
		os.Exit(1)
	}
	log.SetOutput(f)
}

// printResult summarizes the game on plain stdout after the screen has
// been released.
func printResult(status chess.GameStatus) {
	switch status.Status {
	case chess.Checkmate:
		color.New(color.FgGreen, color.Bold).Printf("Checkmate — %s wins.\n", status.Colour.Opposite())
	case chess.Stalemate:
		color.New(color.FgYellow, color.Bold).Println("Stalemate — draw.")
	default:
		fmt.Printf("Game unfinished: %s to move.\n", status.Colour)
	}
}
