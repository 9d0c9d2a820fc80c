// cmd/loanplan/main.go
//
// This is the entry point for the loan comparison dashboard.
//
// Flow:
// 1. Parse -principal/-rate/-term flags; anything missing is collected by
//    an in-dashboard form
// 2. Ensure the .loanworks directory and config file exist
// 3. Launch the TUI, which writes the PNG plots in the background

package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"loanworks/internal/config"
	"loanworks/internal/loan"
	"loanworks/internal/logbook"
	"loanworks/internal/tui"
)

func main() {
	principal := flag.Float64("principal", 0, "loan amount")
	rate := flag.Float64("rate", 0, "yearly interest rate as a decimal between 0 and 1")
	term := flag.Int("term", 0, "loan term in years")
	flag.Parse()

	params := loan.Params{Principal: *principal, Rate: *rate, TermYears: *term}
	if err := checkFlags(params); err != nil {
		fmt.Fprintf(os.Stderr, "loanplan: %v\n", err)
		os.Exit(1)
	}

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "loanplan: working directory: %v\n", err)
		os.Exit(1)
	}
	if err := config.InitDir(cwd); err != nil {
		fmt.Fprintf(os.Stderr, "loanplan: init %s: %v\n", config.Dir, err)
		os.Exit(1)
	}
	cfg, err := config.New(cwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loanplan: %v\n", err)
		os.Exit(1)
	}

	// Logging is best-effort; a nil logbook is safe everywhere.
	book, err := logbook.New(cfg.LogPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "loanplan: logging disabled: %v\n", err)
		book = nil
	}

	app, err := tui.NewApp(cfg, book, params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loanplan: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(app,
		tea.WithAltScreen(),       // use the alternate screen buffer, like vim
		tea.WithMouseCellMotion(), // the buttons are clickable
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "loanplan: %v\n", err)
		os.Exit(1)
	}
}

// checkFlags validates only the flags the user actually set; zero values
// mean "ask me in the form".
func checkFlags(p loan.Params) error {
	if p.Principal < 0 {
		return loan.ErrPrincipal
	}
	if p.Rate < 0 || p.Rate > 1 {
		return loan.ErrRate
	}
	if p.TermYears < 0 {
		return loan.ErrTerm
	}
	return nil
}
