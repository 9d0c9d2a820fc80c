package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// action identifies what a clickable button does.
type action int

const (
	actionNone action = iota
	actionSelectModel
	actionSelectView
	actionQuit
)

// region is a clickable rectangle in the rendered frame. Coordinates are
// cell-based, matching bubbletea mouse events; x1/y1 are exclusive.
type region struct {
	x0, y0, x1, y1 int
	act            action
	index          int // model or view index, depending on act
}

func (r region) contains(x, y int) bool {
	return x >= r.x0 && x < r.x1 && y >= r.y0 && y < r.y1
}

var (
	buttonStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2)
	activeButtonStyle = buttonStyle.
				BorderForeground(lipgloss.Color("212")).
				Foreground(lipgloss.Color("212")).
				Bold(true)
)

// renderButton draws one labeled box, highlighted when active. Every button
// is padded to the same inner width so stacked buttons line up.
func renderButton(label string, innerWidth int, active bool) string {
	if pad := innerWidth - lipgloss.Width(label); pad > 0 {
		label += strings.Repeat(" ", pad)
	}
	if active {
		return activeButtonStyle.Render(label)
	}
	return buttonStyle.Render(label)
}
