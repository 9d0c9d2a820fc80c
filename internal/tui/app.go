// internal/tui/app.go
//
// This is the interactive dashboard for loanplan. It uses bubbletea, which
// follows The Elm Architecture:
//
// 1. Model: Your application state
// 2. Update: A function that updates state based on messages
// 3. View: A function that renders state to a string
//
// The dashboard has clickable buttons: View records where each button was
// drawn, and Update hit-tests mouse presses against those rectangles.

package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"loanworks/internal/config"
	"loanworks/internal/loan"
	"loanworks/internal/logbook"
	"loanworks/internal/plotgen"
	"loanworks/internal/render"
)

// appState represents which "screen" we're on
type appState int

const (
	stateParamsForm appState = iota // Collecting principal/rate/term
	stateDashboard                  // Charts, tables and buttons
)

// dashView selects what the main panel shows.
type dashView int

const (
	viewChart dashView = iota
	viewSchedule
	viewCompare
)

var viewLabels = []string{"Chart", "Schedule", "Compare"}

// plotsWrittenMsg reports the outcome of the background PNG generation.
type plotsWrittenMsg struct {
	paths []string
	err   error
}

// keyMap defines the dashboard keybindings for the bubbles help bar.
type keyMap struct {
	NextModel key.Binding
	PrevModel key.Binding
	Chart     key.Binding
	Schedule  key.Binding
	Compare   key.Binding
	Quit      key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextModel, k.Chart, k.Schedule, k.Compare, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextModel, k.PrevModel},
		{k.Chart, k.Schedule, k.Compare},
		{k.Quit},
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextModel: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next loan")),
		PrevModel: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "previous loan")),
		Chart:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "chart")),
		Schedule:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "schedule")),
		Compare:   key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "overview")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// App is the main application model. In bubbletea, this holds ALL your state.
type App struct {
	state   appState
	config  *config.Config
	logbook *logbook.Logbook

	form paramsForm

	params      loan.Params
	schedules   []loan.Schedule
	compareRows []loan.SummaryRow
	modelIndex  int
	view        dashView
	plotNote    string

	// Clickable rectangles, rebuilt on every dashboard render.
	regions []region

	keymap keyMap
	help   help.Model

	width  int
	height int
}

// NewApp creates the dashboard model. When params already validate (all
// three flags were given), the form is skipped entirely.
func NewApp(cfg *config.Config, book *logbook.Logbook, params loan.Params) (*App, error) {
	app := &App{
		config:  cfg,
		logbook: book,
		keymap:  defaultKeyMap(),
		help:    help.New(),
	}
	if params.Validate() == nil {
		if err := app.activate(params); err != nil {
			return nil, err
		}
	} else {
		app.state = stateParamsForm
		app.form = newParamsForm(formDefaults(cfg, params))
	}
	return app, nil
}

// formDefaults pre-fills the form from flags first, then the config file.
func formDefaults(cfg *config.Config, flags loan.Params) loan.Params {
	defaults := flags
	if cfg == nil {
		return defaults
	}
	if defaults.Principal <= 0 {
		defaults.Principal = cfg.Project.Defaults.Principal
	}
	if defaults.Rate <= 0 {
		defaults.Rate = cfg.Project.Defaults.Rate
	}
	if defaults.TermYears <= 0 {
		defaults.TermYears = cfg.Project.Defaults.TermYears
	}
	return defaults
}

// activate builds all three schedules and switches to the dashboard.
func (a *App) activate(params loan.Params) error {
	schedules := make([]loan.Schedule, 0, len(loan.Models))
	for _, m := range loan.Models {
		s, err := loan.Build(m, params)
		if err != nil {
			return err
		}
		schedules = append(schedules, s)
	}
	rows, err := loan.Compare(params)
	if err != nil {
		return err
	}
	a.params = params
	a.schedules = schedules
	a.compareRows = rows
	a.state = stateDashboard
	for _, s := range schedules {
		a.logbook.ScheduleBuilt(s.Model.String(),
			render.Amount(params.Principal), render.Percent(params.Rate), params.TermYears)
	}
	return nil
}

// writePlots renders all nine PNGs off the UI goroutine.
func (a *App) writePlots() tea.Cmd {
	opts := plotgen.Options{}
	if a.config != nil {
		opts = plotgen.Options{
			Dir:          a.config.PlotsDir(),
			WidthInches:  a.config.Project.Plots.WidthInches,
			HeightInches: a.config.Project.Plots.HeightInches,
		}
	}
	schedules := append([]loan.Schedule(nil), a.schedules...)
	return func() tea.Msg {
		paths, err := plotgen.WriteAll(opts, schedules)
		return plotsWrittenMsg{paths: paths, err: err}
	}
}

func (a *App) Init() tea.Cmd {
	if a.state == stateParamsForm {
		return textinput.Blink
	}
	return a.writePlots()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		return a, nil

	case plotsWrittenMsg:
		if msg.err != nil {
			a.plotNote = fmt.Sprintf("plot generation failed: %v", msg.err)
			a.logbook.Error("plot generation: %v", msg.err)
			return a, nil
		}
		a.plotNote = fmt.Sprintf("%d plots written", len(msg.paths))
		for _, path := range msg.paths {
			a.logbook.PlotWritten(path)
		}
		return a, nil
	}

	if a.state == stateParamsForm {
		return a.updateForm(msg)
	}
	return a.updateDashboard(msg)
}

func (a *App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c", "esc":
			return a, tea.Quit
		}
	}
	form, cmd, params := a.form.update(msg)
	a.form = form
	if params == nil {
		return a, cmd
	}
	if err := a.activate(*params); err != nil {
		// Validate passed in the form, so this is unexpected; show it.
		a.form.errMsg = err.Error()
		return a, cmd
	}
	return a, a.writePlots()
}

func (a *App) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keymap.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keymap.NextModel):
			a.selectModel((a.modelIndex + 1) % len(a.schedules))
		case key.Matches(msg, a.keymap.PrevModel):
			a.selectModel((a.modelIndex + len(a.schedules) - 1) % len(a.schedules))
		case key.Matches(msg, a.keymap.Chart):
			a.view = viewChart
		case key.Matches(msg, a.keymap.Schedule):
			a.view = viewSchedule
		case key.Matches(msg, a.keymap.Compare):
			a.view = viewCompare
		default:
			switch msg.String() {
			case "1", "2", "3":
				a.selectModel(int(msg.String()[0] - '1'))
			}
		}
		return a, nil

	case tea.MouseMsg:
		if msg.Button != tea.MouseButtonLeft || msg.Action != tea.MouseActionPress {
			return a, nil
		}
		return a.handleClick(msg.X, msg.Y)
	}
	return a, nil
}

func (a *App) handleClick(x, y int) (tea.Model, tea.Cmd) {
	for _, r := range a.regions {
		if !r.contains(x, y) {
			continue
		}
		switch r.act {
		case actionSelectModel:
			a.selectModel(r.index)
		case actionSelectView:
			a.view = dashView(r.index)
		case actionQuit:
			return a, tea.Quit
		}
		return a, nil
	}
	return a, nil
}

func (a *App) selectModel(i int) {
	if i < 0 || i >= len(a.schedules) || i == a.modelIndex {
		return
	}
	a.modelIndex = i
	a.logbook.Info("selected %s", a.schedules[i].Model.Title())
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("212")).
			Padding(0, 1)
	paramsStyle = lipgloss.NewStyle().Faint(true).Padding(0, 1)
	panelStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
	logTitleStyle = lipgloss.NewStyle().Faint(true).Bold(true).Padding(0, 1)
	logLineStyle  = lipgloss.NewStyle().Faint(true).Padding(0, 1)
	noteStyle     = lipgloss.NewStyle().Faint(true)
)

func (a *App) View() string {
	if a.state == stateParamsForm {
		return a.form.view()
	}
	return a.viewDashboard()
}

const (
	sideButtonWidth  = 10
	modelButtonWidth = 17
)

func (a *App) viewDashboard() string {
	a.regions = a.regions[:0]

	header := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Loan repayment planner"),
		paramsStyle.Render(fmt.Sprintf("principal %s at %s over %d years",
			render.Amount(a.params.Principal), render.Percent(a.params.Rate), a.params.TermYears)),
	)
	headerHeight := lipgloss.Height(header)

	// Sidebar: view buttons plus Quit, stacked. Record a region per button
	// as we measure it.
	y := headerHeight
	sideButtons := make([]string, 0, len(viewLabels)+1)
	for i, label := range viewLabels {
		btn := renderButton(label, sideButtonWidth, a.view == dashView(i))
		a.regions = append(a.regions, region{
			x0: 0, y0: y, x1: lipgloss.Width(btn), y1: y + lipgloss.Height(btn),
			act: actionSelectView, index: i,
		})
		y += lipgloss.Height(btn)
		sideButtons = append(sideButtons, btn)
	}
	quitBtn := renderButton("Quit", sideButtonWidth, false)
	a.regions = append(a.regions, region{
		x0: 0, y0: y, x1: lipgloss.Width(quitBtn), y1: y + lipgloss.Height(quitBtn),
		act: actionQuit,
	})
	sideButtons = append(sideButtons, quitBtn)
	sidebar := lipgloss.JoinVertical(lipgloss.Left, sideButtons...)

	main := panelStyle.Render(a.viewMain())
	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, main)

	// Model buttons run along the bottom.
	rowY := headerHeight + lipgloss.Height(body)
	x := 0
	modelButtons := make([]string, 0, len(a.schedules))
	for i, s := range a.schedules {
		btn := renderButton(s.Model.Title(), modelButtonWidth, i == a.modelIndex)
		a.regions = append(a.regions, region{
			x0: x, y0: rowY, x1: x + lipgloss.Width(btn), y1: rowY + lipgloss.Height(btn),
			act: actionSelectModel, index: i,
		})
		x += lipgloss.Width(btn)
		modelButtons = append(modelButtons, btn)
	}
	modelRow := lipgloss.JoinHorizontal(lipgloss.Top, modelButtons...)

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		body,
		modelRow,
		a.renderLogPanel(),
		a.help.View(a.keymap),
	)
}

func (a *App) viewMain() string {
	switch a.view {
	case viewSchedule:
		return render.ScheduleTable(a.schedules[a.modelIndex])
	case viewCompare:
		return render.CompareTable(a.compareRows)
	default:
		chartWidth, chartHeight := 60, 12
		if a.config != nil {
			chartWidth = a.config.Project.Chart.Width
			chartHeight = a.config.Project.Chart.Height
		}
		chart := render.Chart(a.schedules[a.modelIndex], chartWidth, chartHeight)
		if a.plotNote == "" {
			return chart
		}
		return lipgloss.JoinVertical(lipgloss.Left, chart, "", noteStyle.Render(a.plotNote))
	}
}

func (a *App) renderLogPanel() string {
	lines := a.logbook.Tail(4)
	if len(lines) == 0 {
		return ""
	}
	rendered := make([]string, 0, len(lines)+1)
	rendered = append(rendered, logTitleStyle.Render("log"))
	for _, line := range lines {
		rendered = append(rendered, logLineStyle.Render(line))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}
