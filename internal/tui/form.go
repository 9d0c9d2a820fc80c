package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"loanworks/internal/loan"
)

// paramsForm collects principal, rate and term when they were not supplied
// on the command line. The same validation runs here as on the flag path,
// and the form re-shows its error inline until the input passes.
type paramsForm struct {
	inputs  []textinput.Model
	focused int
	errMsg  string
}

const (
	fieldPrincipal = iota
	fieldRate
	fieldTerm
)

var formLabels = []string{"Principal", "Rate (0 < r <= 1)", "Term (years)"}

func newParamsForm(defaults loan.Params) paramsForm {
	inputs := make([]textinput.Model, 3)
	placeholders := []string{"250000", "0.05", "30"}
	for i := range inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.CharLimit = 24
		in.Width = 24
		inputs[i] = in
	}
	if defaults.Principal > 0 {
		inputs[fieldPrincipal].SetValue(strconv.FormatFloat(defaults.Principal, 'f', -1, 64))
	}
	if defaults.Rate > 0 {
		inputs[fieldRate].SetValue(strconv.FormatFloat(defaults.Rate, 'f', -1, 64))
	}
	if defaults.TermYears > 0 {
		inputs[fieldTerm].SetValue(strconv.Itoa(defaults.TermYears))
	}
	inputs[0].Focus()
	return paramsForm{inputs: inputs}
}

// parseParams converts the three raw form fields into validated Params.
func parseParams(principal, rate, term string) (loan.Params, error) {
	p, err := strconv.ParseFloat(strings.TrimSpace(principal), 64)
	if err != nil {
		return loan.Params{}, fmt.Errorf("principal %q is not a number", principal)
	}
	r, err := strconv.ParseFloat(strings.TrimSpace(rate), 64)
	if err != nil {
		return loan.Params{}, fmt.Errorf("rate %q is not a number", rate)
	}
	n, err := strconv.Atoi(strings.TrimSpace(term))
	if err != nil {
		return loan.Params{}, fmt.Errorf("term %q is not a whole number of years", term)
	}
	params := loan.Params{Principal: p, Rate: r, TermYears: n}
	if err := params.Validate(); err != nil {
		return loan.Params{}, err
	}
	return params, nil
}

// update advances the form. When the user submits valid input, the returned
// params pointer is non-nil and the caller switches to the dashboard.
func (f paramsForm) update(msg tea.Msg) (paramsForm, tea.Cmd, *loan.Params) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab", "down":
			f.setFocus((f.focused + 1) % len(f.inputs))
			return f, nil, nil
		case "shift+tab", "up":
			f.setFocus((f.focused + len(f.inputs) - 1) % len(f.inputs))
			return f, nil, nil
		case "enter":
			if f.focused < len(f.inputs)-1 {
				f.setFocus(f.focused + 1)
				return f, nil, nil
			}
			params, err := parseParams(
				f.inputs[fieldPrincipal].Value(),
				f.inputs[fieldRate].Value(),
				f.inputs[fieldTerm].Value(),
			)
			if err != nil {
				f.errMsg = err.Error()
				return f, nil, nil
			}
			f.errMsg = ""
			return f, nil, &params
		}
	}
	var cmd tea.Cmd
	f.inputs[f.focused], cmd = f.inputs[f.focused].Update(msg)
	return f, cmd, nil
}

func (f *paramsForm) setFocus(i int) {
	f.inputs[f.focused].Blur()
	f.focused = i
	f.inputs[f.focused].Focus()
}

var (
	formTitleStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	formErrStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	formHintStyle  = lipgloss.NewStyle().Faint(true)
)

func (f paramsForm) view() string {
	var b strings.Builder
	b.WriteString(formTitleStyle.Render("Loan parameters"))
	b.WriteString("\n")
	for i, in := range f.inputs {
		fmt.Fprintf(&b, "%s\n%s\n\n", formLabels[i], in.View())
	}
	if f.errMsg != "" {
		b.WriteString(formErrStyle.Render(f.errMsg))
		b.WriteString("\n")
	}
	b.WriteString(formHintStyle.Render("tab to move between fields, enter to confirm"))
	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
