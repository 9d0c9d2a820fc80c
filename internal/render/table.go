package render

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"loanworks/internal/loan"
)

var (
	headerCell = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	labelCell  = lipgloss.NewStyle().Padding(0, 1)
	numberCell = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
)

func gridStyle(row, col int) lipgloss.Style {
	// Row 0 is the header row; column 0 holds labels, the rest are numbers.
	if row == 0 {
		return headerCell
	}
	if col == 0 {
		return labelCell
	}
	return numberCell
}

// ScheduleTable renders a full repayment plan as a bordered grid with a
// Totals row at the bottom. The balance column has no meaningful total, so
// its cell stays blank.
func ScheduleTable(s loan.Schedule) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderRow(true).
		StyleFunc(gridStyle).
		Headers("Year", "Balance", "Interest", "Principal", "Installment")
	for _, p := range s.Periods {
		t.Row(
			strconv.Itoa(p.Year),
			Amount(p.Balance),
			Amount(p.Interest),
			Amount(p.Principal),
			Amount(p.Installment),
		)
	}
	totals := s.Totals()
	t.Row("Totals", "", Amount(totals.Interest), Amount(totals.Principal), Amount(totals.Installments))
	return t.Render()
}

// CompareTable renders the three models side by side with their premium
// over the amortizing baseline.
func CompareTable(rows []loan.SummaryRow) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderRow(true).
		StyleFunc(gridStyle).
		Headers("Loan type", "Interest", "Principal", "Installments", "Premium")
	for _, row := range rows {
		t.Row(
			row.Model.Title(),
			Amount(row.Interest),
			Amount(row.Principal),
			Amount(row.Installments),
			Amount(row.Premium),
		)
	}
	return t.Render()
}
