package loan

// SummaryRow is one line of the side-by-side model comparison. Premium is
// how much more total interest the model costs than the amortizing schedule
// for the same parameters.
type SummaryRow struct {
	Model Model
	Totals
	Premium float64
}

// Compare builds all three schedules for the same parameters and reduces
// each to its totals, with the amortizing schedule as the premium baseline.
func Compare(p Params) ([]SummaryRow, error) {
	rows := make([]SummaryRow, 0, len(Models))
	for _, m := range Models {
		s, err := Build(m, p)
		if err != nil {
			return nil, err
		}
		rows = append(rows, SummaryRow{Model: m, Totals: s.Totals()})
	}
	baseline := rows[0].Interest
	for i := range rows {
		rows[i].Premium = rows[i].Interest - baseline
	}
	return rows, nil
}
