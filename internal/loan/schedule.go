// Package loan computes yearly repayment schedules for the three classic
// loan shapes: amortizing (equal principal), annuity (equal installment),
// and bullet (interest only, principal due at the end).
//
// All math is closed-form; a schedule is built once and never mutated.
package loan

import (
	"errors"
	"fmt"
	"math"
)

// Model identifies a repayment shape.
type Model int

const (
	Amortizing Model = iota
	Annuity
	Bullet
)

// Models lists every repayment shape in display order.
var Models = []Model{Amortizing, Annuity, Bullet}

func (m Model) String() string {
	switch m {
	case Amortizing:
		return "amortizing"
	case Annuity:
		return "annuity"
	case Bullet:
		return "bullet"
	default:
		return fmt.Sprintf("model(%d)", int(m))
	}
}

// Title returns the capitalized display name, e.g. "Amortizing loan".
func (m Model) Title() string {
	s := m.String()
	return string(s[0]-'a'+'A') + s[1:] + " loan"
}

// Params are the three numbers that define a loan.
type Params struct {
	Principal float64 // amount borrowed
	Rate      float64 // yearly interest rate as a decimal, 0 < Rate <= 1
	TermYears int
}

var (
	ErrPrincipal = errors.New("loan: principal must be greater than zero")
	ErrRate      = errors.New("loan: rate must be between 0 (exclusive) and 1 (inclusive)")
	ErrTerm      = errors.New("loan: term must be at least one year")
)

// Validate rejects parameters no schedule can be built from. Every
// constructor calls it, so a Schedule in hand is always well-formed.
func (p Params) Validate() error {
	if p.Principal <= 0 || math.IsNaN(p.Principal) || math.IsInf(p.Principal, 0) {
		return ErrPrincipal
	}
	if p.Rate <= 0 || p.Rate > 1 || math.IsNaN(p.Rate) {
		return ErrRate
	}
	if p.TermYears < 1 {
		return ErrTerm
	}
	return nil
}

// Period is one year of a repayment schedule. Balance is the outstanding
// amount at the start of the year, before that year's payment.
type Period struct {
	Year        int
	Balance     float64
	Interest    float64
	Principal   float64
	Installment float64
}

// Schedule is a full repayment plan for one model and one set of parameters.
type Schedule struct {
	Model   Model
	Params  Params
	Periods []Period
}

// Build computes the schedule for the given model.
func Build(m Model, p Params) (Schedule, error) {
	switch m {
	case Amortizing:
		return BuildAmortizing(p)
	case Annuity:
		return BuildAnnuity(p)
	case Bullet:
		return BuildBullet(p)
	default:
		return Schedule{}, fmt.Errorf("loan: unknown model %d", int(m))
	}
}

// BuildAmortizing repays an equal slice of principal every year; interest is
// charged on the declining balance, so installments shrink over time.
func BuildAmortizing(p Params) (Schedule, error) {
	if err := p.Validate(); err != nil {
		return Schedule{}, err
	}
	repayment := p.Principal / float64(p.TermYears)
	periods := make([]Period, p.TermYears)
	balance := p.Principal
	for i := range periods {
		interest := balance * p.Rate
		periods[i] = Period{
			Year:        i + 1,
			Balance:     balance,
			Interest:    interest,
			Principal:   repayment,
			Installment: repayment + interest,
		}
		balance -= repayment
	}
	return Schedule{Model: Amortizing, Params: p, Periods: periods}, nil
}

// AnnuityFactor is the standard annuity coefficient r(1+r)^n / ((1+r)^n - 1);
// principal times this factor gives the constant yearly installment.
func AnnuityFactor(rate float64, termYears int) float64 {
	compound := math.Pow(1+rate, float64(termYears))
	return rate * compound / (compound - 1)
}

// BuildAnnuity keeps the total installment constant; the principal portion
// grows geometrically while interest shrinks to match.
func BuildAnnuity(p Params) (Schedule, error) {
	if err := p.Validate(); err != nil {
		return Schedule{}, err
	}
	installment := p.Principal * AnnuityFactor(p.Rate, p.TermYears)
	periods := make([]Period, p.TermYears)
	balance := p.Principal
	for i := range periods {
		repayment := (installment - p.Principal*p.Rate) * math.Pow(1+p.Rate, float64(i))
		periods[i] = Period{
			Year:        i + 1,
			Balance:     balance,
			Interest:    installment - repayment,
			Principal:   repayment,
			Installment: installment,
		}
		balance -= repayment
	}
	return Schedule{Model: Annuity, Params: p, Periods: periods}, nil
}

// BuildBullet charges interest only until the final year, when the whole
// principal comes due in one payment.
func BuildBullet(p Params) (Schedule, error) {
	if err := p.Validate(); err != nil {
		return Schedule{}, err
	}
	interest := p.Principal * p.Rate
	periods := make([]Period, p.TermYears)
	for i := range periods {
		periods[i] = Period{
			Year:        i + 1,
			Balance:     p.Principal,
			Interest:    interest,
			Installment: interest,
		}
	}
	last := &periods[len(periods)-1]
	last.Principal = p.Principal
	last.Installment = p.Principal + interest
	return Schedule{Model: Bullet, Params: p, Periods: periods}, nil
}

// Totals are the column sums of a schedule.
type Totals struct {
	Interest     float64
	Principal    float64
	Installments float64
}

// Totals sums the interest, principal and installment columns.
func (s Schedule) Totals() Totals {
	var t Totals
	for _, period := range s.Periods {
		t.Interest += period.Interest
		t.Principal += period.Principal
		t.Installments += period.Installment
	}
	return t
}

// Years returns the period indices as floats, ready for plotting.
func (s Schedule) Years() []float64 {
	years := make([]float64, len(s.Periods))
	for i, period := range s.Periods {
		years[i] = float64(period.Year)
	}
	return years
}

// Series is one named plottable column of a schedule.
type Series struct {
	Name   string
	Values []float64
}

// Series returns the interest, principal and installment columns. The
// balance column is deliberately left out: it dwarfs the payment lines and
// flattens every plot it appears on.
func (s Schedule) Series() []Series {
	interest := make([]float64, len(s.Periods))
	principal := make([]float64, len(s.Periods))
	installment := make([]float64, len(s.Periods))
	for i, period := range s.Periods {
		interest[i] = period.Interest
		principal[i] = period.Principal
		installment[i] = period.Installment
	}
	return []Series{
		{Name: "Interest", Values: interest},
		{Name: "Principal", Values: principal},
		{Name: "Installment", Values: installment},
	}
}
