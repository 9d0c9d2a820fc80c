package loan

import (
	"errors"
	"math"
	"testing"
)

var sample = Params{Principal: 1000, Rate: 0.05, TermYears: 5}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestBuildAmortizing(t *testing.T) {
	s, err := BuildAmortizing(sample)
	if err != nil {
		t.Fatal(err)
	}
	balances := []float64{1000, 800, 600, 400, 200}
	interests := []float64{50, 40, 30, 20, 10}
	for i, period := range s.Periods {
		if period.Year != i+1 {
			t.Fatalf("period %d has year %d", i, period.Year)
		}
		if !almostEqual(period.Balance, balances[i]) {
			t.Errorf("year %d balance = %v, want %v", period.Year, period.Balance, balances[i])
		}
		if !almostEqual(period.Interest, interests[i]) {
			t.Errorf("year %d interest = %v, want %v", period.Year, period.Interest, interests[i])
		}
		if !almostEqual(period.Principal, 200) {
			t.Errorf("year %d principal = %v, want 200", period.Year, period.Principal)
		}
		if !almostEqual(period.Installment, 200+interests[i]) {
			t.Errorf("year %d installment = %v, want %v", period.Year, period.Installment, 200+interests[i])
		}
	}
	totals := s.Totals()
	if !almostEqual(totals.Interest, 150) || !almostEqual(totals.Principal, 1000) || !almostEqual(totals.Installments, 1150) {
		t.Fatalf("totals = %+v", totals)
	}
}

func TestBuildAnnuity(t *testing.T) {
	s, err := BuildAnnuity(sample)
	if err != nil {
		t.Fatal(err)
	}
	installment := sample.Principal * AnnuityFactor(sample.Rate, sample.TermYears)
	var repaid float64
	for _, period := range s.Periods {
		if !almostEqual(period.Installment, installment) {
			t.Errorf("year %d installment = %v, want constant %v", period.Year, period.Installment, installment)
		}
		if !almostEqual(period.Interest+period.Principal, installment) {
			t.Errorf("year %d interest+principal = %v, want %v", period.Year, period.Interest+period.Principal, installment)
		}
		if !almostEqual(period.Balance, sample.Principal-repaid) {
			t.Errorf("year %d balance = %v, want %v", period.Year, period.Balance, sample.Principal-repaid)
		}
		if !almostEqual(period.Interest, period.Balance*sample.Rate) {
			t.Errorf("year %d interest = %v, want balance*rate = %v", period.Year, period.Interest, period.Balance*sample.Rate)
		}
		repaid += period.Principal
	}
	if !almostEqual(repaid, sample.Principal) {
		t.Fatalf("total principal repaid = %v, want %v", repaid, sample.Principal)
	}
	// Principal portions grow geometrically by (1+r).
	for i := 1; i < len(s.Periods); i++ {
		ratio := s.Periods[i].Principal / s.Periods[i-1].Principal
		if !almostEqual(ratio, 1+sample.Rate) {
			t.Errorf("principal growth year %d = %v, want %v", i+1, ratio, 1+sample.Rate)
		}
	}
}

func TestBuildBullet(t *testing.T) {
	s, err := BuildBullet(sample)
	if err != nil {
		t.Fatal(err)
	}
	for i, period := range s.Periods {
		if !almostEqual(period.Balance, 1000) {
			t.Errorf("year %d balance = %v, want 1000", period.Year, period.Balance)
		}
		if !almostEqual(period.Interest, 50) {
			t.Errorf("year %d interest = %v, want 50", period.Year, period.Interest)
		}
		final := i == len(s.Periods)-1
		if final {
			if !almostEqual(period.Principal, 1000) || !almostEqual(period.Installment, 1050) {
				t.Errorf("final year = %+v, want principal 1000 installment 1050", period)
			}
		} else if !almostEqual(period.Principal, 0) || !almostEqual(period.Installment, 50) {
			t.Errorf("year %d = %+v, want interest-only", period.Year, period)
		}
	}
	totals := s.Totals()
	if !almostEqual(totals.Interest, 250) || !almostEqual(totals.Installments, 1250) {
		t.Fatalf("totals = %+v", totals)
	}
}

func TestAnnuityFactor(t *testing.T) {
	// Hand-computed: 1.05^5 = 1.2762815625.
	want := 0.05 * 1.2762815625 / (1.2762815625 - 1)
	if got := AnnuityFactor(0.05, 5); !almostEqual(got, want) {
		t.Fatalf("AnnuityFactor(0.05, 5) = %v, want %v", got, want)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		params Params
		want   error
	}{
		{"zero principal", Params{0, 0.05, 5}, ErrPrincipal},
		{"negative principal", Params{-1, 0.05, 5}, ErrPrincipal},
		{"zero rate", Params{1000, 0, 5}, ErrRate},
		{"rate above one", Params{1000, 1.5, 5}, ErrRate},
		{"zero term", Params{1000, 0.05, 0}, ErrTerm},
		{"negative term", Params{1000, 0.05, -3}, ErrTerm},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if err := c.params.Validate(); !errors.Is(err, c.want) {
				t.Fatalf("Validate() = %v, want %v", err, c.want)
			}
			for _, m := range Models {
				if _, err := Build(m, c.params); !errors.Is(err, c.want) {
					t.Fatalf("Build(%s) error = %v, want %v", m, err, c.want)
				}
			}
		})
	}
	if err := sample.Validate(); err != nil {
		t.Fatalf("valid params rejected: %v", err)
	}
}

func TestCompare(t *testing.T) {
	rows, err := Compare(sample)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if rows[0].Model != Amortizing || !almostEqual(rows[0].Premium, 0) {
		t.Fatalf("baseline row = %+v", rows[0])
	}
	if !almostEqual(rows[2].Premium, 100) { // bullet: 250 - 150
		t.Fatalf("bullet premium = %v, want 100", rows[2].Premium)
	}
	annuityTotal := rows[1].Interest
	if !almostEqual(rows[1].Premium, annuityTotal-150) {
		t.Fatalf("annuity premium = %v, want %v", rows[1].Premium, annuityTotal-150)
	}
	if rows[1].Premium <= 0 || rows[1].Premium >= rows[2].Premium {
		t.Fatalf("annuity premium %v should sit between amortizing and bullet", rows[1].Premium)
	}
}

func TestSeries(t *testing.T) {
	s, err := BuildAmortizing(sample)
	if err != nil {
		t.Fatal(err)
	}
	series := s.Series()
	if len(series) != 3 {
		t.Fatalf("got %d series, want 3", len(series))
	}
	for _, col := range series {
		if len(col.Values) != sample.TermYears {
			t.Fatalf("series %s has %d values, want %d", col.Name, len(col.Values), sample.TermYears)
		}
	}
	if series[0].Name != "Interest" || !almostEqual(series[0].Values[0], 50) {
		t.Fatalf("first series = %+v", series[0])
	}
	years := s.Years()
	if len(years) != 5 || years[0] != 1 || years[4] != 5 {
		t.Fatalf("years = %v", years)
	}
}

func TestModelTitles(t *testing.T) {
	if Amortizing.Title() != "Amortizing loan" || Bullet.String() != "bullet" {
		t.Fatalf("unexpected model names: %q %q", Amortizing.Title(), Bullet.String())
	}
}
