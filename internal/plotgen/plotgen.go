// Package plotgen writes loan schedules to disk as PNG plots.
//
// Every model gets a scatter, a line and a bar rendering of its interest,
// principal and installment series, so the files can be compared outside
// the terminal.
package plotgen

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"loanworks/internal/loan"
)

// Kind selects how a schedule is drawn.
type Kind string

const (
	KindScatter Kind = "scatter"
	KindLine    Kind = "line"
	KindBar     Kind = "bar"
)

// Kinds lists every plot style in generation order.
var Kinds = []Kind{KindScatter, KindLine, KindBar}

// Options control where and how large the PNGs are written.
type Options struct {
	Dir          string
	WidthInches  float64
	HeightInches float64
}

func (o Options) withDefaults() Options {
	if o.Dir == "" {
		o.Dir = "plots"
	}
	if o.WidthInches <= 0 {
		o.WidthInches = 10
	}
	if o.HeightInches <= 0 {
		o.HeightInches = 6
	}
	return o
}

// WriteAll renders every schedule in every kind into o.Dir, creating the
// directory if needed, and returns the written file paths in order.
func WriteAll(o Options, schedules []loan.Schedule) ([]string, error) {
	o = o.withDefaults()
	if err := os.MkdirAll(o.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("plotgen: ensure plot dir: %w", err)
	}
	var paths []string
	for _, s := range schedules {
		for _, kind := range Kinds {
			path, err := Write(o, s, kind)
			if err != nil {
				return paths, err
			}
			paths = append(paths, path)
		}
	}
	return paths, nil
}

// Write renders one schedule in one kind and returns the file path,
// <dir>/<model>_<kind>.png.
func Write(o Options, s loan.Schedule, kind Kind) (string, error) {
	o = o.withDefaults()
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s (%s)", s.Model.Title(), kind)
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Amount"
	p.Add(plotter.NewGrid())
	p.Legend.Top = true

	if err := addSeries(p, s, kind); err != nil {
		return "", err
	}

	path := filepath.Join(o.Dir, fmt.Sprintf("%s_%s.png", s.Model, kind))
	if err := p.Save(vg.Length(o.WidthInches)*vg.Inch, vg.Length(o.HeightInches)*vg.Inch, path); err != nil {
		return "", fmt.Errorf("plotgen: save %s: %w", path, err)
	}
	return path, nil
}

func addSeries(p *plot.Plot, s loan.Schedule, kind Kind) error {
	years := s.Years()
	for i, series := range s.Series() {
		switch kind {
		case KindLine:
			line, err := plotter.NewLine(toXYs(years, series.Values))
			if err != nil {
				return fmt.Errorf("plotgen: %s line: %w", series.Name, err)
			}
			line.Color = plotutil.Color(i)
			p.Add(line)
			p.Legend.Add(series.Name, line)
		case KindScatter:
			scatter, err := plotter.NewScatter(toXYs(years, series.Values))
			if err != nil {
				return fmt.Errorf("plotgen: %s scatter: %w", series.Name, err)
			}
			scatter.GlyphStyle.Color = plotutil.Color(i)
			scatter.GlyphStyle.Radius = vg.Points(3)
			p.Add(scatter)
			p.Legend.Add(series.Name, scatter)
		case KindBar:
			barWidth := vg.Points(8)
			bars, err := plotter.NewBarChart(plotter.Values(series.Values), barWidth)
			if err != nil {
				return fmt.Errorf("plotgen: %s bars: %w", series.Name, err)
			}
			bars.Color = plotutil.Color(i)
			bars.LineStyle.Width = 0
			bars.Offset = barWidth * vg.Length(i-1)
			p.Add(bars)
			p.Legend.Add(series.Name, bars)
		default:
			return fmt.Errorf("plotgen: unknown plot kind %q", kind)
		}
	}
	if kind == KindBar {
		labels := make([]string, len(years))
		for i, year := range years {
			labels[i] = strconv.Itoa(int(year))
		}
		p.NominalX(labels...)
	}
	return nil
}

func toXYs(xs, ys []float64) plotter.XYs {
	xys := make(plotter.XYs, len(xs))
	for i := range xs {
		xys[i].X = xs[i]
		xys[i].Y = ys[i]
	}
	return xys
}
