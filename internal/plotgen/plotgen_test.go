package plotgen

import (
	"os"
	"path/filepath"
	"testing"

	"loanworks/internal/loan"
)

func sampleSchedules(t *testing.T) []loan.Schedule {
	t.Helper()
	params := loan.Params{Principal: 1000, Rate: 0.05, TermYears: 5}
	schedules := make([]loan.Schedule, 0, len(loan.Models))
	for _, m := range loan.Models {
		s, err := loan.Build(m, params)
		if err != nil {
			t.Fatal(err)
		}
		schedules = append(schedules, s)
	}
	return schedules
}

func TestWriteAll(t *testing.T) {
	dir := t.TempDir()
	paths, err := WriteAll(Options{Dir: dir, WidthInches: 5, HeightInches: 3}, sampleSchedules(t))
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 9 {
		t.Fatalf("wrote %d plots, want 9", len(paths))
	}
	want := map[string]bool{}
	for _, model := range []string{"amortizing", "annuity", "bullet"} {
		for _, kind := range []string{"scatter", "line", "bar"} {
			want[model+"_"+kind+".png"] = true
		}
	}
	for _, path := range paths {
		name := filepath.Base(path)
		if !want[name] {
			t.Errorf("unexpected plot file %s", name)
		}
		delete(want, name)
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("missing plot file %s: %v", path, err)
		}
		if info.Size() == 0 {
			t.Errorf("plot file %s is empty", path)
		}
	}
	if len(want) != 0 {
		t.Fatalf("plots never written: %v", want)
	}
}

func TestWriteCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "plots")
	schedules := sampleSchedules(t)
	if _, err := WriteAll(Options{Dir: dir}, schedules[:1]); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "amortizing_line.png")); err != nil {
		t.Fatalf("line plot not written: %v", err)
	}
}

func TestWriteBar(t *testing.T) {
	dir := t.TempDir()
	schedules := sampleSchedules(t)
	path, err := Write(Options{Dir: dir}, schedules[0], KindBar)
	if err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("bar plot not written: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("bar plot is empty")
	}
}

func TestWriteRejectsUnknownKind(t *testing.T) {
	schedules := sampleSchedules(t)
	if _, err := Write(Options{Dir: t.TempDir()}, schedules[0], Kind("pie")); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}
