//nolint:testpackage // Tests require internal access for thorough testing
package weights

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	spinerrors "github.com/abatilo/spin/internal/errors"
	"github.com/abatilo/spin/internal/task"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-4
}

func repeat(name string, p task.Priority, n int) []task.Task {
	tasks := make([]task.Task, n)
	for i := range tasks {
		tasks[i] = task.Task{Name: name, Priority: p}
	}
	return tasks
}

// sampleList is 3 critical, 4 important and 5 maintenance tasks.
func sampleList() []task.Task {
	var tasks []task.Task
	tasks = append(tasks, repeat("c", task.PriorityCritical, 3)...)
	tasks = append(tasks, repeat("i", task.PriorityImportant, 4)...)
	tasks = append(tasks, repeat("m", task.PriorityMaintenance, 5)...)
	return tasks
}

func TestBreakFraction(t *testing.T) {
	tests := []struct {
		name    string
		in      float64
		want    float64
		wantErr bool
	}{
		{"zero disables", 0, 0, false},
		{"fraction as-is", 0.15, 0.15, false},
		{"tiny fraction", 0.001, 0.001, false},
		{"one is a percentage", 1, 0.01, false},
		{"percentage", 15, 0.15, false},
		{"fractional percentage", 99.9, 0.999, false},
		{"negative", -0.1, 0, true},
		{"hundred", 100, 0, true},
		{"over hundred", 150, 0, true},
		{"nan", math.NaN(), 0, true},
		{"inf", math.Inf(1), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BreakFraction(tt.in)
			if tt.wantErr {
				var bfe spinerrors.BreakFractionError
				if !errors.As(err, &bfe) {
					t.Fatalf("BreakFraction(%v) error = %v, want BreakFractionError", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("BreakFraction(%v) unexpected error: %v", tt.in, err)
			}
			if !approx(got, tt.want) {
				t.Errorf("BreakFraction(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeWithoutBreak(t *testing.T) {
	items, err := Normalize(sampleList(), DefaultMultipliers(), 0)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if len(items) != 12 {
		t.Fatalf("Normalize length = %d, want 12", len(items))
	}

	want := map[task.Priority]float64{
		task.PriorityCritical:    5.0 / 28,
		task.PriorityImportant:   2.0 / 28,
		task.PriorityMaintenance: 1.0 / 28,
	}
	for _, it := range items {
		if it.IsBreak {
			t.Fatal("break item present with break disabled")
		}
		if !approx(it.Weight, want[it.Priority]) {
			t.Errorf("%s weight = %.4f, want %.4f", it.Priority, it.Weight, want[it.Priority])
		}
	}
	if !approx(Sum(items), 1.0) {
		t.Errorf("Sum = %v, want 1.0", Sum(items))
	}
}

func TestNormalizeWithBreak(t *testing.T) {
	items, err := Normalize(sampleList(), DefaultMultipliers(), 15)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if len(items) != 13 {
		t.Fatalf("Normalize length = %d, want 13", len(items))
	}

	first := items[0]
	if !first.IsBreak || first.Name != BreakName || first.Priority != "" {
		t.Errorf("first item = %+v, want break entry", first)
	}
	if !approx(first.Weight, 0.15) {
		t.Errorf("break weight = %v, want 0.15", first.Weight)
	}
	if !approx(items[1].Weight, 5.0*0.85/28) {
		t.Errorf("critical weight = %v, want %v", items[1].Weight, 5.0*0.85/28)
	}
	if !approx(Sum(items), 1.0) {
		t.Errorf("Sum = %v, want 1.0", Sum(items))
	}
}

func TestNormalizeFiltersBlankNames(t *testing.T) {
	tasks := []task.Task{
		{Name: "real", Priority: task.PriorityImportant},
		{Name: "  ", Priority: task.PriorityCritical},
		{Name: "", Priority: task.PriorityCritical},
	}
	items, err := Normalize(tasks, DefaultMultipliers(), 0)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if len(items) != 1 || items[0].Name != "real" || !approx(items[0].Weight, 1.0) {
		t.Errorf("Normalize = %+v, want single item with weight 1", items)
	}
}

func TestNormalizeEmpty(t *testing.T) {
	for _, b := range []float64{0, 15} {
		items, err := Normalize([]task.Task{{Name: " "}}, DefaultMultipliers(), b)
		if err != nil {
			t.Fatalf("Normalize(break=%v) unexpected error: %v", b, err)
		}
		if len(items) != 0 {
			t.Errorf("Normalize(break=%v) = %v, want empty", b, items)
		}
	}
}

func TestNormalizeRejectsBadBreak(t *testing.T) {
	for _, b := range []float64{-0.1, 150} {
		_, err := Normalize(sampleList(), DefaultMultipliers(), b)
		var bfe spinerrors.BreakFractionError
		if !errors.As(err, &bfe) {
			t.Errorf("Normalize(break=%v) error = %v, want BreakFractionError", b, err)
		}
	}
}

func TestNormalizeMissingMultiplier(t *testing.T) {
	m := Multipliers{task.PriorityCritical: 5, task.PriorityImportant: 2}
	_, err := Normalize(sampleList(), m, 0)

	var mme spinerrors.MissingMultiplierError
	if !errors.As(err, &mme) {
		t.Fatalf("Normalize error = %v, want MissingMultiplierError", err)
	}
	if mme.Priority != string(task.PriorityMaintenance) {
		t.Errorf("MissingMultiplierError.Priority = %q, want %q", mme.Priority, task.PriorityMaintenance)
	}
}

func TestNormalizeNonPositiveMultiplier(t *testing.T) {
	m := DefaultMultipliers()
	m[task.PriorityImportant] = 0
	_, err := Normalize(sampleList(), m, 0)

	var ime spinerrors.InvalidMultiplierError
	if !errors.As(err, &ime) {
		t.Fatalf("Normalize error = %v, want InvalidMultiplierError", err)
	}
}

func TestNormalizeSumsToOne(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	priorities := task.Priorities()
	breaks := []float64{0, 0.05, 0.5, 1, 15, 42.5, 99}

	for round := range 200 {
		n := 1 + rng.IntN(30)
		tasks := make([]task.Task, n)
		for i := range tasks {
			tasks[i] = task.Task{Name: "t", Priority: priorities[rng.IntN(len(priorities))]}
		}
		m := Multipliers{
			task.PriorityCritical:    1 + rng.IntN(10),
			task.PriorityImportant:   1 + rng.IntN(10),
			task.PriorityMaintenance: 1 + rng.IntN(10),
		}
		b := breaks[round%len(breaks)]

		items, err := Normalize(tasks, m, b)
		if err != nil {
			t.Fatalf("round %d: Normalize failed: %v", round, err)
		}
		if s := Sum(items); math.Abs(s-1) > SumTolerance {
			t.Fatalf("round %d: Sum = %v, want 1.0", round, s)
		}
	}
}

func TestCheckSum(t *testing.T) {
	if err := CheckSum(nil); err != nil {
		t.Errorf("CheckSum(nil) = %v, want nil", err)
	}
	bad := []WeightedItem{{Weight: 0.5}, {Weight: 0.2}}
	var wse spinerrors.WeightSumError
	if !errors.As(CheckSum(bad), &wse) {
		t.Error("CheckSum should reject a distribution summing to 0.7")
	}
}

func TestPreset(t *testing.T) {
	tests := []struct {
		name     string
		critical int
		wantErr  bool
	}{
		{"", 5, false},
		{PresetDefault, 5, false},
		{PresetClassic, 6, false},
		{"extreme", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Preset(tt.name)
			if tt.wantErr {
				var upe spinerrors.UnknownPresetError
				if !errors.As(err, &upe) {
					t.Errorf("Preset(%q) error = %v, want UnknownPresetError", tt.name, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Preset(%q) unexpected error: %v", tt.name, err)
			}
			if m[task.PriorityCritical] != tt.critical {
				t.Errorf("Preset(%q) critical = %d, want %d", tt.name, m[task.PriorityCritical], tt.critical)
			}
			if err := m.Validate(); err != nil {
				t.Errorf("Preset(%q) failed validation: %v", tt.name, err)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	m := DefaultMultipliers()
	items, err := Normalize(sampleList(), m, 15)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}

	bd := Summarize(items, m)
	if bd.TotalTasks != 12 {
		t.Errorf("TotalTasks = %d, want 12", bd.TotalTasks)
	}
	if !bd.HasBreak || !approx(bd.Break, 0.15) {
		t.Errorf("Break = %v (has=%v), want 0.15", bd.Break, bd.HasBreak)
	}

	want := []struct {
		p     task.Priority
		count int
		prob  float64
	}{
		{task.PriorityCritical, 3, 15.0 / 28 * 0.85},
		{task.PriorityImportant, 4, 8.0 / 28 * 0.85},
		{task.PriorityMaintenance, 5, 5.0 / 28 * 0.85},
	}
	for i, w := range want {
		c := bd.Categories[i]
		if c.Priority != w.p || c.Count != w.count || !approx(c.Probability, w.prob) {
			t.Errorf("Categories[%d] = %+v, want %s x%d at %.4f", i, c, w.p, w.count, w.prob)
		}
	}
}

func TestSummarizeEmpty(t *testing.T) {
	bd := Summarize(nil, DefaultMultipliers())
	if bd.TotalTasks != 0 || bd.HasBreak {
		t.Errorf("Summarize(nil) = %+v, want zero tasks and no break", bd)
	}
	if len(bd.Categories) != 3 {
		t.Errorf("Summarize(nil) categories = %d, want 3", len(bd.Categories))
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0.15, "15.0%"},
		{15.0 / 28 * 0.85, "45.5%"},
		{0, "0.0%"},
		{1, "100.0%"},
	}

	for _, tt := range tests {
		if got := Percent(tt.in); got != tt.want {
			t.Errorf("Percent(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
