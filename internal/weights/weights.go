// Package weights turns a categorized task list into a probability
// distribution over tasks and an optional break outcome.
package weights

import (
	"math"

	spinerrors "github.com/abatilo/spin/internal/errors"
	"github.com/abatilo/spin/internal/task"
)

const (
	// SumTolerance is the allowed drift of a distribution's total from 1.0.
	SumTolerance = 0.001

	// BreakName is the name of the synthetic break entry.
	BreakName = "Break"

	// DefaultBreak is the break probability used when none is configured.
	DefaultBreak = 0.15

	percentScale = 100
)

// Multipliers maps each priority to its positive integer weight multiplier.
type Multipliers map[task.Priority]int

// Preset names.
const (
	PresetDefault = "default"
	PresetClassic = "classic"
)

// DefaultMultipliers returns the canonical table: Critical=5, Important=2, Maintenance=1.
func DefaultMultipliers() Multipliers {
	return Multipliers{
		task.PriorityCritical:    5,
		task.PriorityImportant:   2,
		task.PriorityMaintenance: 1,
	}
}

// ClassicMultipliers returns the older table that favors critical work harder.
func ClassicMultipliers() Multipliers {
	return Multipliers{
		task.PriorityCritical:    6,
		task.PriorityImportant:   2,
		task.PriorityMaintenance: 1,
	}
}

// Preset looks up a named multiplier table.
func Preset(name string) (Multipliers, error) {
	switch name {
	case "", PresetDefault:
		return DefaultMultipliers(), nil
	case PresetClassic:
		return ClassicMultipliers(), nil
	default:
		return nil, spinerrors.UnknownPresetError{Value: name}
	}
}

// For returns the multiplier for p, or a configuration error if p has no
// positive entry.
func (m Multipliers) For(p task.Priority) (int, error) {
	v, ok := m[p]
	if !ok {
		return 0, spinerrors.MissingMultiplierError{Priority: string(p)}
	}
	if v <= 0 {
		return 0, spinerrors.InvalidMultiplierError{Priority: string(p), Value: v}
	}
	return v, nil
}

// Validate checks that every priority has a positive multiplier.
func (m Multipliers) Validate() error {
	for _, p := range task.Priorities() {
		if _, err := m.For(p); err != nil {
			return err
		}
	}
	return nil
}

// Clone returns an independent copy.
func (m Multipliers) Clone() Multipliers {
	out := make(Multipliers, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// WeightedItem is a task or the break entry after normalization.
type WeightedItem struct {
	Name     string
	Weight   float64
	Priority task.Priority // empty for the break entry
	IsBreak  bool
}

// BreakFraction converts a user-supplied break value into a probability.
// 0 disables the break, values in (0,1) are used as-is and values in
// [1,100) are read as percentages. Anything else is rejected.
func BreakFraction(v float64) (float64, error) {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v >= percentScale:
		return 0, spinerrors.BreakFractionError{Value: v}
	case v == 0:
		return 0, nil
	case v >= 1:
		return v / percentScale, nil
	default:
		return v, nil
	}
}

// Normalize builds the weighted distribution for tasks. Blank tasks are
// dropped first; if none remain the result is empty. breakValue is
// interpreted by BreakFraction, and a non-zero break adds a leading
// break item carrying that probability.
func Normalize(tasks []task.Task, m Multipliers, breakValue float64) ([]WeightedItem, error) {
	b, err := BreakFraction(breakValue)
	if err != nil {
		return nil, err
	}

	tasks = task.Clean(tasks)
	if len(tasks) == 0 {
		return nil, nil
	}

	total, err := TotalWeight(tasks, m)
	if err != nil {
		return nil, err
	}

	items := make([]WeightedItem, 0, len(tasks)+1)
	if b > 0 {
		items = append(items, WeightedItem{Name: BreakName, Weight: b, IsBreak: true})
	}
	for _, t := range tasks {
		mult, _ := m.For(t.Priority) // checked by TotalWeight
		items = append(items, WeightedItem{
			Name:     t.Name,
			Weight:   float64(mult) * (1 - b) / float64(total),
			Priority: t.Priority,
		})
	}

	if err := CheckSum(items); err != nil {
		return nil, err
	}
	return items, nil
}

// TotalWeight sums the multipliers of tasks.
func TotalWeight(tasks []task.Task, m Multipliers) (int, error) {
	total := 0
	for _, t := range tasks {
		mult, err := m.For(t.Priority)
		if err != nil {
			return 0, err
		}
		total += mult
	}
	return total, nil
}

// Sum returns the total weight of items.
func Sum(items []WeightedItem) float64 {
	var s float64
	for _, it := range items {
		s += it.Weight
	}
	return s
}

// CheckSum verifies that a non-empty distribution sums to 1 within SumTolerance.
func CheckSum(items []WeightedItem) error {
	if len(items) == 0 {
		return nil
	}
	s := Sum(items)
	if math.Abs(s-1.0) > SumTolerance {
		return spinerrors.WeightSumError{Sum: s}
	}
	return nil
}

// Values extracts the raw weights, in order.
func Values(items []WeightedItem) []float64 {
	out := make([]float64, len(items))
	for i, it := range items {
		out[i] = it.Weight
	}
	return out
}
