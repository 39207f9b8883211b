//nolint:revive // Package name intentionally matches stdlib for domain clarity
package errors

import (
	"fmt"
	"strconv"
)

// BreakFractionError indicates a break probability outside the accepted range.
type BreakFractionError struct {
	Value float64
}

func (e BreakFractionError) Error() string {
	return fmt.Sprintf(
		"invalid break probability: %s (use 0 to disable, a fraction in (0,1), or a percentage in [1,100))",
		strconv.FormatFloat(e.Value, 'g', -1, 64),
	)
}

// MissingMultiplierError indicates a task priority has no multiplier entry.
type MissingMultiplierError struct {
	Priority string
}

func (e MissingMultiplierError) Error() string {
	return fmt.Sprintf("no multiplier configured for priority %q", e.Priority)
}

// InvalidMultiplierError indicates a multiplier that is not a positive integer.
type InvalidMultiplierError struct {
	Priority string
	Value    int
}

func (e InvalidMultiplierError) Error() string {
	return fmt.Sprintf("multiplier for priority %q must be positive, got %d", e.Priority, e.Value)
}

// WeightSumError indicates a normalized distribution does not sum to 1.
type WeightSumError struct {
	Sum float64
}

func (e WeightSumError) Error() string {
	return fmt.Sprintf("weights must sum to 1.0, got %.6f", e.Sum)
}

// InvalidPriorityError indicates an invalid priority value.
type InvalidPriorityError struct {
	Value string
}

func (e InvalidPriorityError) Error() string {
	return fmt.Sprintf("invalid priority: %s (valid: critical, important, maintenance)", e.Value)
}

// InvalidPolicyError indicates an unknown selection policy name.
type InvalidPolicyError struct {
	Value string
}

func (e InvalidPolicyError) Error() string {
	return fmt.Sprintf("invalid policy: %s (valid: unified, gate)", e.Value)
}

// UnknownPresetError indicates an unknown multiplier preset name.
type UnknownPresetError struct {
	Value string
}

func (e UnknownPresetError) Error() string {
	return fmt.Sprintf("unknown multiplier preset: %s (valid: default, classic)", e.Value)
}

// NoItemsError indicates a draw was requested from an empty list.
type NoItemsError struct{}

func (e NoItemsError) Error() string {
	return "no eligible items to select from"
}

// ZeroTotalWeightError indicates every weight in a draw was zero.
type ZeroTotalWeightError struct{}

func (e ZeroTotalWeightError) Error() string {
	return "cannot select from items whose weights sum to zero"
}

// InvalidWeightError indicates a negative or non-finite weight.
type InvalidWeightError struct {
	Index int
	Value float64
}

func (e InvalidWeightError) Error() string {
	return fmt.Sprintf("weight at index %d is invalid: %v", e.Index, e.Value)
}

// TaskListNotFoundError indicates no task list file could be located.
// Searched is set when Path is only where a search ended, not a file the
// user named.
type TaskListNotFoundError struct {
	Path     string
	Searched bool
}

func (e TaskListNotFoundError) Error() string {
	const hint = "run 'spin init' or pass tasks with --critical/--important/--maintenance"
	switch {
	case e.Path == "":
		return "no task list found: " + hint
	case e.Searched:
		return fmt.Sprintf("no task list found (looked for %s): %s", e.Path, hint)
	default:
		return fmt.Sprintf("task list not found: %s", e.Path)
	}
}

// AlreadyInitializedError indicates the task list file already exists.
type AlreadyInitializedError struct {
	Path string
}

func (e AlreadyInitializedError) Error() string {
	return fmt.Sprintf("task list already exists: %s", e.Path)
}

// TaskNotFoundError indicates no task in the list has the given name.
type TaskNotFoundError struct {
	Name string
}

func (e TaskNotFoundError) Error() string {
	return fmt.Sprintf("task not found: %s", e.Name)
}

// SettingsError indicates a settings document failed to parse or validate.
type SettingsError struct {
	Source string
	Err    error
}

func (e SettingsError) Error() string {
	return fmt.Sprintf("invalid settings in %s: %v", e.Source, e.Err)
}

func (e SettingsError) Unwrap() error {
	return e.Err
}
