//nolint:testpackage // Tests require internal access for thorough testing
package errors

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
)

func TestBreakFractionError(t *testing.T) {
	tests := []struct {
		name string
		err  BreakFractionError
		want string
	}{
		{
			name: "negative fraction",
			err:  BreakFractionError{Value: -0.1},
			want: "invalid break probability: -0.1 (use 0 to disable, a fraction in (0,1), or a percentage in [1,100))",
		},
		{
			name: "percentage too large",
			err:  BreakFractionError{Value: 150},
			want: "invalid break probability: 150 (use 0 to disable, a fraction in (0,1), or a percentage in [1,100))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("BreakFractionError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMissingMultiplierError(t *testing.T) {
	err := MissingMultiplierError{Priority: "maintenance"}
	want := `no multiplier configured for priority "maintenance"`
	if got := err.Error(); got != want {
		t.Errorf("MissingMultiplierError.Error() = %q, want %q", got, want)
	}
}

func TestTaskListNotFoundError(t *testing.T) {
	withPath := TaskListNotFoundError{Path: "/tmp/.spin.md"}
	if got, want := withPath.Error(), "task list not found: /tmp/.spin.md"; got != want {
		t.Errorf("TaskListNotFoundError.Error() = %q, want %q", got, want)
	}

	withoutPath := TaskListNotFoundError{}
	if !strings.Contains(withoutPath.Error(), "spin init") {
		t.Errorf("TaskListNotFoundError{}.Error() = %q, want init hint", withoutPath.Error())
	}

	searched := TaskListNotFoundError{Path: "/tmp/.spin.md", Searched: true}
	got := searched.Error()
	if !strings.Contains(got, "/tmp/.spin.md") || !strings.Contains(got, "spin init") {
		t.Errorf("searched TaskListNotFoundError.Error() = %q, want path and init hint", got)
	}
}

func TestSettingsErrorUnwrap(t *testing.T) {
	err := SettingsError{Source: "config.yaml", Err: fs.ErrNotExist}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("SettingsError should unwrap to its cause")
	}
	want := "invalid settings in config.yaml: file does not exist"
	if got := err.Error(); got != want {
		t.Errorf("SettingsError.Error() = %q, want %q", got, want)
	}
}

func TestInvalidPolicyError(t *testing.T) {
	err := InvalidPolicyError{Value: "roulette"}
	want := "invalid policy: roulette (valid: unified, gate)"
	if got := err.Error(); got != want {
		t.Errorf("InvalidPolicyError.Error() = %q, want %q", got, want)
	}
}
