// Package spinner picks the next task to work on, or a break, from a
// weighted task list.
package spinner

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	spinerrors "github.com/abatilo/spin/internal/errors"
	"github.com/abatilo/spin/internal/sampler"
	"github.com/abatilo/spin/internal/task"
	"github.com/abatilo/spin/internal/weights"
)

// Policy selects how the break outcome competes with tasks.
type Policy string

const (
	// PolicyUnified folds the break into the weighted list and draws once.
	PolicyUnified Policy = "unified"
	// PolicyGate runs an independent break trial before drawing a task.
	PolicyGate Policy = "gate"
)

// ParsePolicy validates a policy name. An empty name selects PolicyUnified.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case "", PolicyUnified:
		return PolicyUnified, nil
	case PolicyGate:
		return PolicyGate, nil
	default:
		return "", spinerrors.InvalidPolicyError{Value: s}
	}
}

// Kind classifies a selection result.
type Kind string

const (
	KindTask  Kind = "task"
	KindBreak Kind = "break"
	KindEmpty Kind = "empty"
)

const (
	BreakMessage = "🌟 Take a Break! 🌟\n\nTime to rest and recharge. Take 15-20 minutes to step away from your tasks."
	EmptyMessage = "📝 Please enter at least one task to get started!"
)

// Result is the outcome of one spin.
type Result struct {
	ID      string
	Kind    Kind
	Policy  Policy
	Task    *task.Task
	Message string
}

// Options configures a Spinner.
type Options struct {
	Policy      Policy
	Multipliers weights.Multipliers
	// Break is interpreted by weights.BreakFraction.
	Break   float64
	Sampler *sampler.Sampler
	// Logger receives debug events. Nil discards them.
	Logger *zerolog.Logger
}

// Spinner draws a single result from a task list.
type Spinner struct {
	policy  Policy
	mult    weights.Multipliers
	brk     float64
	sampler *sampler.Sampler
	logger  zerolog.Logger
	newID   func() string
}

// New validates opts and builds a Spinner. Missing fields fall back to the
// unified policy, the default multipliers and a randomly seeded sampler.
func New(opts Options) (*Spinner, error) {
	policy, err := ParsePolicy(string(opts.Policy))
	if err != nil {
		return nil, err
	}
	if _, err = weights.BreakFraction(opts.Break); err != nil {
		return nil, err
	}

	s := &Spinner{
		policy:  policy,
		mult:    opts.Multipliers,
		brk:     opts.Break,
		sampler: opts.Sampler,
		logger:  zerolog.Nop(),
		newID:   uuid.NewString,
	}
	if s.mult == nil {
		s.mult = weights.DefaultMultipliers()
	}
	if s.sampler == nil {
		s.sampler = sampler.New(nil)
	}
	if opts.Logger != nil {
		s.logger = *opts.Logger
	}
	return s, nil
}

// Policy returns the active selection policy.
func (s *Spinner) Policy() Policy {
	return s.policy
}

// Distribution returns the normalized weights for tasks.
func (s *Spinner) Distribution(tasks []task.Task) ([]weights.WeightedItem, error) {
	items, err := weights.Normalize(tasks, s.mult, s.brk)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		s.logger.Debug().
			Str("name", it.Name).
			Float64("weight", it.Weight).
			Str("priority", string(it.Priority)).
			Bool("break", it.IsBreak).
			Msg("item")
	}
	return items, nil
}

// Odds summarizes the per-category chances for tasks. Both policies share
// the same marginal probabilities, so the breakdown does not depend on it.
func (s *Spinner) Odds(tasks []task.Task) (weights.Breakdown, error) {
	items, err := s.Distribution(tasks)
	if err != nil {
		return weights.Breakdown{}, err
	}
	return weights.Summarize(items, s.mult), nil
}

// Spin draws one result. An empty task list yields a KindEmpty result
// rather than an error.
func (s *Spinner) Spin(tasks []task.Task) (Result, error) {
	b, err := weights.BreakFraction(s.brk)
	if err != nil {
		return Result{}, err
	}
	tasks = task.Clean(tasks)
	total, err := weights.TotalWeight(tasks, s.mult)
	if err != nil {
		return Result{}, err
	}
	s.logger.Debug().
		Str("policy", string(s.policy)).
		Float64("break_fraction", b).
		Int("total_weight", total).
		Int("tasks", len(tasks)).
		Msg("spin")

	if len(tasks) == 0 {
		return s.result(KindEmpty, nil), nil
	}

	var res Result
	switch s.policy {
	case PolicyGate:
		res, err = s.spinGate(tasks, b)
	default:
		res, err = s.spinUnified(tasks)
	}
	if err != nil {
		return Result{}, err
	}
	s.logger.Debug().Str("kind", string(res.Kind)).Str("message", res.Message).Msg("selected")
	return res, nil
}

func (s *Spinner) spinUnified(tasks []task.Task) (Result, error) {
	items, err := s.Distribution(tasks)
	if err != nil {
		return Result{}, err
	}
	i, err := s.sampler.Pick(weights.Values(items))
	if err != nil {
		return Result{}, err
	}

	picked := items[i]
	if picked.IsBreak {
		return s.result(KindBreak, nil), nil
	}
	// Break, when present, is the leading item; task indices follow it.
	offset := 0
	if items[0].IsBreak {
		offset = 1
	}
	t := tasks[i-offset]
	return s.result(KindTask, &t), nil
}

func (s *Spinner) spinGate(tasks []task.Task, b float64) (Result, error) {
	if b > 0 && s.sampler.Bernoulli(b) {
		return s.result(KindBreak, nil), nil
	}
	t, err := sampler.Choose(s.sampler, tasks, func(t task.Task) float64 {
		m, _ := s.mult.For(t.Priority) // checked by TotalWeight
		return float64(m)
	})
	if err != nil {
		return Result{}, err
	}
	return s.result(KindTask, &t), nil
}

func (s *Spinner) result(kind Kind, t *task.Task) Result {
	res := Result{ID: s.newID(), Kind: kind, Policy: s.policy, Task: t}
	switch kind {
	case KindBreak:
		res.Message = BreakMessage
	case KindEmpty:
		res.Message = EmptyMessage
	case KindTask:
		res.Message = t.Label()
	}
	return res
}
