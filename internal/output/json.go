package output

import (
	"encoding/json"

	"github.com/abatilo/spin/internal/spinner"
	"github.com/abatilo/spin/internal/task"
	"github.com/abatilo/spin/internal/weights"
)

// JSONFormatter formats output as JSON.
type JSONFormatter struct{}

// marshalJSON marshals a value to indented JSON with a trailing newline.
func marshalJSON(v any) string {
	data, _ := json.MarshalIndent(v, "", "  ")
	return string(data) + "\n"
}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// taskJSON is the JSON representation of a task.
type taskJSON struct {
	Name     string `json:"name"`
	Priority string `json:"priority"`
}

func toTaskJSON(t task.Task) taskJSON {
	return taskJSON{Name: t.Name, Priority: string(t.Priority)}
}

// resultJSON is the JSON representation of a spin result.
type resultJSON struct {
	ID      string    `json:"id"`
	Kind    string    `json:"kind"`
	Policy  string    `json:"policy"`
	Message string    `json:"message"`
	Task    *taskJSON `json:"task,omitempty"`
}

// FormatResult formats a spin result as JSON.
func (f *JSONFormatter) FormatResult(r spinner.Result) string {
	rj := resultJSON{
		ID:      r.ID,
		Kind:    string(r.Kind),
		Policy:  string(r.Policy),
		Message: r.Message,
	}
	if r.Task != nil {
		tj := toTaskJSON(*r.Task)
		rj.Task = &tj
	}
	return marshalJSON(rj)
}

type categoryJSON struct {
	Priority    string  `json:"priority"`
	Count       int     `json:"count"`
	Multiplier  int     `json:"multiplier"`
	Probability float64 `json:"probability"`
	Percent     string  `json:"percent"`
}

type breakJSON struct {
	Probability float64 `json:"probability"`
	Percent     string  `json:"percent"`
}

// oddsJSON is the JSON representation of a breakdown.
type oddsJSON struct {
	TotalTasks int            `json:"total_tasks"`
	Categories []categoryJSON `json:"categories"`
	Break      *breakJSON     `json:"break,omitempty"`
}

// FormatOdds formats a breakdown as JSON.
func (f *JSONFormatter) FormatOdds(bd weights.Breakdown) string {
	oj := oddsJSON{
		TotalTasks: bd.TotalTasks,
		Categories: make([]categoryJSON, len(bd.Categories)),
	}
	for i, c := range bd.Categories {
		oj.Categories[i] = categoryJSON{
			Priority:    string(c.Priority),
			Count:       c.Count,
			Multiplier:  c.Multiplier,
			Probability: c.Probability,
			Percent:     weights.Percent(c.Probability),
		}
	}
	if bd.HasBreak {
		oj.Break = &breakJSON{Probability: bd.Break, Percent: weights.Percent(bd.Break)}
	}
	return marshalJSON(oj)
}

// itemJSON is the JSON representation of a weighted item.
type itemJSON struct {
	Name     string  `json:"name"`
	Weight   float64 `json:"weight"`
	Priority string  `json:"priority,omitempty"`
	IsBreak  bool    `json:"is_break"`
}

// FormatDistribution formats weighted items as JSON.
func (f *JSONFormatter) FormatDistribution(items []weights.WeightedItem) string {
	out := make([]itemJSON, len(items))
	for i, it := range items {
		out[i] = itemJSON{
			Name:     it.Name,
			Weight:   it.Weight,
			Priority: string(it.Priority),
			IsBreak:  it.IsBreak,
		}
	}
	return marshalJSON(out)
}

// FormatTaskList formats a list of tasks as JSON.
func (f *JSONFormatter) FormatTaskList(tasks []task.Task) string {
	out := make([]taskJSON, len(tasks))
	for i, t := range tasks {
		out[i] = toTaskJSON(t)
	}
	return marshalJSON(out)
}

// errorJSON is the JSON representation of an error.
type errorJSON struct {
	Error string `json:"error"`
}

// FormatError formats an error as JSON.
func (f *JSONFormatter) FormatError(err error) string {
	return marshalJSON(errorJSON{Error: err.Error()})
}

// messageJSON is the JSON representation of a message.
type messageJSON struct {
	Message string `json:"message"`
}

// FormatMessage formats a simple message as JSON.
func (f *JSONFormatter) FormatMessage(msg string) string {
	return marshalJSON(messageJSON{Message: msg})
}
