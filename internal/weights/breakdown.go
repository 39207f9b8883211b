package weights

import (
	"fmt"

	"github.com/abatilo/spin/internal/task"
)

// CategoryOdds is the combined chance of landing on any task of one priority.
type CategoryOdds struct {
	Priority    task.Priority
	Count       int
	Multiplier  int
	Probability float64
}

// Breakdown summarizes a distribution per category, for display.
type Breakdown struct {
	TotalTasks  int
	Categories  []CategoryOdds
	Break       float64
	HasBreak    bool
	Multipliers Multipliers
}

// Summarize folds a normalized distribution into per-category odds.
// Every priority appears in the result, in priority order, even with no tasks.
func Summarize(items []WeightedItem, m Multipliers) Breakdown {
	bd := Breakdown{Multipliers: m}
	byPriority := make(map[task.Priority]*CategoryOdds)
	for _, p := range task.Priorities() {
		bd.Categories = append(bd.Categories, CategoryOdds{Priority: p, Multiplier: m[p]})
	}
	for i := range bd.Categories {
		byPriority[bd.Categories[i].Priority] = &bd.Categories[i]
	}

	for _, it := range items {
		if it.IsBreak {
			bd.Break += it.Weight
			bd.HasBreak = true
			continue
		}
		bd.TotalTasks++
		c, ok := byPriority[it.Priority]
		if !ok {
			continue
		}
		c.Count++
		c.Probability += it.Weight
	}
	return bd
}

// Percent formats a probability as a percentage with one decimal place.
func Percent(p float64) string {
	return fmt.Sprintf("%.1f%%", p*percentScale)
}
