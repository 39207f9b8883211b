package output

import (
	"fmt"
	"strings"

	"github.com/abatilo/spin/internal/spinner"
	"github.com/abatilo/spin/internal/task"
	"github.com/abatilo/spin/internal/weights"
)

const (
	breakIcon     = "🌟"
	noStatsPrompt = "Enter some tasks to see probability statistics!"
)

// HumanFormatter formats output for human-readable terminal display.
type HumanFormatter struct{}

// NewHumanFormatter creates a new HumanFormatter.
func NewHumanFormatter() *HumanFormatter {
	return &HumanFormatter{}
}

// FormatResult formats a spin result.
func (f *HumanFormatter) FormatResult(r spinner.Result) string {
	if r.Kind == spinner.KindEmpty {
		return r.Message + "\n"
	}
	var sb strings.Builder
	sb.WriteString("🎲 Your Next Task:\n\n")
	sb.WriteString(r.Message)
	sb.WriteString("\n")
	return sb.String()
}

// FormatOdds formats a per-category probability breakdown.
func (f *HumanFormatter) FormatOdds(bd weights.Breakdown) string {
	if bd.TotalTasks == 0 {
		return noStatsPrompt + "\n"
	}

	var sb strings.Builder
	sb.WriteString("📊 Task Selection Probabilities\n\n")
	fmt.Fprintf(&sb, "Total Tasks: %d\n\n", bd.TotalTasks)

	for _, c := range bd.Categories {
		fmt.Fprintf(&sb, "- %s %s Tasks: %s chance (%s)\n",
			c.Priority.Icon(), c.Priority.DisplayName(), weights.Percent(c.Probability), pluralTasks(c.Count))
	}
	if bd.HasBreak {
		fmt.Fprintf(&sb, "- %s Take a Break: %s chance\n", breakIcon, weights.Percent(bd.Break))
	}

	if base := bd.Multipliers[task.PriorityMaintenance]; base > 0 {
		sb.WriteString("\n")
		for _, p := range []task.Priority{task.PriorityCritical, task.PriorityImportant} {
			fmt.Fprintf(&sb, "%s tasks are %sx more likely than maintenance tasks\n",
				p.DisplayName(), ratio(bd.Multipliers[p], base))
		}
	}
	return sb.String()
}

// FormatDistribution lists every weighted item, one per line.
func (f *HumanFormatter) FormatDistribution(items []weights.WeightedItem) string {
	if len(items) == 0 {
		return "No tasks found.\n"
	}

	var sb strings.Builder
	for _, it := range items {
		icon := breakIcon
		if !it.IsBreak {
			icon = it.Priority.Icon()
		}
		fmt.Fprintf(&sb, "%7s  %s %s\n", weights.Percent(it.Weight), icon, it.Name)
	}
	fmt.Fprintf(&sb, "%7s  total\n", weights.Percent(weights.Sum(items)))
	return sb.String()
}

// FormatTaskList formats the task list grouped by priority.
func (f *HumanFormatter) FormatTaskList(tasks []task.Task) string {
	if len(tasks) == 0 {
		return "No tasks found.\n"
	}

	var sb strings.Builder
	for _, p := range task.Priorities() {
		fmt.Fprintf(&sb, "%s %s\n", p.Icon(), p.DisplayName())
		for _, t := range tasks {
			if t.Priority != p || t.IsBlank() {
				continue
			}
			fmt.Fprintf(&sb, "  - %s\n", t.Name)
		}
	}
	return sb.String()
}

// FormatError formats an error for display.
func (f *HumanFormatter) FormatError(err error) string {
	return fmt.Sprintf("Error: %s\n", err.Error())
}

// FormatMessage formats a simple message.
func (f *HumanFormatter) FormatMessage(msg string) string {
	return msg + "\n"
}

func pluralTasks(n int) string {
	if n == 1 {
		return "1 task"
	}
	return fmt.Sprintf("%d tasks", n)
}

// ratio renders a/b without a trailing ".0" for whole numbers.
func ratio(a, b int) string {
	if a%b == 0 {
		return fmt.Sprintf("%d", a/b)
	}
	return fmt.Sprintf("%.1f", float64(a)/float64(b))
}
