package task

import "strings"

// Priority represents the importance level of a task.
type Priority string

const (
	PriorityCritical    Priority = "critical"
	PriorityImportant   Priority = "important"
	PriorityMaintenance Priority = "maintenance"
)

// Priorities lists every priority from most to least important.
func Priorities() []Priority {
	return []Priority{PriorityCritical, PriorityImportant, PriorityMaintenance}
}

// PriorityOrder returns the sort order for a priority (lower = higher priority).
func PriorityOrder(p Priority) int {
	switch p {
	case PriorityCritical:
		return 0
	case PriorityImportant:
		return 1
	case PriorityMaintenance:
		return 2
	default:
		return 3
	}
}

// IsValidPriority checks if a priority string is valid.
func IsValidPriority(p Priority) bool {
	switch p {
	case PriorityCritical, PriorityImportant, PriorityMaintenance:
		return true
	default:
		return false
	}
}

// ParsePriority parses a priority name case-insensitively.
// The second return value is false if the name is not a known priority.
func ParsePriority(s string) (Priority, bool) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	return p, IsValidPriority(p)
}

// DisplayName returns the capitalized name, e.g. "Critical".
func (p Priority) DisplayName() string {
	if p == "" {
		return ""
	}
	return strings.ToUpper(string(p[:1])) + string(p[1:])
}

// Icon returns the marker shown next to tasks of this priority.
func (p Priority) Icon() string {
	switch p {
	case PriorityCritical:
		return "🔥"
	case PriorityImportant:
		return "⭐"
	case PriorityMaintenance:
		return "🔧"
	default:
		return "•"
	}
}

// Task is a single named piece of work tagged with a priority.
type Task struct {
	Name     string
	Priority Priority
}

// Label formats the task the way a selection result shows it,
// e.g. "🔥 CRITICAL: Ship the release".
func (t Task) Label() string {
	return t.Priority.Icon() + " " + strings.ToUpper(string(t.Priority)) + ": " + t.Name
}

// IsBlank reports whether the task has no usable name.
func (t Task) IsBlank() bool {
	return strings.TrimSpace(t.Name) == ""
}

// Clean returns the tasks with blank names removed. Order is preserved.
func Clean(tasks []Task) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if t.IsBlank() {
			continue
		}
		out = append(out, t)
	}
	return out
}

// FromLists builds a flat task list from per-priority name lists.
func FromLists(critical, important, maintenance []string) []Task {
	tasks := make([]Task, 0, len(critical)+len(important)+len(maintenance))
	add := func(names []string, p Priority) {
		for _, n := range names {
			tasks = append(tasks, Task{Name: n, Priority: p})
		}
	}
	add(critical, PriorityCritical)
	add(important, PriorityImportant)
	add(maintenance, PriorityMaintenance)
	return tasks
}

// CountByPriority returns how many tasks carry each priority.
func CountByPriority(tasks []Task) map[Priority]int {
	counts := make(map[Priority]int, len(Priorities()))
	for _, t := range tasks {
		counts[t.Priority]++
	}
	return counts
}

// Template returns the starter list written by "spin init".
func Template() []Task {
	var tasks []Task
	for range 3 {
		tasks = append(tasks, Task{Name: "A critical, high-impact, strategic, or time-sensitive task", Priority: PriorityCritical})
	}
	for range 4 {
		tasks = append(tasks, Task{Name: "An important, helpful, or semi-flexible task", Priority: PriorityImportant})
	}
	for range 5 {
		tasks = append(tasks, Task{Name: "A maintenance or minor task", Priority: PriorityMaintenance})
	}
	return tasks
}
