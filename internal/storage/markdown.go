package storage

import (
	"bytes"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/abatilo/spin/internal/config"
	spinerrors "github.com/abatilo/spin/internal/errors"
	"github.com/abatilo/spin/internal/task"
)

const frontmatterDelimiter = "---"

// TaskList is the parsed content of a task list file.
type TaskList struct {
	Settings config.Settings
	Tasks    []task.Task
}

// ParseMarkdown parses a task list: optional YAML frontmatter followed by
// one heading per priority, each with a bullet list of task names.
func ParseMarkdown(source string, content []byte) (*TaskList, error) {
	lines := strings.Split(strings.ReplaceAll(string(content), "\r\n", "\n"), "\n")
	list := &TaskList{}

	body := lines
	if len(lines) > 0 && strings.TrimSpace(lines[0]) == frontmatterDelimiter {
		// Find closing delimiter
		var frontmatterEnd int
		for i := 1; i < len(lines); i++ {
			if strings.TrimSpace(lines[i]) == frontmatterDelimiter {
				frontmatterEnd = i
				break
			}
		}
		if frontmatterEnd == 0 {
			return nil, &parseError{"unclosed YAML frontmatter"}
		}

		yamlContent := strings.Join(lines[1:frontmatterEnd], "\n")
		s, err := config.ParseSettings(source, []byte(yamlContent))
		if err != nil {
			return nil, err
		}
		list.Settings = s
		body = lines[frontmatterEnd+1:]
	}

	var (
		current task.Priority
		inSect  bool
	)
	for n, raw := range body {
		line := strings.TrimSpace(raw)
		switch {
		case strings.HasPrefix(line, "#"):
			trimmed := strings.TrimLeft(line, "#")
			level := len(line) - len(trimmed)
			heading := strings.TrimSpace(trimmed)
			word, _, _ := strings.Cut(heading, " ")
			p, ok := task.ParsePriority(word)
			switch {
			case ok:
				current, inSect = p, true
			case level == 1:
				// document title
			default:
				return nil, spinerrors.InvalidPriorityError{Value: heading}
			}
		case isBullet(line):
			if !inSect {
				return nil, &parseError{"task outside a priority section on body line " + strconv.Itoa(n+1)}
			}
			list.Tasks = append(list.Tasks, task.Task{Name: bulletText(line), Priority: current})
		}
		// Anything else is free-form notes and is ignored.
	}

	return list, nil
}

// SerializeMarkdown renders a task list. Every priority gets a section,
// even when it has no tasks.
func SerializeMarkdown(list *TaskList) ([]byte, error) {
	var buf bytes.Buffer

	if !list.Settings.IsZero() {
		buf.WriteString(frontmatterDelimiter + "\n")
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(list.Settings); err != nil {
			return nil, err
		}
		enc.Close()
		buf.WriteString(frontmatterDelimiter + "\n\n")
	}

	for i, p := range task.Priorities() {
		if i > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString("## " + p.DisplayName() + "\n")
		for _, t := range list.Tasks {
			if t.Priority != p {
				continue
			}
			buf.WriteString("- " + singleLine(t.Name) + "\n")
		}
	}

	return buf.Bytes(), nil
}

// singleLine collapses every run of whitespace, line breaks included, to
// one space so a name always stays inside its bullet.
func singleLine(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

func isBullet(line string) bool {
	return line == "-" || line == "*" || strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ")
}

func bulletText(line string) string {
	return strings.TrimSpace(line[1:])
}

// parseError represents a parsing error.
type parseError struct {
	msg string
}

func (e *parseError) Error() string {
	return e.msg
}
