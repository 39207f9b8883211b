package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	spinerrors "github.com/abatilo/spin/internal/errors"
	"github.com/abatilo/spin/internal/task"
)

// Store reads and edits a single task list file.
type Store struct {
	path string
	// fallback is set when no list was found and path is only a default.
	fallback bool
}

// NewStore locates the nearest task list above the working directory.
// When none exists the store points at ListFile in the working directory,
// ready for Init.
func NewStore() (*Store, error) {
	path, err := FindTaskList()
	if err == nil {
		return &Store{path: path}, nil
	}
	var notFound spinerrors.TaskListNotFoundError
	if !errors.As(err, &notFound) {
		return nil, err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return &Store{path: filepath.Join(cwd, ListFile), fallback: true}, nil
}

// NewStoreWithPath creates a Store for an explicit file.
func NewStoreWithPath(path string) *Store {
	return &Store{path: path}
}

// Path returns the task list file path.
func (s *Store) Path() string {
	return s.path
}

// Exists checks if the task list file exists.
func (s *Store) Exists() bool {
	info, err := os.Stat(s.path)
	return err == nil && !info.IsDir()
}

// Init writes the starter task list.
func (s *Store) Init(force bool) error {
	if s.Exists() && !force {
		return spinerrors.AlreadyInitializedError{Path: s.path}
	}
	//nolint:gosec // G301: 0755 is appropriate for a user-owned project directory
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	return s.Save(&TaskList{Tasks: task.Template()})
}

// Load reads the task list from disk.
func (s *Store) Load() (*TaskList, error) {
	content, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, spinerrors.TaskListNotFoundError{Path: s.path, Searched: s.fallback}
	}
	if err != nil {
		return nil, err
	}
	return ParseMarkdown(s.path, content)
}

// Save writes the task list to disk.
func (s *Store) Save(list *TaskList) error {
	content, err := SerializeMarkdown(list)
	if err != nil {
		return err
	}
	//nolint:gosec // G306: 0644 is appropriate for user-readable task lists
	return os.WriteFile(s.path, content, 0o644)
}

// Add appends a task and saves the list.
func (s *Store) Add(t task.Task) (*TaskList, error) {
	if !task.IsValidPriority(t.Priority) {
		return nil, spinerrors.InvalidPriorityError{Value: string(t.Priority)}
	}
	list, err := s.Load()
	if err != nil {
		return nil, err
	}
	t.Name = singleLine(t.Name)
	list.Tasks = append(list.Tasks, t)
	if err = s.Save(list); err != nil {
		return nil, err
	}
	return list, nil
}

// Remove deletes the first task with the given name and saves the list.
func (s *Store) Remove(name string) (*TaskList, error) {
	list, err := s.Load()
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	for i, t := range list.Tasks {
		if strings.TrimSpace(t.Name) != name {
			continue
		}
		list.Tasks = append(list.Tasks[:i], list.Tasks[i+1:]...)
		if err = s.Save(list); err != nil {
			return nil, err
		}
		return list, nil
	}
	return nil, spinerrors.TaskNotFoundError{Name: name}
}
