package storage

import (
	"os"
	"path/filepath"

	spinerrors "github.com/abatilo/spin/internal/errors"
)

// ListFile is the name of the task list file searched for.
const ListFile = ".spin.md"

// FindTaskList walks up from cwd looking for a task list file.
// Returns the path of the nearest one, or TaskListNotFoundError.
func FindTaskList() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := cwd
	for {
		candidate := filepath.Join(dir, ListFile)
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root without finding a list
			return "", spinerrors.TaskListNotFoundError{}
		}
		dir = parent
	}
}
