// Package locate resolves course data file paths for the CLI. The
// catalog core opens exactly the path it is given; this helper is the
// collaborator that searches for a file by name first, so the tool
// still works when run from a build or subdirectory.
package locate

import (
	"os"
	"path/filepath"

	"github.com/abcu/advisor/pkg/errors"
)

// maxParentSearchDepth bounds the upward walk from the working directory.
const maxParentSearchDepth = 10

// File resolves name to an absolute path. Absolute paths are checked
// as-is; relative paths are probed against the working directory and
// then up to maxParentSearchDepth parent directories. Returns a
// NotFoundError when no candidate exists.
func File(name string) (string, error) {
	if name == "" {
		return "", errors.NewValidationError("file", name, "file name is empty")
	}

	if filepath.IsAbs(name) {
		if exists(name) {
			return name, nil
		}
		return "", errors.NewNotFoundError("file", name)
	}

	if exists(name) {
		return filepath.Abs(name)
	}

	searchDir, err := os.Getwd()
	if err != nil {
		return "", errors.WrapIO("resolve", name, err)
	}

	for depth := 0; depth < maxParentSearchDepth; depth++ {
		candidate := filepath.Join(searchDir, name)
		if exists(candidate) {
			return candidate, nil
		}

		parent := filepath.Dir(searchDir)
		if parent == searchDir {
			break
		}
		searchDir = parent
	}

	return "", errors.NewNotFoundError("file", name)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
