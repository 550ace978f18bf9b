package locate_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/abcu/advisor/internal/locate"
	"github.com/abcu/advisor/pkg/errors"
)

// chdir switches the working directory for one test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() failed: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir(%s) failed: %v", dir, err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestFileInWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "courses.csv"), []byte("CSCI200,Intro\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	chdir(t, dir)

	path, err := locate.File("courses.csv")
	if err != nil {
		t.Fatalf("File() failed: %v", err)
	}
	if !filepath.IsAbs(path) {
		t.Errorf("File() = %s, want absolute path", path)
	}
}

func TestFileFoundInParentDirectory(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "courses.csv"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	nested := filepath.Join(root, "build", "debug")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	chdir(t, nested)

	path, err := locate.File("courses.csv")
	if err != nil {
		t.Fatalf("File() failed: %v", err)
	}
	want := filepath.Join(root, "courses.csv")
	if resolved, _ := filepath.EvalSymlinks(path); resolved != want {
		if wantResolved, _ := filepath.EvalSymlinks(want); resolved != wantResolved {
			t.Errorf("File() = %s, want %s", path, want)
		}
	}
}

func TestFileAbsolutePath(t *testing.T) {
	target := filepath.Join(t.TempDir(), "courses.csv")
	if err := os.WriteFile(target, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	path, err := locate.File(target)
	if err != nil {
		t.Fatalf("File() failed: %v", err)
	}
	if path != target {
		t.Errorf("File() = %s, want %s", path, target)
	}
}

func TestFileNotFound(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := locate.File("no-such-file.csv")
	if !errors.IsNotFound(err) {
		t.Errorf("File() error = %v, want not found", err)
	}
}

func TestFileEmptyName(t *testing.T) {
	_, err := locate.File("")
	if !errors.IsValidationError(err) {
		t.Errorf("File(\"\") error = %v, want validation error", err)
	}
}
