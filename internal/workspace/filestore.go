// Package workspace implements the flat-file persistence layer: documents
// live directly in a root directory and are created at most once.
package workspace

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/felixgeelhaar/elite-memory/internal/guard"
)

const (
	filePerm = 0o644
	dirPerm  = 0o755
)

var _ Storage = (*FileStore)(nil)

type FileStore struct {
	root  string
	guard *guard.Guard
}

// NewFileStore opens the workspace at root, which must be an existing directory.
func NewFileStore(root string, g *guard.Guard) (*FileStore, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve workspace root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to open workspace: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("workspace root is not a directory: %s", abs)
	}
	if g == nil {
		g = guard.New(guard.DefaultPolicy)
	}
	return &FileStore{root: abs, guard: g}, nil
}

func (s *FileStore) Root() string {
	return s.root
}

func (s *FileStore) resolve(name string) (string, error) {
	if v := s.guard.CheckFile(name); v != nil {
		return "", v
	}
	return filepath.Join(s.root, name), nil
}

// EnsureFile uses an exclusive create so a file that appears between runs,
// or during a concurrent run, is never overwritten.
func (s *FileStore) EnsureFile(name, content string) (Outcome, error) {
	path, err := s.resolve(name)
	if err != nil {
		return Existed, err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm) // #nosec G304
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return Existed, nil
		}
		return Existed, fmt.Errorf("failed to create %s: %w", name, err)
	}

	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return Created, fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return Created, fmt.Errorf("failed to close %s: %w", name, err)
	}
	return Created, nil
}

func (s *FileStore) EnsureDir(name string) (Outcome, error) {
	path, err := s.resolve(name)
	if err != nil {
		return Existed, err
	}

	info, err := os.Stat(path)
	switch {
	case err == nil && info.IsDir():
		return Existed, nil
	case err == nil:
		return Existed, fmt.Errorf("%s exists and is not a directory", name)
	case !os.IsNotExist(err):
		return Existed, fmt.Errorf("failed to stat %s: %w", name, err)
	}

	if err := os.MkdirAll(path, dirPerm); err != nil {
		return Existed, fmt.Errorf("failed to create directory %s: %w", name, err)
	}
	return Created, nil
}

func (s *FileStore) Stat(name string) (DocumentInfo, error) {
	doc := DocumentInfo{Name: name}
	path, err := s.resolve(name)
	if err != nil {
		return doc, err
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return doc, nil
		}
		return doc, fmt.Errorf("failed to stat %s: %w", name, err)
	}

	doc.Present = true
	doc.Size = info.Size()
	doc.ModTime = info.ModTime()
	return doc, nil
}

// CountLines returns the number of newline-separated segments, so a file
// ending in a newline counts one more than its visible lines.
func (s *FileStore) CountLines(name string) (int, error) {
	path, err := s.resolve(name)
	if err != nil {
		return 0, err
	}
	data, err := os.ReadFile(path) // #nosec G304
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return len(strings.Split(string(data), "\n")), nil
}

func (s *FileStore) CountMatching(dir, pattern string) (int, bool, error) {
	path, err := s.resolve(dir)
	if err != nil {
		return 0, false, err
	}
	if !doublestar.ValidatePattern(pattern) {
		return 0, false, fmt.Errorf("invalid pattern: %s", pattern)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	count := 0
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if ok, _ := doublestar.Match(pattern, e.Name()); ok {
			count++
		}
	}
	return count, true, nil
}

// Probe treats any stat failure as absence.
func (s *FileStore) Probe(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
