package workspace

import (
	"fmt"
	"time"
)

// Outcome reports what an Ensure call did.
type Outcome int

const (
	Created Outcome = iota
	Existed
)

func (o Outcome) String() string {
	switch o {
	case Created:
		return "created"
	case Existed:
		return "existed"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// DocumentInfo describes a document in the workspace. A missing document
// has Present set to false and zero values elsewhere.
type DocumentInfo struct {
	Name    string
	Present bool
	Size    int64
	ModTime time.Time
}

// SizeKB formats the size in kilobytes with one decimal place.
func (d DocumentInfo) SizeKB() string {
	return fmt.Sprintf("%.1fKB", float64(d.Size)/1024)
}

// Storage defines the filesystem operations the memory commands need.
// Names are relative to the workspace root.
type Storage interface {
	// EnsureFile writes content to name unless name already exists.
	EnsureFile(name, content string) (Outcome, error)
	// EnsureDir creates the directory name unless it already exists.
	EnsureDir(name string) (Outcome, error)

	Stat(name string) (DocumentInfo, error)
	CountLines(name string) (int, error)
	// CountMatching counts regular files in dir whose name matches pattern.
	// The boolean reports whether dir exists.
	CountMatching(dir, pattern string) (int, bool, error)

	// Probe reports whether an absolute path outside the workspace exists.
	Probe(path string) bool

	Root() string
}
