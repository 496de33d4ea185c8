package guard

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Policy defines which workspace-relative names the tool may create.
type Policy struct {
	AllowedFileGlobs []string `json:"allowed_file_globs" yaml:"allowed_file_globs"`
	BlockEscapes     bool     `json:"block_escapes" yaml:"block_escapes"`
}

// DefaultPolicy allows any name inside the workspace root.
var DefaultPolicy = Policy{
	AllowedFileGlobs: []string{"**"},
	BlockEscapes:     true,
}

// Violation represents a specific breach of policy.
type Violation struct {
	Rule    string
	Message string
	Path    string
}

func (v *Violation) Error() string {
	return v.Message
}

// Guard enforces the policy.
type Guard struct {
	policy Policy
}

func New(p Policy) *Guard {
	return &Guard{policy: p}
}

// Policy returns the guard's current policy configuration.
func (g *Guard) Policy() Policy {
	return g.policy
}

// CheckFile verifies that a workspace-relative name is within allowed globs.
func (g *Guard) CheckFile(path string) *Violation {
	if v := g.CheckDangerousPath(path); v != nil {
		return v
	}

	name := filepath.ToSlash(filepath.Clean(path))
	for _, pattern := range g.policy.AllowedFileGlobs {
		match, err := doublestar.Match(pattern, name)
		if err == nil && match {
			return nil
		}
	}

	return &Violation{Rule: "allowed_file_globs", Message: "file not allowed: " + path, Path: path}
}

// CheckDangerousPath rejects names that leave the workspace root.
func (g *Guard) CheckDangerousPath(path string) *Violation {
	if path == "" {
		return &Violation{Rule: "empty_path", Message: "empty file name", Path: path}
	}
	if !g.policy.BlockEscapes {
		return nil
	}

	if filepath.IsAbs(path) {
		return &Violation{Rule: "absolute_path", Message: "absolute path not allowed: " + path, Path: path}
	}
	clean := filepath.ToSlash(filepath.Clean(path))
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return &Violation{Rule: "escapes_root", Message: "path escapes workspace: " + path, Path: path}
	}
	return nil
}
