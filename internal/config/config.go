// Package config resolves where the memory documents live.
// Defaults can be overridden by a YAML or JSON file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/felixgeelhaar/elite-memory/internal/guard"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is looked up in the workspace root when no config file is given.
const DefaultFileName = ".elite-memory.yaml"

var ErrUnsupportedFormat = errors.New("unsupported config format")

// Config describes the workspace layout.
type Config struct {
	SessionFile  string       `json:"session_file" yaml:"session_file"`
	MemoryFile   string       `json:"memory_file" yaml:"memory_file"`
	DailyDir     string       `json:"daily_dir" yaml:"daily_dir"`
	DailyPattern string       `json:"daily_pattern" yaml:"daily_pattern"`
	VectorStore  string       `json:"vector_store" yaml:"vector_store"` // relative to the home directory unless absolute
	Guard        guard.Policy `json:"guard" yaml:"guard"`
}

// Default returns the standard layout.
func Default() Config {
	return Config{
		SessionFile:  "SESSION-STATE.md",
		MemoryFile:   "MEMORY.md",
		DailyDir:     "memory",
		DailyPattern: "*.md",
		VectorStore:  filepath.Join(".clawdbot", "memory", "lancedb"),
		Guard: guard.Policy{
			AllowedFileGlobs: append([]string(nil), guard.DefaultPolicy.AllowedFileGlobs...),
			BlockEscapes:     guard.DefaultPolicy.BlockEscapes,
		},
	}
}

// Load reads a config file (JSON or YAML) and overlays it onto the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path) // #nosec G304
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to unmarshal JSON config: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to unmarshal YAML config: %w", err)
		}
	default:
		return cfg, fmt.Errorf("%w: %s (use .json or .yaml)", ErrUnsupportedFormat, ext)
	}

	return cfg, nil
}

// Resolve picks the config for a workspace. An explicit path must exist;
// otherwise DefaultFileName in root is used when present. The returned
// string is the file that was loaded, empty when running on defaults.
func Resolve(root, explicit string) (Config, string, error) {
	if explicit != "" {
		cfg, err := Load(explicit)
		return cfg, explicit, err
	}

	candidate := filepath.Join(root, DefaultFileName)
	if _, err := os.Stat(candidate); err != nil {
		if os.IsNotExist(err) {
			return Default(), "", nil
		}
		return Default(), "", fmt.Errorf("failed to stat config file: %w", err)
	}
	cfg, err := Load(candidate)
	return cfg, candidate, err
}

// VectorStorePath returns the absolute location of the external vector store.
func (c Config) VectorStorePath(home string) string {
	if filepath.IsAbs(c.VectorStore) {
		return c.VectorStore
	}
	return filepath.Join(home, c.VectorStore)
}

// ValidationResult represents the outcome of a validation pass.
type ValidationResult struct {
	Valid    bool
	Warnings []string
	Errors   []string
}

// Err folds the validation errors into a single error, nil when valid.
func (r ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return fmt.Errorf("invalid config: %s", strings.Join(r.Errors, "; "))
}

// Validate checks that every configured name is usable inside the workspace.
func (c Config) Validate() ValidationResult {
	res := ValidationResult{
		Valid:    true,
		Warnings: []string{},
		Errors:   []string{},
	}

	g := guard.New(c.Guard)
	names := []struct {
		field string
		value string
	}{
		{"session_file", c.SessionFile},
		{"memory_file", c.MemoryFile},
		{"daily_dir", c.DailyDir},
	}
	for _, n := range names {
		if n.value == "" {
			res.Valid = false
			res.Errors = append(res.Errors, n.field+" is required")
			continue
		}
		if v := g.CheckFile(n.value); v != nil {
			res.Valid = false
			res.Errors = append(res.Errors, n.field+": "+v.Message)
		}
	}

	if c.DailyPattern == "" {
		res.Valid = false
		res.Errors = append(res.Errors, "daily_pattern is required")
	} else if !strings.HasSuffix(c.DailyPattern, ".md") {
		res.Warnings = append(res.Warnings, "daily_pattern does not select Markdown files; daily logs may not be counted")
	}

	if c.VectorStore == "" {
		res.Warnings = append(res.Warnings, "vector_store is empty; the home directory itself will be probed")
	}

	return res
}
