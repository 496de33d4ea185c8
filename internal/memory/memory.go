// Package memory implements the memory commands: scaffolding the session
// state, the curated memory file and daily logs, and reporting on them.
package memory

import (
	"io"
	"path"
	"time"

	"github.com/felixgeelhaar/elite-memory/internal/config"
	"github.com/felixgeelhaar/elite-memory/internal/observe"
	"github.com/felixgeelhaar/elite-memory/internal/ui"
	"github.com/felixgeelhaar/elite-memory/internal/workspace"
)

// ModTimeLayout renders modification times in the console report.
const ModTimeLayout = "1/2/2006, 3:04:05 PM"

// Step records the outcome of creating one artifact.
type Step struct {
	Name    string
	Outcome workspace.Outcome
}

// System binds a workspace to its layout and the report sink.
type System struct {
	store   workspace.Storage
	cfg     config.Config
	observe *observe.Observer
	ui      ui.UI
	now     func() time.Time
	home    string
}

// Option customizes a System.
type Option func(*System)

// WithClock overrides the time source used for dates and timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *System) { s.now = now }
}

// WithHome sets the directory the vector store path is resolved against.
func WithHome(home string) Option {
	return func(s *System) { s.home = home }
}

func New(store workspace.Storage, cfg config.Config, o *observe.Observer, u ui.UI, opts ...Option) *System {
	s := &System{
		store:   store,
		cfg:     cfg,
		observe: o,
		ui:      ui.SilentUI{},
		now:     time.Now,
	}
	if u != nil {
		s.ui = u
	}
	if s.observe == nil {
		s.observe = observe.New(io.Discard, false)
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DailyLogName returns the workspace-relative name of the log for date.
func (s *System) DailyLogName(date string) string {
	return path.Join(s.cfg.DailyDir, date+".md")
}

func (s *System) dirLabel() string {
	return s.cfg.DailyDir + "/"
}
