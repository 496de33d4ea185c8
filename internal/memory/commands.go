package memory

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/felixgeelhaar/elite-memory/internal/templates"
	"github.com/felixgeelhaar/elite-memory/internal/workspace"
)

// Init scaffolds every artifact that is not already present.
func (s *System) Init(ctx context.Context) ([]Step, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.ui.Title("🧠 Initializing Elite Longterm Memory...")
	s.ui.Line("")

	now := s.now()
	steps := make([]Step, 0, 4)

	session := s.cfg.SessionFile
	out, err := s.store.EnsureFile(session, templates.SessionState(now))
	if err != nil {
		return steps, err
	}
	steps = append(steps, s.record(session, out))
	s.report(out, "Created "+session+" (Hot RAM)", session+" already exists")

	mem := s.cfg.MemoryFile
	out, err = s.store.EnsureFile(mem, templates.Memory())
	if err != nil {
		return steps, err
	}
	steps = append(steps, s.record(mem, out))
	s.report(out, "Created "+mem+" (Curated Archive)", mem+" already exists")

	out, err = s.store.EnsureDir(s.cfg.DailyDir)
	if err != nil {
		return steps, err
	}
	steps = append(steps, s.record(s.cfg.DailyDir, out))
	s.report(out, "Created "+s.dirLabel()+" directory", s.dirLabel()+" directory already exists")

	step, err := s.ensureDailyLog(now)
	if err != nil {
		return steps, err
	}
	steps = append(steps, step)

	s.ui.Line("")
	s.ui.Title("🎉 Elite Longterm Memory initialized!")
	s.ui.Line("")
	s.ui.Line("Next steps:")
	s.ui.Line("1. Add " + session + " to your agent context")
	s.ui.Line("2. Configure LanceDB plugin in clawdbot.json")
	s.ui.Line("3. Review SKILL.md for full setup guide")

	return steps, nil
}

// Today makes sure the daily log directory and today's log exist.
func (s *System) Today(ctx context.Context) (Step, error) {
	if err := ctx.Err(); err != nil {
		return Step{}, err
	}
	out, err := s.store.EnsureDir(s.cfg.DailyDir)
	if err != nil {
		return Step{}, err
	}
	s.record(s.cfg.DailyDir, out)

	return s.ensureDailyLog(s.now())
}

func (s *System) ensureDailyLog(now time.Time) (Step, error) {
	date := templates.DateStamp(now)
	name := s.DailyLogName(date)
	out, err := s.store.EnsureFile(name, templates.DailyLog(date))
	if err != nil {
		return Step{}, err
	}
	s.report(out, "Created "+name, name+" already exists")
	return s.record(name, out), nil
}

// Report is the result of a status inspection.
type Report struct {
	Session            workspace.DocumentInfo
	Memory             workspace.DocumentInfo
	MemoryLines        int
	DailyDirPresent    bool
	DailyLogs          int
	VectorStorePath    string
	VectorStorePresent bool
}

// Status inspects the workspace without modifying it. Missing artifacts are
// reported, not returned as errors.
func (s *System) Status(ctx context.Context) (Report, error) {
	var rep Report
	if err := ctx.Err(); err != nil {
		return rep, err
	}

	s.ui.Title("🧠 Elite Longterm Memory Status")
	s.ui.Line("")

	doc, err := s.store.Stat(s.cfg.SessionFile)
	if err != nil {
		return rep, err
	}
	rep.Session = doc
	if doc.Present {
		s.ui.Done(fmt.Sprintf("%s (%s, modified %s)", doc.Name, doc.SizeKB(), doc.ModTime.Local().Format(ModTimeLayout)))
	} else {
		s.ui.Missing(doc.Name + " missing")
	}

	doc, err = s.store.Stat(s.cfg.MemoryFile)
	if err != nil {
		return rep, err
	}
	rep.Memory = doc
	if doc.Present {
		lines, err := s.store.CountLines(doc.Name)
		if err != nil {
			return rep, err
		}
		rep.MemoryLines = lines
		s.ui.Done(fmt.Sprintf("%s (%d lines, %s)", doc.Name, lines, doc.SizeKB()))
	} else {
		s.ui.Missing(doc.Name + " missing")
	}

	n, present, err := s.store.CountMatching(s.cfg.DailyDir, s.cfg.DailyPattern)
	if err != nil {
		return rep, err
	}
	rep.DailyDirPresent, rep.DailyLogs = present, n
	if present {
		s.ui.Done(fmt.Sprintf("%s (%d daily logs)", s.dirLabel(), n))
	} else {
		s.ui.Missing(s.dirLabel() + " directory missing")
	}

	if home := s.homeDir(); home != "" || filepath.IsAbs(s.cfg.VectorStore) {
		rep.VectorStorePath = s.cfg.VectorStorePath(home)
		rep.VectorStorePresent = s.store.Probe(rep.VectorStorePath)
	}
	if rep.VectorStorePresent {
		s.ui.Done("LanceDB vectors initialized")
	} else {
		s.ui.Skip("LanceDB not initialized (optional)")
	}

	s.observe.Log().Debug().
		Int("memory_lines", rep.MemoryLines).
		Int("daily_logs", rep.DailyLogs).
		Str("vector_store", rep.VectorStorePath).
		Msg("status inspected")

	return rep, nil
}

func (s *System) homeDir() string {
	if s.home != "" {
		return s.home
	}
	home, err := os.UserHomeDir()
	if err != nil {
		s.observe.Log().Warn().Err(err).Msg("home directory unavailable, vector store probe skipped")
		return ""
	}
	return home
}

func (s *System) report(out workspace.Outcome, created, existed string) {
	if out == workspace.Created {
		s.ui.Done(created)
		return
	}
	s.ui.Skip(existed)
}

func (s *System) record(name string, out workspace.Outcome) Step {
	s.observe.Log().Debug().Str("name", name).Str("outcome", out.String()).Msg("artifact ensured")
	return Step{Name: name, Outcome: out}
}
