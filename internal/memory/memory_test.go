package memory

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/felixgeelhaar/elite-memory/internal/config"
	"github.com/felixgeelhaar/elite-memory/internal/templates"
	"github.com/felixgeelhaar/elite-memory/internal/ui"
	"github.com/felixgeelhaar/elite-memory/internal/workspace"
)

var fixedNow = time.Date(2026, 10, 19, 8, 30, 0, 0, time.UTC)

func newTestSystem(t *testing.T) (*System, string, *bytes.Buffer) {
	t.Helper()
	root := t.TempDir()
	store, err := workspace.NewFileStore(root, nil)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	buf := &bytes.Buffer{}
	s := New(store, config.Default(), nil, ui.NewConsole(buf),
		WithClock(func() time.Time { return fixedNow }),
		WithHome(t.TempDir()),
	)
	return s, root, buf
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(b)
}

func TestSystem_Init(t *testing.T) {
	s, root, buf := newTestSystem(t)

	steps, err := s.Init(context.Background())
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if len(steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(steps))
	}
	for _, st := range steps {
		if st.Outcome != workspace.Created {
			t.Errorf("expected %s to be created, got %s", st.Name, st.Outcome)
		}
	}

	entries, _ := os.ReadDir(root)
	if len(entries) != 3 {
		t.Errorf("expected 3 root entries, got %d", len(entries))
	}
	if got := readFile(t, filepath.Join(root, "SESSION-STATE.md")); got != templates.SessionState(fixedNow) {
		t.Errorf("session state mismatch:\n%s", got)
	}
	if got := readFile(t, filepath.Join(root, "MEMORY.md")); got != templates.Memory() {
		t.Errorf("memory mismatch:\n%s", got)
	}
	if got := readFile(t, filepath.Join(root, "memory", "2026-10-19.md")); got != templates.DailyLog("2026-10-19") {
		t.Errorf("daily log mismatch:\n%s", got)
	}

	want := "🧠 Initializing Elite Longterm Memory...\n" +
		"\n" +
		"✓ Created SESSION-STATE.md (Hot RAM)\n" +
		"✓ Created MEMORY.md (Curated Archive)\n" +
		"✓ Created memory/ directory\n" +
		"✓ Created memory/2026-10-19.md\n" +
		"\n" +
		"🎉 Elite Longterm Memory initialized!\n" +
		"\n" +
		"Next steps:\n" +
		"1. Add SESSION-STATE.md to your agent context\n" +
		"2. Configure LanceDB plugin in clawdbot.json\n" +
		"3. Review SKILL.md for full setup guide\n"
	if buf.String() != want {
		t.Errorf("unexpected output\nwant:\n%s\ngot:\n%s", want, buf.String())
	}
}

func TestSystem_InitTwiceKeepsContent(t *testing.T) {
	s, root, buf := newTestSystem(t)

	if _, err := s.Init(context.Background()); err != nil {
		t.Fatalf("first Init failed: %v", err)
	}
	session := filepath.Join(root, "SESSION-STATE.md")
	os.WriteFile(session, []byte("edited by agent"), 0600)
	before := readFile(t, filepath.Join(root, "memory", "2026-10-19.md"))

	s.now = func() time.Time { return fixedNow.Add(time.Hour) }
	buf.Reset()
	steps, err := s.Init(context.Background())
	if err != nil {
		t.Fatalf("second Init failed: %v", err)
	}
	for _, st := range steps {
		if st.Outcome != workspace.Existed {
			t.Errorf("expected %s to exist, got %s", st.Name, st.Outcome)
		}
	}
	if got := readFile(t, session); got != "edited by agent" {
		t.Errorf("session state was overwritten: %q", got)
	}
	if got := readFile(t, filepath.Join(root, "memory", "2026-10-19.md")); got != before {
		t.Error("daily log was overwritten")
	}

	for _, line := range []string{
		"• SESSION-STATE.md already exists",
		"• MEMORY.md already exists",
		"• memory/ directory already exists",
		"• memory/2026-10-19.md already exists",
	} {
		if !strings.Contains(buf.String(), line) {
			t.Errorf("expected %q in output:\n%s", line, buf.String())
		}
	}
}

func TestSystem_Today(t *testing.T) {
	s, root, buf := newTestSystem(t)

	step, err := s.Today(context.Background())
	if err != nil {
		t.Fatalf("Today failed: %v", err)
	}
	if step.Outcome != workspace.Created || step.Name != "memory/2026-10-19.md" {
		t.Errorf("unexpected step %+v", step)
	}
	if info, err := os.Stat(filepath.Join(root, "memory")); err != nil || !info.IsDir() {
		t.Fatalf("expected memory/ directory, got %v", err)
	}
	if buf.String() != "✓ Created memory/2026-10-19.md\n" {
		t.Errorf("unexpected output %q", buf.String())
	}

	buf.Reset()
	step, err = s.Today(context.Background())
	if err != nil {
		t.Fatalf("second Today failed: %v", err)
	}
	if step.Outcome != workspace.Existed {
		t.Errorf("expected Existed, got %s", step.Outcome)
	}
	if buf.String() != "• memory/2026-10-19.md already exists\n" {
		t.Errorf("unexpected output %q", buf.String())
	}

	entries, _ := os.ReadDir(filepath.Join(root, "memory"))
	if len(entries) != 1 {
		t.Errorf("expected exactly one daily log, got %d", len(entries))
	}
}

func TestSystem_StatusEmpty(t *testing.T) {
	s, _, buf := newTestSystem(t)

	rep, err := s.Status(context.Background())
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}
	if rep.Session.Present || rep.Memory.Present || rep.DailyDirPresent || rep.VectorStorePresent {
		t.Errorf("expected nothing present, got %+v", rep)
	}

	want := "🧠 Elite Longterm Memory Status\n" +
		"\n" +
		"✗ SESSION-STATE.md missing\n" +
		"✗ MEMORY.md missing\n" +
		"✗ memory/ directory missing\n" +
		"• LanceDB not initialized (optional)\n"
	if buf.String() != want {
		t.Errorf("unexpected output\nwant:\n%s\ngot:\n%s", want, buf.String())
	}
}

func TestSystem_StatusAfterInit(t *testing.T) {
	s, _, buf := newTestSystem(t)
	if _, err := s.Init(context.Background()); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	os.MkdirAll(filepath.Join(s.home, ".clawdbot", "memory", "lancedb"), 0750)

	buf.Reset()
	rep, err := s.Status(context.Background())
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}

	if !rep.Session.Present || rep.Session.Size == 0 {
		t.Errorf("expected session state with nonzero size, got %+v", rep.Session)
	}
	if !rep.Memory.Present || rep.MemoryLines <= 0 {
		t.Errorf("expected memory with lines, got %+v lines=%d", rep.Memory, rep.MemoryLines)
	}
	wantLines := strings.Count(templates.Memory(), "\n") + 1
	if rep.MemoryLines != wantLines {
		t.Errorf("expected %d lines, got %d", wantLines, rep.MemoryLines)
	}
	if !rep.DailyDirPresent || rep.DailyLogs != 1 {
		t.Errorf("expected 1 daily log, got present=%v n=%d", rep.DailyDirPresent, rep.DailyLogs)
	}
	if !rep.VectorStorePresent {
		t.Error("expected vector store to be detected")
	}

	out := buf.String()
	for _, line := range []string{
		"✓ SESSION-STATE.md (" + rep.Session.SizeKB() + ", modified ",
		fmt.Sprintf("✓ MEMORY.md (%d lines, %s)", rep.MemoryLines, rep.Memory.SizeKB()),
		"✓ memory/ (1 daily logs)",
		"✓ LanceDB vectors initialized",
	} {
		if !strings.Contains(out, line) {
			t.Errorf("expected %q in output:\n%s", line, out)
		}
	}
}

func TestSystem_CustomLayout(t *testing.T) {
	root := t.TempDir()
	store, _ := workspace.NewFileStore(root, nil)
	cfg := config.Default()
	cfg.DailyDir = "journal/daily"

	s := New(store, cfg, nil, nil, WithClock(func() time.Time { return fixedNow }))
	step, err := s.Today(context.Background())
	if err != nil {
		t.Fatalf("Today failed: %v", err)
	}
	if step.Name != "journal/daily/2026-10-19.md" {
		t.Errorf("unexpected name %s", step.Name)
	}
	if _, err := os.Stat(filepath.Join(root, "journal", "daily", "2026-10-19.md")); err != nil {
		t.Errorf("expected nested daily log: %v", err)
	}
}

func TestSystem_CanceledContext(t *testing.T) {
	s, root, _ := newTestSystem(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.Init(ctx); err == nil {
		t.Error("expected error for canceled context")
	}
	entries, _ := os.ReadDir(root)
	if len(entries) != 0 {
		t.Errorf("expected no files, got %d", len(entries))
	}
}
