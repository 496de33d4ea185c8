// Package templates holds the fixed Markdown documents scaffolded into a
// workspace: the session-state file, the curated memory file and the
// per-day log.
package templates

import (
	"fmt"
	"strings"
	"time"
)

// DatePlaceholder is replaced with the ISO date in the daily log template.
const DatePlaceholder = "{{DATE}}"

// DateLayout is the ISO calendar date used for daily log names.
const DateLayout = "2006-01-02"

// timestampLayout matches an ISO-8601 UTC instant with millisecond precision.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

const sessionStateTemplate = `# SESSION-STATE.md — Active Working Memory

This file is the agent's "RAM" — survives compaction, restarts, distractions.
Chat history is a BUFFER. This file is STORAGE.

## Current Task
[None]

## Key Context
[None yet]

## Pending Actions
- [ ] None

## Recent Decisions
[None yet]

---
*Last updated: %s*
`

const memoryTemplate = `# MEMORY.md — Long-Term Memory

## About the User
[Add user preferences, communication style, etc.]

## Projects
[Active projects and their status]

## Decisions Log
[Important decisions and why they were made]

## Lessons Learned
[Mistakes to avoid, patterns that work]

## Preferences
[Tools, frameworks, workflows the user prefers]

---
*Curated memory — distill insights from daily logs here*
`

const dailyLogTemplate = `# {{DATE}} — Daily Log

## Tasks Completed
- 

## Decisions Made
- 

## Lessons Learned
- 

## Tomorrow
- 
`

// SessionState renders the session-state document stamped with now.
func SessionState(now time.Time) string {
	return fmt.Sprintf(sessionStateTemplate, Timestamp(now))
}

// Memory renders the long-term memory document.
func Memory() string {
	return memoryTemplate
}

// DailyLog renders the daily log for the given ISO date.
// Only the first placeholder is substituted.
func DailyLog(date string) string {
	return strings.Replace(dailyLogTemplate, DatePlaceholder, date, 1)
}

// DateStamp returns the UTC calendar date of t.
func DateStamp(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// Timestamp returns t as a UTC instant with millisecond precision.
func Timestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}
