package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// UI receives the human-readable report of a command.
type UI interface {
	Title(text string)
	Done(msg string)
	Skip(msg string)
	Missing(msg string)
	Line(msg string)
}

const (
	MarkDone    = "✓"
	MarkSkip    = "•"
	MarkMissing = "✗"
)

// Console prints check lines to a writer. Marks are colored only when the
// writer is a terminal.
type Console struct {
	out          io.Writer
	titleStyle   lipgloss.Style
	doneStyle    lipgloss.Style
	skipStyle    lipgloss.Style
	missingStyle lipgloss.Style
}

func NewConsole(out io.Writer) *Console {
	r := lipgloss.NewRenderer(out)
	return &Console{
		out:          out,
		titleStyle:   r.NewStyle().Bold(true),
		doneStyle:    r.NewStyle().Foreground(lipgloss.Color("#04B575")),
		skipStyle:    r.NewStyle().Foreground(lipgloss.Color("#888888")),
		missingStyle: r.NewStyle().Foreground(lipgloss.Color("#FF0000")),
	}
}

func (c *Console) Title(text string) {
	fmt.Fprintln(c.out, c.titleStyle.Render(text))
}

func (c *Console) Done(msg string) {
	c.mark(c.doneStyle, MarkDone, msg)
}

func (c *Console) Skip(msg string) {
	c.mark(c.skipStyle, MarkSkip, msg)
}

func (c *Console) Missing(msg string) {
	c.mark(c.missingStyle, MarkMissing, msg)
}

func (c *Console) Line(msg string) {
	fmt.Fprintln(c.out, msg)
}

func (c *Console) mark(style lipgloss.Style, mark, msg string) {
	fmt.Fprintf(c.out, "%s %s\n", style.Render(mark), msg)
}

type SilentUI struct{}

func (s SilentUI) Title(text string)  {}
func (s SilentUI) Done(msg string)    {}
func (s SilentUI) Skip(msg string)    {}
func (s SilentUI) Missing(msg string) {}
func (s SilentUI) Line(msg string)    {}
