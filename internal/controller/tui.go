package controller

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

const (
	warnColor = lipgloss.Color("3")
	diffColor = lipgloss.Color("8")
)

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

// palette renders status labels. A plain palette returns its input unchanged.
type palette struct {
	warn   lipgloss.Style
	header lipgloss.Style
	styled bool
}

func newPalette(out io.Writer, styled bool) palette {
	if !styled {
		return palette{}
	}

	renderer := lipgloss.NewRenderer(out)

	return palette{
		warn:   renderer.NewStyle().Foreground(warnColor).Bold(true),
		header: renderer.NewStyle().Foreground(diffColor),
		styled: true,
	}
}

func (p palette) Warn(s string) string {
	if !p.styled {
		return s
	}

	return p.warn.Render(s)
}

func (p palette) Header(s string) string {
	if !p.styled {
		return s
	}

	return p.header.Render(s)
}
