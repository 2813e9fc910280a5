package formatter

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsTTY reports whether stdout is an interactive terminal. Non-TTY output
// (piped to a file or another process) gets the plain table fallback
// instead of lipgloss-styled output.
func IsTTY() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Table renders headers/rows with styling when stdout is a TTY, or a
// plain tab-separated table otherwise.
func Table(headers []string, rows [][]string) string {
	if IsTTY() {
		return RenderTable(headers, rows)
	}
	return RenderPlainTable(headers, rows)
}
