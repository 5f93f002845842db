package main

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	doneStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#95E1A3"))
	warnStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFE66D"))
)

func styled(style lipgloss.Style, s string, colorize bool) string {
	if !colorize {
		return s
	}
	return style.Render(s)
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
