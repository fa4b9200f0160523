package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"iface-caster/diagnostic"
)

var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorMuted   = lipgloss.Color("#9CA3AF")
	colorError   = lipgloss.Color("#EF4444")
	colorWarning = lipgloss.Color("#F59E0B")
	colorInfo    = lipgloss.Color("#3B82F6")
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	severityStyles = map[diagnostic.Severity]lipgloss.Style{
		diagnostic.SeverityError:   lipgloss.NewStyle().Foreground(colorError).Bold(true),
		diagnostic.SeverityWarning: lipgloss.NewStyle().Foreground(colorWarning),
		diagnostic.SeverityInfo:    lipgloss.NewStyle().Foreground(colorInfo),
	}
)

func printDiagnostics(w io.Writer, diags diagnostic.Diagnostics) {
	if diags.Len() == 0 {
		fmt.Fprintln(w, mutedStyle.Render("no diagnostics"))
		return
	}

	for _, d := range diags.All() {
		label := severityStyles[d.Severity].Render(fmt.Sprintf("%-7s", d.Severity))
		fmt.Fprintf(w, "%s %s\n", label, d)
	}
}
