package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles for the picker.
type Styles struct {
	Title    lipgloss.Style
	Header   lipgloss.Style
	Selected lipgloss.Style
	Row      lipgloss.Style
	Status   lipgloss.Style
	Help     lipgloss.Style
}

// DefaultStyles returns the default picker styles.
var DefaultStyles = Styles{
	Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
	Header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245")),
	Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
	Row:      lipgloss.NewStyle(),
	Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
}

const titleWidth = 48

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("wmctl — windows"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Header.Render(fmt.Sprintf("  %-12s %4s %7s  %s", "ID", "DESK", "PID", "TITLE")))
	b.WriteString("\n")

	if len(m.windows) == 0 {
		b.WriteString(m.styles.Help.Render("  no windows"))
		b.WriteString("\n")
	}
	for i, win := range m.windows {
		row := fmt.Sprintf("%-12s %4d %7d  %s", win.ID, win.Desktop, win.PID, truncate(win.Title, titleWidth))
		if i == m.cursor {
			b.WriteString(m.styles.Selected.Render("> " + row))
		} else {
			b.WriteString(m.styles.Row.Render("  " + row))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.styles.Status.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Help.Render("j/k navigate · enter activate · c close · f fullscreen · m maximize · s shade · r refresh · q quit"))
	return b.String()
}
