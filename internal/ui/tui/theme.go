package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/auditmd/internal/domain"
)

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style
	Error    lipgloss.Style
	Table    table.Styles

	severity map[domain.Severity]lipgloss.Style
}

func DefaultTheme() Theme {
	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	ts.Selected = ts.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("63")).
		Bold(false)

	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
		Error: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Table: ts,
		severity: map[domain.Severity]lipgloss.Style{
			domain.SeverityCritical:       lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
			domain.SeverityHigh:           lipgloss.NewStyle().Foreground(lipgloss.Color("202")),
			domain.SeverityMedium:         lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			domain.SeverityCentralization: lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
			domain.SeverityLow:            lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		},
	}
}

// SeverityBadge renders a severity label; unlisted levels stay unstyled.
func (t Theme) SeverityBadge(s domain.Severity) string {
	if st, ok := t.severity[s]; ok {
		return st.Render(string(s))
	}
	return string(s)
}
