package tui

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/auditmd/internal/domain"
)

type screen int

const (
	screenTable screen = iota
	screenDetail
)

const (
	colID       = 8
	colSeverity = 16
	colResponse = 14
	minTitle    = 20
)

type model struct {
	theme Theme
	deps  Deps

	scr      screen
	table    table.Model
	findings []domain.Finding
	width    int

	loading bool
	err     error
	toast   string
}

// Run opens the read-only findings browser for deps.ReportPath.
func Run(deps Deps) error {
	m := wrapSafe(newModel(deps), deps.Logger)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	t := DefaultTheme()

	tbl := table.New(
		table.WithColumns(columns(80)),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	tbl.SetStyles(t.Table)

	return model{
		theme:   t,
		deps:    deps,
		scr:     screenTable,
		table:   tbl,
		loading: true,
	}
}

func columns(width int) []table.Column {
	title := width - colID - colSeverity - colResponse - 12
	if title < minTitle {
		title = minTitle
	}
	return []table.Column{
		{Title: "ID", Width: colID},
		{Title: "Severity", Width: colSeverity},
		{Title: "Title", Width: title},
		{Title: "Response", Width: colResponse},
	}
}

func rows(findings []domain.Finding, titleWidth int) []table.Row {
	out := make([]table.Row, 0, len(findings))
	for _, f := range findings {
		out = append(out, table.Row{
			f.IssueID,
			severityLabel(f),
			clampString(f.Title, titleWidth),
			responseLabel(f),
		})
	}
	return out
}

func (m model) Init() tea.Cmd { return cmdLoadFindings(m.deps) }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		cols := columns(msg.Width - 4)
		m.table.SetColumns(cols)
		m.table.SetRows(rows(m.findings, cols[2].Width))
		if h := msg.Height - 10; h > 3 {
			m.table.SetHeight(h)
		}
		return m, nil

	case findingsLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.toast = userMessage(msg.err)
		if msg.err == nil {
			m.findings = msg.findings
			cols := m.table.Columns()
			m.table.SetRows(rows(m.findings, cols[2].Width))
			m.table.SetCursor(0)
			m.toast = fmt.Sprintf("%d finding(s)", len(m.findings))
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.scr == screenTable {
				return m, tea.Quit
			}
			m.scr = screenTable
			return m, nil

		case "enter":
			if m.scr == screenTable && len(m.findings) > 0 {
				m.scr = screenDetail
			}
			return m, nil

		case "esc", "b":
			m.scr = screenTable
			return m, nil

		case "r":
			if m.scr == screenTable && !m.loading {
				m.loading = true
				m.toast = "Reloading…"
				return m, cmdLoadFindings(m.deps)
			}
			return m, nil
		}
	}

	if m.scr == screenTable {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m, nil
}

// statusError is the short user message, followed by the raw error in debug mode.
func (m model) statusError() string {
	if !m.deps.Debug || m.err == nil {
		return m.toast
	}
	return m.toast + ": " + m.err.Error()
}

func (m model) selected() (domain.Finding, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.findings) {
		return domain.Finding{}, false
	}
	return m.findings[i], true
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("auditmd") + "  " +
		m.theme.Subtitle.Render(filepath.Base(m.deps.ReportPath)) + "\n"

	status := m.theme.Help.Render(m.toast)
	if m.err != nil {
		status = m.theme.Error.Render(m.statusError())
	}

	switch m.scr {
	case screenTable:
		if m.loading && len(m.findings) == 0 {
			return wrap.Render(header + "\nLoading…")
		}
		help := m.theme.Help.Render("↑/↓ navigate • enter details • r reload • q quit")
		return wrap.Render(header + "\n" + m.theme.Card.Render(m.table.View()) + "\n" + status + "\n" + help)

	case screenDetail:
		f, ok := m.selected()
		if !ok {
			return wrap.Render(header + "\n(no finding selected)")
		}
		help := m.theme.Help.Render("esc/b back • q table")
		return wrap.Render(header + "\n" + m.theme.Card.Render(renderDetails(m.theme, f)) + "\n" + help)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}
