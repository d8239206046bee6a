package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func cmdLoadFindings(deps Deps) tea.Cmd {
	return func() tea.Msg {
		if deps.Issues == nil {
			return findingsLoadedMsg{path: deps.ReportPath, err: errors.New("finding lister is nil")}
		}

		findings, err := deps.Issues.Execute(context.Background(), deps.ReportPath)
		if err != nil {
			logOrNop(deps.Logger).Warnw("tui.load_findings", "path", deps.ReportPath, "err", err)
		}
		return findingsLoadedMsg{path: deps.ReportPath, findings: findings, err: err}
	}
}

func logOrNop(l *zap.SugaredLogger) *zap.SugaredLogger {
	if l == nil {
		return zap.NewNop().Sugar()
	}
	return l
}
