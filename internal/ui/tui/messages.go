package tui

import "github.com/aalvaropc/auditmd/internal/domain"

type findingsLoadedMsg struct {
	path     string
	findings []domain.Finding
	err      error
}
