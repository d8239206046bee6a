package tui

import (
	"context"

	"go.uber.org/zap"

	"github.com/aalvaropc/auditmd/internal/domain"
)

// FindingLister loads the findings of a report; usecase.ListIssues satisfies it.
type FindingLister interface {
	Execute(ctx context.Context, path string) ([]domain.Finding, error)
}

type Deps struct {
	Issues     FindingLister
	ReportPath string

	Logger *zap.SugaredLogger
	Debug  bool
}
