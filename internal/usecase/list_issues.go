package usecase

import (
	"context"

	"github.com/aalvaropc/auditmd/internal/domain"
	"github.com/aalvaropc/auditmd/internal/ports"
)

type ListIssues struct {
	store   ports.ReportStore
	markers domain.MarkersConfig
}

func NewListIssues(store ports.ReportStore, opts ...ReportOption) *ListIssues {
	return &ListIssues{store: store, markers: resolveMarkers(opts)}
}

// Execute returns the findings of the report in document order.
func (uc *ListIssues) Execute(ctx context.Context, path string) ([]domain.Finding, error) {
	_, findings, err := loadFindings(ctx, uc.store, path, uc.markers.Findings)
	return findings, err
}
