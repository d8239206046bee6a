package usecase

import (
	"context"

	"github.com/aalvaropc/auditmd/internal/app/summary"
	"github.com/aalvaropc/auditmd/internal/domain"
	"github.com/aalvaropc/auditmd/internal/ports"
)

type GenerateTable struct {
	store   ports.ReportStore
	markers domain.MarkersConfig
}

func NewGenerateTable(store ports.ReportStore, opts ...ReportOption) *GenerateTable {
	return &GenerateTable{store: store, markers: resolveMarkers(opts)}
}

// Execute renders the summary table lines for the report. The first line is
// the summary heading.
func (uc *GenerateTable) Execute(ctx context.Context, path string) ([]string, error) {
	_, findings, err := loadFindings(ctx, uc.store, path, uc.markers.Findings)
	if err != nil {
		return nil, err
	}

	table, err := summary.Render(findings, uc.markers.Summary)
	if err != nil {
		return nil, domain.WithLocation(err, path, 0)
	}
	return table, nil
}
