package usecase

import (
	"context"

	"github.com/aalvaropc/auditmd/internal/domain"
	"github.com/aalvaropc/auditmd/internal/ports"
	"github.com/aalvaropc/auditmd/internal/usecase/extract"
)

// ReportOption tunes the headings the report usecases look for.
type ReportOption func(*domain.MarkersConfig)

// WithMarkers overrides the findings and summary headings. Blank values keep
// the defaults.
func WithMarkers(m domain.MarkersConfig) ReportOption {
	return func(dst *domain.MarkersConfig) {
		if m.Findings != "" {
			dst.Findings = m.Findings
		}
		if m.Summary != "" {
			dst.Summary = m.Summary
		}
	}
}

func resolveMarkers(opts []ReportOption) domain.MarkersConfig {
	m := domain.DefaultConfig().Markers
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// loadFindings reads the report and extracts its findings. Extraction errors
// get the report path attached.
func loadFindings(ctx context.Context, store ports.ReportStore, path string, marker string) (domain.Document, []domain.Finding, error) {
	if err := ctx.Err(); err != nil {
		return domain.Document{}, nil, err
	}

	doc, err := store.ReadDocument(path)
	if err != nil {
		return domain.Document{}, nil, err
	}

	findings, err := extract.FilterFindingSection(doc.Lines, extract.WithFindingsMarker(marker))
	if err != nil {
		return domain.Document{}, nil, domain.WithLocation(err, path, 0)
	}
	return doc, findings, nil
}
