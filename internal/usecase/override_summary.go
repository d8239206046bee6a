package usecase

import (
	"context"

	"github.com/aalvaropc/auditmd/internal/app/summary"
	"github.com/aalvaropc/auditmd/internal/domain"
	"github.com/aalvaropc/auditmd/internal/ports"
	"github.com/aalvaropc/auditmd/internal/usecase/splice"
)

type OverrideSummary struct {
	store   ports.ReportStore
	markers domain.MarkersConfig
}

// OverrideResult describes the rewritten report.
type OverrideResult struct {
	Document domain.Document
	Blocks   int  // summary blocks replaced
	Changed  bool // content differs from what was read
	Written  bool
}

func NewOverrideSummary(store ports.ReportStore, opts ...ReportOption) *OverrideSummary {
	return &OverrideSummary{store: store, markers: resolveMarkers(opts)}
}

// Execute rebuilds the summary table and splices it over every summary block.
// The new content is fully computed before anything is written; any error
// leaves the file untouched. Unless dryRun is set the report is written back
// even when no block was found, so the file is always the tool's output.
func (uc *OverrideSummary) Execute(ctx context.Context, path string, dryRun bool) (OverrideResult, error) {
	doc, findings, err := loadFindings(ctx, uc.store, path, uc.markers.Findings)
	if err != nil {
		return OverrideResult{}, err
	}

	table, err := summary.Render(findings, uc.markers.Summary)
	if err != nil {
		return OverrideResult{}, domain.WithLocation(err, path, 0)
	}

	out, blocks, err := splice.Replace(doc, table, uc.markers.Summary)
	if err != nil {
		return OverrideResult{}, domain.WithLocation(err, path, 0)
	}

	res := OverrideResult{
		Document: out,
		Blocks:   blocks,
		Changed:  out.String() != doc.String(),
	}
	if dryRun {
		return res, nil
	}

	if err := ctx.Err(); err != nil {
		return OverrideResult{}, err
	}
	if err := uc.store.WriteDocument(path, out); err != nil {
		return OverrideResult{}, err
	}
	res.Written = true
	return res, nil
}
