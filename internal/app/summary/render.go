package summary

import (
	"fmt"

	"github.com/aalvaropc/auditmd/internal/domain"
)

const (
	ColumnHeader = "| Finding | Risk | Description | Response |"
	Separator    = "| :--- | :--- | :--- | :--- |"
)

// Render builds the summary table: heading, blank line, column header,
// separator, one row per finding and a trailing blank line. Lines carry no
// terminators. An empty heading falls back to "## Findings Summary".
func Render(findings []domain.Finding, heading string) ([]string, error) {
	if heading == "" {
		heading = domain.DefaultConfig().Markers.Summary
	}

	out := make([]string, 0, len(findings)+5)
	out = append(out, heading, "", ColumnHeader, Separator)

	for _, f := range findings {
		row, err := f.RowInSummaryTable()
		if err != nil {
			return nil, fmt.Errorf("render summary row: %w", err)
		}
		out = append(out, row)
	}

	out = append(out, "")
	return out, nil
}
