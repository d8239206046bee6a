package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/aalvaropc/auditmd/internal/domain"
)

var teamResponseLine = regexp.MustCompile(`^#### team response: (.*)$`)

type lineKind int

const (
	lineOther lineKind = iota
	lineSectionStart
	lineTopHeading
	lineFindingHeading
	lineTeamResponse
)

// classify computes the kind of a line once, by ordered checks. For response
// lines it also returns the captured response text (from the lowercased line).
func classify(line, marker string) (lineKind, string) {
	switch {
	case strings.TrimSpace(line) == marker:
		return lineSectionStart, ""
	case strings.HasPrefix(line, "# "):
		return lineTopHeading, ""
	case strings.HasPrefix(line, "### "):
		return lineFindingHeading, ""
	}

	if m := teamResponseLine.FindStringSubmatch(strings.ToLower(line)); m != nil {
		return lineTeamResponse, m[1]
	}
	return lineOther, ""
}

type options struct {
	marker string
}

type Option func(*options)

// WithFindingsMarker overrides the heading that opens the findings section.
func WithFindingsMarker(marker string) Option {
	return func(o *options) {
		if strings.TrimSpace(marker) != "" {
			o.marker = strings.TrimSpace(marker)
		}
	}
}

// FilterFindingSection scans lines top to bottom and returns the findings of
// the "# Findings" section in document order.
//
// Policy:
//   - lines before the section marker are ignored;
//   - the next top-level "# " heading ends the scan for the whole document;
//   - "### " lines become findings (a malformed one aborts the scan);
//   - "#### team response: <text>" lines (case-insensitive) set the response of
//     the last finding, and fail with an ordering error when there is none;
//   - anything else inside the section is ignored.
//
// Lines may carry their terminators; they are stripped before matching.
// Errors carry the 1-based line number.
func FilterFindingSection(lines []string, opts ...Option) ([]domain.Finding, error) {
	o := options{marker: domain.DefaultConfig().Markers.Findings}
	for _, opt := range opts {
		opt(&o)
	}

	findings := []domain.Finding{}
	inSection := false

	for i, raw := range lines {
		line := strings.TrimRight(raw, "\r\n")
		kind, response := classify(line, o.marker)

		if kind == lineSectionStart {
			inSection = true
			continue
		}
		if !inSection {
			continue
		}

		switch kind {
		case lineTopHeading:
			return findings, nil

		case lineFindingHeading:
			f, err := domain.NewFinding(line)
			if err != nil {
				return nil, domain.WithLocation(err, "", i+1)
			}
			findings = append(findings, f)

		case lineTeamResponse:
			if len(findings) == 0 {
				return nil, &domain.OpError{
					Op:   "extract.team_response",
					Kind: domain.KindOrdering,
					Line: i + 1,
					Err:  fmt.Errorf("team response before any finding heading: %w", domain.ErrOrdering),
				}
			}
			findings[len(findings)-1].SetTeamResponse(response)
		}
	}

	return findings, nil
}
