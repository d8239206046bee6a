package domain

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var findingHeading = regexp.MustCompile(`^### \[(.*)\] (.*)$`)

// Finding is one audit issue parsed from a `### [<id>] <title>` heading.
//
// Construction validates the heading shape only. The severity alias is resolved
// lazily by Severity, so findings with an unknown alias can still be listed.
type Finding struct {
	RawLine       string
	IssueID       string
	SeverityAlias string
	Title         string
	TeamResponse  string
}

// NewFinding parses a finding heading. Trailing line terminators are dropped
// from RawLine.
func NewFinding(rawline string) (Finding, error) {
	line := strings.TrimRight(rawline, "\r\n")

	if strings.Count(line, "[") > 1 || strings.Count(line, "]") > 1 {
		return Finding{}, parseError(line, "too many square brackets")
	}

	m := findingHeading.FindStringSubmatch(line)
	if m == nil {
		return Finding{}, parseError(line, "expected \"### [<id>] <title>\"")
	}

	id, title := m[1], m[2]
	if id == "" {
		return Finding{}, parseError(line, "empty issue id")
	}

	alias, _ := utf8.DecodeRuneInString(id)

	return Finding{
		RawLine:       line,
		IssueID:       id,
		SeverityAlias: string(alias),
		Title:         title,
	}, nil
}

func parseError(line, msg string) error {
	return &OpError{
		Op:   "finding.parse",
		Kind: KindParse,
		Err:  fmt.Errorf("%s: %q: %w", msg, line, ErrParse),
	}
}

// Severity resolves the severity alias.
func (f Finding) Severity() (Severity, error) {
	s, err := SeverityFromAlias(f.SeverityAlias)
	if err != nil {
		return "", fmt.Errorf("finding %s: %w", f.IssueID, err)
	}
	return s, nil
}

// Anchor returns the heading anchor for the finding: "<id>-<title>" lowercased,
// stripped of everything but ASCII letters, digits, '-', '_' and whitespace,
// with every space turned into '-'. Consecutive spaces are not collapsed.
func (f Finding) Anchor() string {
	lower := strings.ToLower(f.IssueID + "-" + f.Title)

	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '_':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(r)
		}
	}

	return strings.ReplaceAll(b.String(), " ", "-")
}

// Link renders the markdown link used in the summary table.
func (f Finding) Link() string {
	return fmt.Sprintf("[[%s]](<#%s>)", f.IssueID, f.Anchor())
}

// SetTeamResponse stores the normalized response, overwriting any previous one.
func (f *Finding) SetTeamResponse(response string) {
	f.TeamResponse = NormalizeResponse(response)
}

// RowInSummaryTable renders the finding as one summary table row. It fails
// when the severity alias is unknown.
func (f Finding) RowInSummaryTable() (string, error) {
	sev, err := f.Severity()
	if err != nil {
		return "", err
	}

	status := ResponseIcon(f.TeamResponse) + " " + f.TeamResponse
	return fmt.Sprintf("| %s | %s | %s | %s |", f.Link(), sev, f.Title, status), nil
}
