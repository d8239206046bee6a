package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/aalvaropc/auditmd/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen-1 {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func severityLabel(f domain.Finding) string {
	sev, err := f.Severity()
	if err != nil {
		return "? (" + f.SeverityAlias + ")"
	}
	return string(sev)
}

func responseLabel(f domain.Finding) string {
	if f.TeamResponse == "" {
		return "-"
	}
	if icon := domain.ResponseIcon(f.TeamResponse); icon != "" {
		return icon + " " + f.TeamResponse
	}
	return f.TeamResponse
}

func renderDetails(t Theme, f domain.Finding) string {
	var b strings.Builder

	b.WriteString(t.Title.Render(f.IssueID))
	b.WriteString("  ")
	if sev, err := f.Severity(); err == nil {
		b.WriteString(t.SeverityBadge(sev))
	} else {
		b.WriteString(t.Error.Render(userMessage(err)))
	}
	b.WriteString("\n")
	b.WriteString(f.Title)
	b.WriteString("\n\n")

	b.WriteString("Response: ")
	b.WriteString(responseLabel(f))
	b.WriteString("\n")
	b.WriteString("Anchor:   ")
	b.WriteString(f.Link())
	b.WriteString("\n")
	b.WriteString(t.Subtitle.Render(f.RawLine))

	return b.String()
}
