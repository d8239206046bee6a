package summary

import (
	"testing"

	"github.com/aalvaropc/auditmd/internal/domain"
)

func mustFinding(t *testing.T, line, response string) domain.Finding {
	t.Helper()
	f, err := domain.NewFinding(line)
	if err != nil {
		t.Fatalf("NewFinding(%q): %v", line, err)
	}
	if response != "" {
		f.SetTeamResponse(response)
	}
	return f
}

func TestRenderEmpty(t *testing.T) {
	out, err := Render(nil, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"## Findings Summary",
		"",
		"| Finding | Risk | Description | Response |",
		"| :--- | :--- | :--- | :--- |",
		"",
	}
	if len(out) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(out), out)
	}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("line %d: expected %q, got %q", i, want[i], out[i])
		}
	}
}

func TestRenderRowsInOrder(t *testing.T) {
	findings := []domain.Finding{
		mustFinding(t, "### [C-1] Bad thing happens", "we fixed it"),
		mustFinding(t, "### [L-2] Minor issue", "acknowledged"),
	}

	out, err := Render(findings, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 7 {
		t.Fatalf("expected 7 lines, got %d", len(out))
	}
	if out[4] != "| [[C-1]](<#c-1-bad-thing-happens>) | Critical | Bad thing happens | ✅ Fixed |" {
		t.Fatalf("unexpected first row %q", out[4])
	}
	if out[5] != "| [[L-2]](<#l-2-minor-issue>) | Low | Minor issue | 🤝 Ackn. |" {
		t.Fatalf("unexpected second row %q", out[5])
	}
	if out[6] != "" {
		t.Fatalf("expected trailing blank line, got %q", out[6])
	}
}

func TestRenderCustomHeading(t *testing.T) {
	out, err := Render(nil, "## Summary")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out[0] != "## Summary" {
		t.Fatalf("expected custom heading, got %q", out[0])
	}
}

func TestRenderUnknownSeverity(t *testing.T) {
	findings := []domain.Finding{mustFinding(t, "### [X-1] Unknown", "")}

	_, err := Render(findings, "")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindUnknownSeverity) {
		t.Fatalf("expected KindUnknownSeverity, got %v", err)
	}
}
