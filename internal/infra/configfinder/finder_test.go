package configfinder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aalvaropc/auditmd/internal/domain"
)

func TestFindRoot_FindsConfigFromNestedDir(t *testing.T) {
	tmp := t.TempDir()
	root := filepath.Join(tmp, "audits")
	nested := filepath.Join(root, "2026", "q3")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	if err := os.WriteFile(filepath.Join(root, ".auditmd.yaml"), []byte("auditmd:\n  output:\n    format: json\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	f := NewFinder()
	got, err := f.FindRoot(nested)
	if err != nil {
		t.Fatalf("FindRoot returned error: %v", err)
	}
	if got != root {
		t.Fatalf("expected root=%s, got=%s", root, got)
	}
}

func TestFindRoot_FromReportFile(t *testing.T) {
	tmp := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmp, ".auditmd.yaml"), []byte("auditmd: {}\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	report := filepath.Join(tmp, "report.md")
	if err := os.WriteFile(report, []byte("# Findings\n"), 0o644); err != nil {
		t.Fatalf("write report: %v", err)
	}

	got, err := NewFinder().FindRoot(report)
	if err != nil {
		t.Fatalf("FindRoot returned error: %v", err)
	}
	if got != tmp {
		t.Fatalf("expected root=%s, got=%s", tmp, got)
	}
}

func TestFindRoot_NotFound(t *testing.T) {
	tmp := t.TempDir()
	_ = os.MkdirAll(filepath.Join(tmp, "a", "b"), 0o755)

	f := &Finder{ConfigFile: "auditmd-test-does-not-exist.yaml"}
	_, err := f.FindRoot(filepath.Join(tmp, "a", "b"))
	if err == nil {
		t.Fatalf("expected error")
	}

	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got: %v", err)
	}
}

func TestFindRoot_EmptyStart(t *testing.T) {
	_, err := NewFinder().FindRoot("")
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got: %v", err)
	}
}
