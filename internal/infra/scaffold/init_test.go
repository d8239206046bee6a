package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aalvaropc/auditmd/internal/infra/configfinder"
)

func TestInitializer_Init_WritesLoadableConfig(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv(configfinder.EnvDebug, "")
	t.Setenv(configfinder.EnvFormat, "")

	path, err := NewInitializer().Init(tmp, false)
	if err != nil {
		t.Fatalf("Init error: %v", err)
	}
	if path != filepath.Join(tmp, ".auditmd.yaml") {
		t.Fatalf("unexpected path %s", path)
	}

	cfg, err := configfinder.LoadConfig(tmp)
	if err != nil {
		t.Fatalf("template must load cleanly: %v", err)
	}
	if cfg.Markers.Summary != "## Findings Summary" {
		t.Fatalf("expected default summary marker, got %q", cfg.Markers.Summary)
	}

	assertFileExists(t, filepath.Join(tmp, ".gitignore"))
}

func TestInitializer_Init_SkipsExistingUnlessForce(t *testing.T) {
	tmp := t.TempDir()

	cfgPath := filepath.Join(tmp, ".auditmd.yaml")
	if err := os.WriteFile(cfgPath, []byte("custom\n"), 0o644); err != nil {
		t.Fatalf("write existing config: %v", err)
	}

	i := NewInitializer()

	if _, err := i.Init(tmp, false); err != nil {
		t.Fatalf("Init (force=false) error: %v", err)
	}

	b, err := os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if string(b) != "custom\n" {
		t.Fatalf("expected config preserved, got %q", string(b))
	}

	if _, err := i.Init(tmp, true); err != nil {
		t.Fatalf("Init (force=true) error: %v", err)
	}

	b, err = os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("read config after force: %v", err)
	}
	if !strings.Contains(string(b), "auditmd:") {
		t.Fatalf("expected config overwritten with template, got %q", string(b))
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file %s, stat err=%v", path, err)
	}
}
