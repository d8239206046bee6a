package scaffold

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/auditmd/internal/domain"
	"github.com/aalvaropc/auditmd/internal/infra/configfinder"
	"github.com/aalvaropc/auditmd/internal/ports"
)

//go:embed templates/auditmd.yaml
var configTemplate []byte

type Initializer struct{}

func NewInitializer() *Initializer {
	return &Initializer{}
}

var _ ports.ConfigInitializer = (*Initializer)(nil)

// Init writes .auditmd.yaml into dir. An existing file is kept unless force is set.
func (i *Initializer) Init(dir string, force bool) (string, error) {
	root := filepath.Clean(dir)
	if err := os.MkdirAll(root, 0o755); err != nil {
		return "", &domain.OpError{Op: "scaffold.mkdir", Kind: domain.KindExecution, Path: root, Err: err}
	}

	dst := filepath.Join(root, configfinder.DefaultConfigFile)
	if !force {
		if _, statErr := os.Stat(dst); statErr == nil {
			if err := ensureGitignore(root); err != nil {
				return dst, err
			}
			return dst, nil
		}
	}

	if err := os.WriteFile(dst, configTemplate, 0o644); err != nil {
		return "", &domain.OpError{Op: "scaffold.write", Kind: domain.KindExecution, Path: dst, Err: err}
	}

	if err := ensureGitignore(root); err != nil {
		return dst, err
	}
	return dst, nil
}

func ensureGitignore(root string) error {
	const header = "# auditmd"
	entries := []string{
		".*.tmp",
		".env",
	}

	path := filepath.Join(root, ".gitignore")
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			lines := append([]string{header}, entries...)
			lines = append(lines, "")
			return os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644)
		}
		return err
	}

	existing := string(b)
	present := map[string]bool{}
	for _, line := range strings.Split(existing, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		present[trimmed] = true
	}

	var missing []string
	for _, e := range entries {
		if !present[e] {
			missing = append(missing, e)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	var out strings.Builder
	out.Grow(len(existing) + 32)

	out.WriteString(existing)
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		out.WriteByte('\n')
	}
	out.WriteByte('\n')
	if !present[header] {
		out.WriteString(header)
		out.WriteByte('\n')
	}
	for _, e := range missing {
		out.WriteString(e)
		out.WriteByte('\n')
	}

	return os.WriteFile(path, []byte(out.String()), 0o644)
}
