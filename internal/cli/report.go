package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/auditmd/internal/domain"
	"github.com/aalvaropc/auditmd/internal/infra/configfinder"
	"github.com/aalvaropc/auditmd/internal/infra/mdstore"
	"github.com/aalvaropc/auditmd/internal/ports"
	"github.com/aalvaropc/auditmd/internal/usecase"
)

type reportCtx struct {
	path string
	root string // directory holding .auditmd.yaml; empty when none was found
	cfg  domain.Config

	store ports.ReportStore
}

func loadReport(arg string, configFlag string) (*reportCtx, error) {
	in := strings.TrimSpace(arg)
	if in == "" {
		return nil, fmt.Errorf("report path is required")
	}

	path, err := filepath.Abs(in)
	if err != nil {
		return nil, fmt.Errorf("invalid report path: %w", err)
	}

	root, cfg, err := resolveConfig(configfinder.NewFinder(), path, configFlag)
	if err != nil {
		return nil, err
	}

	return &reportCtx{
		path:  path,
		root:  root,
		cfg:   cfg,
		store: mdstore.NewFileStore(),
	}, nil
}

// resolveConfig loads an explicit --config file, or the nearest .auditmd.yaml
// above start, or the defaults when there is none.
func resolveConfig(locator ports.ConfigLocator, start string, configFlag string) (string, domain.Config, error) {
	if c := strings.TrimSpace(configFlag); c != "" {
		abs, err := filepath.Abs(c)
		if err != nil {
			return "", domain.Config{}, fmt.Errorf("invalid config path: %w", err)
		}
		cfg, err := configfinder.LoadFile(abs)
		return filepath.Dir(abs), cfg, err
	}

	root, err := locator.FindRoot(start)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			cfg, lerr := configfinder.LoadConfig("")
			return "", cfg, lerr
		}
		return "", domain.Config{}, err
	}

	cfg, err := configfinder.LoadConfig(root)
	return root, cfg, err
}

func (rc *reportCtx) markers() usecase.ReportOption {
	return usecase.WithMarkers(rc.cfg.Markers)
}

func resolveFormat(flag string, cfg domain.Config) (string, error) {
	f := strings.ToLower(strings.TrimSpace(flag))
	if f == "" {
		f = cfg.Output.Format
	}
	switch f {
	case domain.FormatMarkdown, domain.FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format %q (expected markdown|json)", f)
	}
}
