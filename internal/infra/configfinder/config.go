package configfinder

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/auditmd/internal/domain"
)

const (
	EnvDebug  = "AUDITMD_DEBUG"
	EnvFormat = "AUDITMD_FORMAT"
)

// LoadConfig loads .auditmd.yaml from root and applies it on top of defaults.
// Values from root/.env and then the process environment override the file.
// An empty root yields defaults plus overrides from ./.env and the environment.
func LoadConfig(root string) (domain.Config, error) {
	if root == "" {
		return applyEnv(domain.DefaultConfig(), ".env")
	}
	return LoadFile(filepath.Join(root, DefaultConfigFile))
}

// LoadFile loads a config file at an explicit path.
func LoadFile(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "configfinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  fmt.Errorf("%w: %w", domain.ErrFileNotFound, err),
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "configfinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	if y.Auditmd.Markers.Findings != "" {
		cfg.Markers.Findings = y.Auditmd.Markers.Findings
	}
	if y.Auditmd.Markers.Summary != "" {
		cfg.Markers.Summary = y.Auditmd.Markers.Summary
	}
	if y.Auditmd.Output.Format != "" {
		cfg.Output.Format = y.Auditmd.Output.Format
	}
	if y.Auditmd.Logging.Debug != nil {
		cfg.Logging.Debug = *y.Auditmd.Logging.Debug
	}

	return applyEnv(cfg, filepath.Join(filepath.Dir(path), ".env"))
}

func applyEnv(cfg domain.Config, dotenvPath string) (domain.Config, error) {
	vals := map[string]string{}
	if dotenvPath != "" {
		if _, err := os.Stat(dotenvPath); err == nil {
			m, err := godotenv.Read(dotenvPath)
			if err != nil {
				return cfg, &domain.OpError{
					Op:   "configfinder.dotenv",
					Kind: domain.KindInvalidConfig,
					Path: dotenvPath,
					Err:  err,
				}
			}
			vals = m
		}
	}
	for _, k := range []string{EnvDebug, EnvFormat} {
		if v, ok := os.LookupEnv(k); ok {
			vals[k] = v
		}
	}

	if v, ok := vals[EnvDebug]; ok && strings.TrimSpace(v) != "" {
		debug, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return cfg, invalid(dotenvPath, fmt.Errorf("%s: %w", EnvDebug, err))
		}
		cfg.Logging.Debug = debug
	}
	if v, ok := vals[EnvFormat]; ok && strings.TrimSpace(v) != "" {
		cfg.Output.Format = strings.ToLower(strings.TrimSpace(v))
	}

	return cfg, validate(cfg)
}

func validate(cfg domain.Config) error {
	switch cfg.Output.Format {
	case domain.FormatMarkdown, domain.FormatJSON:
	default:
		return invalid("", fmt.Errorf("output.format %q (expected markdown|json)", cfg.Output.Format))
	}
	if strings.TrimSpace(cfg.Markers.Findings) == "" || strings.TrimSpace(cfg.Markers.Summary) == "" {
		return invalid("", fmt.Errorf("markers must not be blank"))
	}
	return nil
}

func invalid(path string, err error) error {
	return &domain.OpError{
		Op:   "configfinder.validate",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err),
	}
}

type yamlConfig struct {
	Auditmd struct {
		Markers struct {
			Findings string `yaml:"findings"`
			Summary  string `yaml:"summary"`
		} `yaml:"markers"`

		Output struct {
			Format string `yaml:"format"`
		} `yaml:"output"`

		Logging struct {
			Debug *bool `yaml:"debug"`
		} `yaml:"logging"`
	} `yaml:"auditmd"`
}
