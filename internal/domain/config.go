package domain

// Config represents the auditmd configuration loaded from .auditmd.yaml.
type Config struct {
	Markers MarkersConfig
	Output  OutputConfig
	Logging LoggingConfig
}

// MarkersConfig holds the two section headings the tool recognizes.
type MarkersConfig struct {
	Findings string
	Summary  string
}

type OutputConfig struct {
	Format string
}

type LoggingConfig struct {
	Debug bool
}

const (
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// DefaultConfig provides sane defaults if .auditmd.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Markers: MarkersConfig{
			Findings: "# Findings",
			Summary:  "## Findings Summary",
		},
		Output: OutputConfig{Format: FormatMarkdown},
	}
}
