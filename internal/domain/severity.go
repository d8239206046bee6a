package domain

import "fmt"

// Severity is the human label of a finding's risk.
type Severity string

const (
	SeverityCritical       Severity = "Critical"
	SeverityHigh           Severity = "High"
	SeverityMedium         Severity = "Medium"
	SeverityCentralization Severity = "Centralization"
	SeverityLow            Severity = "Low"
	SeverityInfo           Severity = "Info"
	SeverityGas            Severity = "Gas"
)

// severityByAlias maps the first character of an issue id to its severity.
var severityByAlias = map[string]Severity{
	"C": SeverityCritical,
	"H": SeverityHigh,
	"M": SeverityMedium,
	"Z": SeverityCentralization,
	"L": SeverityLow,
	"I": SeverityInfo,
	"G": SeverityGas,
}

// SeverityFromAlias resolves a single-letter alias. Aliases are case-sensitive.
func SeverityFromAlias(alias string) (Severity, error) {
	s, ok := severityByAlias[alias]
	if !ok {
		return "", &OpError{
			Op:   "finding.severity",
			Kind: KindUnknownSeverity,
			Err:  fmt.Errorf("alias %q: %w", alias, ErrUnknownSeverity),
		}
	}
	return s, nil
}

func (s Severity) String() string {
	return string(s)
}
