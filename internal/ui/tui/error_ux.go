package tui

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/auditmd/internal/domain"
)

// userMessage turns an error into a short line for the status bar. Details stay
// in the logs.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if !errors.As(err, &oe) {
		return "Unexpected error (see logs)"
	}

	switch oe.Kind {
	case domain.KindNotFound:
		if strings.TrimSpace(oe.Path) != "" {
			return "Report not found: " + filepath.Base(oe.Path)
		}
		return "Report not found"

	case domain.KindParse:
		return "Malformed finding heading" + atLine(oe)

	case domain.KindOrdering:
		return "Team response before any finding" + atLine(oe)

	case domain.KindUnknownSeverity:
		return "Unknown severity alias"

	case domain.KindInvalidQuery:
		return "Invalid JSONPath query"

	case domain.KindInvalidConfig:
		base := "config"
		if strings.TrimSpace(oe.Path) != "" {
			base = filepath.Base(oe.Path)
		}
		return "Invalid config in " + base

	default:
		return "Unexpected error (see logs)"
	}
}

func atLine(oe *domain.OpError) string {
	if oe.Line <= 0 {
		return ""
	}
	return fmt.Sprintf(" at line %d", oe.Line)
}
