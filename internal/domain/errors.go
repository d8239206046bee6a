package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrFileNotFound    = errors.New("file not found")
	ErrParse           = errors.New("parse error")
	ErrUnknownSeverity = errors.New("unknown severity")
	ErrOrdering        = errors.New("ordering error")
	ErrInvalidConfig   = errors.New("invalid config")
	ErrInvalidQuery    = errors.New("invalid query")
	ErrExecution       = errors.New("execution error")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNotFound        ErrorKind = "not_found"
	KindParse           ErrorKind = "parse"
	KindUnknownSeverity ErrorKind = "unknown_severity"
	KindOrdering        ErrorKind = "ordering"
	KindInvalidConfig   ErrorKind = "invalid_config"
	KindInvalidQuery    ErrorKind = "invalid_query"
	KindExecution       ErrorKind = "execution"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Line int    // Optional: 1-based line in the report
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Line > 0 {
		base += fmt.Sprintf(" (line=%d)", e.Line)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// WithLocation fills Path and Line on an OpError found in err's chain when they
// are still empty. Errors of other types are returned unchanged.
func WithLocation(err error, path string, line int) error {
	var oe *OpError
	if !errors.As(err, &oe) {
		return err
	}
	if oe.Path == "" {
		oe.Path = path
	}
	if oe.Line == 0 {
		oe.Line = line
	}
	return err
}
