// Package query exposes findings as JSON-shaped records and evaluates JSONPath
// expressions against them.
package query

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/aalvaropc/auditmd/internal/domain"
)

// FindingView is the machine-readable form of a finding.
type FindingView struct {
	ID       string `json:"id"`
	Severity string `json:"severity"`
	Title    string `json:"title"`
	Response string `json:"response"`
	Raw      string `json:"raw"`
}

// ToViews converts findings in order. Severity is resolved here, so an unknown
// alias fails the whole conversion.
func ToViews(findings []domain.Finding) ([]FindingView, error) {
	out := make([]FindingView, 0, len(findings))
	for _, f := range findings {
		sev, err := f.Severity()
		if err != nil {
			return nil, err
		}
		out = append(out, FindingView{
			ID:       f.IssueID,
			Severity: string(sev),
			Title:    f.Title,
			Response: f.TeamResponse,
			Raw:      f.RawLine,
		})
	}
	return out, nil
}

// Evaluate runs expr against the views encoded as a JSON array and returns one
// string per selected value. Scalars print as-is; objects and arrays print as
// compact JSON.
func Evaluate(expr string, views []FindingView) ([]string, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, invalid("empty jsonpath expression")
	}

	doc, err := toDocument(views)
	if err != nil {
		return nil, err
	}

	val, err := jsonpath.Get(expr, doc)
	if err != nil {
		return nil, invalid(fmt.Sprintf("jsonpath %q: %v", expr, err))
	}

	return flatten(val)
}

func toDocument(views []FindingView) (any, error) {
	b, err := json.Marshal(views)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func flatten(v any) ([]string, error) {
	if arr, ok := v.([]any); ok {
		out := make([]string, 0, len(arr))
		for _, item := range arr {
			s, err := toString(item)
			if err != nil {
				return nil, err
			}
			out = append(out, s)
		}
		return out, nil
	}

	if v == nil {
		return []string{}, nil
	}
	s, err := toString(v)
	if err != nil {
		return nil, err
	}
	return []string{s}, nil
}

func toString(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case float64, bool:
		return fmt.Sprint(t), nil
	case nil:
		return "null", nil
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}

func invalid(msg string) error {
	return &domain.OpError{
		Op:   "query.evaluate",
		Kind: domain.KindInvalidQuery,
		Err:  fmt.Errorf("%w: %s", domain.ErrInvalidQuery, msg),
	}
}
