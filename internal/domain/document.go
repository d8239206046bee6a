package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Document is a report held as an ordered line buffer. Every line keeps its own
// terminator, so joining the lines reproduces the original bytes exactly.
type Document struct {
	Lines []string
}

// ParseDocument splits content after every '\n'. A final line without a
// terminator is kept as is.
func ParseDocument(content string) Document {
	lines := strings.SplitAfter(content, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return Document{Lines: lines}
}

// String joins the lines back into the document body.
func (d Document) String() string {
	return strings.Join(d.Lines, "")
}

// Text returns line i without its terminator.
func (d Document) Text(i int) string {
	return strings.TrimRight(d.Lines[i], "\r\n")
}

// LineRange is the half-open interval [Start, End) of line indexes.
type LineRange struct {
	Start int
	End   int
}

// ReplaceRanges returns a copy of d where each range is replaced by block as a
// single element. Ranges must lie within the document and must not overlap.
func (d Document) ReplaceRanges(ranges []LineRange, block string) (Document, error) {
	sorted := make([]LineRange, len(ranges))
	copy(sorted, ranges)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	prev := 0
	for _, r := range sorted {
		if r.Start < prev || r.End < r.Start || r.End > len(d.Lines) {
			return Document{}, &OpError{
				Op:   "document.replace",
				Kind: KindExecution,
				Err:  fmt.Errorf("invalid range [%d,%d) for %d lines: %w", r.Start, r.End, len(d.Lines), ErrExecution),
			}
		}
		prev = r.End
	}

	out := make([]string, 0, len(d.Lines)+len(sorted))
	cur := 0
	for _, r := range sorted {
		out = append(out, d.Lines[cur:r.Start]...)
		out = append(out, block)
		cur = r.End
	}
	out = append(out, d.Lines[cur:]...)

	return Document{Lines: out}, nil
}
