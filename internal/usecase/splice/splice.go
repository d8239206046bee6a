// Package splice replaces the summary block of a report with a freshly
// rendered table.
package splice

import (
	"strings"

	"github.com/aalvaropc/auditmd/internal/domain"
)

// LocateSummaryBlocks returns the line ranges of every summary block. A block
// starts at a line equal to marker after trimming and runs up to, not including,
// the next line starting with "## " (or the next marker line), or to the end of
// the document. The terminating heading is not part of the block.
func LocateSummaryBlocks(doc domain.Document, marker string) []domain.LineRange {
	var out []domain.LineRange

	for i := 0; i < len(doc.Lines); {
		if !isMarker(doc.Lines[i], marker) {
			i++
			continue
		}

		end := i + 1
		for end < len(doc.Lines) && !strings.HasPrefix(doc.Lines[end], "## ") && !isMarker(doc.Lines[end], marker) {
			end++
		}

		out = append(out, domain.LineRange{Start: i, End: end})
		i = end
	}

	return out
}

// Replace swaps every summary block for the table lines joined with "\n" as one
// block. It returns the new document and the number of blocks replaced; with no
// block the document is returned unchanged.
func Replace(doc domain.Document, table []string, marker string) (domain.Document, int, error) {
	ranges := LocateSummaryBlocks(doc, marker)
	if len(ranges) == 0 {
		return doc, 0, nil
	}

	out, err := doc.ReplaceRanges(ranges, strings.Join(table, "\n"))
	if err != nil {
		return domain.Document{}, 0, err
	}
	return out, len(ranges), nil
}

func isMarker(line, marker string) bool {
	return strings.TrimSpace(line) == marker
}
