package ports

import "github.com/aalvaropc/auditmd/internal/domain"

// ReportStore reads and writes report documents (e.g., markdown files on disk).
type ReportStore interface {
	ReadDocument(path string) (domain.Document, error)
	// WriteDocument replaces the document at path. Implementations must not leave
	// a partially written file behind on failure.
	WriteDocument(path string, doc domain.Document) error
}
