package mdstore

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/aalvaropc/auditmd/internal/domain"
	"github.com/aalvaropc/auditmd/internal/ports"
)

const defaultFileMode fs.FileMode = 0o644

// FileStore reads and writes markdown reports on the local filesystem.
type FileStore struct {
	newID func() string
}

type Option func(*FileStore)

// WithIDGenerator overrides the temp file suffix generator (useful for tests).
func WithIDGenerator(gen func() string) Option {
	return func(s *FileStore) { s.newID = gen }
}

func NewFileStore(opts ...Option) *FileStore {
	s := &FileStore{newID: uuid.NewString}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.ReportStore = (*FileStore)(nil)

func (s *FileStore) ReadDocument(path string) (domain.Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return domain.Document{}, notFound(path, err)
	}
	if !info.Mode().IsRegular() {
		return domain.Document{}, notFound(path, errors.New("not a regular file"))
	}

	f, err := os.Open(path)
	if err != nil {
		return domain.Document{}, &domain.OpError{
			Op:   "mdstore.open",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return domain.Document{}, &domain.OpError{
			Op:   "mdstore.read",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	return domain.ParseDocument(string(b)), nil
}

// WriteDocument writes to a temp file next to path, then renames it over path.
// The original file mode is kept when the file already exists. A symlinked
// path is resolved first so the link target is replaced, not the link.
func (s *FileStore) WriteDocument(path string, doc domain.Document) error {
	mode := defaultFileMode
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()

		resolved, err := filepath.EvalSymlinks(path)
		if err != nil {
			return &domain.OpError{
				Op:   "mdstore.resolve",
				Kind: domain.KindExecution,
				Path: path,
				Err:  err,
			}
		}
		path = resolved
	}

	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), s.newID()))

	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_EXCL|os.O_WRONLY, mode)
	if err != nil {
		return &domain.OpError{
			Op:   "mdstore.create",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}

	if _, err := io.WriteString(f, doc.String()); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return &domain.OpError{
			Op:   "mdstore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{
			Op:   "mdstore.close",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{
			Op:   "mdstore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	return nil
}

func notFound(path string, err error) error {
	return &domain.OpError{
		Op:   "mdstore.read",
		Kind: domain.KindNotFound,
		Path: path,
		Err:  fmt.Errorf("%w: %w", domain.ErrFileNotFound, err),
	}
}
