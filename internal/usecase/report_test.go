package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/auditmd/internal/domain"
	"github.com/aalvaropc/auditmd/internal/ports"
)

// --- fakes ---

type memStore struct {
	docs    map[string]string
	writes  int
	readErr error
}

var _ ports.ReportStore = (*memStore)(nil)

func newMemStore(path, content string) *memStore {
	return &memStore{docs: map[string]string{path: content}}
}

func (s *memStore) ReadDocument(path string) (domain.Document, error) {
	if s.readErr != nil {
		return domain.Document{}, s.readErr
	}
	content, ok := s.docs[path]
	if !ok {
		return domain.Document{}, &domain.OpError{Op: "mem.read", Kind: domain.KindNotFound, Path: path, Err: domain.ErrFileNotFound}
	}
	return domain.ParseDocument(content), nil
}

func (s *memStore) WriteDocument(path string, doc domain.Document) error {
	s.writes++
	s.docs[path] = doc.String()
	return nil
}

type stubInitializer struct {
	dir   string
	force bool
}

func (s *stubInitializer) Init(dir string, force bool) (string, error) {
	s.dir, s.force = dir, force
	return dir + "/.auditmd.yaml", nil
}

const report = `# Audit Report

## Findings Summary

| Finding | Risk | Description | Response |
| :--- | :--- | :--- | :--- |
| stale | row | here | x |

## Scope

# Findings

### [H-1] Reentrancy in withdraw
#### Team Response: Acknowledged
### [G-1] Cache array length
`

const overridden = `# Audit Report

## Findings Summary

| Finding | Risk | Description | Response |
| :--- | :--- | :--- | :--- |
| [[H-1]](<#h-1-reentrancy-in-withdraw>) | High | Reentrancy in withdraw | 🤝 Ackn. |
| [[G-1]](<#g-1-cache-array-length>) | Gas | Cache array length |   |
## Scope

# Findings

### [H-1] Reentrancy in withdraw
#### Team Response: Acknowledged
### [G-1] Cache array length
`

// --- tests ---

func TestListIssues(t *testing.T) {
	uc := NewListIssues(newMemStore("r.md", report))

	got, err := uc.Execute(context.Background(), "r.md")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "H-1", got[0].IssueID)
	assert.Equal(t, "Ackn.", got[0].TeamResponse)
	assert.Equal(t, "G-1", got[1].IssueID)
	assert.Empty(t, got[1].TeamResponse)
}

func TestListIssues_MissingFile(t *testing.T) {
	uc := NewListIssues(newMemStore("r.md", report))

	_, err := uc.Execute(context.Background(), "other.md")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindNotFound))
}

func TestListIssues_ErrorCarriesPath(t *testing.T) {
	uc := NewListIssues(newMemStore("r.md", "# Findings\n#### team response: fixed\n"))

	_, err := uc.Execute(context.Background(), "r.md")
	require.Error(t, err)

	var oe *domain.OpError
	require.True(t, errors.As(err, &oe))
	assert.Equal(t, domain.KindOrdering, oe.Kind)
	assert.Equal(t, "r.md", oe.Path)
	assert.Equal(t, 2, oe.Line)
}

func TestListIssues_CanceledContext(t *testing.T) {
	store := newMemStore("r.md", report)
	uc := NewListIssues(store)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.Execute(ctx, "r.md")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerateTable(t *testing.T) {
	uc := NewGenerateTable(newMemStore("r.md", report))

	got, err := uc.Execute(context.Background(), "r.md")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"## Findings Summary",
		"",
		"| Finding | Risk | Description | Response |",
		"| :--- | :--- | :--- | :--- |",
		"| [[H-1]](<#h-1-reentrancy-in-withdraw>) | High | Reentrancy in withdraw | 🤝 Ackn. |",
		"| [[G-1]](<#g-1-cache-array-length>) | Gas | Cache array length |   |",
		"",
	}, got)
}

func TestGenerateTable_UnknownSeverity(t *testing.T) {
	uc := NewGenerateTable(newMemStore("r.md", "# Findings\n### [X-1] Odd\n"))

	_, err := uc.Execute(context.Background(), "r.md")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindUnknownSeverity))
}

func TestGenerateTable_CustomMarkers(t *testing.T) {
	uc := NewGenerateTable(
		newMemStore("r.md", "# Issues\n### [L-1] Minor\n"),
		WithMarkers(domain.MarkersConfig{Findings: "# Issues", Summary: "## Overview"}),
	)

	got, err := uc.Execute(context.Background(), "r.md")
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Equal(t, "## Overview", got[0])
	assert.Contains(t, got, "| [[L-1]](<#l-1-minor>) | Low | Minor |   |")
}

func TestOverrideSummary(t *testing.T) {
	store := newMemStore("r.md", report)
	uc := NewOverrideSummary(store)

	res, err := uc.Execute(context.Background(), "r.md", false)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Blocks)
	assert.True(t, res.Changed)
	assert.True(t, res.Written)
	assert.Equal(t, 1, store.writes)
	assert.Equal(t, overridden, store.docs["r.md"])
}

func TestOverrideSummary_IsStableOnSecondRun(t *testing.T) {
	store := newMemStore("r.md", overridden)
	uc := NewOverrideSummary(store)

	res, err := uc.Execute(context.Background(), "r.md", false)
	require.NoError(t, err)
	assert.False(t, res.Changed)
	assert.Equal(t, overridden, store.docs["r.md"])
}

func TestOverrideSummary_DryRunDoesNotWrite(t *testing.T) {
	store := newMemStore("r.md", report)
	uc := NewOverrideSummary(store)

	res, err := uc.Execute(context.Background(), "r.md", true)
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.False(t, res.Written)
	assert.Equal(t, 0, store.writes)
	assert.Equal(t, overridden, res.Document.String())
	assert.Equal(t, report, store.docs["r.md"])
}

func TestOverrideSummary_NoSummaryKeepsContent(t *testing.T) {
	in := "# Findings\r\n### [M-1] Thing\r\n"
	store := newMemStore("r.md", in)
	uc := NewOverrideSummary(store)

	res, err := uc.Execute(context.Background(), "r.md", false)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Blocks)
	assert.False(t, res.Changed)
	assert.Equal(t, in, store.docs["r.md"])
}

func TestOverrideSummary_ErrorLeavesFileUntouched(t *testing.T) {
	in := "## Findings Summary\nold\n# Findings\n### [Q-1] Unknown alias\n"
	store := newMemStore("r.md", in)
	uc := NewOverrideSummary(store)

	_, err := uc.Execute(context.Background(), "r.md", false)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindUnknownSeverity))
	assert.Equal(t, 0, store.writes)
	assert.Equal(t, in, store.docs["r.md"])
}

func TestInitConfig(t *testing.T) {
	initer := &stubInitializer{}
	uc := NewInitConfig(initer)

	path, err := uc.Execute("/tmp/audit", true)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/audit/.auditmd.yaml", path)
	assert.Equal(t, "/tmp/audit", initer.dir)
	assert.True(t, initer.force)
}
