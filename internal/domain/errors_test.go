package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestOpErrorWrapUnwrap(t *testing.T) {
	root := errors.New("root")
	err := &OpError{
		Op:   "mdstore.read",
		Kind: KindNotFound,
		Path: "report.md",
		Err:  root,
	}

	if !errors.Is(err, root) {
		t.Fatalf("expected errors.Is to match cause")
	}

	var got *OpError
	if !errors.As(err, &got) {
		t.Fatalf("expected errors.As to match OpError")
	}
	if got.Kind != KindNotFound {
		t.Fatalf("expected kind %s", KindNotFound)
	}
}

func TestOpErrorMessage(t *testing.T) {
	err := &OpError{Op: "extract", Kind: KindOrdering, Path: "a.md", Line: 4, Err: ErrOrdering}
	want := "extract: ordering (path=a.md) (line=4): ordering error"
	if err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}

	var nilErr *OpError
	if nilErr.Error() != "<nil>" {
		t.Fatalf("expected <nil> for nil receiver")
	}
}

func TestIsKindThroughWrapping(t *testing.T) {
	err := fmt.Errorf("outer: %w", &OpError{Kind: KindParse, Err: ErrParse})

	if !IsKind(err, KindParse) {
		t.Fatalf("expected IsKind to see through fmt wrapping")
	}
	if IsKind(err, KindOrdering) {
		t.Fatalf("did not expect ordering kind")
	}
	if IsKind(errors.New("plain"), KindParse) {
		t.Fatalf("plain errors have no kind")
	}
}

func TestWithLocationFillsEmptyFields(t *testing.T) {
	inner := &OpError{Op: "finding.parse", Kind: KindParse, Err: ErrParse}
	err := WithLocation(fmt.Errorf("wrap: %w", inner), "r.md", 7)

	var oe *OpError
	if !errors.As(err, &oe) {
		t.Fatalf("expected OpError in chain")
	}
	if oe.Path != "r.md" || oe.Line != 7 {
		t.Fatalf("expected location r.md:7, got %s:%d", oe.Path, oe.Line)
	}

	// Existing values are kept.
	_ = WithLocation(err, "other.md", 99)
	if oe.Path != "r.md" || oe.Line != 7 {
		t.Fatalf("expected location to be kept, got %s:%d", oe.Path, oe.Line)
	}
}
