package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestRevisionConflictError(t *testing.T) {
	err := fmt.Errorf("update: %w", NewRevisionConflict("rev-7"))

	if !errors.Is(err, ErrRevisionConflict) {
		t.Fatal("expected errors.Is(err, ErrRevisionConflict)")
	}
	var rc *RevisionConflictError
	if !errors.As(err, &rc) {
		t.Fatal("expected RevisionConflictError")
	}
	if rc.CurrentRevision != "rev-7" {
		t.Errorf("CurrentRevision = %q", rc.CurrentRevision)
	}
	if got := rc.Error(); got != "revision conflict: current revision is rev-7" {
		t.Errorf("Error() = %q", got)
	}
}
