package health

import (
	"context"
	"errors"
	"testing"

	"github.com/kailas-cloud/memoria/internal/version"
)

type mockDBPinger struct {
	err error
}

func (m *mockDBPinger) Ping(_ context.Context) error { return m.err }

func TestCheck_Healthy(t *testing.T) {
	r := New(&mockDBPinger{}).Check(context.Background())

	if r.Status != Healthy {
		t.Errorf("expected %q, got %q", Healthy, r.Status)
	}
	if r.Checks["database"] != CheckOK {
		t.Errorf("expected database %q, got %q", CheckOK, r.Checks["database"])
	}
	if r.Version != version.Version {
		t.Errorf("Version = %q", r.Version)
	}
}

func TestCheck_DatabaseDown(t *testing.T) {
	r := New(&mockDBPinger{err: errors.New("connection refused")}).Check(context.Background())

	if r.Status != Unhealthy {
		t.Errorf("expected %q, got %q", Unhealthy, r.Status)
	}
	if r.Checks["database"] != CheckError {
		t.Errorf("expected database %q, got %q", CheckError, r.Checks["database"])
	}
}
