package token

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/memoria/internal/db"
)

type mockStore struct {
	hashes map[string]map[string]string
	zsets  map[string]map[string]float64

	hsetErr    error
	hgetAllErr error
	zcardErr   error
}

func newMockStore() *mockStore {
	return &mockStore{
		hashes: make(map[string]map[string]string),
		zsets:  make(map[string]map[string]float64),
	}
}

func (m *mockStore) HSet(_ context.Context, key string, fields map[string]string) error {
	if m.hsetErr != nil {
		return m.hsetErr
	}
	h, ok := m.hashes[key]
	if !ok {
		h = make(map[string]string)
		m.hashes[key] = h
	}
	for k, v := range fields {
		h[k] = v
	}
	return nil
}

func (m *mockStore) HGetAll(_ context.Context, key string) (map[string]string, error) {
	if m.hgetAllErr != nil {
		return nil, m.hgetAllErr
	}
	h, ok := m.hashes[key]
	if !ok {
		return nil, db.ErrKeyNotFound
	}
	return h, nil
}

func (m *mockStore) ZAdd(_ context.Context, key string, score float64, member string) error {
	z, ok := m.zsets[key]
	if !ok {
		z = make(map[string]float64)
		m.zsets[key] = z
	}
	z[member] = score
	return nil
}

func (m *mockStore) ZCard(_ context.Context, key string) (int64, error) {
	if m.zcardErr != nil {
		return 0, m.zcardErr
	}
	return int64(len(m.zsets[key])), nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore, *prometheus.CounterVec) {
	t.Helper()
	ms := newMockStore()
	lookups := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "test_token_lookups_total",
	}, []string{"result"})
	repo := New(ms, "memoria:", lookups, zap.NewNop())
	repo.now = func() time.Time { return time.UnixMilli(5000) }
	return repo, ms, lookups
}
