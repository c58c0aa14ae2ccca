package document

import (
	"context"
	"testing"

	"github.com/kailas-cloud/memoria/internal/db"
	domdoc "github.com/kailas-cloud/memoria/internal/domain/document"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	hsetFn         func(ctx context.Context, key string, fields map[string]string) error
	hgetAllFn      func(ctx context.Context, key string) (map[string]string, error)
	hgetAllMultiFn func(ctx context.Context, keys []string) ([]map[string]string, error)
	hsetIfEqualFn  func(ctx context.Context, key, guard, expected string, fields map[string]string) (bool, error)
	getFn          func(ctx context.Context, key string) ([]byte, error)
	setNXFn        func(ctx context.Context, key string, value []byte) (bool, error)
	delFn          func(ctx context.Context, keys ...string) error
	zaddFn         func(ctx context.Context, key string, score float64, member string) error
	zremFn         func(ctx context.Context, key string, members ...string) error
	zrevRangeFn    func(ctx context.Context, key string, start, stop int64) ([]string, error)
	zcardFn        func(ctx context.Context, key string) (int64, error)
}

func (m *mockStore) HSet(ctx context.Context, key string, fields map[string]string) error {
	if m.hsetFn != nil {
		return m.hsetFn(ctx, key, fields)
	}
	return nil
}

func (m *mockStore) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	if m.hgetAllFn != nil {
		return m.hgetAllFn(ctx, key)
	}
	return nil, db.ErrKeyNotFound
}

func (m *mockStore) HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error) {
	if m.hgetAllMultiFn != nil {
		return m.hgetAllMultiFn(ctx, keys)
	}
	return make([]map[string]string, len(keys)), nil
}

func (m *mockStore) HSetIfEqual(
	ctx context.Context, key, guard, expected string, fields map[string]string,
) (bool, error) {
	if m.hsetIfEqualFn != nil {
		return m.hsetIfEqualFn(ctx, key, guard, expected, fields)
	}
	return true, nil
}

func (m *mockStore) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFn != nil {
		return m.getFn(ctx, key)
	}
	return nil, db.ErrKeyNotFound
}

func (m *mockStore) SetNX(ctx context.Context, key string, value []byte) (bool, error) {
	if m.setNXFn != nil {
		return m.setNXFn(ctx, key, value)
	}
	return true, nil
}

func (m *mockStore) Del(ctx context.Context, keys ...string) error {
	if m.delFn != nil {
		return m.delFn(ctx, keys...)
	}
	return nil
}

func (m *mockStore) ZAdd(ctx context.Context, key string, score float64, member string) error {
	if m.zaddFn != nil {
		return m.zaddFn(ctx, key, score, member)
	}
	return nil
}

func (m *mockStore) ZRem(ctx context.Context, key string, members ...string) error {
	if m.zremFn != nil {
		return m.zremFn(ctx, key, members...)
	}
	return nil
}

func (m *mockStore) ZRevRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	if m.zrevRangeFn != nil {
		return m.zrevRangeFn(ctx, key, start, stop)
	}
	return nil, nil
}

func (m *mockStore) ZCard(ctx context.Context, key string) (int64, error) {
	if m.zcardFn != nil {
		return m.zcardFn(ctx, key)
	}
	return 0, nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	repo := New(ms, "memoria:")
	return repo, ms
}

func testDocument(t *testing.T) domdoc.Document {
	t.Helper()
	return domdoc.Reconstruct(domdoc.Snapshot{
		ID:            "doc-1",
		Owner:         "alice",
		Title:         "Meeting Notes",
		Slug:          "meeting-notes",
		Suffix:        "abc12345",
		Body:          "---\ntitle: Meeting Notes\n---\nhello",
		Tags:          []string{"work", "weekly"},
		Status:        "draft",
		Updated:       2000,
		CreatedAt:     1000,
		RevisionToken: "rev-1",
	})
}
