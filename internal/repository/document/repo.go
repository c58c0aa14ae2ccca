package document

import (
	"context"
	"errors"
	"fmt"

	"github.com/kailas-cloud/memoria/internal/db"
	"github.com/kailas-cloud/memoria/internal/domain"
	domdoc "github.com/kailas-cloud/memoria/internal/domain/document"
)

// store is the consumer interface for documents (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	HSetIfEqual(ctx context.Context, key, guard, expected string, fields map[string]string) (bool, error)
	Get(ctx context.Context, key string) ([]byte, error)
	SetNX(ctx context.Context, key string, value []byte) (bool, error)
	Del(ctx context.Context, keys ...string) error
	ZAdd(ctx context.Context, key string, score float64, member string) error
	ZRem(ctx context.Context, key string, members ...string) error
	ZRevRange(ctx context.Context, key string, start, stop int64) ([]string, error)
	ZCard(ctx context.Context, key string) (int64, error)
}

// Repo implements usecase/document.Repository.
//
// Key layout under prefix:
//
//	doc:<id>                  hash with the document fields
//	owner:<owner>:docs        sorted set of ids scored by updated
//	owner:<owner>:suffix:<s>  id of the document holding suffix s
type Repo struct {
	store  store
	prefix string
}

// New creates a document repository.
func New(s store, prefix string) *Repo {
	return &Repo{store: s, prefix: prefix}
}

// Create stores a new document. The suffix is claimed first so two concurrent
// creates cannot share a handle.
func (r *Repo) Create(ctx context.Context, doc *domdoc.Document) error {
	suffixKey := r.suffixKey(doc.Owner(), doc.Suffix())
	claimed, err := r.store.SetNX(ctx, suffixKey, []byte(doc.ID()))
	if err != nil {
		return fmt.Errorf("claim suffix %s: %w", doc.Suffix(), err)
	}
	if !claimed {
		return fmt.Errorf("suffix %s: %w", doc.Suffix(), domain.ErrAlreadyExists)
	}

	key := r.docKey(doc.ID())
	if err := r.store.HSet(ctx, key, buildHashFields(doc)); err != nil {
		_ = r.store.Del(ctx, suffixKey)
		return fmt.Errorf("hset %s: %w", key, err)
	}
	if err := r.store.ZAdd(ctx, r.ownerKey(doc.Owner()), float64(doc.Updated()), doc.ID()); err != nil {
		_ = r.store.Del(ctx, key, suffixKey)
		return fmt.Errorf("index %s: %w", doc.ID(), err)
	}
	return nil
}

// Get returns a document by ID.
func (r *Repo) Get(ctx context.Context, id string) (domdoc.Document, error) {
	key := r.docKey(id)
	m, err := r.store.HGetAll(ctx, key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domdoc.Document{}, domain.ErrDocumentNotFound
		}
		return domdoc.Document{}, fmt.Errorf("hgetall %s: %w", key, err)
	}
	return parseHashFields(id, m), nil
}

// GetBySuffix resolves an owner's document by handle suffix.
func (r *Repo) GetBySuffix(ctx context.Context, owner, suffix string) (domdoc.Document, error) {
	raw, err := r.store.Get(ctx, r.suffixKey(owner, suffix))
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domdoc.Document{}, domain.ErrDocumentNotFound
		}
		return domdoc.Document{}, fmt.Errorf("lookup suffix %s: %w", suffix, err)
	}
	doc, err := r.Get(ctx, string(raw))
	if err != nil {
		return domdoc.Document{}, err
	}
	if !doc.OwnedBy(owner) {
		return domdoc.Document{}, domain.ErrDocumentNotFound
	}
	return doc, nil
}

// ListByOwner returns up to limit documents, most recently updated first.
// Index entries whose hash has vanished are skipped.
func (r *Repo) ListByOwner(ctx context.Context, owner string, limit int) ([]domdoc.Document, error) {
	if limit <= 0 {
		limit = domdoc.MaxPerOwner
	}
	ids, err := r.store.ZRevRange(ctx, r.ownerKey(owner), 0, int64(limit-1))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", owner, err)
	}
	if len(ids) == 0 {
		return []domdoc.Document{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.docKey(id)
	}
	hashes, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", owner, err)
	}

	docs := make([]domdoc.Document, 0, len(ids))
	for i, m := range hashes {
		if len(m) == 0 {
			continue
		}
		docs = append(docs, parseHashFields(ids[i], m))
	}
	return docs, nil
}

// CountByOwner returns how many documents owner holds.
func (r *Repo) CountByOwner(ctx context.Context, owner string) (int, error) {
	n, err := r.store.ZCard(ctx, r.ownerKey(owner))
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", owner, err)
	}
	return int(n), nil
}

// Update writes doc if the stored revision token still equals expectedRevision.
// On mismatch it returns a RevisionConflictError carrying the stored token.
func (r *Repo) Update(ctx context.Context, doc *domdoc.Document, expectedRevision string) error {
	key := r.docKey(doc.ID())
	ok, err := r.store.HSetIfEqual(ctx, key, fieldRevision, expectedRevision, buildHashFields(doc))
	if err != nil {
		return fmt.Errorf("cas %s: %w", key, err)
	}
	if !ok {
		current, err := r.Get(ctx, doc.ID())
		if err != nil {
			return err
		}
		return domain.NewRevisionConflict(current.RevisionToken())
	}
	if err := r.store.ZAdd(ctx, r.ownerKey(doc.Owner()), float64(doc.Updated()), doc.ID()); err != nil {
		_ = r.store.Del(ctx, key, suffixKey)
		return fmt.Errorf("index %s: %w", doc.ID(), err)
	}
	return nil
}

// Delete removes a document together with its index entries.
func (r *Repo) Delete(ctx context.Context, doc *domdoc.Document) error {
	key := r.docKey(doc.ID())
	if err := r.store.Del(ctx, key, r.suffixKey(doc.Owner(), doc.Suffix())); err != nil {
		return fmt.Errorf("del %s: %w", key, err)
	}
	if err := r.store.ZRem(ctx, r.ownerKey(doc.Owner()), doc.ID()); err != nil {
		return fmt.Errorf("unindex %s: %w", doc.ID(), err)
	}
	return nil
}

func (r *Repo) docKey(id string) string {
	return r.prefix + "doc:" + id
}

func (r *Repo) ownerKey(owner string) string {
	return r.prefix + "owner:" + owner + ":docs"
}

func (r *Repo) suffixKey(owner, suffix string) string {
	return r.prefix + "owner:" + owner + ":suffix:" + suffix
}
