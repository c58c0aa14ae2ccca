// Package token stores personal access tokens. Only the SHA-256 digest of a
// token is persisted; the plaintext is shown once at issue time.
package token

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/memoria/internal/db"
	"github.com/kailas-cloud/memoria/internal/domain"
)

// MaxPerOwner is the per-owner token ceiling.
const MaxPerOwner = 10

// plaintextPrefix marks memoria tokens in logs and secret scanners.
const plaintextPrefix = "mem_"

// store is the consumer interface for tokens (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	ZAdd(ctx context.Context, key string, score float64, member string) error
	ZCard(ctx context.Context, key string) (int64, error)
}

// Issued is a freshly created token. Plaintext is never stored.
type Issued struct {
	Plaintext string
	Name      string
	CreatedAt int64
}

// Repo issues and resolves personal access tokens.
type Repo struct {
	store       store
	prefix      string
	lookupTotal *prometheus.CounterVec
	logger      *zap.Logger
	now         func() time.Time
}

// New creates a token repository.
// lookupTotal is a counter vec with label "result" ("hit"/"miss"), may be nil.
func New(s store, prefix string, lookupTotal *prometheus.CounterVec, logger *zap.Logger) *Repo {
	return &Repo{
		store:       s,
		prefix:      prefix,
		lookupTotal: lookupTotal,
		logger:      logger,
		now:         time.Now,
	}
}

// Issue creates a token for owner.
func (r *Repo) Issue(ctx context.Context, owner, name string) (Issued, error) {
	if owner == "" {
		return Issued{}, fmt.Errorf("owner is required: %w", domain.ErrInvalidRequest)
	}
	n, err := r.store.ZCard(ctx, r.ownerKey(owner))
	if err != nil {
		return Issued{}, fmt.Errorf("count tokens: %w", err)
	}
	if n >= MaxPerOwner {
		return Issued{}, fmt.Errorf("owner %s has %d tokens: %w", owner, n, domain.ErrTokenLimit)
	}

	plaintext := newPlaintext()
	digest := digestOf(plaintext)
	createdAt := r.now().UnixMilli()

	if err := r.store.HSet(ctx, r.tokenKey(digest), map[string]string{
		"owner":        owner,
		"name":         name,
		"created_at":   strconv.FormatInt(createdAt, 10),
		"last_used_at": "0",
	}); err != nil {
		return Issued{}, fmt.Errorf("store token: %w", err)
	}
	if err := r.store.ZAdd(ctx, r.ownerKey(owner), float64(createdAt), digest); err != nil {
		return Issued{}, fmt.Errorf("index token: %w", err)
	}
	return Issued{Plaintext: plaintext, Name: name, CreatedAt: createdAt}, nil
}

// Resolve returns the owner of plaintext and records the use. Unknown tokens
// yield ErrUnauthorized.
func (r *Repo) Resolve(ctx context.Context, plaintext string) (string, error) {
	key := r.tokenKey(digestOf(plaintext))
	m, err := r.store.HGetAll(ctx, key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			r.incLookup("miss")
			return "", domain.ErrUnauthorized
		}
		return "", fmt.Errorf("lookup token: %w", err)
	}
	owner := m["owner"]
	if owner == "" {
		r.incLookup("miss")
		return "", domain.ErrUnauthorized
	}
	r.incLookup("hit")

	used := strconv.FormatInt(r.now().UnixMilli(), 10)
	if err := r.store.HSet(ctx, key, map[string]string{"last_used_at": used}); err != nil {
		r.logger.Warn("Failed to record token use", zap.String("owner", owner), zap.Error(err))
	}
	return owner, nil
}

func (r *Repo) incLookup(result string) {
	if r.lookupTotal != nil {
		r.lookupTotal.WithLabelValues(result).Inc()
	}
}

func (r *Repo) tokenKey(digest string) string {
	return r.prefix + "token:" + digest
}

func (r *Repo) ownerKey(owner string) string {
	return r.prefix + "owner:" + owner + ":tokens"
}

func digestOf(plaintext string) string {
	h := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(h[:])
}

// newPlaintext joins two random UUIDs, 244 random bits in total.
func newPlaintext() string {
	raw := uuid.NewString() + uuid.NewString()
	return plaintextPrefix + strings.ReplaceAll(raw, "-", "")
}
