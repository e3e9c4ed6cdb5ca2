package memory

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"quizpad/internal/domain"
)

// DocumentLoader fetches raw quiz documents from a backing store (e.g., Postgres).
type DocumentLoader interface {
	LoadDocument(ctx context.Context, id string) ([]byte, error)
}

// DocumentRepository caches raw documents with TTL to avoid repeated backing-store hits.
// Documents are cached as fetched; normalization happens when a workspace loads them.
type DocumentRepository struct {
	loader DocumentLoader
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group
	rnd    *rand.Rand

	mu    sync.RWMutex
	cache map[string]cachedDocument
}

type cachedDocument struct {
	body      []byte
	expiresAt time.Time
}

func NewDocumentRepository(loader DocumentLoader, ttl time.Duration) *DocumentRepository {
	return &DocumentRepository{
		loader: loader,
		ttl:    ttl,
		clock:  time.Now,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
		cache:  make(map[string]cachedDocument),
	}
}

func (r *DocumentRepository) GetDocument(ctx context.Context, id string) ([]byte, error) {
	if body, ok := r.lookup(id); ok {
		return body, nil
	}

	result, err, _ := r.sf.Do(id, func() (interface{}, error) {
		if body, ok := r.lookup(id); ok {
			return body, nil
		}

		body, err := r.loader.LoadDocument(ctx, id)
		if err != nil {
			return nil, err
		}

		ttl := r.ttlWithJitter()
		r.mu.Lock()
		r.cache[id] = cachedDocument{
			body:      body,
			expiresAt: r.clock().Add(ttl),
		}
		r.mu.Unlock()
		return body, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]byte), nil
}

func (r *DocumentRepository) lookup(id string) ([]byte, bool) {
	now := r.clock()
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.cache[id]
	if !ok || !entry.expiresAt.After(now) {
		return nil, false
	}
	return entry.body, true
}

func (r *DocumentRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	// add up to 10% jitter to spread expirations
	jitterMax := int64(r.ttl) / 10
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}

// StaticDocumentLoader is a simple loader backed by an in-memory map (useful for tests/demos).
type StaticDocumentLoader struct {
	documents map[string][]byte
}

func NewStaticDocumentLoader(documents map[string][]byte) *StaticDocumentLoader {
	return &StaticDocumentLoader{documents: documents}
}

func (l *StaticDocumentLoader) LoadDocument(_ context.Context, id string) ([]byte, error) {
	if body, ok := l.documents[id]; ok {
		return body, nil
	}
	return nil, domain.ErrDocumentNotFound
}
