package redis

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

// DocumentLoader fetches raw quiz documents from a backing store (e.g., Postgres).
type DocumentLoader interface {
	LoadDocument(ctx context.Context, id string) ([]byte, error)
}

// DocumentRepository caches raw documents in Redis and falls back to a loader on cache miss.
// Documents are stored as: SET quizpad:document:{id} {body} EX ttl
type DocumentRepository struct {
	client *redis.Client
	loader DocumentLoader
	ttl    time.Duration
	sf     singleflight.Group

	rndMu sync.Mutex
	rnd   *rand.Rand
}

func NewDocumentRepository(client *redis.Client, loader DocumentLoader, ttl time.Duration) *DocumentRepository {
	return &DocumentRepository{
		client: client,
		loader: loader,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *DocumentRepository) GetDocument(ctx context.Context, id string) ([]byte, error) {
	key := r.documentKey(id)

	body, err := r.client.Get(ctx, key).Bytes()
	if err == nil {
		return body, nil
	}

	result, err, _ := r.sf.Do(id, func() (interface{}, error) {
		// Re-check cache in case another goroutine filled it.
		body, err := r.client.Get(ctx, key).Bytes()
		if err == nil {
			return body, nil
		}
		if !errors.Is(err, redis.Nil) {
			// cache unavailable; serve from the loader without caching
			return r.loader.LoadDocument(ctx, id)
		}

		body, err = r.loader.LoadDocument(ctx, id)
		if err != nil {
			return nil, err
		}
		_ = r.client.Set(ctx, key, body, r.ttlWithJitter()).Err()
		return body, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]byte), nil
}

func (r *DocumentRepository) documentKey(id string) string {
	return "quizpad:document:" + id
}

func (r *DocumentRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	jitterMax := int64(r.ttl) / 10
	r.rndMu.Lock()
	defer r.rndMu.Unlock()
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}
