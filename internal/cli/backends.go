package cli

import (
	"context"
	"log"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"

	"quizpad/internal/app"
	"quizpad/internal/config"
	"quizpad/internal/infra/memory"
	pgloader "quizpad/internal/infra/postgres"
	redisstore "quizpad/internal/infra/redis"
)

// backends holds the optional external stores named in the config.
type backends struct {
	redis *redis.Client
	pool  *pgxpool.Pool
}

func connectBackends(ctx context.Context, cfg config.Config) (*backends, error) {
	b := &backends{}
	if cfg.Redis.Addr != "" {
		b.redis = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}
	if cfg.Postgres.URL != "" {
		pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			b.Close()
			return nil, err
		}
		b.pool = pool
	}
	return b, nil
}

// documents returns the cached document source: Postgres when configured,
// otherwise the bundled samples, cached in Redis or in process memory.
func (b *backends) documents(cfg config.Config) app.DocumentRepository {
	var loader memory.DocumentLoader = memory.NewStaticDocumentLoader(sampleDocuments())
	if b.pool != nil {
		loader = pgloader.NewDocumentLoader(b.pool)
	}

	ttl := config.TTLDuration(cfg.Documents.TTL, 10*time.Minute)
	if b.redis != nil {
		return redisstore.NewDocumentRepository(b.redis, loader, ttl)
	}
	return memory.NewDocumentRepository(loader, ttl)
}

func (b *backends) surfaces(cfg config.Config) app.SurfaceRepository {
	if b.redis != nil {
		return redisstore.NewSurfaceStore(b.redis, config.TTLDuration(cfg.Redis.TTL, 10*time.Minute))
	}
	return memory.NewSurfaceStore()
}

func (b *backends) Close() {
	if b.pool != nil {
		b.pool.Close()
	}
	if b.redis != nil {
		if err := b.redis.Close(); err != nil {
			log.Printf("close redis: %v", err)
		}
	}
}

// sampleDocuments is served under the "sample" id when no database is configured.
func sampleDocuments() map[string][]byte {
	return map[string][]byte{
		"sample": []byte(`{
  "questions": [
    {
      "question": "What does len(\"héllo\") return in Go?",
      "choices": ["5", "6", "7", "It does not compile"],
      "answer": 1,
      "explanation": "len counts bytes, and é is encoded as two bytes in UTF-8."
    },
    {
      "question": "Which keyword defers a call until the surrounding function returns?",
      "choices": {"a": "go", "b": "defer", "c": "select", "d": "return"},
      "answer": 1,
      "explanation": "defer schedules the call to run when the enclosing function returns."
    },
    {
      "question": "What is the zero value of a map?",
      "choices": ["An empty map", "nil", "A map with one entry", "It panics"],
      "answer": 1,
      "explanation": "An uninitialized map is nil. Reads work but writes panic."
    }
  ]
}`),
	}
}
