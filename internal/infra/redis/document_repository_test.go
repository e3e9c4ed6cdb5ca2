package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"quizpad/internal/domain"
	"quizpad/internal/infra/memory"
)

func TestDocumentRepositoryCachesInRedis(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	client := newClient(mr)

	loader := &countingLoader{
		DocumentLoader: memory.NewStaticDocumentLoader(map[string][]byte{
			"doc-1": sampleDocument(),
		}),
	}
	repo := NewDocumentRepository(client, loader, time.Minute)

	body, err := repo.GetDocument(context.Background(), "doc-1")
	if err != nil {
		t.Fatalf("get document: %v", err)
	}
	if string(body) != string(sampleDocument()) {
		t.Fatalf("unexpected body %s", body)
	}
	if loader.calls != 1 {
		t.Fatalf("expected loader called once, got %d", loader.calls)
	}
	if !mr.Exists("quizpad:document:doc-1") {
		t.Fatalf("expected document cached in redis")
	}

	// Second call should hit cache, loader not incremented.
	_, _ = repo.GetDocument(context.Background(), "doc-1")
	if loader.calls != 1 {
		t.Fatalf("expected cache hit, loader calls=%d", loader.calls)
	}

	mr.FastForward(2 * time.Minute)
	_, _ = repo.GetDocument(context.Background(), "doc-1")
	if loader.calls != 2 {
		t.Fatalf("expected reload after ttl, loader calls=%d", loader.calls)
	}
}

func TestDocumentRepositoryMissing(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	repo := NewDocumentRepository(newClient(mr), memory.NewStaticDocumentLoader(nil), time.Minute)
	if _, err := repo.GetDocument(context.Background(), "nope"); !errors.Is(err, domain.ErrDocumentNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if mr.Exists("quizpad:document:nope") {
		t.Fatalf("missing documents must not be cached")
	}
}

type countingLoader struct {
	memory.DocumentLoader
	calls int
}

func (l *countingLoader) LoadDocument(ctx context.Context, id string) ([]byte, error) {
	l.calls++
	return l.DocumentLoader.LoadDocument(ctx, id)
}

func sampleDocument() []byte {
	return []byte(`{"questions":[{"question":"What is 2 + 2?","choices":{"A":"3","B":"4"},"answer":1,"explanation":"Basic arithmetic."}]}`)
}

func newClient(mr *miniredis.Miniredis) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
}
