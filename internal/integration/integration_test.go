package integration

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"github.com/docker/go-connections/nat"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"

	"quizpad/internal/app"
	"quizpad/internal/domain"
	pgloader "quizpad/internal/infra/postgres"
	infraredis "quizpad/internal/infra/redis"
	pgmigrations "quizpad/internal/infra/postgres/migrations"
)

const storedDocument = `{"questions":[
	{"question":"What is 2 + 2?","choices":["3","4","5"],"answer":1,"explanation":"Addition."},
	{"question":"Pick the even number","choices":{"b":"7","a":"8"},"answer":0,"explanation":"8 is even."}
]}`

func TestLoadStoredDocumentEndToEnd(t *testing.T) {
	ctx := context.Background()
	requireDocker(t)

	pgURL := startPostgres(t, ctx)
	redisURL := startRedis(t, ctx)

	seedDocument(t, ctx, pgURL, "doc-1", storedDocument)

	pool, err := pgxpool.Connect(ctx, pgURL)
	if err != nil {
		t.Fatalf("connect pg: %v", err)
	}
	defer pool.Close()

	loader := pgloader.NewDocumentLoader(pool)

	redisClient, err := redisClientFromURL(redisURL)
	if err != nil {
		t.Fatalf("redis client: %v", err)
	}
	defer redisClient.Close()
	documents := infraredis.NewDocumentRepository(redisClient, loader, 5*time.Minute)

	workspace := app.NewWorkspace()
	data, err := workspace.LoadFrom(ctx, documents, "doc-1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if data.Len() != 2 || data.Questions[1].Choices[0] != "8" {
		t.Fatalf("unexpected quiz: %+v", data)
	}

	cached, err := redisClient.Get(ctx, "quizpad:document:doc-1").Result()
	if err != nil {
		t.Fatalf("expected document cached in redis: %v", err)
	}
	if !strings.Contains(cached, "What is 2 + 2?") {
		t.Fatalf("unexpected cached body: %s", cached)
	}

	session := workspace.Session()
	session.SelectAnswer(0, 1)
	session.SelectAnswer(1, 1)
	if session.Score() != 1 || !session.IsCorrect(0) || session.IsCorrect(1) {
		t.Fatalf("unexpected scoring: score=%d", session.Score())
	}

	if _, err := workspace.LoadFrom(ctx, documents, "missing"); !errors.Is(err, domain.ErrDocumentNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if workspace.Session() != session {
		t.Fatalf("expected failed load to keep the active session")
	}
}

// startContainer runs image with one exposed port and returns host:port.
func startContainer(t *testing.T, ctx context.Context, image, exposed string, env map[string]string) string {
	t.Helper()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        image,
			Env:          env,
			ExposedPorts: []string{exposed},
			WaitingFor:   wait.ForListeningPort(nat.Port(exposed)).WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		if strings.Contains(err.Error(), "Cannot connect to the Docker daemon") {
			t.Skipf("docker not available: %v", err)
		}
		t.Fatalf("start %s: %v", image, err)
	}
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	endpoint, err := container.PortEndpoint(ctx, nat.Port(exposed), "")
	if err != nil {
		t.Fatalf("%s endpoint: %v", image, err)
	}
	return endpoint
}

func startPostgres(t *testing.T, ctx context.Context) string {
	endpoint := startContainer(t, ctx, "postgres:15-alpine", "5432/tcp", map[string]string{
		"POSTGRES_USER":     "quizpad",
		"POSTGRES_PASSWORD": "quizpad",
		"POSTGRES_DB":       "quizpad",
	})
	return fmt.Sprintf("postgres://quizpad:quizpad@%s/quizpad?sslmode=disable", endpoint)
}

func startRedis(t *testing.T, ctx context.Context) string {
	return "redis://" + startContainer(t, ctx, "redis:7-alpine", "6379/tcp", nil)
}

func seedDocument(t *testing.T, ctx context.Context, dsn, id, body string) {
	t.Helper()
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())
	defer db.Close()

	migrator := migrate.NewMigrator(db, pgmigrations.Migrations)
	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("migrator init: %v", err)
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	if _, err := db.ExecContext(ctx, `INSERT INTO quiz_documents (id, body) VALUES (?, ?::jsonb) ON CONFLICT (id) DO UPDATE SET body=EXCLUDED.body`, id, body); err != nil {
		t.Fatalf("insert document: %v", err)
	}
}

func redisClientFromURL(url string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return goredis.NewClient(opts), nil
}

func requireDocker(t *testing.T) {
	t.Helper()
	if _, err := tc.NewDockerProvider(); err != nil {
		t.Skipf("docker not available: %v", err)
	}
}
