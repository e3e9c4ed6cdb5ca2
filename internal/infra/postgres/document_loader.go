package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"quizpad/internal/domain"
)

// DocumentLoader loads raw quiz documents (JSONB) from Postgres.
type DocumentLoader struct {
	pool *pgxpool.Pool
}

func NewDocumentLoader(pool *pgxpool.Pool) *DocumentLoader {
	return &DocumentLoader{pool: pool}
}

func (l *DocumentLoader) LoadDocument(ctx context.Context, id string) ([]byte, error) {
	var raw []byte
	err := l.pool.QueryRow(ctx, `SELECT body::text FROM quiz_documents WHERE id=$1`, id).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrDocumentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}
	return raw, nil
}
