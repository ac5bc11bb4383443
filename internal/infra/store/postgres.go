package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"repairshop/internal/infra"
	"repairshop/internal/infra/db"
	"repairshop/internal/pkg/config"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgxQuerier is the slice of *pgxpool.Pool the postgres store uses.
type PgxQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresStore struct {
	db     PgxQuerier
	logger *slog.Logger
}

func NewPostgresStore(ctx context.Context, q PgxQuerier, logger *slog.Logger) (*PostgresStore, error) {
	s := &PostgresStore{db: q, logger: logger}
	if _, err := q.Exec(ctx, fmt.Sprintf(createDocumentsTable, "JSONB", "TIMESTAMPTZ")); err != nil {
		return nil, infra.WrapRepoErr(logger, infra.KindStoreFailure, "create documents table", err)
	}
	return s, nil
}

func openPostgres(ctx context.Context, cfg config.DBConfig, logger *slog.Logger) (Store, func(), error) {
	pool, cleanup, err := db.Connect(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	s, err := NewPostgresStore(ctx, pool, logger)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return s, cleanup, nil
}

func (s *PostgresStore) Load(ctx context.Context, key string) ([]byte, error) {
	var body []byte
	err := s.db.QueryRow(ctx, `SELECT body FROM documents WHERE key = $1`, key).Scan(&body)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, infra.NotFound(key)
	}
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindStoreFailure, "load "+key, err)
	}
	return body, nil
}

func (s *PostgresStore) Save(ctx context.Context, key string, body []byte) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO documents (key, body, updated_at)
		VALUES ($1, $2::jsonb, now())
		ON CONFLICT (key) DO UPDATE SET body = EXCLUDED.body, updated_at = EXCLUDED.updated_at`,
		key, string(body))
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindStoreFailure, "save "+key, err)
	}
	return nil
}
