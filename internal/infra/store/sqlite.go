package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"repairshop/internal/infra"
	"repairshop/internal/infra/db"
)

type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewSQLiteStore(ctx context.Context, conn *sql.DB, logger *slog.Logger) (*SQLiteStore, error) {
	if _, err := conn.ExecContext(ctx, fmt.Sprintf(createDocumentsTable, "BLOB", "TEXT")); err != nil {
		return nil, infra.WrapRepoErr(logger, infra.KindStoreFailure, "create documents table", err)
	}
	return &SQLiteStore{db: conn, logger: logger}, nil
}

func openSQLite(ctx context.Context, path string, logger *slog.Logger) (Store, func(), error) {
	conn, err := db.OpenSQLite(path)
	if err != nil {
		return nil, nil, err
	}
	s, err := NewSQLiteStore(ctx, conn, logger)
	if err != nil {
		_ = conn.Close()
		return nil, nil, err
	}
	return s, func() { _ = conn.Close() }, nil
}

func (s *SQLiteStore) Load(ctx context.Context, key string) ([]byte, error) {
	var body []byte
	err := s.db.QueryRowContext(ctx, `SELECT body FROM documents WHERE key = ?`, key).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, infra.NotFound(key)
	}
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindStoreFailure, "load "+key, err)
	}
	return body, nil
}

func (s *SQLiteStore) Save(ctx context.Context, key string, body []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (key, body, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`,
		key, body, time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindStoreFailure, "save "+key, err)
	}
	return nil
}
