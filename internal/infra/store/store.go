// Package store persists whole collections as opaque documents keyed by
// collection name. Writes replace the previous document; there are no
// transactions across keys.
package store

//go:generate mockgen -source=store.go -destination=../../../tests/mock/store/store.go -package=storemock

import (
	"context"
	"fmt"
	"log/slog"

	"repairshop/internal/pkg/config"
)

const (
	KeyAppointments = "appointments"
	KeyOrders       = "orders"
	KeyProducts     = "products"
	KeyLedger       = "ledger"
	KeySequences    = "sequences"
)

type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, body []byte) error
}

const createDocumentsTable = `CREATE TABLE IF NOT EXISTS documents (
	key        TEXT PRIMARY KEY,
	body       %s NOT NULL,
	updated_at %s NOT NULL
)`

// Open picks the backend named by cfg.Driver. The returned func releases it.
func Open(ctx context.Context, cfg config.Config, logger *slog.Logger) (Store, func(), error) {
	switch cfg.Store.Driver {
	case config.StoreDriverFile, "":
		s, err := NewFileStore(cfg.Store.Dir, logger)
		return s, func() {}, err
	case config.StoreDriverPostgres:
		return openPostgres(ctx, cfg.DB, logger)
	case config.StoreDriverSQLite:
		return openSQLite(ctx, cfg.Store.SQLitePath, logger)
	default:
		return nil, nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.Store.Driver)
	}
}
