package repository

import (
	"context"
	"log/slog"

	"repairshop/internal/domain/finance"
	"repairshop/internal/infra"
	"repairshop/internal/infra/repository/converter"
	"repairshop/internal/infra/store"
)

// LedgerRepository is an append-only list of financial entries.
type LedgerRepository struct {
	store  store.Store
	logger *slog.Logger
}

func NewLedgerRepository(s store.Store, logger *slog.Logger) *LedgerRepository {
	return &LedgerRepository{store: s, logger: logger}
}

func (r *LedgerRepository) Entries(ctx context.Context) ([]*finance.Entry, error) {
	var docs []converter.EntryDoc
	if _, err := loadDoc(ctx, r.store, r.logger, store.KeyLedger, &docs); err != nil {
		return nil, err
	}
	entries := make([]*finance.Entry, 0, len(docs))
	for _, d := range docs {
		e, err := converter.EntryFromDoc(d)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDecodeFailure, "rebuild ledger entry", err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (r *LedgerRepository) Append(ctx context.Context, entries ...*finance.Entry) error {
	if len(entries) == 0 {
		return nil
	}
	var docs []converter.EntryDoc
	if _, err := loadDoc(ctx, r.store, r.logger, store.KeyLedger, &docs); err != nil {
		return err
	}
	for _, e := range entries {
		docs = append(docs, converter.EntryToDoc(e))
	}
	return saveDoc(ctx, r.store, r.logger, store.KeyLedger, docs)
}
