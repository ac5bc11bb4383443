package repository

import (
	"context"
	"log/slog"

	"repairshop/internal/domain/catalog"
	"repairshop/internal/infra/repository/converter"
	"repairshop/internal/infra/store"
)

type ProductRepository struct {
	store  store.Store
	logger *slog.Logger
	seed   *CatalogSeed
}

// NewProductRepository falls back to seed when no catalog has been saved yet.
// seed may be nil.
func NewProductRepository(s store.Store, seed *CatalogSeed, logger *slog.Logger) *ProductRepository {
	return &ProductRepository{store: s, seed: seed, logger: logger}
}

func (r *ProductRepository) LoadAll(ctx context.Context) ([]*catalog.Product, error) {
	var docs []converter.ProductDoc
	found, err := loadDoc(ctx, r.store, r.logger, store.KeyProducts, &docs)
	if err != nil {
		return nil, err
	}
	if !found && r.seed != nil {
		r.logger.Info("Catalog is empty, loading seed", slog.Int("products", len(r.seed.Products)))
		return r.seed.Build()
	}
	products := make([]*catalog.Product, len(docs))
	for i, d := range docs {
		products[i] = converter.ProductFromDoc(d)
	}
	return products, nil
}

func (r *ProductRepository) SaveAll(ctx context.Context, products []*catalog.Product) error {
	docs := make([]converter.ProductDoc, len(products))
	for i, p := range products {
		docs[i] = converter.ProductToDoc(p)
	}
	return saveDoc(ctx, r.store, r.logger, store.KeyProducts, docs)
}
