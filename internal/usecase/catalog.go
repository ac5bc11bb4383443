package usecase

//go:generate mockgen -source=catalog.go -destination=../../tests/mock/commands/catalog.go -package=commandsmock

import (
	"context"
	"log/slog"

	"repairshop/internal/domain/catalog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CatalogCommands interface {
	RegisterProduct(ctx context.Context, params RegisterProductParams) (*ProductView, error)
	UpdateProductPrice(ctx context.Context, id uuid.UUID, price decimal.Decimal) (*ProductView, error)
	Restock(ctx context.Context, id uuid.UUID, quantity int) (*ProductView, error)
}

type RegisterProductParams struct {
	Name     string
	Price    decimal.Decimal
	Stock    int
	Supplier string
}

func (w *Workshop) RegisterProduct(ctx context.Context, params RegisterProductParams) (*ProductView, error) {
	p, err := catalog.NewProduct(uuid.Nil, params.Name, params.Price, params.Stock, params.Supplier)
	if err != nil {
		return nil, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	w.products = append(w.products, p)
	w.productByID[p.ID()] = p
	if err := w.saveProducts(ctx); err != nil {
		return nil, err
	}

	w.logger.Info("Product registered", slog.String("product_id", p.ID().String()), slog.String("name", p.Name()))
	return newProductView(p), nil
}

// UpdateProductPrice changes the catalog price. Part usages already recorded
// keep the price they were consumed at.
func (w *Workshop) UpdateProductPrice(ctx context.Context, id uuid.UUID, price decimal.Decimal) (*ProductView, error) {
	return w.mutateProduct(ctx, id, func(p *catalog.Product) error {
		return p.SetPrice(price)
	})
}

func (w *Workshop) Restock(ctx context.Context, id uuid.UUID, quantity int) (*ProductView, error) {
	return w.mutateProduct(ctx, id, func(p *catalog.Product) error {
		return p.Restock(quantity)
	})
}

func (w *Workshop) mutateProduct(ctx context.Context, id uuid.UUID, apply func(*catalog.Product) error) (*ProductView, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	p, err := w.findProduct(id)
	if err != nil {
		return nil, err
	}
	if err := apply(p); err != nil {
		return nil, err
	}
	if err := w.saveProducts(ctx); err != nil {
		return nil, err
	}
	return newProductView(p), nil
}
