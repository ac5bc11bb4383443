package usecase

//go:generate mockgen -source=ports.go -destination=../../tests/mock/repository/ports.go -package=repositorymock

import (
	"context"

	"repairshop/internal/domain/agenda"
	"repairshop/internal/domain/catalog"
	"repairshop/internal/domain/finance"
	"repairshop/internal/domain/order"
)

// Persistence collaborators. Each Save replaces the whole collection and none
// of them share a transaction.

type AgendaRepository interface {
	Load(ctx context.Context) (*agenda.SlotGrid, error)
	Save(ctx context.Context, grid *agenda.SlotGrid) error
}

type OrderRepository interface {
	LoadAll(ctx context.Context) ([]*order.ServiceOrder, error)
	SaveAll(ctx context.Context, orders []*order.ServiceOrder) error
}

type ProductRepository interface {
	LoadAll(ctx context.Context) ([]*catalog.Product, error)
	SaveAll(ctx context.Context, products []*catalog.Product) error
}

type FinanceLedger interface {
	Entries(ctx context.Context) ([]*finance.Entry, error)
	Append(ctx context.Context, entries ...*finance.Entry) error
}
