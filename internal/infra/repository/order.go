package repository

import (
	"context"
	"log/slog"

	"repairshop/internal/domain/order"
	"repairshop/internal/infra"
	"repairshop/internal/infra/repository/converter"
	"repairshop/internal/infra/store"
)

type OrderRepository struct {
	store  store.Store
	logger *slog.Logger
}

func NewOrderRepository(s store.Store, logger *slog.Logger) *OrderRepository {
	return &OrderRepository{store: s, logger: logger}
}

func (r *OrderRepository) LoadAll(ctx context.Context) ([]*order.ServiceOrder, error) {
	var docs []converter.OrderDoc
	if _, err := loadDoc(ctx, r.store, r.logger, store.KeyOrders, &docs); err != nil {
		return nil, err
	}
	orders := make([]*order.ServiceOrder, 0, len(docs))
	for _, d := range docs {
		o, err := converter.OrderFromDoc(d)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDecodeFailure, "rebuild service order", err)
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (r *OrderRepository) SaveAll(ctx context.Context, orders []*order.ServiceOrder) error {
	docs := make([]converter.OrderDoc, len(orders))
	for i, o := range orders {
		docs[i] = converter.OrderToDoc(o)
	}
	return saveDoc(ctx, r.store, r.logger, store.KeyOrders, docs)
}
