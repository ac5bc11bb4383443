//go:build unit || e2e

package builder

import (
	"repairshop/internal/domain/catalog"
	reqdto "repairshop/internal/handler/dto/request"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductBuilder struct {
	ID       uuid.UUID
	Name     string
	Price    decimal.Decimal
	Stock    int
	Supplier string
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		Name:     "Oil filter",
		Price:    decimal.RequireFromString("12.50"),
		Stock:    10,
		Supplier: "Acme Parts",
	}
}

func (b *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(b)
	return b
}

func (b *ProductBuilder) WithPrice(price string) *ProductBuilder {
	b.Price = decimal.RequireFromString(price)
	return b
}

func (b *ProductBuilder) WithStock(stock int) *ProductBuilder {
	b.Stock = stock
	return b
}

// Build methods
func (b *ProductBuilder) BuildDomain() (*catalog.Product, error) {
	return catalog.NewProduct(b.ID, b.Name, b.Price, b.Stock, b.Supplier)
}

func (b *ProductBuilder) MustBuildDomain() *catalog.Product {
	p, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return p
}

func (b *ProductBuilder) BuildRequestDTO() reqdto.RegisterProductRequest {
	return reqdto.RegisterProductRequest{
		Name:     b.Name,
		Price:    b.Price.StringFixed(2),
		Stock:    b.Stock,
		Supplier: b.Supplier,
	}
}
