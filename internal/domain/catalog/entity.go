package catalog

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName         = errors.New("product name cannot be empty")
	ErrInvalidPrice      = errors.New("product price must be positive")
	ErrNegativeStock     = errors.New("product stock cannot be negative")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrInsufficientStock = errors.New("insufficient stock")
)

type Product struct {
	id       uuid.UUID
	name     string
	price    decimal.Decimal
	stock    int
	supplier string
}

func NewProduct(id uuid.UUID, name string, price decimal.Decimal, stock int, supplier string) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if !price.IsPositive() {
		return nil, ErrInvalidPrice
	}
	if stock < 0 {
		return nil, ErrNegativeStock
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Product{
		id:       id,
		name:     name,
		price:    price,
		stock:    stock,
		supplier: strings.TrimSpace(supplier),
	}, nil
}

func ReconstructProduct(id uuid.UUID, name string, price decimal.Decimal, stock int, supplier string) *Product {
	return &Product{id: id, name: name, price: price, stock: stock, supplier: supplier}
}

func (p *Product) ID() uuid.UUID          { return p.id }
func (p *Product) Name() string           { return p.name }
func (p *Product) Price() decimal.Decimal { return p.price }
func (p *Product) Stock() int             { return p.stock }
func (p *Product) Supplier() string       { return p.supplier }

func (p *Product) HasStock(qty int) bool {
	return qty > 0 && p.stock >= qty
}

func (p *Product) SetPrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return ErrInvalidPrice
	}
	p.price = price
	return nil
}

func (p *Product) Restock(qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	p.stock += qty
	return nil
}

// Withdraw takes qty units out of stock. Partial withdrawals never happen.
func (p *Product) Withdraw(qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	if p.stock < qty {
		return ErrInsufficientStock
	}
	p.stock -= qty
	return nil
}
