package order

import (
	"repairshop/internal/domain/catalog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PartUsage records a consumed catalog item with the unit price it had at
// the moment of use.
type PartUsage struct {
	productID uuid.UUID
	name      string
	quantity  int
	unitPrice decimal.Decimal
}

func ReconstructPartUsage(productID uuid.UUID, name string, quantity int, unitPrice decimal.Decimal) PartUsage {
	return PartUsage{productID: productID, name: name, quantity: quantity, unitPrice: unitPrice}
}

func (p PartUsage) ProductID() uuid.UUID       { return p.productID }
func (p PartUsage) Name() string               { return p.name }
func (p PartUsage) Quantity() int              { return p.quantity }
func (p PartUsage) UnitPrice() decimal.Decimal { return p.unitPrice }

func (p PartUsage) Subtotal() decimal.Decimal {
	return p.unitPrice.Mul(decimal.NewFromInt(int64(p.quantity)))
}

type PartLedger struct{}

// Consume withdraws qty units from product and returns the usage. On failure
// neither the product nor any order is touched.
func (PartLedger) Consume(product *catalog.Product, qty int) (PartUsage, error) {
	if err := product.Withdraw(qty); err != nil {
		return PartUsage{}, err
	}
	return PartUsage{
		productID: product.ID(),
		name:      product.Name(),
		quantity:  qty,
		unitPrice: product.Price(),
	}, nil
}
