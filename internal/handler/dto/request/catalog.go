package request

import (
	"repairshop/internal/usecase"

	"github.com/shopspring/decimal"
)

type RegisterProductRequest struct {
	Name     string `json:"name" binding:"required,max=200"`
	Price    string `json:"price" binding:"required"`
	Stock    int    `json:"stock" binding:"min=0"`
	Supplier string `json:"supplier" binding:"max=200"`
}

func (r *RegisterProductRequest) ToParams() (usecase.RegisterProductParams, error) {
	price, err := decimal.NewFromString(r.Price)
	if err != nil {
		return usecase.RegisterProductParams{}, err
	}
	return usecase.RegisterProductParams{
		Name:     r.Name,
		Price:    price,
		Stock:    r.Stock,
		Supplier: r.Supplier,
	}, nil
}

type UpdatePriceRequest struct {
	Price string `json:"price" binding:"required"`
}

func (r *UpdatePriceRequest) ToDecimal() (decimal.Decimal, error) {
	return decimal.NewFromString(r.Price)
}

type RestockRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}
