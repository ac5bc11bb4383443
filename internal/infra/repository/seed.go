package repository

import (
	"fmt"
	"os"

	"repairshop/internal/domain/catalog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// CatalogSeed is the YAML file used to populate an empty catalog:
//
//	products:
//	  - name: Oil filter
//	    price: "35.90"
//	    stock: 20
//	    supplier: Acme Parts
type CatalogSeed struct {
	Products []SeedProduct `yaml:"products"`
}

type SeedProduct struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Price    string `yaml:"price"`
	Stock    int    `yaml:"stock"`
	Supplier string `yaml:"supplier"`
}

func LoadCatalogSeed(path string) (*CatalogSeed, error) {
	if path == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog seed: %w", err)
	}
	return ParseCatalogSeed(raw)
}

func ParseCatalogSeed(raw []byte) (*CatalogSeed, error) {
	var seed CatalogSeed
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("parse catalog seed: %w", err)
	}
	return &seed, nil
}

func (s *CatalogSeed) Build() ([]*catalog.Product, error) {
	products := make([]*catalog.Product, 0, len(s.Products))
	for i, sp := range s.Products {
		id := uuid.Nil
		if sp.ID != "" {
			parsed, err := uuid.Parse(sp.ID)
			if err != nil {
				return nil, fmt.Errorf("seed product %d: invalid id: %w", i, err)
			}
			id = parsed
		}
		price, err := decimal.NewFromString(sp.Price)
		if err != nil {
			return nil, fmt.Errorf("seed product %d: invalid price: %w", i, err)
		}
		p, err := catalog.NewProduct(id, sp.Name, price, sp.Stock, sp.Supplier)
		if err != nil {
			return nil, fmt.Errorf("seed product %d: %w", i, err)
		}
		products = append(products, p)
	}
	return products, nil
}
