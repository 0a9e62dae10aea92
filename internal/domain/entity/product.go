package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product artículo del catálogo. Price usa decimal para evitar redondeo
// binario en montos.
type Product struct {
	ID          string          `json:"id"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
