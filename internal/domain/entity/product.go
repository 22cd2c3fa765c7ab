package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock registro embebido de inventario del producto.
type Stock struct {
	Quantity   int
	MinStock   int
	TrackStock bool
}

// Product hoja de la jerarquía. Invariante: la subcategoría referenciada debe
// pertenecer a la misma categoría del producto.
type Product struct {
	ID               string
	Name             string
	Description      string
	ShortDescription string
	Slug             string
	SKU              string // único, se almacena en mayúsculas
	CategoryID       string
	SubcategoryID    string
	Price            decimal.Decimal
	ComparePrice     *decimal.Decimal
	Cost             *decimal.Decimal
	Stock            Stock
	Tags             []string
	IsActive         bool
	IsFeatured       bool
	IsDigital        bool
	SortOrder        int
	SEODescription   string
	CreatedBy        string
	UpdatedBy        string
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Denormalizados en lecturas con JOIN.
	CategoryName    string
	CategorySlug    string
	SubcategoryName string
	SubcategorySlug string
}

// IsOutOfStock true si el producto controla stock y la cantidad llegó a cero.
func (p *Product) IsOutOfStock() bool {
	return p.Stock.TrackStock && p.Stock.Quantity <= 0
}

// IsLowStock true si el producto controla stock y la cantidad está en o bajo el mínimo.
func (p *Product) IsLowStock() bool {
	return p.Stock.TrackStock && p.Stock.Quantity <= p.Stock.MinStock
}
