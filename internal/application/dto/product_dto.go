package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/catalogo-admin/internal/domain/entity"
)

// StockRequest sub-estructura de stock en creación/actualización.
type StockRequest struct {
	Quantity   int   `json:"quantity" validate:"gte=0"`
	MinStock   int   `json:"minStock" validate:"gte=0"`
	TrackStock *bool `json:"trackStock"`
}

// CreateProductRequest entrada para crear un producto. El slug se deriva del
// nombre y el SKU se normaliza a mayúsculas; ninguno lo aporta el cliente tal cual.
type CreateProductRequest struct {
	Name             string           `json:"name" validate:"required,min=2,max=100"`
	Description      string           `json:"description" validate:"required,max=500"`
	ShortDescription string           `json:"shortDescription" validate:"max=250"`
	SKU              string           `json:"sku" validate:"required,min=3,max=20"`
	CategoryID       string           `json:"categoryId" validate:"required"`
	SubcategoryID    string           `json:"subcategoryId" validate:"required"`
	Price            decimal.Decimal  `json:"price"`
	ComparePrice     *decimal.Decimal `json:"comparePrice"`
	Cost             *decimal.Decimal `json:"cost"`
	Stock            *StockRequest    `json:"stock"`
	Tags             []string         `json:"tags" validate:"dive,max=50"`
	IsActive         *bool            `json:"isActive"`
	IsFeatured       bool             `json:"isFeatured"`
	IsDigital        bool             `json:"isDigital"`
	SortOrder        int              `json:"sortOrder"`
	SEODescription   string           `json:"seoDescription" validate:"max=160"`
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
type UpdateProductRequest struct {
	Name             *string          `json:"name" validate:"omitempty,min=2,max=100"`
	Description      *string          `json:"description" validate:"omitempty,max=500"`
	ShortDescription *string          `json:"shortDescription" validate:"omitempty,max=250"`
	SKU              *string          `json:"sku" validate:"omitempty,min=3,max=20"`
	CategoryID       *string          `json:"categoryId"`
	SubcategoryID    *string          `json:"subcategoryId"`
	Price            *decimal.Decimal `json:"price"`
	ComparePrice     *decimal.Decimal `json:"comparePrice"`
	Cost             *decimal.Decimal `json:"cost"`
	Stock            *StockRequest    `json:"stock"`
	Tags             []string         `json:"tags" validate:"omitempty,dive,max=50"`
	IsActive         *bool            `json:"isActive"`
	IsFeatured       *bool            `json:"isFeatured"`
	IsDigital        *bool            `json:"isDigital"`
	SortOrder        *int             `json:"sortOrder"`
	SEODescription   *string          `json:"seoDescription" validate:"omitempty,max=160"`
}

// AdjustStockRequest entrada del ledger de stock.
type AdjustStockRequest struct {
	Quantity  *int   `json:"quantity" validate:"required"`
	Operation string `json:"operation" validate:"omitempty,oneof=set add subtract"`
}

// StockResponse stock embebido en la respuesta de producto.
type StockResponse struct {
	Quantity   int  `json:"quantity"`
	MinStock   int  `json:"minStock"`
	TrackStock bool `json:"trackStock"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Description      string           `json:"description,omitempty"`
	ShortDescription string           `json:"shortDescription,omitempty"`
	Slug             string           `json:"slug"`
	SKU              string           `json:"sku"`
	CategoryID       string           `json:"categoryId"`
	CategoryName     string           `json:"categoryName,omitempty"`
	CategorySlug     string           `json:"categorySlug,omitempty"`
	SubcategoryID    string           `json:"subcategoryId"`
	SubcategoryName  string           `json:"subcategoryName,omitempty"`
	SubcategorySlug  string           `json:"subcategorySlug,omitempty"`
	Price            decimal.Decimal  `json:"price"`
	ComparePrice     *decimal.Decimal `json:"comparePrice,omitempty"`
	Cost             *decimal.Decimal `json:"cost,omitempty"`
	Stock            StockResponse    `json:"stock"`
	Tags             []string         `json:"tags,omitempty"`
	IsActive         bool             `json:"isActive"`
	IsFeatured       bool             `json:"isFeatured"`
	IsDigital        bool             `json:"isDigital"`
	IsOutOfStock     bool             `json:"isOutOfStock"`
	IsLowStock       bool             `json:"isLowStock"`
	SortOrder        int              `json:"sortOrder"`
	SEODescription   string           `json:"seoDescription,omitempty"`
	CreatedBy        string           `json:"createdBy,omitempty"`
	UpdatedBy        string           `json:"updatedBy,omitempty"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

// ToProductResponse convierte la entidad a su representación pública.
func ToProductResponse(p *entity.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	return &ProductResponse{
		ID:               p.ID,
		Name:             p.Name,
		Description:      p.Description,
		ShortDescription: p.ShortDescription,
		Slug:             p.Slug,
		SKU:              p.SKU,
		CategoryID:       p.CategoryID,
		CategoryName:     p.CategoryName,
		CategorySlug:     p.CategorySlug,
		SubcategoryID:    p.SubcategoryID,
		SubcategoryName:  p.SubcategoryName,
		SubcategorySlug:  p.SubcategorySlug,
		Price:            p.Price,
		ComparePrice:     p.ComparePrice,
		Cost:             p.Cost,
		Stock: StockResponse{
			Quantity:   p.Stock.Quantity,
			MinStock:   p.Stock.MinStock,
			TrackStock: p.Stock.TrackStock,
		},
		Tags:           p.Tags,
		IsActive:       p.IsActive,
		IsFeatured:     p.IsFeatured,
		IsDigital:      p.IsDigital,
		IsOutOfStock:   p.IsOutOfStock(),
		IsLowStock:     p.IsLowStock(),
		SortOrder:      p.SortOrder,
		SEODescription: p.SEODescription,
		CreatedBy:      p.CreatedBy,
		UpdatedBy:      p.UpdatedBy,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// StockAdjustedResponse resultado de un ajuste de stock.
type StockAdjustedResponse struct {
	SKU           string `json:"sku"`
	Name          string `json:"name"`
	PreviousStock int    `json:"previousStock"`
	NewStock      int    `json:"newStock"`
	IsLowStock    bool   `json:"isLowStock"`
	IsOutOfStock  bool   `json:"isOutOfStock"`
}

// ProductStatsResponse estadísticas de productos.
type ProductStatsResponse struct {
	Stats struct {
		TotalProducts    int             `json:"totalProducts"`
		ActiveProducts   int             `json:"activeProducts"`
		FeaturedProducts int             `json:"featuredProducts"`
		DigitalProducts  int             `json:"digitalProducts"`
		TotalValue       decimal.Decimal `json:"totalValue"`
		AveragePrice     decimal.Decimal `json:"averagePrice"`
	} `json:"stats"`
	LowStockProducts  []LowStockProductResponse `json:"lowStockProducts"`
	ExpensiveProducts []PricedProductResponse   `json:"expensiveProducts"`
}

// LowStockProductResponse producto con stock en o bajo el mínimo.
type LowStockProductResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
	MinStock int    `json:"minStock"`
}

// PricedProductResponse producto con su precio.
type PricedProductResponse struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	SKU   string          `json:"sku"`
	Price decimal.Decimal `json:"price"`
}
