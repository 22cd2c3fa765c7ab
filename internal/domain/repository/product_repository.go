package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/catalogo-admin/internal/domain/entity"
)

// ProductFilter filtros de listado de productos.
type ProductFilter struct {
	CategoryID    string
	SubcategoryID string
	IsActive      *bool
	IsFeatured    *bool
	IsDigital     *bool
	MinPrice      *decimal.Decimal
	MaxPrice      *decimal.Decimal
	LowStock      bool
	Search        string // nombre, descripción, SKU o tags
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id string) (*entity.Product, error)
	// FindBySKU busca por SKU ya normalizado a mayúsculas.
	FindBySKU(ctx context.Context, sku string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ProductFilter, limit, offset int) ([]*entity.Product, error)
	ListActive(ctx context.Context) ([]*entity.Product, error)
	ListActiveByCategory(ctx context.Context, categoryID string) ([]*entity.Product, error)
	ListActiveBySubcategory(ctx context.Context, subcategoryID string) ([]*entity.Product, error)
	ListFeatured(ctx context.Context) ([]*entity.Product, error)
	Count(ctx context.Context, filter ProductFilter) (int, error)
	CountByCategory(ctx context.Context, categoryID string) (int, error)
	CountBySubcategory(ctx context.Context, subcategoryID string) (int, error)
	// DeactivateByCategory / DeactivateBySubcategory apagan productos en cascada.
	DeactivateByCategory(ctx context.Context, categoryID, updatedBy string) error
	DeactivateBySubcategory(ctx context.Context, subcategoryID, updatedBy string) error
	// UpdateStockQuantity fija la cantidad de stock (el ledger calcula el valor final).
	UpdateStockQuantity(ctx context.Context, productID string, quantity int, updatedBy string) error
	SetSortOrder(ctx context.Context, id string, sortOrder int, updatedBy string) (bool, error)
}
