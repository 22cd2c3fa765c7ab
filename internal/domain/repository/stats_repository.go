package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/catalogo-admin/internal/domain/entity"
)

// CategoryCounts totales de categorías.
type CategoryCounts struct {
	Total  int
	Active int
}

// TopCategory categoría con su número de subcategorías dependientes.
type TopCategory struct {
	ID               string
	Name             string
	SubcategoryCount int
}

// SubcategoryCounts totales de subcategorías.
type SubcategoryCounts struct {
	Total  int
	Active int
}

// TopSubcategory subcategoría con su número de productos dependientes.
type TopSubcategory struct {
	ID           string
	Name         string
	CategoryName string
	ProductCount int
}

// ProductCounts totales y agregados de precio de productos.
type ProductCounts struct {
	Total        int
	Active       int
	Featured     int
	Digital      int
	TotalValue   decimal.Decimal
	AveragePrice decimal.Decimal
}

// LowStockProduct producto cuyo stock está en o bajo el mínimo.
type LowStockProduct struct {
	ID       string
	Name     string
	SKU      string
	Quantity int
	MinStock int
}

// PricedProduct producto con su precio (listados top-N por valor).
type PricedProduct struct {
	ID    string
	Name  string
	SKU   string
	Price decimal.Decimal
}

// UserCounts totales de usuarios por rol y estado.
type UserCounts struct {
	Total        int
	Active       int
	Admins       int
	Coordinators int
}

// StatsRepository agregaciones de solo lectura sobre el catálogo.
// Se recalculan bajo demanda; nunca escriben ni eluden las invariantes del motor.
type StatsRepository interface {
	CategoryCounts(ctx context.Context) (*CategoryCounts, error)
	TopCategoriesBySubcategories(ctx context.Context, limit int) ([]TopCategory, error)
	SubcategoryCounts(ctx context.Context) (*SubcategoryCounts, error)
	TopSubcategoriesByProducts(ctx context.Context, limit int) ([]TopSubcategory, error)
	ProductCounts(ctx context.Context) (*ProductCounts, error)
	LowStockProducts(ctx context.Context, limit int) ([]LowStockProduct, error)
	TopPricedProducts(ctx context.Context, limit int) ([]PricedProduct, error)
	UserCounts(ctx context.Context) (*UserCounts, error)
	RecentUsers(ctx context.Context, limit int) ([]*entity.User, error)
}
