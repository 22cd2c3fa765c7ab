// Package stats arma las lecturas agregadas del catálogo para los paneles
// administrativos. Solo lectura: nunca muta el catálogo.
package stats

import (
	"context"

	"github.com/tu-usuario/catalogo-admin/internal/application/dto"
	"github.com/tu-usuario/catalogo-admin/internal/domain/repository"
)

// Límites de los listados top-N. Calcados de los paneles que los consumen.
const (
	topLimit      = 5
	lowStockLimit = 10
)

// StatsUseCase expone las estadísticas por módulo.
type StatsUseCase struct {
	repo repository.StatsRepository
}

// NewStatsUseCase construye el lector de estadísticas.
func NewStatsUseCase(repo repository.StatsRepository) *StatsUseCase {
	return &StatsUseCase{repo: repo}
}

// Categories totales de categorías y top-5 por subcategorías.
func (uc *StatsUseCase) Categories(ctx context.Context) (*dto.CategoryStatsResponse, error) {
	counts, err := uc.repo.CategoryCounts(ctx)
	if err != nil {
		return nil, err
	}
	top, err := uc.repo.TopCategoriesBySubcategories(ctx, topLimit)
	if err != nil {
		return nil, err
	}

	out := &dto.CategoryStatsResponse{TopCategories: make([]dto.TopCategoryResponse, 0, len(top))}
	out.Stats.TotalCategories = counts.Total
	out.Stats.ActiveCategories = counts.Active
	for _, c := range top {
		out.TopCategories = append(out.TopCategories, dto.TopCategoryResponse{
			ID:               c.ID,
			Name:             c.Name,
			SubcategoryCount: c.SubcategoryCount,
		})
	}
	return out, nil
}

// Subcategories totales de subcategorías y top-5 por productos.
func (uc *StatsUseCase) Subcategories(ctx context.Context) (*dto.SubcategoryStatsResponse, error) {
	counts, err := uc.repo.SubcategoryCounts(ctx)
	if err != nil {
		return nil, err
	}
	top, err := uc.repo.TopSubcategoriesByProducts(ctx, topLimit)
	if err != nil {
		return nil, err
	}

	out := &dto.SubcategoryStatsResponse{TopSubcategories: make([]dto.TopSubcategoryResponse, 0, len(top))}
	out.Stats.TotalSubcategories = counts.Total
	out.Stats.ActiveSubcategories = counts.Active
	for _, s := range top {
		out.TopSubcategories = append(out.TopSubcategories, dto.TopSubcategoryResponse{
			ID:           s.ID,
			Name:         s.Name,
			CategoryName: s.CategoryName,
			ProductCount: s.ProductCount,
		})
	}
	return out, nil
}

// Products totales, agregados de precio, stock bajo y top-5 más caros.
func (uc *StatsUseCase) Products(ctx context.Context) (*dto.ProductStatsResponse, error) {
	counts, err := uc.repo.ProductCounts(ctx)
	if err != nil {
		return nil, err
	}
	lowStock, err := uc.repo.LowStockProducts(ctx, lowStockLimit)
	if err != nil {
		return nil, err
	}
	priced, err := uc.repo.TopPricedProducts(ctx, topLimit)
	if err != nil {
		return nil, err
	}

	out := &dto.ProductStatsResponse{
		LowStockProducts:  make([]dto.LowStockProductResponse, 0, len(lowStock)),
		ExpensiveProducts: make([]dto.PricedProductResponse, 0, len(priced)),
	}
	out.Stats.TotalProducts = counts.Total
	out.Stats.ActiveProducts = counts.Active
	out.Stats.FeaturedProducts = counts.Featured
	out.Stats.DigitalProducts = counts.Digital
	out.Stats.TotalValue = counts.TotalValue
	out.Stats.AveragePrice = counts.AveragePrice
	for _, p := range lowStock {
		out.LowStockProducts = append(out.LowStockProducts, dto.LowStockProductResponse{
			ID:       p.ID,
			Name:     p.Name,
			SKU:      p.SKU,
			Quantity: p.Quantity,
			MinStock: p.MinStock,
		})
	}
	for _, p := range priced {
		out.ExpensiveProducts = append(out.ExpensiveProducts, dto.PricedProductResponse{
			ID:    p.ID,
			Name:  p.Name,
			SKU:   p.SKU,
			Price: p.Price,
		})
	}
	return out, nil
}

// Users totales por rol y últimos usuarios creados.
func (uc *StatsUseCase) Users(ctx context.Context) (*dto.UserStatsResponse, error) {
	counts, err := uc.repo.UserCounts(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := uc.repo.RecentUsers(ctx, topLimit)
	if err != nil {
		return nil, err
	}

	out := &dto.UserStatsResponse{RecentUsers: make([]dto.UserResponse, 0, len(recent))}
	out.Stats.TotalUsers = counts.Total
	out.Stats.ActiveUsers = counts.Active
	out.Stats.AdminUsers = counts.Admins
	out.Stats.CoordinadorUsers = counts.Coordinators
	for _, u := range recent {
		out.RecentUsers = append(out.RecentUsers, *dto.ToUserResponse(u))
	}
	return out, nil
}
