package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/catalogo-admin/internal/domain/entity"
	"github.com/tu-usuario/catalogo-admin/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas de solo lectura para las estadísticas del catálogo.
type StatsRepo struct {
	pool *pgxpool.Pool
}

// NewStatsRepository construye el adaptador de estadísticas.
func NewStatsRepository(pool *pgxpool.Pool) *StatsRepo {
	return &StatsRepo{pool: pool}
}

// CategoryCounts totales de categorías.
func (r *StatsRepo) CategoryCounts(ctx context.Context) (*repository.CategoryCounts, error) {
	const query = `
	SELECT COUNT(*), COUNT(*) FILTER (WHERE is_active)
	FROM categories`
	var counts repository.CategoryCounts
	if err := r.pool.QueryRow(ctx, query).Scan(&counts.Total, &counts.Active); err != nil {
		return nil, fmt.Errorf("stats.CategoryCounts: %w", err)
	}
	return &counts, nil
}

// TopCategoriesBySubcategories categorías con más subcategorías dependientes.
func (r *StatsRepo) TopCategoriesBySubcategories(ctx context.Context, limit int) ([]repository.TopCategory, error) {
	const query = `
	SELECT c.id, c.name, COUNT(s.id) AS subcategory_count
	FROM categories c
	LEFT JOIN subcategories s ON s.category_id = c.id
	GROUP BY c.id, c.name
	ORDER BY subcategory_count DESC, c.name
	LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("stats.TopCategoriesBySubcategories: %w", err)
	}
	defer rows.Close()

	var results []repository.TopCategory
	for rows.Next() {
		var row repository.TopCategory
		if err := rows.Scan(&row.ID, &row.Name, &row.SubcategoryCount); err != nil {
			return nil, fmt.Errorf("stats.TopCategoriesBySubcategories scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// SubcategoryCounts totales de subcategorías.
func (r *StatsRepo) SubcategoryCounts(ctx context.Context) (*repository.SubcategoryCounts, error) {
	const query = `
	SELECT COUNT(*), COUNT(*) FILTER (WHERE is_active)
	FROM subcategories`
	var counts repository.SubcategoryCounts
	if err := r.pool.QueryRow(ctx, query).Scan(&counts.Total, &counts.Active); err != nil {
		return nil, fmt.Errorf("stats.SubcategoryCounts: %w", err)
	}
	return &counts, nil
}

// TopSubcategoriesByProducts subcategorías con más productos dependientes.
func (r *StatsRepo) TopSubcategoriesByProducts(ctx context.Context, limit int) ([]repository.TopSubcategory, error) {
	const query = `
	SELECT s.id, s.name, c.name AS category_name, COUNT(p.id) AS product_count
	FROM subcategories s
	JOIN categories c ON c.id = s.category_id
	LEFT JOIN products p ON p.subcategory_id = s.id
	GROUP BY s.id, s.name, c.name
	ORDER BY product_count DESC, s.name
	LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("stats.TopSubcategoriesByProducts: %w", err)
	}
	defer rows.Close()

	var results []repository.TopSubcategory
	for rows.Next() {
		var row repository.TopSubcategory
		if err := rows.Scan(&row.ID, &row.Name, &row.CategoryName, &row.ProductCount); err != nil {
			return nil, fmt.Errorf("stats.TopSubcategoriesByProducts scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// ProductCounts totales y agregados de precio de productos.
// TotalValue = SUM(price × stock_quantity) sobre productos que controlan stock.
func (r *StatsRepo) ProductCounts(ctx context.Context) (*repository.ProductCounts, error) {
	const query = `
	SELECT
	    COUNT(*),
	    COUNT(*) FILTER (WHERE is_active),
	    COUNT(*) FILTER (WHERE is_featured),
	    COUNT(*) FILTER (WHERE is_digital),
	    COALESCE(SUM(price * stock_quantity) FILTER (WHERE track_stock), 0),
	    COALESCE(AVG(price), 0)
	FROM products`
	var counts repository.ProductCounts
	err := r.pool.QueryRow(ctx, query).Scan(
		&counts.Total, &counts.Active, &counts.Featured, &counts.Digital,
		&counts.TotalValue, &counts.AveragePrice,
	)
	if err != nil {
		return nil, fmt.Errorf("stats.ProductCounts: %w", err)
	}
	return &counts, nil
}

// LowStockProducts productos activos con stock en o bajo el mínimo.
func (r *StatsRepo) LowStockProducts(ctx context.Context, limit int) ([]repository.LowStockProduct, error) {
	const query = `
	SELECT id, name, sku, stock_quantity, min_stock
	FROM products
	WHERE is_active AND track_stock AND stock_quantity <= min_stock
	ORDER BY stock_quantity, name
	LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("stats.LowStockProducts: %w", err)
	}
	defer rows.Close()

	var results []repository.LowStockProduct
	for rows.Next() {
		var row repository.LowStockProduct
		if err := rows.Scan(&row.ID, &row.Name, &row.SKU, &row.Quantity, &row.MinStock); err != nil {
			return nil, fmt.Errorf("stats.LowStockProducts scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// TopPricedProducts productos activos más caros.
func (r *StatsRepo) TopPricedProducts(ctx context.Context, limit int) ([]repository.PricedProduct, error) {
	const query = `
	SELECT id, name, sku, price
	FROM products
	WHERE is_active
	ORDER BY price DESC, name
	LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("stats.TopPricedProducts: %w", err)
	}
	defer rows.Close()

	var results []repository.PricedProduct
	for rows.Next() {
		var row repository.PricedProduct
		if err := rows.Scan(&row.ID, &row.Name, &row.SKU, &row.Price); err != nil {
			return nil, fmt.Errorf("stats.TopPricedProducts scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// UserCounts totales de usuarios por rol y estado.
func (r *StatsRepo) UserCounts(ctx context.Context) (*repository.UserCounts, error) {
	const query = `
	SELECT
	    COUNT(*),
	    COUNT(*) FILTER (WHERE is_active),
	    COUNT(*) FILTER (WHERE role = 'admin'),
	    COUNT(*) FILTER (WHERE role = 'coordinador')
	FROM users`
	var counts repository.UserCounts
	err := r.pool.QueryRow(ctx, query).Scan(&counts.Total, &counts.Active, &counts.Admins, &counts.Coordinators)
	if err != nil {
		return nil, fmt.Errorf("stats.UserCounts: %w", err)
	}
	return &counts, nil
}

// RecentUsers últimos usuarios creados.
func (r *StatsRepo) RecentUsers(ctx context.Context, limit int) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("stats.RecentUsers: %w", err)
	}
	defer rows.Close()

	var results []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("stats.RecentUsers scan: %w", err)
		}
		results = append(results, u)
	}
	return results, rows.Err()
}
