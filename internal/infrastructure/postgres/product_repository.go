package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/catalogo-admin/internal/domain"
	"github.com/tu-usuario/catalogo-admin/internal/domain/entity"
	"github.com/tu-usuario/catalogo-admin/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// Las lecturas traen categoría y subcategoría denormalizadas (nombre y slug) vía JOIN.
const productSelect = `
	SELECT p.id, p.name, p.description, p.short_description, p.slug, p.sku,
	       p.category_id, p.subcategory_id, p.price, p.compare_price, p.cost,
	       p.stock_quantity, p.min_stock, p.track_stock, p.tags,
	       p.is_active, p.is_featured, p.is_digital, p.sort_order, p.seo_description,
	       p.created_by, p.updated_by, p.created_at, p.updated_at,
	       c.name, c.slug, s.name, s.slug
	FROM products p
	JOIN categories c ON c.id = p.category_id
	JOIN subcategories s ON s.id = p.subcategory_id`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.ShortDescription, &p.Slug, &p.SKU,
		&p.CategoryID, &p.SubcategoryID, &p.Price, &p.ComparePrice, &p.Cost,
		&p.Stock.Quantity, &p.Stock.MinStock, &p.Stock.TrackStock, &p.Tags,
		&p.IsActive, &p.IsFeatured, &p.IsDigital, &p.SortOrder, &p.SEODescription,
		&p.CreatedBy, &p.UpdatedBy, &p.CreatedAt, &p.UpdatedAt,
		&p.CategoryName, &p.CategorySlug, &p.SubcategoryName, &p.SubcategorySlug,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, description, short_description, slug, sku,
			category_id, subcategory_id, price, compare_price, cost,
			stock_quantity, min_stock, track_stock, tags,
			is_active, is_featured, is_digital, sort_order, seo_description,
			created_by, updated_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Description, product.ShortDescription, product.Slug, product.SKU,
		product.CategoryID, product.SubcategoryID, product.Price, product.ComparePrice, product.Cost,
		product.Stock.Quantity, product.Stock.MinStock, product.Stock.TrackStock, product.Tags,
		product.IsActive, product.IsFeatured, product.IsDigital, product.SortOrder, product.SEODescription,
		product.CreatedBy, product.UpdatedBy, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// FindByID obtiene un producto por ID. Retorna nil sin error si no existe.
func (r *ProductRepo) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, productSelect+` WHERE p.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// FindBySKU busca por SKU (se almacena en mayúsculas; se compara sin distinguir mayúsculas).
func (r *ProductRepo) FindBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, productSelect+` WHERE UPPER(p.sku) = UPPER($1)`, sku))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by sku: %w", err)
	}
	return p, nil
}

// Update actualiza un producto existente (incluye su registro de stock embebido).
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, short_description = $4, slug = $5, sku = $6,
		    category_id = $7, subcategory_id = $8, price = $9, compare_price = $10, cost = $11,
		    stock_quantity = $12, min_stock = $13, track_stock = $14, tags = $15,
		    is_active = $16, is_featured = $17, is_digital = $18, sort_order = $19,
		    seo_description = $20, updated_by = $21, updated_at = $22
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Description, product.ShortDescription, product.Slug, product.SKU,
		product.CategoryID, product.SubcategoryID, product.Price, product.ComparePrice, product.Cost,
		product.Stock.Quantity, product.Stock.MinStock, product.Stock.TrackStock, product.Tags,
		product.IsActive, product.IsFeatured, product.IsDigital, product.SortOrder,
		product.SEODescription, product.UpdatedBy, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func productWhere(filter repository.ProductFilter) (string, []any) {
	where := ""
	var args []any
	and := func(cond string) {
		if where == "" {
			where = " WHERE " + cond
		} else {
			where += " AND " + cond
		}
	}
	if filter.CategoryID != "" {
		args = append(args, filter.CategoryID)
		and(fmt.Sprintf("p.category_id = $%d", len(args)))
	}
	if filter.SubcategoryID != "" {
		args = append(args, filter.SubcategoryID)
		and(fmt.Sprintf("p.subcategory_id = $%d", len(args)))
	}
	if filter.IsActive != nil {
		args = append(args, *filter.IsActive)
		and(fmt.Sprintf("p.is_active = $%d", len(args)))
	}
	if filter.IsFeatured != nil {
		args = append(args, *filter.IsFeatured)
		and(fmt.Sprintf("p.is_featured = $%d", len(args)))
	}
	if filter.IsDigital != nil {
		args = append(args, *filter.IsDigital)
		and(fmt.Sprintf("p.is_digital = $%d", len(args)))
	}
	if filter.MinPrice != nil {
		args = append(args, *filter.MinPrice)
		and(fmt.Sprintf("p.price >= $%d", len(args)))
	}
	if filter.MaxPrice != nil {
		args = append(args, *filter.MaxPrice)
		and(fmt.Sprintf("p.price <= $%d", len(args)))
	}
	if filter.LowStock {
		and("p.track_stock AND p.stock_quantity <= p.min_stock")
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		and(fmt.Sprintf("(p.name ILIKE $%d OR p.description ILIKE $%d OR p.sku ILIKE $%d OR EXISTS (SELECT 1 FROM unnest(p.tags) t WHERE t ILIKE $%d))", n, n, n, n))
	}
	return where, args
}

// List lista productos con filtros. limit <= 0 desactiva la paginación.
func (r *ProductRepo) List(ctx context.Context, filter repository.ProductFilter, limit, offset int) ([]*entity.Product, error) {
	where, args := productWhere(filter)
	query := productSelect + where + ` ORDER BY p.sort_order, p.name`
	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
		args = append(args, offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}
	return r.queryProducts(ctx, query, args...)
}

// ListActive lista todos los productos activos.
func (r *ProductRepo) ListActive(ctx context.Context) ([]*entity.Product, error) {
	return r.queryProducts(ctx, productSelect+` WHERE p.is_active = true ORDER BY p.sort_order, p.name`)
}

// ListActiveByCategory lista productos activos de una categoría.
func (r *ProductRepo) ListActiveByCategory(ctx context.Context, categoryID string) ([]*entity.Product, error) {
	query := productSelect + ` WHERE p.category_id = $1 AND p.is_active = true ORDER BY p.sort_order, p.name`
	return r.queryProducts(ctx, query, categoryID)
}

// ListActiveBySubcategory lista productos activos de una subcategoría.
func (r *ProductRepo) ListActiveBySubcategory(ctx context.Context, subcategoryID string) ([]*entity.Product, error) {
	query := productSelect + ` WHERE p.subcategory_id = $1 AND p.is_active = true ORDER BY p.sort_order, p.name`
	return r.queryProducts(ctx, query, subcategoryID)
}

// ListFeatured lista productos activos marcados como destacados.
func (r *ProductRepo) ListFeatured(ctx context.Context) ([]*entity.Product, error) {
	return r.queryProducts(ctx, productSelect+` WHERE p.is_active = true AND p.is_featured = true ORDER BY p.sort_order, p.name`)
}

func (r *ProductRepo) queryProducts(ctx context.Context, query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Count cuenta productos que cumplen el filtro.
func (r *ProductRepo) Count(ctx context.Context, filter repository.ProductFilter) (int, error) {
	where, args := productWhere(filter)
	var total int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM products p`+where, args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return total, nil
}

// CountByCategory cuenta los productos de una categoría (activos o no).
func (r *ProductRepo) CountByCategory(ctx context.Context, categoryID string) (int, error) {
	var total int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE category_id = $1`, categoryID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count products by category: %w", err)
	}
	return total, nil
}

// CountBySubcategory cuenta los productos de una subcategoría (activos o no).
func (r *ProductRepo) CountBySubcategory(ctx context.Context, subcategoryID string) (int, error) {
	var total int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE subcategory_id = $1`, subcategoryID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count products by subcategory: %w", err)
	}
	return total, nil
}

// DeactivateByCategory apaga todos los productos de una categoría (cascada).
func (r *ProductRepo) DeactivateByCategory(ctx context.Context, categoryID, updatedBy string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE products SET is_active = false, updated_by = $2, updated_at = now() WHERE category_id = $1 AND is_active = true`,
		categoryID, updatedBy,
	)
	if err != nil {
		return fmt.Errorf("deactivate products by category: %w", err)
	}
	return nil
}

// DeactivateBySubcategory apaga todos los productos de una subcategoría (cascada).
func (r *ProductRepo) DeactivateBySubcategory(ctx context.Context, subcategoryID, updatedBy string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE products SET is_active = false, updated_by = $2, updated_at = now() WHERE subcategory_id = $1 AND is_active = true`,
		subcategoryID, updatedBy,
	)
	if err != nil {
		return fmt.Errorf("deactivate products by subcategory: %w", err)
	}
	return nil
}

// UpdateStockQuantity fija la cantidad de stock (el ledger calcula el valor final).
func (r *ProductRepo) UpdateStockQuantity(ctx context.Context, productID string, quantity int, updatedBy string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE products SET stock_quantity = $2, updated_by = $3, updated_at = now() WHERE id = $1`,
		productID, quantity, updatedBy,
	)
	if err != nil {
		return fmt.Errorf("update product stock: %w", err)
	}
	return nil
}

// SetSortOrder fija el sortOrder de un producto. Retorna false si el id no existe.
func (r *ProductRepo) SetSortOrder(ctx context.Context, id string, sortOrder int, updatedBy string) (bool, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE products SET sort_order = $2, updated_by = $3, updated_at = now() WHERE id = $1`,
		id, sortOrder, updatedBy,
	)
	if err != nil {
		return false, fmt.Errorf("set product sort order: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
