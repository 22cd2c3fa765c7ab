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

var _ repository.SubcategoryRepository = (*SubcategoryRepo)(nil)

// Las lecturas traen la categoría padre denormalizada (nombre y slug) vía JOIN.
const subcategorySelect = `
	SELECT s.id, s.name, s.description, s.slug, s.category_id, s.is_active, s.icon, s.color,
	       s.sort_order, s.created_by, s.updated_by, s.created_at, s.updated_at,
	       c.name, c.slug
	FROM subcategories s
	JOIN categories c ON c.id = s.category_id`

// SubcategoryRepo implementación del puerto SubcategoryRepository sobre PostgreSQL (usable con pool o tx).
type SubcategoryRepo struct {
	q Querier
}

// NewSubcategoryRepository construye el adaptador de persistencia para subcategorías. Pasar pool o tx (Querier).
func NewSubcategoryRepository(q Querier) *SubcategoryRepo {
	return &SubcategoryRepo{q: q}
}

func scanSubcategory(row pgx.Row) (*entity.Subcategory, error) {
	var s entity.Subcategory
	err := row.Scan(
		&s.ID, &s.Name, &s.Description, &s.Slug, &s.CategoryID, &s.IsActive, &s.Icon, &s.Color,
		&s.SortOrder, &s.CreatedBy, &s.UpdatedBy, &s.CreatedAt, &s.UpdatedAt,
		&s.CategoryName, &s.CategorySlug,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create persiste una nueva subcategoría.
func (r *SubcategoryRepo) Create(ctx context.Context, subcategory *entity.Subcategory) error {
	query := `
		INSERT INTO subcategories (id, name, description, slug, category_id, is_active, icon, color, sort_order, created_by, updated_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		subcategory.ID, subcategory.Name, subcategory.Description, subcategory.Slug,
		subcategory.CategoryID, subcategory.IsActive, subcategory.Icon, subcategory.Color,
		subcategory.SortOrder, subcategory.CreatedBy, subcategory.UpdatedBy,
		subcategory.CreatedAt, subcategory.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert subcategory: %w", err)
	}
	return nil
}

// FindByID obtiene una subcategoría por ID. Retorna nil sin error si no existe.
func (r *SubcategoryRepo) FindByID(ctx context.Context, id string) (*entity.Subcategory, error) {
	s, err := scanSubcategory(r.q.QueryRow(ctx, subcategorySelect+` WHERE s.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subcategory: %w", err)
	}
	return s, nil
}

// FindByNameFoldInCategory busca por nombre exacto dentro de una categoría, sin distinguir mayúsculas.
func (r *SubcategoryRepo) FindByNameFoldInCategory(ctx context.Context, name, categoryID string) (*entity.Subcategory, error) {
	query := subcategorySelect + ` WHERE LOWER(s.name) = LOWER($1) AND s.category_id = $2`
	s, err := scanSubcategory(r.q.QueryRow(ctx, query, name, categoryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subcategory by name: %w", err)
	}
	return s, nil
}

// Update actualiza una subcategoría existente.
func (r *SubcategoryRepo) Update(ctx context.Context, subcategory *entity.Subcategory) error {
	query := `
		UPDATE subcategories
		SET name = $2, description = $3, slug = $4, category_id = $5, is_active = $6,
		    icon = $7, color = $8, sort_order = $9, updated_by = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		subcategory.ID, subcategory.Name, subcategory.Description, subcategory.Slug,
		subcategory.CategoryID, subcategory.IsActive, subcategory.Icon, subcategory.Color,
		subcategory.SortOrder, subcategory.UpdatedBy, subcategory.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update subcategory: %w", err)
	}
	return nil
}

// Delete elimina una subcategoría por ID.
func (r *SubcategoryRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM subcategories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete subcategory: %w", err)
	}
	return nil
}

func subcategoryWhere(filter repository.ListFilter) (string, []any) {
	where := ""
	var args []any
	and := func(cond string) {
		if where == "" {
			where = " WHERE " + cond
		} else {
			where += " AND " + cond
		}
	}
	if filter.IsActive != nil {
		args = append(args, *filter.IsActive)
		and(fmt.Sprintf("s.is_active = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		and(fmt.Sprintf("(s.name ILIKE $%d OR s.description ILIKE $%d)", len(args), len(args)))
	}
	return where, args
}

// List lista subcategorías con filtros. limit <= 0 desactiva la paginación.
func (r *SubcategoryRepo) List(ctx context.Context, filter repository.ListFilter, limit, offset int) ([]*entity.Subcategory, error) {
	where, args := subcategoryWhere(filter)
	query := subcategorySelect + where + ` ORDER BY s.sort_order, s.name`
	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
		args = append(args, offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}
	return r.querySubcategories(ctx, query, args...)
}

// ListActive lista todas las subcategorías activas.
func (r *SubcategoryRepo) ListActive(ctx context.Context) ([]*entity.Subcategory, error) {
	return r.querySubcategories(ctx, subcategorySelect+` WHERE s.is_active = true ORDER BY s.sort_order, s.name`)
}

// ListActiveByCategory lista subcategorías activas de una categoría.
func (r *SubcategoryRepo) ListActiveByCategory(ctx context.Context, categoryID string) ([]*entity.Subcategory, error) {
	query := subcategorySelect + ` WHERE s.category_id = $1 AND s.is_active = true ORDER BY s.sort_order, s.name`
	return r.querySubcategories(ctx, query, categoryID)
}

func (r *SubcategoryRepo) querySubcategories(ctx context.Context, query string, args ...any) ([]*entity.Subcategory, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list subcategories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Subcategory
	for rows.Next() {
		s, err := scanSubcategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan subcategory: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Count cuenta subcategorías que cumplen el filtro.
func (r *SubcategoryRepo) Count(ctx context.Context, filter repository.ListFilter) (int, error) {
	where, args := subcategoryWhere(filter)
	var total int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM subcategories s`+where, args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count subcategories: %w", err)
	}
	return total, nil
}

// CountByCategory cuenta las subcategorías de una categoría (activas o no).
func (r *SubcategoryRepo) CountByCategory(ctx context.Context, categoryID string) (int, error) {
	var total int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM subcategories WHERE category_id = $1`, categoryID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count subcategories by category: %w", err)
	}
	return total, nil
}

// DeactivateByCategory apaga todas las subcategorías de una categoría (cascada).
func (r *SubcategoryRepo) DeactivateByCategory(ctx context.Context, categoryID, updatedBy string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE subcategories SET is_active = false, updated_by = $2, updated_at = now() WHERE category_id = $1 AND is_active = true`,
		categoryID, updatedBy,
	)
	if err != nil {
		return fmt.Errorf("deactivate subcategories: %w", err)
	}
	return nil
}

// SetSortOrder fija el sortOrder de una subcategoría. Retorna false si el id no existe.
func (r *SubcategoryRepo) SetSortOrder(ctx context.Context, id string, sortOrder int, updatedBy string) (bool, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE subcategories SET sort_order = $2, updated_by = $3, updated_at = now() WHERE id = $1`,
		id, sortOrder, updatedBy,
	)
	if err != nil {
		return false, fmt.Errorf("set subcategory sort order: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
