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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

const categoryColumns = `id, name, description, slug, is_active, icon, color, sort_order, created_by, updated_by, created_at, updated_at`

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL (usable con pool o tx).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia para categorías. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

func scanCategory(row pgx.Row) (*entity.Category, error) {
	var c entity.Category
	err := row.Scan(
		&c.ID, &c.Name, &c.Description, &c.Slug, &c.IsActive, &c.Icon, &c.Color,
		&c.SortOrder, &c.CreatedBy, &c.UpdatedBy, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste una nueva categoría.
func (r *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	query := `
		INSERT INTO categories (` + categoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		category.ID, category.Name, category.Description, category.Slug, category.IsActive,
		category.Icon, category.Color, category.SortOrder, category.CreatedBy, category.UpdatedBy,
		category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// FindByID obtiene una categoría por ID. Retorna nil sin error si no existe.
func (r *CategoryRepo) FindByID(ctx context.Context, id string) (*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`
	c, err := scanCategory(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

// FindByNameFold busca por nombre exacto sin distinguir mayúsculas.
func (r *CategoryRepo) FindByNameFold(ctx context.Context, name string) (*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE LOWER(name) = LOWER($1)`
	c, err := scanCategory(r.q.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category by name: %w", err)
	}
	return c, nil
}

// Update actualiza una categoría existente.
func (r *CategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	query := `
		UPDATE categories
		SET name = $2, description = $3, slug = $4, is_active = $5, icon = $6, color = $7,
		    sort_order = $8, updated_by = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		category.ID, category.Name, category.Description, category.Slug, category.IsActive,
		category.Icon, category.Color, category.SortOrder, category.UpdatedBy, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// Delete elimina una categoría por ID.
func (r *CategoryRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// listWhere arma la cláusula WHERE y los argumentos para el filtro común.
func categoryWhere(filter repository.ListFilter) (string, []any) {
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
		and(fmt.Sprintf("is_active = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		and(fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", len(args), len(args)))
	}
	return where, args
}

// List lista categorías con filtros. limit <= 0 desactiva la paginación.
func (r *CategoryRepo) List(ctx context.Context, filter repository.ListFilter, limit, offset int) ([]*entity.Category, error) {
	where, args := categoryWhere(filter)
	query := `SELECT ` + categoryColumns + ` FROM categories` + where + ` ORDER BY sort_order, name`
	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
		args = append(args, offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}
	return r.queryCategories(ctx, query, args...)
}

// ListActive lista todas las categorías activas ordenadas por sortOrder y nombre.
func (r *CategoryRepo) ListActive(ctx context.Context) ([]*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE is_active = true ORDER BY sort_order, name`
	return r.queryCategories(ctx, query)
}

func (r *CategoryRepo) queryCategories(ctx context.Context, query string, args ...any) ([]*entity.Category, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Count cuenta categorías que cumplen el filtro.
func (r *CategoryRepo) Count(ctx context.Context, filter repository.ListFilter) (int, error) {
	where, args := categoryWhere(filter)
	var total int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM categories`+where, args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count categories: %w", err)
	}
	return total, nil
}

// SetSortOrder fija el sortOrder de una categoría. Retorna false si el id no existe.
func (r *CategoryRepo) SetSortOrder(ctx context.Context, id string, sortOrder int, updatedBy string) (bool, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE categories SET sort_order = $2, updated_by = $3, updated_at = now() WHERE id = $1`,
		id, sortOrder, updatedBy,
	)
	if err != nil {
		return false, fmt.Errorf("set category sort order: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
