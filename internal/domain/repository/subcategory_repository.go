package repository

import (
	"context"

	"github.com/tu-usuario/catalogo-admin/internal/domain/entity"
)

// SubcategoryRepository define el puerto de persistencia para Subcategory (DIP).
type SubcategoryRepository interface {
	Create(ctx context.Context, subcategory *entity.Subcategory) error
	FindByID(ctx context.Context, id string) (*entity.Subcategory, error)
	// FindByNameFoldInCategory busca por nombre exacto dentro de una categoría,
	// sin distinguir mayúsculas (la unicidad es por categoría).
	FindByNameFoldInCategory(ctx context.Context, name, categoryID string) (*entity.Subcategory, error)
	Update(ctx context.Context, subcategory *entity.Subcategory) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListFilter, limit, offset int) ([]*entity.Subcategory, error)
	ListActive(ctx context.Context) ([]*entity.Subcategory, error)
	ListActiveByCategory(ctx context.Context, categoryID string) ([]*entity.Subcategory, error)
	Count(ctx context.Context, filter ListFilter) (int, error)
	CountByCategory(ctx context.Context, categoryID string) (int, error)
	// DeactivateByCategory apaga todas las subcategorías de una categoría (cascada).
	DeactivateByCategory(ctx context.Context, categoryID, updatedBy string) error
	SetSortOrder(ctx context.Context, id string, sortOrder int, updatedBy string) (bool, error)
}
