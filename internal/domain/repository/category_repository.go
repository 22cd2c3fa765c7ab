package repository

import (
	"context"

	"github.com/tu-usuario/catalogo-admin/internal/domain/entity"
)

// ListFilter filtros comunes de listado del catálogo.
type ListFilter struct {
	IsActive *bool
	Search   string // nombre o descripción (subcadena, sin distinguir mayúsculas)
}

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	FindByID(ctx context.Context, id string) (*entity.Category, error)
	// FindByNameFold busca por nombre exacto sin distinguir mayúsculas.
	FindByNameFold(ctx context.Context, name string) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListFilter, limit, offset int) ([]*entity.Category, error)
	ListActive(ctx context.Context) ([]*entity.Category, error)
	Count(ctx context.Context, filter ListFilter) (int, error)
	// SetSortOrder fija el sortOrder de una categoría; no falla si el id no existe
	// (retorna false en ese caso).
	SetSortOrder(ctx context.Context, id string, sortOrder int, updatedBy string) (bool, error)
}
