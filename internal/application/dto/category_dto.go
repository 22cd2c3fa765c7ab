package dto

import (
	"time"

	"github.com/tu-usuario/catalogo-admin/internal/domain/entity"
)

// CreateCategoryRequest entrada para crear una categoría. El slug nunca se acepta
// del cliente: se deriva del nombre.
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"max=500"`
	Icon        string `json:"icon"`
	Color       string `json:"color" validate:"omitempty,hexcolor"`
	SortOrder   int    `json:"sortOrder"`
	IsActive    *bool  `json:"isActive"`
}

// UpdateCategoryRequest entrada para actualizar una categoría (campos opcionales).
type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Icon        *string `json:"icon"`
	Color       *string `json:"color" validate:"omitempty,hexcolor"`
	SortOrder   *int    `json:"sortOrder"`
	IsActive    *bool   `json:"isActive"`
}

// ReorderRequest lista ordenada de IDs; sortOrder = posición + 1.
type ReorderRequest struct {
	IDs []string `json:"ids" validate:"required,min=1"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID            string                `json:"id"`
	Name          string                `json:"name"`
	Description   string                `json:"description,omitempty"`
	Slug          string                `json:"slug"`
	IsActive      bool                  `json:"isActive"`
	Icon          string                `json:"icon,omitempty"`
	Color         string                `json:"color,omitempty"`
	SortOrder     int                   `json:"sortOrder"`
	CreatedBy     string                `json:"createdBy,omitempty"`
	UpdatedBy     string                `json:"updatedBy,omitempty"`
	CreatedAt     time.Time             `json:"createdAt"`
	UpdatedAt     time.Time             `json:"updatedAt"`
	Subcategories []SubcategoryResponse `json:"subcategories,omitempty"`
}

// ToCategoryResponse convierte la entidad a su representación pública.
func ToCategoryResponse(c *entity.Category) *CategoryResponse {
	if c == nil {
		return nil
	}
	return &CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Slug:        c.Slug,
		IsActive:    c.IsActive,
		Icon:        c.Icon,
		Color:       c.Color,
		SortOrder:   c.SortOrder,
		CreatedBy:   c.CreatedBy,
		UpdatedBy:   c.UpdatedBy,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// CategoryStatsResponse estadísticas de categorías.
type CategoryStatsResponse struct {
	Stats struct {
		TotalCategories  int `json:"totalCategories"`
		ActiveCategories int `json:"activeCategories"`
	} `json:"stats"`
	TopCategories []TopCategoryResponse `json:"topCategories"`
}

// TopCategoryResponse categoría con más subcategorías.
type TopCategoryResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	SubcategoryCount int    `json:"subcategoryCount"`
}
