package dto

import (
	"time"

	"github.com/tu-usuario/catalogo-admin/internal/domain/entity"
)

// CreateSubcategoryRequest entrada para crear una subcategoría. La categoría padre
// debe existir y estar activa.
type CreateSubcategoryRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"required,max=500"`
	CategoryID  string `json:"categoryId" validate:"required"`
	Icon        string `json:"icon"`
	Color       string `json:"color" validate:"omitempty,hexcolor"`
	SortOrder   int    `json:"sortOrder"`
	IsActive    *bool  `json:"isActive"`
}

// UpdateSubcategoryRequest entrada para actualizar una subcategoría.
type UpdateSubcategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	CategoryID  *string `json:"categoryId"`
	Icon        *string `json:"icon"`
	Color       *string `json:"color" validate:"omitempty,hexcolor"`
	SortOrder   *int    `json:"sortOrder"`
	IsActive    *bool   `json:"isActive"`
}

// SubcategoryResponse salida de una subcategoría.
type SubcategoryResponse struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Description  string            `json:"description,omitempty"`
	Slug         string            `json:"slug"`
	CategoryID   string            `json:"categoryId"`
	CategoryName string            `json:"categoryName,omitempty"`
	CategorySlug string            `json:"categorySlug,omitempty"`
	IsActive     bool              `json:"isActive"`
	Icon         string            `json:"icon,omitempty"`
	Color        string            `json:"color,omitempty"`
	SortOrder    int               `json:"sortOrder"`
	CreatedBy    string            `json:"createdBy,omitempty"`
	UpdatedBy    string            `json:"updatedBy,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
	Products     []ProductResponse `json:"products,omitempty"`
}

// ToSubcategoryResponse convierte la entidad a su representación pública.
func ToSubcategoryResponse(s *entity.Subcategory) *SubcategoryResponse {
	if s == nil {
		return nil
	}
	return &SubcategoryResponse{
		ID:           s.ID,
		Name:         s.Name,
		Description:  s.Description,
		Slug:         s.Slug,
		CategoryID:   s.CategoryID,
		CategoryName: s.CategoryName,
		CategorySlug: s.CategorySlug,
		IsActive:     s.IsActive,
		Icon:         s.Icon,
		Color:        s.Color,
		SortOrder:    s.SortOrder,
		CreatedBy:    s.CreatedBy,
		UpdatedBy:    s.UpdatedBy,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

// SubcategoryStatsResponse estadísticas de subcategorías.
type SubcategoryStatsResponse struct {
	Stats struct {
		TotalSubcategories  int `json:"totalSubcategories"`
		ActiveSubcategories int `json:"activeSubcategories"`
	} `json:"stats"`
	TopSubcategories []TopSubcategoryResponse `json:"topSubcategories"`
}

// TopSubcategoryResponse subcategoría con más productos.
type TopSubcategoryResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	CategoryName string `json:"categoryName"`
	ProductCount int    `json:"productCount"`
}
