package entity

import "time"

// Subcategory nivel intermedio de la jerarquía. El nombre es único dentro de su
// categoría padre; la categoría debe existir y estar activa al establecer el enlace.
type Subcategory struct {
	ID          string
	Name        string
	Description string
	Slug        string
	CategoryID  string
	IsActive    bool
	Icon        string
	Color       string
	SortOrder   int
	CreatedBy   string
	UpdatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// CategoryName/CategorySlug denormalizados en lecturas con JOIN (no se persisten aquí).
	CategoryName string
	CategorySlug string
}
