package entity

import "time"

// Category nivel raíz de la jerarquía Categoría → Subcategoría → Producto.
// El slug se deriva del nombre y nunca lo aporta el cliente.
type Category struct {
	ID          string
	Name        string // único (comparación sin distinguir mayúsculas)
	Description string
	Slug        string
	IsActive    bool
	Icon        string
	Color       string // código hexadecimal opcional
	SortOrder   int
	CreatedBy   string
	UpdatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
