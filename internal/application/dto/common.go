package dto

// Response sobre uniforme de todas las respuestas de la API.
type Response struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Errors     []string    `json:"errors,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination metadatos de página. Solo se incluye cuando el cliente envió `page`;
// sin `page` el listado devuelve el conjunto completo (comportamiento deliberado
// para listados administrativos pequeños).
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// NewPagination calcula los metadatos a partir del total.
func NewPagination(page, limit, total int) *Pagination {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return &Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}

// PageQuery parámetros de paginación del query string. Paginated indica si el
// cliente envió `page` explícitamente.
type PageQuery struct {
	Page      int
	Limit     int
	Paginated bool
}

// Offset desplazamiento para la consulta (page es 1-based).
func (p PageQuery) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}
