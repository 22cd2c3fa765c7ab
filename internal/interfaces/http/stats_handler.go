package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/catalogo-admin/internal/application/stats"
)

// StatsHandler expone las estadísticas por módulo (solo admin).
type StatsHandler struct {
	uc *stats.StatsUseCase
}

// NewStatsHandler construye el handler.
func NewStatsHandler(uc *stats.StatsUseCase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

// Categories godoc
// @Summary      Estadísticas de categorías
// @Tags         stats
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response{data=dto.CategoryStatsResponse}
// @Router       /api/categories/stats [get]
func (h *StatsHandler) Categories(c *fiber.Ctx) error {
	out, err := h.uc.Categories(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "", out)
}

// Subcategories godoc
// @Summary      Estadísticas de subcategorías
// @Tags         stats
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response{data=dto.SubcategoryStatsResponse}
// @Router       /api/subcategories/stats [get]
func (h *StatsHandler) Subcategories(c *fiber.Ctx) error {
	out, err := h.uc.Subcategories(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "", out)
}

// Products godoc
// @Summary      Estadísticas de productos (incluye stock bajo y más caros)
// @Tags         stats
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response{data=dto.ProductStatsResponse}
// @Router       /api/products/stats [get]
func (h *StatsHandler) Products(c *fiber.Ctx) error {
	out, err := h.uc.Products(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "", out)
}

// Users godoc
// @Summary      Estadísticas de usuarios
// @Tags         stats
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response{data=dto.UserStatsResponse}
// @Router       /api/users/stats [get]
func (h *StatsHandler) Users(c *fiber.Ctx) error {
	out, err := h.uc.Users(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "", out)
}
