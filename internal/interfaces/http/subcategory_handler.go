package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/catalogo-admin/internal/application/dto"
	"github.com/tu-usuario/catalogo-admin/internal/application/usecase"
	"github.com/tu-usuario/catalogo-admin/internal/domain/repository"
	"github.com/tu-usuario/catalogo-admin/pkg/validation"
)

// SubcategoryHandler maneja las peticiones HTTP para Subcategory.
type SubcategoryHandler struct {
	uc *usecase.SubcategoryUseCase
}

// NewSubcategoryHandler construye el handler.
func NewSubcategoryHandler(uc *usecase.SubcategoryUseCase) *SubcategoryHandler {
	return &SubcategoryHandler{uc: uc}
}

// Create godoc
// @Summary      Crear subcategoría (la categoría padre debe estar activa)
// @Tags         subcategories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSubcategoryRequest  true  "Datos de la subcategoría"
// @Success      201   {object}  dto.Response{data=dto.SubcategoryResponse}
// @Failure      400   {object}  dto.Response
// @Failure      409   {object}  dto.Response
// @Router       /api/subcategories [post]
func (h *SubcategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSubcategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if errs := validation.Struct(in); errs != nil {
		return failValidation(c, errs)
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return created(c, "subcategoría creada", out)
}

// List godoc
// @Summary      Listar subcategorías (filtros: isActive, search; paginación opcional)
// @Tags         subcategories
// @Security     Bearer
// @Produce      json
// @Param        page     query  int     false  "Página (sin page: conjunto completo)"
// @Param        limit    query  int     false  "Tamaño de página"  default(10)
// @Param        isActive query  bool    false  "Filtrar por estado"
// @Param        search   query  string  false  "Buscar en nombre y descripción"
// @Success      200      {object}  dto.Response{data=[]dto.SubcategoryResponse}
// @Router       /api/subcategories [get]
func (h *SubcategoryHandler) List(c *fiber.Ctx) error {
	filter := repository.ListFilter{
		IsActive: boolQuery(c, "isActive"),
		Search:   c.Query("search"),
	}
	out, pagination, err := h.uc.List(c.Context(), filter, pageQuery(c))
	if err != nil {
		return fail(c, err)
	}
	return okPaged(c, "", out, pagination)
}

// ListActive godoc
// @Summary      Listar subcategorías activas (público)
// @Tags         subcategories
// @Produce      json
// @Success      200  {object}  dto.Response{data=[]dto.SubcategoryResponse}
// @Router       /api/subcategories/active [get]
func (h *SubcategoryHandler) ListActive(c *fiber.Ctx) error {
	out, err := h.uc.ListActive(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "", out)
}

// ListByCategory godoc
// @Summary      Listar subcategorías activas de una categoría (público)
// @Tags         subcategories
// @Produce      json
// @Param        categoryId  path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.Response{data=[]dto.SubcategoryResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/subcategories/category/{categoryId} [get]
func (h *SubcategoryHandler) ListByCategory(c *fiber.Ctx) error {
	out, err := h.uc.ListByCategory(c.Context(), c.Params("categoryId"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "", out)
}

// GetByID godoc
// @Summary      Obtener subcategoría por ID (incluye productos activos)
// @Tags         subcategories
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la subcategoría"
// @Success      200  {object}  dto.Response{data=dto.SubcategoryResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/subcategories/{id} [get]
func (h *SubcategoryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "", out)
}

// Update godoc
// @Summary      Actualizar subcategoría
// @Tags         subcategories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la subcategoría"
// @Param        body  body  dto.UpdateSubcategoryRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.Response{data=dto.SubcategoryResponse}
// @Failure      404   {object}  dto.Response
// @Router       /api/subcategories/{id} [put]
func (h *SubcategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSubcategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if errs := validation.Struct(in); errs != nil {
		return failValidation(c, errs)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), GetUserID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "subcategoría actualizada", out)
}

// Delete godoc
// @Summary      Eliminar subcategoría (solo sin productos)
// @Tags         subcategories
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la subcategoría"
// @Success      200  {object}  dto.Response
// @Failure      409  {object}  dto.Response
// @Router       /api/subcategories/{id} [delete]
func (h *SubcategoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return ok(c, "subcategoría eliminada", nil)
}

// ToggleStatus godoc
// @Summary      Alternar estado (desactivar cascada a productos)
// @Tags         subcategories
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la subcategoría"
// @Success      200  {object}  dto.Response{data=dto.SubcategoryResponse}
// @Router       /api/subcategories/{id}/toggle-status [patch]
func (h *SubcategoryHandler) ToggleStatus(c *fiber.Ctx) error {
	out, err := h.uc.ToggleStatus(c.Context(), c.Params("id"), GetUserID(c))
	if err != nil {
		return fail(c, err)
	}
	message := "subcategoría desactivada"
	if out.IsActive {
		message = "subcategoría activada"
	}
	return ok(c, message, out)
}

// Reorder godoc
// @Summary      Reordenar subcategorías (sortOrder = posición + 1)
// @Tags         subcategories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReorderRequest  true  "IDs en el orden deseado"
// @Success      200   {object}  dto.Response
// @Router       /api/subcategories/reorder [put]
func (h *SubcategoryHandler) Reorder(c *fiber.Ctx) error {
	var in dto.ReorderRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if len(in.IDs) == 0 {
		return badRequest(c, "ids es requerido")
	}
	if err := h.uc.Reorder(c.Context(), GetUserID(c), in.IDs); err != nil {
		return fail(c, err)
	}
	return ok(c, "subcategorías reordenadas", nil)
}
