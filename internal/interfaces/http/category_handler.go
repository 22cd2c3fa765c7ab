package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/catalogo-admin/internal/application/dto"
	"github.com/tu-usuario/catalogo-admin/internal/application/usecase"
	"github.com/tu-usuario/catalogo-admin/internal/domain/repository"
	"github.com/tu-usuario/catalogo-admin/pkg/validation"
)

// CategoryHandler maneja las peticiones HTTP para Category.
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// Create godoc
// @Summary      Crear categoría
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryRequest  true  "Datos de la categoría"
// @Success      201   {object}  dto.Response{data=dto.CategoryResponse}
// @Failure      409   {object}  dto.Response
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
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
	return created(c, "categoría creada", out)
}

// List godoc
// @Summary      Listar categorías (filtros: isActive, search; paginación opcional)
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        page     query  int     false  "Página (sin page: conjunto completo)"
// @Param        limit    query  int     false  "Tamaño de página"  default(10)
// @Param        isActive query  bool    false  "Filtrar por estado"
// @Param        search   query  string  false  "Buscar en nombre y descripción"
// @Success      200      {object}  dto.Response{data=[]dto.CategoryResponse}
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
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
// @Summary      Listar categorías activas (público)
// @Tags         categories
// @Produce      json
// @Success      200  {object}  dto.Response{data=[]dto.CategoryResponse}
// @Router       /api/categories/active [get]
func (h *CategoryHandler) ListActive(c *fiber.Ctx) error {
	out, err := h.uc.ListActive(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "", out)
}

// GetByID godoc
// @Summary      Obtener categoría por ID (incluye subcategorías activas)
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.Response{data=dto.CategoryResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/categories/{id} [get]
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "", out)
}

// Update godoc
// @Summary      Actualizar categoría
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la categoría"
// @Param        body  body  dto.UpdateCategoryRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.Response{data=dto.CategoryResponse}
// @Failure      404   {object}  dto.Response
// @Router       /api/categories/{id} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCategoryRequest
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
	return ok(c, "categoría actualizada", out)
}

// Delete godoc
// @Summary      Eliminar categoría (solo sin subcategorías ni productos)
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.Response
// @Failure      409  {object}  dto.Response
// @Router       /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return ok(c, "categoría eliminada", nil)
}

// ToggleStatus godoc
// @Summary      Alternar estado (desactivar cascada a subcategorías y productos)
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.Response{data=dto.CategoryResponse}
// @Router       /api/categories/{id}/toggle-status [patch]
func (h *CategoryHandler) ToggleStatus(c *fiber.Ctx) error {
	out, err := h.uc.ToggleStatus(c.Context(), c.Params("id"), GetUserID(c))
	if err != nil {
		return fail(c, err)
	}
	message := "categoría desactivada"
	if out.IsActive {
		message = "categoría activada"
	}
	return ok(c, message, out)
}

// Reorder godoc
// @Summary      Reordenar categorías (sortOrder = posición + 1)
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReorderRequest  true  "IDs en el orden deseado"
// @Success      200   {object}  dto.Response
// @Router       /api/categories/reorder [put]
func (h *CategoryHandler) Reorder(c *fiber.Ctx) error {
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
	return ok(c, "categorías reordenadas", nil)
}
