package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/catalogo-admin/internal/application/dto"
	"github.com/tu-usuario/catalogo-admin/internal/application/usecase"
	"github.com/tu-usuario/catalogo-admin/internal/domain/repository"
	"github.com/tu-usuario/catalogo-admin/pkg/validation"
)

// UserHandler maneja las peticiones HTTP para User (gestión reservada a admin).
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Create godoc
// @Summary      Crear usuario (solo admin)
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "Datos del usuario"
// @Success      201   {object}  dto.Response{data=dto.UserResponse}
// @Failure      409   {object}  dto.Response
// @Router       /api/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
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
	return created(c, "usuario creado", out)
}

// List godoc
// @Summary      Listar usuarios (solo admin; filtros: role, isActive, search)
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        page     query  int     false  "Página (sin page: conjunto completo)"
// @Param        limit    query  int     false  "Tamaño de página"  default(10)
// @Param        role     query  string  false  "Filtrar por rol"
// @Param        isActive query  bool    false  "Filtrar por estado"
// @Param        search   query  string  false  "Buscar en username, email y nombre"
// @Success      200      {object}  dto.Response{data=[]dto.UserResponse}
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	filter := repository.UserFilter{
		Role:     c.Query("role"),
		IsActive: boolQuery(c, "isActive"),
		Search:   c.Query("search"),
	}
	out, pagination, err := h.uc.List(c.Context(), filter, pageQuery(c))
	if err != nil {
		return fail(c, err)
	}
	return okPaged(c, "", out, pagination)
}

// GetByID godoc
// @Summary      Obtener usuario por ID (propio o admin)
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del usuario"
// @Success      200  {object}  dto.Response{data=dto.UserResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/users/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "", out)
}

// Update godoc
// @Summary      Actualizar usuario (propio o admin; role e isActive solo admin)
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del usuario"
// @Param        body  body  dto.UpdateUserRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.Response{data=dto.UserResponse}
// @Failure      403   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if errs := validation.Struct(in); errs != nil {
		return failValidation(c, errs)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), GetAuthUser(c), in)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "usuario actualizado", out)
}

// Delete godoc
// @Summary      Eliminar usuario (solo admin; nunca a sí mismo)
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del usuario"
// @Success      200  {object}  dto.Response
// @Failure      403  {object}  dto.Response
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id"), GetUserID(c)); err != nil {
		return fail(c, err)
	}
	return ok(c, "usuario eliminado", nil)
}

// ToggleStatus godoc
// @Summary      Alternar estado del usuario (solo admin; nunca a sí mismo)
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del usuario"
// @Success      200  {object}  dto.Response{data=dto.UserResponse}
// @Failure      403  {object}  dto.Response
// @Router       /api/users/{id}/toggle-status [patch]
func (h *UserHandler) ToggleStatus(c *fiber.Ctx) error {
	out, err := h.uc.ToggleStatus(c.Context(), c.Params("id"), GetUserID(c))
	if err != nil {
		return fail(c, err)
	}
	message := "usuario desactivado"
	if out.IsActive {
		message = "usuario activado"
	}
	return ok(c, message, out)
}
