package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/catalogo-admin/internal/application/dto"
	"github.com/tu-usuario/catalogo-admin/internal/domain"
)

// ok responde 200 con el sobre uniforme.
func ok(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(dto.Response{Success: true, Message: message, Data: data})
}

// okPaged responde 200 con metadatos de paginación (solo cuando el cliente paginó).
func okPaged(c *fiber.Ctx, message string, data interface{}, pagination *dto.Pagination) error {
	return c.JSON(dto.Response{Success: true, Message: message, Data: data, Pagination: pagination})
}

// created responde 201 con el sobre uniforme.
func created(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(dto.Response{Success: true, Message: message, Data: data})
}

// badRequest responde 400 con un mensaje simple.
func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.Response{Success: false, Message: message})
}

// failValidation responde 400 con la lista de errores de validación.
func failValidation(c *fiber.Ctx, errs []string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.Response{
		Success: false,
		Message: "errores de validación",
		Errors:  errs,
	})
}

// fail traduce errores de dominio a códigos HTTP y responde con el sobre uniforme.
func fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "error interno del servidor"
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		status, message = fiber.StatusNotFound, "recurso no encontrado"
	case errors.Is(err, domain.ErrDuplicate):
		status, message = fiber.StatusConflict, "ya existe un registro con esos datos"
	case errors.Is(err, domain.ErrHasDependents):
		status, message = fiber.StatusConflict, "no se puede eliminar: tiene registros dependientes"
	case errors.Is(err, domain.ErrInvalidCredentials):
		status, message = fiber.StatusUnauthorized, "credenciales inválidas"
	case errors.Is(err, domain.ErrUnauthorized):
		status, message = fiber.StatusUnauthorized, "no autenticado"
	case errors.Is(err, domain.ErrForbidden):
		status, message = fiber.StatusForbidden, "no tiene permisos para esta operación"
	case errors.Is(err, domain.ErrUserInactive):
		status, message = fiber.StatusForbidden, "usuario desactivado"
	case errors.Is(err, domain.ErrParentNotActive):
		status, message = fiber.StatusBadRequest, "la entidad padre no existe o está inactiva"
	case errors.Is(err, domain.ErrHierarchyMismatch):
		status, message = fiber.StatusBadRequest, "la subcategoría no pertenece a la categoría indicada"
	case errors.Is(err, domain.ErrStockNotTracked):
		status, message = fiber.StatusBadRequest, "el producto no controla stock"
	case errors.Is(err, domain.ErrInvalidInput):
		status, message = fiber.StatusBadRequest, "datos de entrada inválidos"
	}
	return c.Status(status).JSON(dto.Response{Success: false, Message: message})
}

// pageQuery lee los parámetros de paginación. Sin `page` el listado no se pagina
// y la respuesta omite los metadatos (conjunto completo).
func pageQuery(c *fiber.Ctx) dto.PageQuery {
	if c.Query("page") == "" {
		return dto.PageQuery{}
	}
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", 10)
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return dto.PageQuery{Page: page, Limit: limit, Paginated: true}
}

// boolQuery lee un parámetro booleano opcional ("true"/"false"); nil si no vino.
func boolQuery(c *fiber.Ctx, key string) *bool {
	switch c.Query(key) {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	}
	return nil
}
