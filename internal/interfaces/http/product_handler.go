package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/catalogo-admin/internal/application/dto"
	"github.com/tu-usuario/catalogo-admin/internal/application/stock"
	"github.com/tu-usuario/catalogo-admin/internal/application/usecase"
	"github.com/tu-usuario/catalogo-admin/internal/domain/repository"
	"github.com/tu-usuario/catalogo-admin/pkg/validation"
)

// ProductHandler maneja las peticiones HTTP para Product, incluido el ajuste de stock.
type ProductHandler struct {
	uc      *usecase.ProductUseCase
	stockUC *stock.StockUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, stockUC *stock.StockUseCase) *ProductHandler {
	return &ProductHandler{uc: uc, stockUC: stockUC}
}

// Create godoc
// @Summary      Crear producto (categoría y subcategoría activas y coherentes)
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.Response{data=dto.ProductResponse}
// @Failure      400   {object}  dto.Response
// @Failure      409   {object}  dto.Response
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
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
	return created(c, "producto creado", out)
}

func productFilter(c *fiber.Ctx) repository.ProductFilter {
	filter := repository.ProductFilter{
		CategoryID:    c.Query("categoryId"),
		SubcategoryID: c.Query("subcategoryId"),
		IsActive:      boolQuery(c, "isActive"),
		IsFeatured:    boolQuery(c, "isFeatured"),
		IsDigital:     boolQuery(c, "isDigital"),
		LowStock:      c.Query("lowStock") == "true",
		Search:        c.Query("search"),
	}
	if v := c.Query("minPrice"); v != "" {
		if d, err := decimal.NewFromString(v); err == nil {
			filter.MinPrice = &d
		}
	}
	if v := c.Query("maxPrice"); v != "" {
		if d, err := decimal.NewFromString(v); err == nil {
			filter.MaxPrice = &d
		}
	}
	return filter
}

// List godoc
// @Summary      Listar productos (filtros y paginación opcional)
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        page          query  int     false  "Página (sin page: conjunto completo)"
// @Param        limit         query  int     false  "Tamaño de página"  default(10)
// @Param        categoryId    query  string  false  "Filtrar por categoría"
// @Param        subcategoryId query  string  false  "Filtrar por subcategoría"
// @Param        isActive      query  bool    false  "Filtrar por estado"
// @Param        isFeatured    query  bool    false  "Solo destacados"
// @Param        isDigital     query  bool    false  "Solo digitales"
// @Param        minPrice      query  number  false  "Precio mínimo"
// @Param        maxPrice      query  number  false  "Precio máximo"
// @Param        lowStock      query  bool    false  "Solo stock en o bajo el mínimo"
// @Param        search        query  string  false  "Buscar en nombre, descripción, SKU y tags"
// @Success      200           {object}  dto.Response{data=[]dto.ProductResponse}
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, pagination, err := h.uc.List(c.Context(), productFilter(c), pageQuery(c))
	if err != nil {
		return fail(c, err)
	}
	return okPaged(c, "", out, pagination)
}

// ListActive godoc
// @Summary      Listar productos activos (público)
// @Tags         products
// @Produce      json
// @Success      200  {object}  dto.Response{data=[]dto.ProductResponse}
// @Router       /api/products/active [get]
func (h *ProductHandler) ListActive(c *fiber.Ctx) error {
	out, err := h.uc.ListActive(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "", out)
}

// ListFeatured godoc
// @Summary      Listar productos destacados (público)
// @Tags         products
// @Produce      json
// @Success      200  {object}  dto.Response{data=[]dto.ProductResponse}
// @Router       /api/products/featured [get]
func (h *ProductHandler) ListFeatured(c *fiber.Ctx) error {
	out, err := h.uc.ListFeatured(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "", out)
}

// ListByCategory godoc
// @Summary      Listar productos activos de una categoría (público)
// @Tags         products
// @Produce      json
// @Param        categoryId  path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.Response{data=[]dto.ProductResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/products/category/{categoryId} [get]
func (h *ProductHandler) ListByCategory(c *fiber.Ctx) error {
	out, err := h.uc.ListByCategory(c.Context(), c.Params("categoryId"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "", out)
}

// ListBySubcategory godoc
// @Summary      Listar productos activos de una subcategoría (público)
// @Tags         products
// @Produce      json
// @Param        subcategoryId  path  string  true  "ID de la subcategoría"
// @Success      200  {object}  dto.Response{data=[]dto.ProductResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/products/subcategory/{subcategoryId} [get]
func (h *ProductHandler) ListBySubcategory(c *fiber.Ctx) error {
	out, err := h.uc.ListBySubcategory(c.Context(), c.Params("subcategoryId"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "", out)
}

// GetBySKU godoc
// @Summary      Obtener producto por SKU
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        sku  path  string  true  "SKU del producto"
// @Success      200  {object}  dto.Response{data=dto.ProductResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/products/sku/{sku} [get]
func (h *ProductHandler) GetBySKU(c *fiber.Ctx) error {
	out, err := h.uc.GetBySKU(c.Context(), c.Params("sku"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "", out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.Response{data=dto.ProductResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "", out)
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.Response{data=dto.ProductResponse}
// @Failure      404   {object}  dto.Response
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
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
	return ok(c, "producto actualizado", out)
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return ok(c, "producto eliminado", nil)
}

// ToggleStatus godoc
// @Summary      Alternar estado del producto (sin cascada)
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.Response{data=dto.ProductResponse}
// @Router       /api/products/{id}/toggle-status [patch]
func (h *ProductHandler) ToggleStatus(c *fiber.Ctx) error {
	out, err := h.uc.ToggleStatus(c.Context(), c.Params("id"), GetUserID(c))
	if err != nil {
		return fail(c, err)
	}
	message := "producto desactivado"
	if out.IsActive {
		message = "producto activado"
	}
	return ok(c, message, out)
}

// AdjustStock godoc
// @Summary      Ajustar stock (set, add, subtract; nunca queda negativo)
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.AdjustStockRequest  true  "Cantidad y operación"
// @Success      200   {object}  dto.Response{data=dto.StockAdjustedResponse}
// @Failure      400   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Router       /api/products/{id}/stock [patch]
func (h *ProductHandler) AdjustStock(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if errs := validation.Struct(in); errs != nil {
		return failValidation(c, errs)
	}
	out, err := h.stockUC.Adjust(c.Context(), c.Params("id"), GetUserID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "stock actualizado", out)
}

// Reorder godoc
// @Summary      Reordenar productos (sortOrder = posición + 1)
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReorderRequest  true  "IDs en el orden deseado"
// @Success      200   {object}  dto.Response
// @Router       /api/products/reorder [put]
func (h *ProductHandler) Reorder(c *fiber.Ctx) error {
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
	return ok(c, "productos reordenados", nil)
}
