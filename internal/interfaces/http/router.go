package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/catalogo-admin/internal/application/auth"
	"github.com/tu-usuario/catalogo-admin/internal/application/stats"
	"github.com/tu-usuario/catalogo-admin/internal/application/stock"
	"github.com/tu-usuario/catalogo-admin/internal/application/usecase"
	"github.com/tu-usuario/catalogo-admin/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	UserUC        *usecase.UserUseCase
	CategoryUC    *usecase.CategoryUseCase
	SubcategoryUC *usecase.SubcategoryUseCase
	ProductUC     *usecase.ProductUseCase
	StockUC       *stock.StockUseCase
	StatsUC       *stats.StatsUseCase
	Users         UserFinder
	JWTSecret     string
}

// Router registra las rutas de la API.
// Políticas de acceso: las escrituras del catálogo admiten admin y coordinador;
// eliminar, estadísticas y gestión de usuarios son solo de admin. Los listados
// públicos (/active, /featured, por categoría/subcategoría) no requieren token.
func Router(app *fiber.App, deps RouterDeps) {
	authMW := AuthMiddleware(deps.JWTSecret, deps.Users)
	adminOnly := RequireRole(entity.RoleAdmin)
	catalogWrite := RequireRole(entity.RoleAdmin, entity.RoleCoordinador)
	selfOrAdmin := RequireSelfOrRole(entity.RoleAdmin)

	api := app.Group("/api")

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authMW, authHandler.Logout)
	authGroup.Get("/me", authMW, authHandler.Me)
	authGroup.Get("/verify-token", authMW, authHandler.VerifyToken)
	authGroup.Put("/change-password", authMW, authHandler.ChangePassword)

	statsHandler := NewStatsHandler(deps.StatsUC)

	// Categories
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/active", categoryHandler.ListActive)
	categories.Get("/stats", authMW, adminOnly, statsHandler.Categories)
	categories.Put("/reorder", authMW, catalogWrite, categoryHandler.Reorder)
	categories.Get("/", authMW, categoryHandler.List)
	categories.Post("/", authMW, catalogWrite, categoryHandler.Create)
	categories.Get("/:id", authMW, categoryHandler.GetByID)
	categories.Put("/:id", authMW, catalogWrite, categoryHandler.Update)
	categories.Delete("/:id", authMW, adminOnly, categoryHandler.Delete)
	categories.Patch("/:id/toggle-status", authMW, catalogWrite, categoryHandler.ToggleStatus)

	// Subcategories
	subcategories := api.Group("/subcategories")
	subcategoryHandler := NewSubcategoryHandler(deps.SubcategoryUC)
	subcategories.Get("/active", subcategoryHandler.ListActive)
	subcategories.Get("/stats", authMW, adminOnly, statsHandler.Subcategories)
	subcategories.Get("/category/:categoryId", subcategoryHandler.ListByCategory)
	subcategories.Put("/reorder", authMW, catalogWrite, subcategoryHandler.Reorder)
	subcategories.Get("/", authMW, subcategoryHandler.List)
	subcategories.Post("/", authMW, catalogWrite, subcategoryHandler.Create)
	subcategories.Get("/:id", authMW, subcategoryHandler.GetByID)
	subcategories.Put("/:id", authMW, catalogWrite, subcategoryHandler.Update)
	subcategories.Delete("/:id", authMW, adminOnly, subcategoryHandler.Delete)
	subcategories.Patch("/:id/toggle-status", authMW, catalogWrite, subcategoryHandler.ToggleStatus)

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.StockUC)
	products.Get("/active", productHandler.ListActive)
	products.Get("/featured", productHandler.ListFeatured)
	products.Get("/stats", authMW, adminOnly, statsHandler.Products)
	products.Get("/category/:categoryId", productHandler.ListByCategory)
	products.Get("/subcategory/:subcategoryId", productHandler.ListBySubcategory)
	products.Get("/sku/:sku", authMW, productHandler.GetBySKU)
	products.Put("/reorder", authMW, catalogWrite, productHandler.Reorder)
	products.Get("/", authMW, productHandler.List)
	products.Post("/", authMW, catalogWrite, productHandler.Create)
	products.Get("/:id", authMW, productHandler.GetByID)
	products.Put("/:id", authMW, catalogWrite, productHandler.Update)
	products.Delete("/:id", authMW, adminOnly, productHandler.Delete)
	products.Patch("/:id/toggle-status", authMW, catalogWrite, productHandler.ToggleStatus)
	products.Patch("/:id/stock", authMW, catalogWrite, productHandler.AdjustStock)

	// Users
	users := api.Group("/users", authMW)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/stats", adminOnly, statsHandler.Users)
	users.Get("/", adminOnly, userHandler.List)
	users.Post("/", adminOnly, userHandler.Create)
	users.Get("/:id", selfOrAdmin, userHandler.GetByID)
	users.Put("/:id", selfOrAdmin, userHandler.Update)
	users.Delete("/:id", adminOnly, userHandler.Delete)
	users.Patch("/:id/toggle-status", adminOnly, userHandler.ToggleStatus)
}
