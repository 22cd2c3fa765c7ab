package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/catalogo-admin/internal/application/dto"
	"github.com/tu-usuario/catalogo-admin/internal/domain/entity"
	"github.com/tu-usuario/catalogo-admin/pkg/jwt"
)

// LocalAuthUser key del usuario autenticado en c.Locals.
const LocalAuthUser = "auth_user"

// UserFinder resuelve el usuario del token contra la base en cada petición, así
// un usuario desactivado pierde acceso de inmediato aunque su token siga vigente.
type UserFinder interface {
	FindByID(ctx context.Context, id string) (*entity.User, error)
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.Response{Success: false, Message: message})
}

// AuthMiddleware valida el Bearer Token JWT, resuelve el usuario y lo deja en c.Locals.
func AuthMiddleware(jwtSecret string, users UserFinder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return unauthorized(c, "Authorization header requerido")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return unauthorized(c, "formato: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return unauthorized(c, "token vacío")
		}
		userID, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return unauthorized(c, "token inválido o expirado")
		}
		user, err := users.FindByID(c.Context(), userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.Response{Success: false, Message: "error interno del servidor"})
		}
		if user == nil {
			return unauthorized(c, "usuario no encontrado")
		}
		if !user.IsActive {
			return c.Status(fiber.StatusForbidden).JSON(dto.Response{Success: false, Message: "usuario desactivado"})
		}
		c.Locals(LocalAuthUser, user)
		return c.Next()
	}
}

// RequireRole permite el paso solo a los roles indicados (después de AuthMiddleware).
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetAuthUser(c)
		if user == nil {
			return unauthorized(c, "no autenticado")
		}
		for _, role := range roles {
			if user.Role == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.Response{Success: false, Message: "no tiene permisos para esta operación"})
	}
}

// RequireSelfOrRole permite el paso si el :id de la ruta es el propio usuario o
// si el actor tiene uno de los roles indicados.
func RequireSelfOrRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetAuthUser(c)
		if user == nil {
			return unauthorized(c, "no autenticado")
		}
		if c.Params("id") == user.ID {
			return c.Next()
		}
		for _, role := range roles {
			if user.Role == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.Response{Success: false, Message: "no tiene permisos para esta operación"})
	}
}

// GetAuthUser devuelve el usuario autenticado del contexto (después del middleware de auth).
func GetAuthUser(c *fiber.Ctx) *entity.User {
	v := c.Locals(LocalAuthUser)
	if v == nil {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}

// GetUserID devuelve el ID del usuario autenticado.
func GetUserID(c *fiber.Ctx) string {
	if u := GetAuthUser(c); u != nil {
		return u.ID
	}
	return ""
}

// GetRole devuelve el rol del usuario autenticado.
func GetRole(c *fiber.Ctx) string {
	if u := GetAuthUser(c); u != nil {
		return u.Role
	}
	return ""
}
