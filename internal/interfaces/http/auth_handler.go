package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/catalogo-admin/internal/application/auth"
	"github.com/tu-usuario/catalogo-admin/internal/application/dto"
	"github.com/tu-usuario/catalogo-admin/pkg/validation"
)

// AuthHandler maneja las peticiones HTTP de autenticación.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión (username o email)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.Response{data=dto.LoginResponse}
// @Failure      401   {object}  dto.Response
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if in.Identifier() == "" {
		return badRequest(c, "username o email es requerido")
	}
	if errs := validation.Struct(in); errs != nil {
		return failValidation(c, errs)
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "inicio de sesión exitoso", out)
}

// Me godoc
// @Summary      Usuario autenticado
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response{data=dto.UserResponse}
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.Me(c.Context(), GetUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "", out)
}

// VerifyToken godoc
// @Summary      Verificar el token vigente
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response{data=dto.VerifyTokenResponse}
// @Failure      401  {object}  dto.Response
// @Router       /api/auth/verify-token [get]
func (h *AuthHandler) VerifyToken(c *fiber.Ctx) error {
	// El middleware ya validó token y usuario; solo queda reportarlo.
	out, err := h.uc.Me(c.Context(), GetUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "token válido", dto.VerifyTokenResponse{Valid: true, User: *out})
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	// Los JWT no se revocan del lado del servidor; el cliente descarta el token.
	return ok(c, "sesión cerrada exitosamente", nil)
}

// ChangePassword godoc
// @Summary      Cambiar la contraseña propia
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChangePasswordRequest  true  "Contraseña actual y nueva"
// @Success      200   {object}  dto.Response
// @Failure      401   {object}  dto.Response
// @Router       /api/auth/change-password [put]
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var in dto.ChangePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if errs := validation.Struct(in); errs != nil {
		return failValidation(c, errs)
	}
	if err := h.uc.ChangePassword(c.Context(), GetUserID(c), in); err != nil {
		return fail(c, err)
	}
	return ok(c, "contraseña actualizada", nil)
}
