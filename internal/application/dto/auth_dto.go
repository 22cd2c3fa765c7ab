package dto

// LoginRequest entrada de login. Acepta username o email como identificador.
type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password" validate:"required"`
}

// Identifier devuelve el identificador presentado (email tiene prioridad).
func (r LoginRequest) Identifier() string {
	if r.Email != "" {
		return r.Email
	}
	return r.Username
}

// LoginResponse token emitido más el usuario autenticado.
type LoginResponse struct {
	User      UserResponse `json:"user"`
	Token     string       `json:"token"`
	ExpiresIn string       `json:"expiresIn"`
}

// VerifyTokenResponse confirmación de un token vigente junto a su usuario.
type VerifyTokenResponse struct {
	Valid bool         `json:"valid"`
	User  UserResponse `json:"user"`
}

// ChangePasswordRequest entrada para cambio de contraseña del propio usuario.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}
