package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/tu-usuario/catalogo-admin/internal/application/dto"
	"github.com/tu-usuario/catalogo-admin/internal/domain"
	"github.com/tu-usuario/catalogo-admin/internal/domain/repository"
	"github.com/tu-usuario/catalogo-admin/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost costo de hash para contraseñas.
const bcryptCost = 12

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login, perfil propio y cambio de contraseña.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica username-o-email + contraseña, estampa lastLogin y emite un JWT.
// Un identificador desconocido y una contraseña incorrecta responden lo mismo
// (ErrInvalidCredentials) para no filtrar qué usuarios existen.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	identifier := strings.ToLower(strings.TrimSpace(in.Identifier()))
	if identifier == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.FindByUsernameOrEmail(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, domain.ErrUserInactive
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	// Estampar lastLogin es contabilidad: si falla se informa pero el login procede.
	now := time.Now()
	if err := uc.userRepo.MarkLastLogin(ctx, user.ID, now); err != nil {
		log.Warn().Err(err).Str("userId", user.ID).Msg("no se pudo estampar lastLogin")
	} else {
		user.LastLogin = &now
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		User:      *dto.ToUserResponse(user),
		Token:     token,
		ExpiresIn: fmt.Sprintf("%dm", uc.jwtCfg.ExpMinutes),
	}, nil
}

// Me devuelve el perfil del usuario autenticado.
func (uc *AuthUseCase) Me(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return dto.ToUserResponse(user), nil
}

// ChangePassword verifica la contraseña actual y persiste el hash de la nueva.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, userID string, in dto.ChangePasswordRequest) error {
	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		return domain.ErrInvalidCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcryptCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	user.UpdatedBy = userID
	user.UpdatedAt = time.Now()
	return uc.userRepo.Update(ctx, user)
}
