package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/catalogo-admin/internal/domain/entity"
)

// UserFilter filtros de listado de usuarios.
type UserFilter struct {
	Role     string
	IsActive *bool
	Search   string // username, email, nombre o apellido (subcadena, sin distinguir mayúsculas)
}

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id string) (*entity.User, error)
	// FindByUsernameOrEmail busca por username o email, sin distinguir mayúsculas.
	FindByUsernameOrEmail(ctx context.Context, value string) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter UserFilter, limit, offset int) ([]*entity.User, error)
	Count(ctx context.Context, filter UserFilter) (int, error)
	MarkLastLogin(ctx context.Context, id string, at time.Time) error
}
