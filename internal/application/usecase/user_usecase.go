package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/catalogo-admin/internal/application/dto"
	"github.com/tu-usuario/catalogo-admin/internal/domain"
	"github.com/tu-usuario/catalogo-admin/internal/domain/entity"
	"github.com/tu-usuario/catalogo-admin/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost costo de hash para contraseñas.
const bcryptCost = 12

// UserUseCase gestión de usuarios. Las reglas de campo sensibles (role, isActive)
// exigen que el actor sea admin aunque la ruta permita self-or-admin.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create crea un usuario (solo admin). Username y email son únicos sin distinguir
// mayúsculas; la contraseña se persiste solo como hash bcrypt.
func (uc *UserUseCase) Create(ctx context.Context, actorID string, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	if existing, err := uc.repo.FindByUsername(ctx, in.Username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if existing, err := uc.repo.FindByEmail(ctx, in.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrDuplicate
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, err
	}
	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		Email:        strings.ToLower(in.Email),
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Role:         in.Role,
		IsActive:     isActive,
		Phone:        in.Phone,
		CreatedBy:    actorID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return dto.ToUserResponse(user), nil
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return dto.ToUserResponse(user), nil
}

// List lista usuarios con filtros y paginación opcional.
func (uc *UserUseCase) List(ctx context.Context, filter repository.UserFilter, page dto.PageQuery) ([]dto.UserResponse, *dto.Pagination, error) {
	limit, offset := 0, 0
	if page.Paginated {
		limit, offset = page.Limit, page.Offset()
	}
	list, err := uc.repo.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *dto.ToUserResponse(u))
	}
	if !page.Paginated {
		return items, nil, nil
	}
	total, err := uc.repo.Count(ctx, filter)
	if err != nil {
		return nil, nil, err
	}
	return items, dto.NewPagination(page.Page, page.Limit, total), nil
}

// Update actualiza un usuario. El actor solo puede tocar role/isActive si es admin;
// username/email nuevos re-verifican unicidad.
func (uc *UserUseCase) Update(ctx context.Context, id string, actor *entity.User, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	if (in.Role != nil || in.IsActive != nil) && actor.Role != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	if in.Username != nil && !strings.EqualFold(*in.Username, user.Username) {
		existing, err := uc.repo.FindByUsername(ctx, *in.Username)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != user.ID {
			return nil, domain.ErrDuplicate
		}
		user.Username = *in.Username
	}
	if in.Email != nil && !strings.EqualFold(*in.Email, user.Email) {
		existing, err := uc.repo.FindByEmail(ctx, *in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != user.ID {
			return nil, domain.ErrDuplicate
		}
		user.Email = strings.ToLower(*in.Email)
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcryptCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	if in.Role != nil {
		if !entity.ValidRole(*in.Role) {
			return nil, domain.ErrInvalidInput
		}
		user.Role = *in.Role
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}

	user.UpdatedBy = actor.ID
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return dto.ToUserResponse(user), nil
}

// Delete elimina un usuario (solo admin). Un usuario nunca se elimina a sí mismo.
func (uc *UserUseCase) Delete(ctx context.Context, id, actorID string) error {
	if id == actorID {
		return domain.ErrForbidden
	}
	user, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return uc.repo.Delete(ctx, id)
}

// ToggleStatus invierte isActive (solo admin). Un admin no se desactiva a sí mismo.
func (uc *UserUseCase) ToggleStatus(ctx context.Context, id, actorID string) (*dto.UserResponse, error) {
	if id == actorID {
		return nil, domain.ErrForbidden
	}
	user, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	user.IsActive = !user.IsActive
	user.UpdatedBy = actorID
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return dto.ToUserResponse(user), nil
}
