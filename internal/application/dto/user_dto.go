package dto

import (
	"time"

	"github.com/tu-usuario/catalogo-admin/internal/domain/entity"
)

// CreateUserRequest entrada para crear un usuario (solo admin).
type CreateUserRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=50"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"firstName" validate:"max=50"`
	LastName  string `json:"lastName" validate:"required,max=50"`
	Role      string `json:"role" validate:"required,oneof=admin coordinador"`
	Phone     string `json:"phone" validate:"omitempty,len=10,numeric"`
	IsActive  *bool  `json:"isActive"`
}

// UpdateUserRequest entrada para actualizar un usuario. Role e IsActive solo los
// puede tocar un admin (se valida en el caso de uso con el rol del actor).
type UpdateUserRequest struct {
	Username  *string `json:"username" validate:"omitempty,min=3,max=50"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Password  *string `json:"password" validate:"omitempty,min=6"`
	FirstName *string `json:"firstName" validate:"omitempty,max=50"`
	LastName  *string `json:"lastName" validate:"omitempty,max=50"`
	Role      *string `json:"role" validate:"omitempty,oneof=admin coordinador"`
	Phone     *string `json:"phone" validate:"omitempty,len=10,numeric"`
	IsActive  *bool   `json:"isActive"`
}

// UserResponse salida de un usuario. Nunca incluye la contraseña ni su hash.
type UserResponse struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	FirstName string     `json:"firstName,omitempty"`
	LastName  string     `json:"lastName"`
	FullName  string     `json:"fullName"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"isActive"`
	Phone     string     `json:"phone,omitempty"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
	CreatedBy string     `json:"createdBy,omitempty"`
	UpdatedBy string     `json:"updatedBy,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// ToUserResponse convierte la entidad a su representación pública.
func ToUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		FullName:  u.FullName(),
		Role:      u.Role,
		IsActive:  u.IsActive,
		Phone:     u.Phone,
		LastLogin: u.LastLogin,
		CreatedBy: u.CreatedBy,
		UpdatedBy: u.UpdatedBy,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// UserStatsResponse estadísticas de usuarios.
type UserStatsResponse struct {
	Stats struct {
		TotalUsers       int `json:"totalUsers"`
		ActiveUsers      int `json:"activeUsers"`
		AdminUsers       int `json:"adminUsers"`
		CoordinadorUsers int `json:"coordinadorUsers"`
	} `json:"stats"`
	RecentUsers []UserResponse `json:"recentUsers"`
}
