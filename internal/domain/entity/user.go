package entity

import "time"

// Roles válidos para User. El conjunto es cerrado: solo admin puede eliminar
// entidades y gestionar usuarios; coordinador solo crea/actualiza catálogo.
const (
	RoleAdmin       = "admin"
	RoleCoordinador = "coordinador"
)

// ValidRole verifica que el rol pertenezca al conjunto cerrado.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleCoordinador
}

// User representa un usuario administrador/coordinador del catálogo.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	FirstName    string
	LastName     string
	Role         string // admin | coordinador
	IsActive     bool
	Phone        string
	LastLogin    *time.Time
	CreatedBy    string // ID del usuario creador (vacío para el admin semilla)
	UpdatedBy    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName nombre completo para respuestas.
func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	return u.FirstName + " " + u.LastName
}
