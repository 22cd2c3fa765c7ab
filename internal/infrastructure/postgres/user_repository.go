package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/catalogo-admin/internal/domain"
	"github.com/tu-usuario/catalogo-admin/internal/domain/entity"
	"github.com/tu-usuario/catalogo-admin/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, username, email, password_hash, first_name, last_name, role, is_active, phone, last_login, created_by, updated_by, created_at, updated_at`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL (usable con pool o tx).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName,
		&u.Role, &u.IsActive, &u.Phone, &u.LastLogin, &u.CreatedBy, &u.UpdatedBy,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		user.ID, user.Username, user.Email, user.PasswordHash, user.FirstName, user.LastName,
		user.Role, user.IsActive, user.Phone, user.LastLogin, user.CreatedBy, user.UpdatedBy,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// FindByID obtiene un usuario por ID. Retorna nil sin error si no existe.
func (r *UserRepo) FindByID(ctx context.Context, id string) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// FindByUsernameOrEmail busca por username o email, sin distinguir mayúsculas.
func (r *UserRepo) FindByUsernameOrEmail(ctx context.Context, value string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(username) = LOWER($1) OR LOWER(email) = LOWER($1)`
	u, err := scanUser(r.q.QueryRow(ctx, query, value))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by username or email: %w", err)
	}
	return u, nil
}

// FindByUsername busca por username sin distinguir mayúsculas.
func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(username) = LOWER($1)`
	u, err := scanUser(r.q.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return u, nil
}

// FindByEmail busca por email sin distinguir mayúsculas.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1)`
	u, err := scanUser(r.q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

// Update actualiza un usuario existente.
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users
		SET username = $2, email = $3, password_hash = $4, first_name = $5, last_name = $6,
		    role = $7, is_active = $8, phone = $9, updated_by = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		user.ID, user.Username, user.Email, user.PasswordHash, user.FirstName, user.LastName,
		user.Role, user.IsActive, user.Phone, user.UpdatedBy, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// Delete elimina un usuario por ID.
func (r *UserRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func userWhere(filter repository.UserFilter) (string, []any) {
	where := ""
	var args []any
	and := func(cond string) {
		if where == "" {
			where = " WHERE " + cond
		} else {
			where += " AND " + cond
		}
	}
	if filter.Role != "" {
		args = append(args, filter.Role)
		and(fmt.Sprintf("role = $%d", len(args)))
	}
	if filter.IsActive != nil {
		args = append(args, *filter.IsActive)
		and(fmt.Sprintf("is_active = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		and(fmt.Sprintf("(username ILIKE $%d OR email ILIKE $%d OR first_name ILIKE $%d OR last_name ILIKE $%d)", n, n, n, n))
	}
	return where, args
}

// List lista usuarios con filtros. limit <= 0 desactiva la paginación.
func (r *UserRepo) List(ctx context.Context, filter repository.UserFilter, limit, offset int) ([]*entity.User, error) {
	where, args := userWhere(filter)
	query := `SELECT ` + userColumns + ` FROM users` + where + ` ORDER BY created_at DESC`
	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
		args = append(args, offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// Count cuenta usuarios que cumplen el filtro.
func (r *UserRepo) Count(ctx context.Context, filter repository.UserFilter) (int, error) {
	where, args := userWhere(filter)
	var total int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM users`+where, args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return total, nil
}

// MarkLastLogin estampa el último inicio de sesión.
func (r *UserRepo) MarkLastLogin(ctx context.Context, id string, at time.Time) error {
	_, err := r.q.Exec(ctx, `UPDATE users SET last_login = $2 WHERE id = $1`, id, at)
	if err != nil {
		return fmt.Errorf("mark last login: %w", err)
	}
	return nil
}
