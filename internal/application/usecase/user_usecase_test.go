package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/catalogo-admin/internal/application/dto"
	"github.com/tu-usuario/catalogo-admin/internal/application/usecase"
	"github.com/tu-usuario/catalogo-admin/internal/domain"
	"github.com/tu-usuario/catalogo-admin/internal/domain/entity"
	"github.com/tu-usuario/catalogo-admin/internal/domain/repository"
)

type fakeUserRepo struct {
	items map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{items: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	for _, existing := range r.items {
		if strings.EqualFold(existing.Username, u.Username) || strings.EqualFold(existing.Email, u.Email) {
			return domain.ErrDuplicate
		}
	}
	cp := *u
	r.items[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*entity.User, error) {
	if u, ok := r.items[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByUsernameOrEmail(_ context.Context, value string) (*entity.User, error) {
	for _, u := range r.items {
		if strings.EqualFold(u.Username, value) || strings.EqualFold(u.Email, value) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range r.items {
		if strings.EqualFold(u.Username, username) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.items {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	cp := *u
	r.items[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

func (r *fakeUserRepo) List(_ context.Context, f repository.UserFilter, limit, offset int) ([]*entity.User, error) {
	var list []*entity.User
	for _, u := range r.items {
		if f.Role != "" && u.Role != f.Role {
			continue
		}
		if f.IsActive != nil && u.IsActive != *f.IsActive {
			continue
		}
		cp := *u
		list = append(list, &cp)
	}
	return list, nil
}

func (r *fakeUserRepo) Count(ctx context.Context, f repository.UserFilter) (int, error) {
	list, err := r.List(ctx, f, 0, 0)
	return len(list), err
}

func (r *fakeUserRepo) MarkLastLogin(_ context.Context, id string, at time.Time) error {
	if u, ok := r.items[id]; ok {
		u.LastLogin = &at
	}
	return nil
}

func seedAdmin(t *testing.T, repo *fakeUserRepo) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)
	admin := &entity.User{
		ID:           "admin-1",
		Username:     "admin",
		Email:        "admin@test.local",
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		IsActive:     true,
	}
	repo.items[admin.ID] = admin
	return admin
}

func TestUserCreate_UsernameYEmailUnicos(t *testing.T) {
	repo := newFakeUserRepo()
	admin := seedAdmin(t, repo)
	uc := usecase.NewUserUseCase(repo)
	ctx := context.Background()

	out, err := uc.Create(ctx, admin.ID, dto.CreateUserRequest{
		Username: "coord", Email: "Coord@Test.Local", Password: "secreto1",
		LastName: "Pérez", Role: entity.RoleCoordinador,
	})
	require.NoError(t, err)
	assert.Equal(t, "coord@test.local", out.Email, "el email se almacena en minúsculas")

	_, err = uc.Create(ctx, admin.ID, dto.CreateUserRequest{
		Username: "COORD", Email: "otro@test.local", Password: "secreto1",
		LastName: "Gómez", Role: entity.RoleCoordinador,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate, "username único sin distinguir mayúsculas")

	_, err = uc.Create(ctx, admin.ID, dto.CreateUserRequest{
		Username: "otro", Email: "COORD@test.local", Password: "secreto1",
		LastName: "Gómez", Role: entity.RoleCoordinador,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate, "email único sin distinguir mayúsculas")
}

func TestUserCreate_RolFueraDelConjunto(t *testing.T) {
	repo := newFakeUserRepo()
	admin := seedAdmin(t, repo)
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Create(context.Background(), admin.ID, dto.CreateUserRequest{
		Username: "x", Email: "x@test.local", Password: "secreto1",
		LastName: "X", Role: "superadmin",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserUpdate_SoloAdminTocaRolYEstado(t *testing.T) {
	repo := newFakeUserRepo()
	admin := seedAdmin(t, repo)
	uc := usecase.NewUserUseCase(repo)
	ctx := context.Background()

	coord, err := uc.Create(ctx, admin.ID, dto.CreateUserRequest{
		Username: "coord", Email: "coord@test.local", Password: "secreto1",
		LastName: "Pérez", Role: entity.RoleCoordinador,
	})
	require.NoError(t, err)

	coordEntity, err := repo.FindByID(ctx, coord.ID)
	require.NoError(t, err)

	// El coordinador no puede cambiarse el rol a sí mismo.
	newRole := entity.RoleAdmin
	_, err = uc.Update(ctx, coord.ID, coordEntity, dto.UpdateUserRequest{Role: &newRole})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// El admin sí.
	out, err := uc.Update(ctx, coord.ID, admin, dto.UpdateUserRequest{Role: &newRole})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.Role)

	// Campos propios sí los puede cambiar el coordinador.
	phone := "3001234567"
	out, err = uc.Update(ctx, coord.ID, coordEntity, dto.UpdateUserRequest{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, phone, out.Phone)
}

func TestUserDelete_NuncaASiMismo(t *testing.T) {
	repo := newFakeUserRepo()
	admin := seedAdmin(t, repo)
	uc := usecase.NewUserUseCase(repo)
	ctx := context.Background()

	err := uc.Delete(ctx, admin.ID, admin.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden, "un admin no se elimina a sí mismo")

	coord, err := uc.Create(ctx, admin.ID, dto.CreateUserRequest{
		Username: "coord", Email: "coord@test.local", Password: "secreto1",
		LastName: "Pérez", Role: entity.RoleCoordinador,
	})
	require.NoError(t, err)
	assert.NoError(t, uc.Delete(ctx, coord.ID, admin.ID))
}

func TestUserToggle_NuncaASiMismo(t *testing.T) {
	repo := newFakeUserRepo()
	admin := seedAdmin(t, repo)
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.ToggleStatus(context.Background(), admin.ID, admin.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
