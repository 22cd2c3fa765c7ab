package auth_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/catalogo-admin/internal/application/auth"
	"github.com/tu-usuario/catalogo-admin/internal/application/dto"
	"github.com/tu-usuario/catalogo-admin/internal/domain"
	"github.com/tu-usuario/catalogo-admin/internal/domain/entity"
	"github.com/tu-usuario/catalogo-admin/internal/domain/repository"
	"github.com/tu-usuario/catalogo-admin/pkg/jwt"
)

const (
	testSecret = "secreto-de-pruebas"
	testIssuer = "catalogo-admin-test"
)

// fakeUserRepo implementa solo lo que auth necesita; el resto entra en pánico
// si se invoca por accidente.
type fakeUserRepo struct {
	repository.UserRepository
	items map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{items: map[string]*entity.User{}}
	for _, u := range users {
		r.items[u.ID] = u
	}
	return r
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

func (r *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	cp := *u
	r.items[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) MarkLastLogin(_ context.Context, id string, at time.Time) error {
	if u, ok := r.items[id]; ok {
		u.LastLogin = &at
	}
	return nil
}

func seedUser(t *testing.T, password string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &entity.User{
		ID:           "user-1",
		Username:     "jdoe",
		Email:        "jdoe@test.local",
		PasswordHash: string(hash),
		Role:         entity.RoleCoordinador,
		IsActive:     true,
	}
}

func newAuthUC(repo repository.UserRepository) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     testIssuer,
	})
}

// ── Login ────────────────────────────────────────────────────────────────

func TestLogin_Exitoso(t *testing.T) {
	user := seedUser(t, "clave123")
	repo := newFakeUserRepo(user)
	uc := newAuthUC(repo)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Username: "jdoe", Password: "clave123"})
	require.NoError(t, err)

	assert.Equal(t, "60m", out.ExpiresIn)
	assert.Equal(t, user.ID, out.User.ID)
	assert.NotNil(t, out.User.LastLogin, "login estampa lastLogin")

	// El token emitido se verifica con el mismo secreto y apunta al usuario.
	userID, err := jwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)

	stored, err := repo.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.NotNil(t, stored.LastLogin, "lastLogin se persiste")
}

// lastLoginFailRepo simula un almacén que no puede estampar lastLogin.
type lastLoginFailRepo struct {
	*fakeUserRepo
}

func (r *lastLoginFailRepo) MarkLastLogin(context.Context, string, time.Time) error {
	return errors.New("almacén no disponible")
}

func TestLogin_FalloAlEstamparLastLoginNoBloquea(t *testing.T) {
	user := seedUser(t, "clave123")
	uc := newAuthUC(&lastLoginFailRepo{newFakeUserRepo(user)})

	out, err := uc.Login(context.Background(), dto.LoginRequest{Username: "jdoe", Password: "clave123"})
	require.NoError(t, err, "estampar lastLogin es contabilidad, no bloquea el login")

	userID, err := jwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
	assert.Nil(t, out.User.LastLogin, "sin estampa persistida no se reporta lastLogin")
}

func TestLogin_PorEmailSinDistinguirMayusculas(t *testing.T) {
	uc := newAuthUC(newFakeUserRepo(seedUser(t, "clave123")))

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "JDoe@Test.Local", Password: "clave123"})
	require.NoError(t, err)
	assert.Equal(t, "jdoe", out.User.Username)
}

func TestLogin_CredencialesInvalidasNoDistinguenCausa(t *testing.T) {
	uc := newAuthUC(newFakeUserRepo(seedUser(t, "clave123")))
	ctx := context.Background()

	// Usuario inexistente y contraseña incorrecta responden el mismo error.
	_, err := uc.Login(ctx, dto.LoginRequest{Username: "nadie", Password: "clave123"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = uc.Login(ctx, dto.LoginRequest{Username: "jdoe", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	user := seedUser(t, "clave123")
	user.IsActive = false
	uc := newAuthUC(newFakeUserRepo(user))

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "jdoe", Password: "clave123"})
	assert.ErrorIs(t, err, domain.ErrUserInactive)
}

func TestLogin_IdentificadorVacio(t *testing.T) {
	uc := newAuthUC(newFakeUserRepo())

	_, err := uc.Login(context.Background(), dto.LoginRequest{Password: "clave123"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ── Me y cambio de contraseña ────────────────────────────────────────────

func TestMe_UsuarioInexistente(t *testing.T) {
	uc := newAuthUC(newFakeUserRepo())

	_, err := uc.Me(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestChangePassword_VerificaLaActual(t *testing.T) {
	user := seedUser(t, "clave123")
	repo := newFakeUserRepo(user)
	uc := newAuthUC(repo)
	ctx := context.Background()

	err := uc.ChangePassword(ctx, user.ID, dto.ChangePasswordRequest{
		CurrentPassword: "equivocada",
		NewPassword:     "nueva456",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	err = uc.ChangePassword(ctx, user.ID, dto.ChangePasswordRequest{
		CurrentPassword: "clave123",
		NewPassword:     "nueva456",
	})
	require.NoError(t, err)

	// La nueva contraseña funciona y la anterior deja de funcionar.
	_, err = uc.Login(ctx, dto.LoginRequest{Username: "jdoe", Password: "nueva456"})
	assert.NoError(t, err)
	_, err = uc.Login(ctx, dto.LoginRequest{Username: "jdoe", Password: "clave123"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
