package auth_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/apikit/internal/application/auth"
	"github.com/jhoicas/apikit/internal/application/dto"
	"github.com/jhoicas/apikit/internal/domain/entity"
	"github.com/jhoicas/apikit/pkg/apierror"
	"github.com/jhoicas/apikit/pkg/jwtauth"
)

// fakeUserRepo fake en memoria del puerto UserRepository, con el mismo
// contrato de errores que el adaptador PostgreSQL.
type fakeUserRepo struct {
	byEmail map[string]entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]entity.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.byEmail[u.Email] = *u
	return nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, fmt.Errorf("find user by email: %w", pgx.ErrNoRows)
	}
	return &u, nil
}

func newUseCase(repo *fakeUserRepo) *auth.UseCase {
	return auth.NewUseCase(repo, jwtauth.Config{
		Secret: "test-secret",
		Issuer: "apikit-test",
		TTL:    time.Hour,
	})
}

// Registro: hashea el password (nunca se guarda en claro) y aplica defaults.
func TestRegister_HasheaPasswordYAplicaDefaults(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUseCase(repo)

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:    "ana@example.com",
		Password: "super-secreta",
	})
	require.NoError(t, err)

	assert.Equal(t, "ana@example.com", out.Email)
	assert.Equal(t, "ana@example.com", out.Name, "sin nombre se usa el email")
	assert.Equal(t, entity.RoleViewer, out.Role, "el rol por defecto es viewer")

	stored := repo.byEmail["ana@example.com"]
	assert.NotEqual(t, "super-secreta", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
}

// Login correcto: emite un token parseable con los claims del usuario.
func TestLogin_CredencialesValidas_EmiteToken(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUseCase(repo)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:    "ana@example.com",
		Password: "super-secreta",
		Role:     entity.RoleAdmin,
	})
	require.NoError(t, err)

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "ana@example.com",
		Password: "super-secreta",
	})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	claims, err := jwtauth.Parse("test-secret", out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, claims.UserID)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
}

// Password incorrecto y email inexistente devuelven la misma categoría y el
// mismo mensaje, para no revelar qué cuentas existen.
func TestLogin_CredencialesInvalidas_MismoMensaje(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUseCase(repo)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:    "ana@example.com",
		Password: "super-secreta",
	})
	require.NoError(t, err)

	_, errPassword := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "ana@example.com",
		Password: "incorrecta",
	})
	_, errEmail := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "nadie@example.com",
		Password: "super-secreta",
	})

	for _, err := range []error{errPassword, errEmail} {
		var appErr *apierror.Error
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apierror.CategoryUnauthorized, appErr.Category)
		assert.Equal(t, "auth.invalid_credentials", appErr.Message)
	}

	// El ErrNoRows del repo no se filtra hacia el caller.
	assert.False(t, errors.Is(errEmail, pgx.ErrNoRows))
}
