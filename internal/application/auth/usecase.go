package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/apikit/internal/application/dto"
	"github.com/jhoicas/apikit/internal/domain/entity"
	"github.com/jhoicas/apikit/internal/domain/repository"
	"github.com/jhoicas/apikit/pkg/apierror"
	"github.com/jhoicas/apikit/pkg/jwtauth"
)

// UseCase casos de uso de autenticación: registro y login.
type UseCase struct {
	userRepo repository.UserRepository
	jwtCfg   jwtauth.Config
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(userRepo repository.UserRepository, jwtCfg jwtauth.Config) *UseCase {
	return &UseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register crea un usuario: hashea el password con bcrypt y persiste. Un email
// duplicado lo reporta el constraint único de la tabla.
func (uc *UseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	name := in.Name
	if name == "" {
		name = in.Email
	}
	role := in.Role
	if role == "" {
		role = entity.RoleViewer
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return dto.ToUserResponse(user), nil
}

// Login verifica email/password, genera el JWT y retorna token + usuario.
// Email inexistente y password incorrecto devuelven el mismo mensaje para no
// revelar qué cuentas existen.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apierror.New(apierror.CategoryUnauthorized, "auth.invalid_credentials")
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, apierror.New(apierror.CategoryUnauthorized, "auth.invalid_credentials")
	}
	token, err := jwtauth.Generate(uc.jwtCfg, user.ID, user.Role)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: dto.ToUserResponse(user)}, nil
}

// Messages catálogos de mensajes del módulo de auth.
var (
	MessagesEN = map[string]string{
		"auth.invalid_credentials": "invalid email or password",
	}

	MessagesES = map[string]string{
		"auth.invalid_credentials": "email o contraseña inválidos",
	}
)
