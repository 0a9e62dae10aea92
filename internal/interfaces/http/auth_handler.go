package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/apikit/internal/application/auth"
	"github.com/jhoicas/apikit/internal/application/dto"
	"github.com/jhoicas/apikit/pkg/request"
	"github.com/jhoicas/apikit/pkg/response"
)

// AuthHandler maneja registro y login (público).
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "Datos del usuario"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  apierror.ResponseError
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := request.Decode(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Register(c.Context(), in)
	if err != nil {
		return err
	}
	return response.Created(c, out)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  apierror.ResponseError
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := request.Decode(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return err
	}
	return response.OK(c, out)
}
