package jwtauth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/apikit/pkg/apierror"
)

// claimsKey clave de Locals donde el middleware guarda los claims parseados.
const claimsKey = "jwtauth_claims"

// Middleware valida el Bearer Token JWT y deja los claims en Locals. Las
// fallas se retornan como apierror para que el ErrorHandler central arme el
// envelope 401 localizado.
func Middleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return apierror.New(apierror.CategoryUnauthorized, "auth.missing_token")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return apierror.New(apierror.CategoryUnauthorized, "auth.invalid_token")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return apierror.New(apierror.CategoryUnauthorized, "auth.missing_token")
		}
		claims, err := Parse(secret, tokenString)
		if err != nil {
			return apierror.Wrap(apierror.CategoryUnauthorized, "auth.invalid_token", err)
		}
		c.Locals(claimsKey, claims)
		return c.Next()
	}
}

// RequireRole autoriza el acceso solo a los roles indicados. Debe ir después
// de Middleware en la cadena.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := FromCtx(c)
		if claims == nil || claims.Role == "" {
			return apierror.New(apierror.CategoryUnauthorized, "auth.missing_role")
		}
		for _, role := range roles {
			if claims.Role == role {
				return c.Next()
			}
		}
		return apierror.New(apierror.CategoryForbidden, "auth.insufficient_role")
	}
}

// FromCtx devuelve los claims del request (después del Middleware) o nil.
func FromCtx(c *fiber.Ctx) *Claims {
	claims, _ := c.Locals(claimsKey).(*Claims)
	return claims
}

// UserID devuelve el user_id del token o cadena vacía.
func UserID(c *fiber.Ctx) string {
	if claims := FromCtx(c); claims != nil {
		return claims.UserID
	}
	return ""
}

// Role devuelve el role del token o cadena vacía.
func Role(c *fiber.Ctx) string {
	if claims := FromCtx(c); claims != nil {
		return claims.Role
	}
	return ""
}

// Catálogos de mensajes del middleware, para registrar junto a los de apierror.
var (
	MessagesEN = map[string]string{
		"auth.missing_token":     "authorization token required",
		"auth.invalid_token":     "invalid or expired token",
		"auth.missing_role":      "token has no role claim",
		"auth.insufficient_role": "role not allowed for this resource",
	}

	MessagesES = map[string]string{
		"auth.missing_token":     "se requiere token de autorización",
		"auth.invalid_token":     "token inválido o expirado",
		"auth.missing_role":      "el token no tiene claim de rol",
		"auth.insufficient_role": "rol no permitido para este recurso",
	}
)
