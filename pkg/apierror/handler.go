package apierror

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/apikit/pkg/i18n"
)

// ErrorHandler devuelve el fiber.ErrorHandler de la aplicación: cualquier
// error retornado por un handler o middleware se traduce al envelope
// localizado con su status HTTP. Instalar en fiber.Config.ErrorHandler para
// que los handlers simplemente hagan `return err`.
func ErrorHandler(b *Builder) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, body := b.Build(err, i18n.Locale(c))
		return c.Status(status).JSON(body)
	}
}
