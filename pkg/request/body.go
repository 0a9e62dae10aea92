package request

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/apikit/pkg/apierror"
)

// validate instancia compartida; los validadores de struct tags son
// concurrentes y se cachean por tipo.
var validate = validator.New()

// Decode parsea el body JSON del request en dst y aplica las validate tags del
// struct destino. El tipo destino lo fija el caller explícitamente: no hay
// introspección de tipos en runtime. Las fallas se devuelven como apierror
// BadRequest listas para el envelope central.
func Decode[T any](c *fiber.Ctx, dst *T) error {
	if err := c.BodyParser(dst); err != nil {
		return apierror.Wrap(apierror.CategoryBadRequest, "request.invalid_body", err)
	}
	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return apierror.Wrap(apierror.CategoryBadRequest, validationMessage(verrs), err)
		}
		return apierror.Wrap(apierror.CategoryBadRequest, "request.invalid_body", err)
	}
	return nil
}

// validationMessage resume los campos inválidos en un mensaje legible:
// "validación fallida: Name (required), Price (min)".
func validationMessage(verrs validator.ValidationErrors) string {
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	return "validación fallida: " + strings.Join(fields, ", ")
}

// Catálogos de mensajes del paquete, para registrar junto a los de apierror.
var (
	MessagesEN = map[string]string{
		"request.invalid_body": "malformed request body",
	}

	MessagesES = map[string]string{
		"request.invalid_body": "cuerpo de la petición malformado",
	}
)
