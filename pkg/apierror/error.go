package apierror

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Category clasificación cerrada de fallas. Cada categoría mapea a exactamente
// un status HTTP; cualquier error no reconocido cae en InternalServerError.
type Category string

const (
	CategoryBadRequest     Category = "BadRequest"
	CategoryUnauthorized   Category = "Unauthorized"
	CategoryForbidden      Category = "Forbidden"
	CategoryNotFound       Category = "NotFound"
	CategoryUnknownObject  Category = "UnknownObject"
	CategoryInternalServer Category = "InternalServerError"
)

// Status devuelve el status HTTP fijo de la categoría.
func (cat Category) Status() int {
	switch cat {
	case CategoryBadRequest:
		return fiber.StatusBadRequest
	case CategoryUnauthorized:
		return fiber.StatusUnauthorized
	case CategoryForbidden:
		return fiber.StatusForbidden
	case CategoryNotFound:
		return fiber.StatusNotFound
	case CategoryUnknownObject:
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

// MessageKey clave i18n del mensaje por defecto de la categoría, usada cuando
// la falla no trae mensaje propio.
func (cat Category) MessageKey() string {
	switch cat {
	case CategoryBadRequest:
		return "error.bad_request"
	case CategoryUnauthorized:
		return "error.unauthorized"
	case CategoryForbidden:
		return "error.forbidden"
	case CategoryNotFound:
		return "error.not_found"
	case CategoryUnknownObject:
		return "error.unknown_object"
	default:
		return "error.internal"
	}
}

// Error falla de aplicación etiquetada con su categoría. Message es opcional y
// funciona a la vez como clave de traducción: el Builder intenta resolverlo
// contra el catálogo del idioma del request.
type Error struct {
	Category Category
	Message  string
	cause    error
}

// New crea un error de la categoría indicada. message puede ser texto libre o
// una clave de catálogo ("auth.invalid_credentials"); vacío usa el mensaje por
// defecto de la categoría.
func New(cat Category, message string) *Error {
	return &Error{Category: cat, Message: message}
}

// Wrap crea un error de la categoría indicada conservando la causa para
// errors.Is/As y para el log.
func Wrap(cat Category, message string, cause error) *Error {
	return &Error{Category: cat, Message: message, cause: cause}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Category, e.Message, e.cause)
	}
	if e.Message == "" {
		return string(e.Category)
	}
	return fmt.Sprintf("%s: %s", e.Category, e.Message)
}

// Unwrap expone la causa envuelta.
func (e *Error) Unwrap() error {
	return e.cause
}
