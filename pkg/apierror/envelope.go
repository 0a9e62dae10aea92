package apierror

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/language"

	"github.com/jhoicas/apikit/pkg/i18n"
)

// ResponseError payload de error estructurado: etiqueta de categoría → lista
// ordenada de mensajes legibles. Nunca se devuelve vacío.
type ResponseError map[string][]string

// Builder construye el envelope de error localizado a partir de cualquier
// error. Es la última línea de defensa del pipeline HTTP: ninguna de sus rutas
// puede fallar (una traducción ausente degrada a la clave cruda).
type Builder struct {
	translator *i18n.Translator
}

// NewBuilder crea el builder con el translator inyectado. Un translator nil es
// válido: todos los mensajes quedan sin traducir.
func NewBuilder(translator *i18n.Translator) *Builder {
	return &Builder{translator: translator}
}

// Build mapea un error a (status HTTP, ResponseError) en el idioma indicado.
// Operación total: cualquier error produce un envelope; lo no reconocido cae
// en InternalServerError con su mensaje por defecto.
func (b *Builder) Build(err error, locale language.Tag) (int, ResponseError) {
	cat, message := Categorize(err)

	var messages []string
	if message == "" {
		messages = []string{b.resolve(cat.MessageKey(), locale)}
	} else {
		localized := b.resolve(message, locale)
		if localized != message {
			// Se conserva el mensaje original como detalle diagnóstico junto
			// a la traducción visible para el usuario.
			messages = []string{message, localized}
		} else {
			messages = []string{message}
		}
	}

	return cat.Status(), ResponseError{string(cat): messages}
}

func (b *Builder) resolve(key string, locale language.Tag) string {
	if b == nil || b.translator == nil {
		return key
	}
	return b.translator.Resolve(key, locale)
}

// Categorize clasifica un error en su categoría y extrae el mensaje a mostrar.
// Reconoce, en orden: *Error propio, errores de PostgreSQL (ver pg.go) y
// *fiber.Error por status; el resto es InternalServerError sin mensaje (no se
// filtra el detalle interno al cliente).
func Categorize(err error) (Category, string) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Category, appErr.Message
	}

	if cat, ok := categorizePostgres(err); ok {
		return cat, ""
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return categoryForStatus(fiberErr.Code), fiberErr.Message
	}

	return CategoryInternalServer, ""
}

func categoryForStatus(status int) Category {
	switch status {
	case fiber.StatusBadRequest:
		return CategoryBadRequest
	case fiber.StatusUnauthorized:
		return CategoryUnauthorized
	case fiber.StatusForbidden:
		return CategoryForbidden
	case fiber.StatusNotFound:
		return CategoryNotFound
	case fiber.StatusUnprocessableEntity:
		return CategoryUnknownObject
	default:
		return CategoryInternalServer
	}
}
