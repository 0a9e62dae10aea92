package i18n

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/language"
)

// localeKey clave de Locals donde el middleware guarda el idioma negociado.
const localeKey = "i18n_locale"

// Translator resuelve claves de mensaje a texto según el idioma del request.
// Los catálogos se registran al arranque (Register) y después solo se leen,
// por lo que es seguro compartirlo entre requests.
type Translator struct {
	fallback language.Tag
	tags     []language.Tag
	matcher  language.Matcher
	catalogs map[language.Tag]map[string]string
}

// New crea un Translator con el idioma de respaldo indicado. El fallback se usa
// cuando el Accept-Language no coincide con ningún catálogo registrado y cuando
// una clave no existe en el idioma negociado.
func New(fallback language.Tag) *Translator {
	t := &Translator{
		fallback: fallback,
		tags:     []language.Tag{fallback},
		catalogs: map[language.Tag]map[string]string{},
	}
	t.matcher = language.NewMatcher(t.tags)
	return t
}

// Register agrega (o amplía) el catálogo de mensajes para un idioma.
// Llamar solo durante el arranque: reconstruye el matcher.
func (t *Translator) Register(tag language.Tag, messages map[string]string) {
	cat, ok := t.catalogs[tag]
	if !ok {
		cat = map[string]string{}
		t.catalogs[tag] = cat
		if tag != t.fallback {
			t.tags = append(t.tags, tag)
		}
		t.matcher = language.NewMatcher(t.tags)
	}
	for k, v := range messages {
		cat[k] = v
	}
}

// Match negocia el idioma a partir del header Accept-Language.
// Un header vacío o inválido devuelve el fallback.
func (t *Translator) Match(acceptLanguage string) language.Tag {
	if acceptLanguage == "" {
		return t.fallback
	}
	_, index := language.MatchStrings(t.matcher, acceptLanguage)
	return t.tags[index]
}

// Resolve traduce una clave de mensaje al idioma indicado. Orden de búsqueda:
// catálogo del idioma, catálogo del fallback y, como último recurso, la clave
// cruda. Nunca falla: una clave sin traducción se devuelve tal cual.
func (t *Translator) Resolve(key string, tag language.Tag) string {
	if msg, ok := t.catalogs[tag][key]; ok {
		return msg
	}
	if msg, ok := t.catalogs[t.fallback][key]; ok {
		return msg
	}
	return key
}

// Fallback devuelve el idioma de respaldo configurado.
func (t *Translator) Fallback() language.Tag {
	return t.fallback
}

// Middleware negocia el idioma del request (header Accept-Language) y lo deja
// en Locals para que Locale(c) lo recupere más adelante en la cadena.
func Middleware(t *Translator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(localeKey, t.Match(c.Get(fiber.HeaderAcceptLanguage)))
		return c.Next()
	}
}

// Locale devuelve el idioma negociado para el request. Si el middleware no se
// ejecutó, devuelve language.Und (el Translator resolverá vía fallback).
func Locale(c *fiber.Ctx) language.Tag {
	if tag, ok := c.Locals(localeKey).(language.Tag); ok {
		return tag
	}
	return language.Und
}
