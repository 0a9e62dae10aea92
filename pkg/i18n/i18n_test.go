package i18n_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/jhoicas/apikit/pkg/i18n"
)

func newTranslator() *i18n.Translator {
	tr := i18n.New(language.English)
	tr.Register(language.English, map[string]string{
		"greeting": "hello",
		"farewell": "goodbye",
	})
	tr.Register(language.Spanish, map[string]string{
		"greeting": "hola",
	})
	return tr
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Resolve — orden de degradación
// ──────────────────────────────────────────────────────────────────────────────

func TestResolve_CatalogoDelIdioma(t *testing.T) {
	tr := newTranslator()
	assert.Equal(t, "hola", tr.Resolve("greeting", language.Spanish))
	assert.Equal(t, "hello", tr.Resolve("greeting", language.English))
}

// Clave sin traducción en el idioma pedido: cae al catálogo del fallback.
func TestResolve_CaeAlFallback(t *testing.T) {
	tr := newTranslator()
	assert.Equal(t, "goodbye", tr.Resolve("farewell", language.Spanish))
}

// Clave inexistente en todos los catálogos: se devuelve cruda, nunca falla.
func TestResolve_ClaveInexistente_DevuelveCruda(t *testing.T) {
	tr := newTranslator()
	assert.Equal(t, "no.such.key", tr.Resolve("no.such.key", language.Spanish))
	assert.Equal(t, "no.such.key", tr.Resolve("no.such.key", language.Und))
}

// Register amplía un catálogo existente sin perder lo anterior.
func TestRegister_AmpliaCatalogo(t *testing.T) {
	tr := newTranslator()
	tr.Register(language.Spanish, map[string]string{"farewell": "adiós"})

	assert.Equal(t, "hola", tr.Resolve("greeting", language.Spanish))
	assert.Equal(t, "adiós", tr.Resolve("farewell", language.Spanish))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Match — negociación Accept-Language
// ──────────────────────────────────────────────────────────────────────────────

func TestMatch_NegociaIdioma(t *testing.T) {
	tr := newTranslator()

	assert.Equal(t, language.Spanish, tr.Match("es"))
	assert.Equal(t, language.Spanish, tr.Match("es-CO,es;q=0.9,en;q=0.5"))
	assert.Equal(t, language.English, tr.Match("en-US"))
}

// Header vacío o irreconocible degrada al fallback.
func TestMatch_HeaderInvalido_UsaFallback(t *testing.T) {
	tr := newTranslator()

	assert.Equal(t, language.English, tr.Match(""))
	assert.Equal(t, language.English, tr.Match("zz;;;"))
	assert.Equal(t, language.English, tr.Match("ja-JP"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Middleware — locale en Locals
// ──────────────────────────────────────────────────────────────────────────────

func TestMiddleware_GuardaLocaleDelRequest(t *testing.T) {
	tr := newTranslator()
	app := fiber.New()
	app.Use(i18n.Middleware(tr))
	app.Get("/idioma", func(c *fiber.Ctx) error {
		locale := i18n.Locale(c)
		return c.JSON(fiber.Map{"locale": locale.String(), "greeting": tr.Resolve("greeting", locale)})
	})

	req := httptest.NewRequest(http.MethodGet, "/idioma", nil)
	req.Header.Set(fiber.HeaderAcceptLanguage, "es-CO")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "es", body["locale"])
	assert.Equal(t, "hola", body["greeting"])
}

// Sin middleware, Locale devuelve Und.
func TestLocale_SinMiddleware_EsUnd(t *testing.T) {
	app := fiber.New()
	app.Get("/idioma", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"und": i18n.Locale(c) == language.Und})
	})

	req := httptest.NewRequest(http.MethodGet, "/idioma", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]bool
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body["und"])
}
