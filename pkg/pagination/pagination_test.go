package pagination_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/apikit/pkg/pagination"
)

// fromMap adapta un map de query params al lookup que espera FromValues.
func fromMap(params map[string]string) func(string) string {
	return func(key string) string { return params[key] }
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests FromValues — parsing y degradación a defaults
// ──────────────────────────────────────────────────────────────────────────────

// Sin query params debe devolver los defaults configurados.
func TestFromValues_SinParams_UsaDefaults(t *testing.T) {
	cfg := pagination.Config{DefaultPage: 0, DefaultSize: 20, MaxSize: 100}
	p := pagination.FromValues(cfg, fromMap(map[string]string{}))

	assert.Equal(t, 0, p.Page)
	assert.Equal(t, 20, p.Size)
	assert.Empty(t, p.Sort)
	assert.Equal(t, pagination.Asc, p.Dir)
}

// Un size por encima del máximo se recorta exactamente al máximo.
func TestFromValues_SizeExcesivo_SeRecortaAlMaximo(t *testing.T) {
	cfg := pagination.Config{DefaultSize: 20, MaxSize: 100}
	p := pagination.FromValues(cfg, fromMap(map[string]string{
		"page": "2",
		"size": "10000",
	}))

	assert.Equal(t, 2, p.Page, "el page válido se respeta")
	assert.Equal(t, 100, p.Size, "el size se recorta al máximo configurado")
}

// Entrada malformada nunca falla: degrada al default.
func TestFromValues_EntradaMalformada_DegradaADefaults(t *testing.T) {
	cfg := pagination.Config{DefaultPage: 0, DefaultSize: 20, MaxSize: 100}

	casos := []map[string]string{
		{"page": "abc", "size": "xyz"},
		{"page": "", "size": ""},
		{"page": "1.5", "size": "2.7"},
		{"page": "-3", "size": "-10"},
	}
	for _, params := range casos {
		p := pagination.FromValues(cfg, fromMap(params))
		assert.Equal(t, 0, p.Page, "params %v", params)
		assert.Equal(t, 20, p.Size, "params %v", params)
	}
}

// size=0 no es una página válida: usa el default.
func TestFromValues_SizeCero_UsaDefault(t *testing.T) {
	cfg := pagination.Config{DefaultSize: 25, MaxSize: 50}
	p := pagination.FromValues(cfg, fromMap(map[string]string{"size": "0"}))
	assert.Equal(t, 25, p.Size)
}

// La dirección es case-insensitive y lo no reconocido es ascendente.
func TestFromValues_Direccion_CaseInsensitive(t *testing.T) {
	cfg := pagination.Config{}

	casos := map[string]pagination.Direction{
		"desc":       pagination.Desc,
		"DESC":       pagination.Desc,
		"Descending": pagination.Desc,
		"asc":        pagination.Asc,
		"ASC":        pagination.Asc,
		"":           pagination.Asc,
		"sideways":   pagination.Asc,
	}
	for raw, want := range casos {
		p := pagination.FromValues(cfg, fromMap(map[string]string{"dir": raw}))
		assert.Equal(t, want, p.Dir, "dir=%q", raw)
	}
}

// El zero value de Config equivale a 0/20/100.
func TestFromValues_ConfigZero_AplicaConvenciones(t *testing.T) {
	p := pagination.FromValues(pagination.Config{}, fromMap(map[string]string{"size": "999"}))
	assert.Equal(t, 0, p.Page)
	assert.Equal(t, 100, p.Size)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests helpers SQL
// ──────────────────────────────────────────────────────────────────────────────

func TestPageable_OffsetYLimit(t *testing.T) {
	p := pagination.Pageable{Page: 3, Size: 25}
	assert.Equal(t, 25, p.Limit())
	assert.Equal(t, 75, p.Offset())
}

// OrderBy solo acepta columnas de la lista blanca.
func TestPageable_OrderBy_ListaBlanca(t *testing.T) {
	p := pagination.Pageable{Sort: "name", Dir: pagination.Desc}
	assert.Equal(t, "name desc", p.OrderBy("sku", "name"))
	assert.Empty(t, p.OrderBy("sku", "price"), "columna fuera de la lista blanca")

	inyectado := pagination.Pageable{Sort: "name; DROP TABLE products", Dir: pagination.Asc}
	assert.Empty(t, inyectado.OrderBy("sku", "name"))
}

func TestPageable_OrderBy_SinSort(t *testing.T) {
	p := pagination.Pageable{Dir: pagination.Asc}
	assert.Empty(t, p.OrderBy("name"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests FromCtx — extracción desde un request Fiber real
// ──────────────────────────────────────────────────────────────────────────────

func TestFromCtx_ExtraePageableDelRequest(t *testing.T) {
	cfg := pagination.Config{DefaultSize: 20, MaxSize: 100}
	app := fiber.New()
	app.Get("/items", func(c *fiber.Ctx) error {
		return c.JSON(pagination.FromCtx(c, cfg))
	})

	req := httptest.NewRequest(http.MethodGet, "/items?page=1&size=30&sort=name&dir=DESC", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var p pagination.Pageable
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&p))
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 30, p.Size)
	assert.Equal(t, "name", p.Sort)
	assert.Equal(t, pagination.Desc, p.Dir)
}
