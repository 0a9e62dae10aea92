package pagination

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Nombres de los query params de paginación.
const (
	ParamPage = "page"
	ParamSize = "size"
	ParamSort = "sort"
	ParamDir  = "dir"
)

// Direction dirección de ordenamiento.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Config valores por defecto y límite de tamaño de página.
// El zero value equivale a página 0, tamaño 20 y máximo 100.
type Config struct {
	DefaultPage int
	DefaultSize int
	MaxSize     int
}

func (c Config) normalized() Config {
	if c.DefaultPage < 0 {
		c.DefaultPage = 0
	}
	if c.DefaultSize <= 0 {
		c.DefaultSize = 20
	}
	if c.MaxSize <= 0 {
		c.MaxSize = 100
	}
	if c.DefaultSize > c.MaxSize {
		c.DefaultSize = c.MaxSize
	}
	return c
}

// Pageable un request de página validado: índice, tamaño y ordenamiento.
// Se construye una vez por request y es inmutable después.
type Pageable struct {
	Page int       `json:"page"`
	Size int       `json:"size"`
	Sort string    `json:"sort,omitempty"`
	Dir  Direction `json:"dir"`
}

// Limit devuelve el tamaño de página para la cláusula LIMIT.
func (p Pageable) Limit() int {
	return p.Size
}

// Offset devuelve el desplazamiento para la cláusula OFFSET (page * size).
func (p Pageable) Offset() int {
	return p.Page * p.Size
}

// OrderBy devuelve la cláusula "columna dirección" si el sort solicitado está
// en la lista blanca de columnas; cadena vacía si no hay sort o no está
// permitido. El allow-list evita inyección SQL vía el query param.
func (p Pageable) OrderBy(allowed ...string) string {
	if p.Sort == "" {
		return ""
	}
	for _, col := range allowed {
		if strings.EqualFold(col, p.Sort) {
			return fmt.Sprintf("%s %s", col, p.Dir)
		}
	}
	return ""
}

// FromValues construye un Pageable desde un lookup de query params crudos.
// Nunca falla: entrada ausente o malformada degrada al valor por defecto, y el
// tamaño se recorta al máximo configurado.
func FromValues(cfg Config, get func(key string) string) Pageable {
	cfg = cfg.normalized()

	page := parseInt(get(ParamPage), cfg.DefaultPage)
	if page < 0 {
		page = cfg.DefaultPage
	}

	size := parseInt(get(ParamSize), cfg.DefaultSize)
	if size <= 0 {
		size = cfg.DefaultSize
	}
	if size > cfg.MaxSize {
		size = cfg.MaxSize
	}

	return Pageable{
		Page: page,
		Size: size,
		Sort: strings.TrimSpace(get(ParamSort)),
		Dir:  parseDirection(get(ParamDir)),
	}
}

// FromCtx construye un Pageable desde los query params del request Fiber.
func FromCtx(c *fiber.Ctx, cfg Config) Pageable {
	return FromValues(cfg, func(key string) string {
		return c.Query(key)
	})
}

func parseInt(raw string, def int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

// parseDirection es case-insensitive; cualquier valor no reconocido es Asc.
func parseDirection(raw string) Direction {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "desc", "descending":
		return Desc
	default:
		return Asc
	}
}
