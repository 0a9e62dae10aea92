package swaggerui

import (
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/swaggo/swag"
)

// Config opciones de la UI de documentación. Los zero values aplican las
// convenciones de la casa: UI en /docs sobre la raíz de la app.
type Config struct {
	Title    string
	BasePath string // raíz donde se monta la UI (default "/")
	Path     string // ruta de la UI relativa a BasePath (default "docs")
	FilePath string // spec JSON en disco; vacío usa el spec registrado por swag
}

// New crea el middleware de Swagger UI. Si no se configura un archivo de spec,
// sirve el documento registrado por el paquete docs generado (swag.Register).
func New(cfg Config) fiber.Handler {
	if cfg.BasePath == "" {
		cfg.BasePath = "/"
	}
	if cfg.Path == "" {
		cfg.Path = "docs"
	}

	sc := swagger.Config{
		BasePath: cfg.BasePath,
		Path:     cfg.Path,
		Title:    cfg.Title,
		FilePath: cfg.FilePath,
	}
	if cfg.FilePath == "" {
		if doc, err := swag.ReadDoc(); err == nil {
			sc.FileContent = []byte(doc)
		}
	}
	return swagger.New(sc)
}
