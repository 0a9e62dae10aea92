package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/apikit/internal/application/auth"
	"github.com/jhoicas/apikit/internal/application/usecase"
	"github.com/jhoicas/apikit/internal/domain/entity"
	"github.com/jhoicas/apikit/pkg/jwtauth"
	"github.com/jhoicas/apikit/pkg/pagination"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC *usecase.ProductUseCase
	AuthUC    *auth.UseCase
	PageCfg   pagination.Config
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", jwtauth.Middleware(deps.JWTSecret))

	// Products (protegido; escritura solo admin/editor)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.PageCfg)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)

	writers := jwtauth.RequireRole(entity.RoleAdmin, entity.RoleEditor)
	products.Post("/", writers, productHandler.Create)
	products.Put("/:id", writers, productHandler.Update)
	products.Delete("/:id", jwtauth.RequireRole(entity.RoleAdmin), productHandler.Delete)
}
