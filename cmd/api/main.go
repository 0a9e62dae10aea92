package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"golang.org/x/text/language"

	_ "github.com/jhoicas/apikit/docs"
	appauth "github.com/jhoicas/apikit/internal/application/auth"
	"github.com/jhoicas/apikit/internal/application/usecase"
	"github.com/jhoicas/apikit/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/apikit/internal/interfaces/http"
	"github.com/jhoicas/apikit/pkg/apierror"
	"github.com/jhoicas/apikit/pkg/config"
	"github.com/jhoicas/apikit/pkg/i18n"
	"github.com/jhoicas/apikit/pkg/jwtauth"
	"github.com/jhoicas/apikit/pkg/logger"
	"github.com/jhoicas/apikit/pkg/pagination"
	"github.com/jhoicas/apikit/pkg/request"
	"github.com/jhoicas/apikit/pkg/swaggerui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Translator con los catálogos de mensajes de cada módulo. El idioma por
	// defecto viene de configuración; un locale inválido degrada a inglés.
	fallback, err := language.Parse(cfg.I18n.DefaultLocale)
	if err != nil {
		fallback = language.English
	}
	translator := i18n.New(fallback)
	translator.Register(language.English, apierror.MessagesEN)
	translator.Register(language.English, jwtauth.MessagesEN)
	translator.Register(language.English, appauth.MessagesEN)
	translator.Register(language.English, request.MessagesEN)
	translator.Register(language.Spanish, apierror.MessagesES)
	translator.Register(language.Spanish, jwtauth.MessagesES)
	translator.Register(language.Spanish, appauth.MessagesES)
	translator.Register(language.Spanish, request.MessagesES)

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	productUC := usecase.NewProductUseCase(productRepo)
	authUC := appauth.NewUseCase(userRepo, jwtauth.Config{
		Secret: cfg.JWT.Secret,
		Issuer: cfg.JWT.Issuer,
		TTL:    time.Duration(cfg.JWT.Expiration) * time.Minute,
	})

	pageCfg := pagination.Config{
		DefaultSize: cfg.Page.DefaultSize,
		MaxSize:     cfg.Page.MaxSize,
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: apierror.ErrorHandler(apierror.NewBuilder(translator)),
	})
	app.Use(recover.New())
	app.Use(logger.RequestLogger(log))
	app.Use(i18n.Middleware(translator))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swaggerui.New(swaggerui.Config{
		Title: cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC: productUC,
		AuthUC:    authUC,
		PageCfg:   pageCfg,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
