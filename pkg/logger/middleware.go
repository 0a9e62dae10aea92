package logger

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderRequestID header de correlación que se propaga al cliente.
const HeaderRequestID = "X-Request-ID"

// requestIDKey clave de Locals con el ID de correlación del request.
const requestIDKey = "logger_request_id"

// RequestLogger middleware de acceso: asigna un request ID (o respeta el que
// venga en el header), procesa el request y registra método, ruta, status y
// latencia. El nivel depende del status: >=500 error, >=400 warn, resto info.
func RequestLogger(log *Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Locals(requestIDKey, requestID)
		c.Set(HeaderRequestID, requestID)

		start := time.Now()
		err := c.Next()
		if err != nil {
			// Resolver el error aquí (como hace el logger de Fiber) para
			// registrar el status final del envelope, no el intermedio.
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		status := c.Response().StatusCode()

		evt := log.Info()
		switch {
		case status >= fiber.StatusInternalServerError:
			evt = log.Error()
		case status >= fiber.StatusBadRequest:
			evt = log.Warn()
		}
		evt.
			Str("request_id", requestID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start))
		if err != nil {
			evt = evt.Err(err)
		}
		evt.Msg("http request")

		// El error ya fue resuelto por el ErrorHandler; no se propaga.
		return nil
	}
}

// RequestID devuelve el ID de correlación del request o cadena vacía.
func RequestID(c *fiber.Ctx) string {
	id, _ := c.Locals(requestIDKey).(string)
	return id
}
