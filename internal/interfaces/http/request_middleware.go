package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stockflow/stockflow-api/pkg/logger"
)

// HeaderRequestID cabecera donde se propaga el ID de correlación.
const HeaderRequestID = "X-Request-ID"

// RequestLogger devuelve un middleware que asigna un request id (uuid) si el
// cliente no envió uno, lo refleja en la respuesta y registra cada petición
// con método, ruta, estado y duración.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqID := c.Get(HeaderRequestID)
		if reqID == "" {
			reqID = uuid.New().String()
		}
		c.Set(HeaderRequestID, reqID)

		start := time.Now()
		err := c.Next()

		log.Info().
			Str("request_id", reqID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("petición HTTP")
		return err
	}
}
