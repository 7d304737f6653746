package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"github.com/andhikaputrab/vgsales-dashboard/internal/pkg/flog"
)

const LocalsKeyRequestID = "requestId"

// RequestID copies the id generated by the logger middleware into ctx.Locals.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if id, ok := flog.IDFromFiberCtx(c); ok {
			c.Locals(LocalsKeyRequestID, id.String())
		}
		return c.Next()
	}
}
