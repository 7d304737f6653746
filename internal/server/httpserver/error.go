package httpserver

import (
	"strconv"

	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/andhikaputrab/vgsales-dashboard/internal/pkg/middlewares"
	"github.com/andhikaputrab/vgsales-dashboard/internal/pkg/pgerr"
)

func handleCustomError(ctx *fiber.Ctx, e *pgerr.PenguinError) error {
	log.Warn().
		Err(e).
		Str("method", ctx.Method()).
		Str("path", ctx.Path()).
		Msg(e.Message)

	body := fiber.Map{
		"code":    e.ErrorCode,
		"message": e.Message,
	}

	// Add extra details if needed
	if e.Extras != nil && len(*e.Extras) > 0 {
		for k, v := range *e.Extras {
			body[k] = v
		}
	}

	return ctx.Status(e.StatusCode).JSON(body)
}

func ErrorHandler(ctx *fiber.Ctx, err error) error {
	// Use custom error handler to return JSON error responses
	if e, ok := err.(*pgerr.PenguinError); ok {
		return handleCustomError(ctx, e)
	}

	// Default 500 statuscode
	re := *pgerr.ErrInternalError

	if e, ok := err.(*fiber.Error); ok {
		if e.Code == fiber.StatusNotFound {
			return handleCustomError(ctx, pgerr.ErrNotFound.Msg("route %s %s not found", ctx.Method(), ctx.Path()))
		}
		// Overwrite status code if fiber.Error type & provided code
		re.StatusCode = e.Code
		re.ErrorCode = "UNKNOWN_ERROR"
		re.Message = e.Message
	}

	log.Error().
		Stack().
		Err(err).
		Str("method", ctx.Method()).
		Str("path", ctx.Path()).
		Int("status", re.StatusCode).
		Msg("Internal Server Error")

	if hub := fibersentry.GetHubFromContext(ctx); hub != nil {
		hub.Scope().SetTag("status", strconv.Itoa(re.StatusCode))
		if id, ok := ctx.Locals(middlewares.LocalsKeyRequestID).(string); ok {
			hub.Scope().SetTag("request_id", id)
		}
		hub.CaptureException(err)
	}

	return handleCustomError(ctx, &re)
}
