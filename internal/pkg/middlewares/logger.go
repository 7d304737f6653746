package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/andhikaputrab/vgsales-dashboard/internal/pkg/flog"
	"github.com/andhikaputrab/vgsales-dashboard/internal/pkg/pgerr"
)

const RequestIDHeader = "X-VGSales-Request-ID"

func Logger(app *fiber.App) {
	Chained(
		app,
		flog.NewHandlerMiddleware(log.With().Logger()),
		flog.RequestIDHandler("request_id", RequestIDHeader),
		flog.RequestFieldsHandler(),
		requestLogger(),
	)
}

func requestLogger() fiber.Handler {
	return flog.AccessHandler(func(ctx *fiber.Ctx, duration time.Duration, err error) {
		status := ctx.Response().StatusCode()
		if err != nil {
			// the error handler has not run yet at this point
			switch e := err.(type) {
			case *pgerr.PenguinError:
				status = e.StatusCode
			case *fiber.Error:
				status = e.Code
			default:
				status = fiber.StatusInternalServerError
			}
		}
		flog.InfoFrom(ctx).
			Str("component", "httpreq").
			Int("status", status).
			Int("size", len(ctx.Response().Body())).
			Dur("duration", duration).
			AnErr("handler_err", err).
			Msg("received request")
	})
}
