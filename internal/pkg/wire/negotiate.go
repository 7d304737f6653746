package wire

import (
	"github.com/gofiber/fiber/v2"
)

const MIMEApplicationMsgpack = "application/msgpack"

// Send writes v as msgpack when the client prefers it and as JSON otherwise.
func Send(ctx *fiber.Ctx, v any) error {
	if ctx.Accepts(fiber.MIMEApplicationJSON, MIMEApplicationMsgpack) != MIMEApplicationMsgpack {
		return ctx.JSON(v)
	}

	b, err := Marshal(v)
	if err != nil {
		return err
	}
	ctx.Set(fiber.HeaderContentType, MIMEApplicationMsgpack)
	return ctx.Send(b)
}
