package flog

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestLevelHelpersUseRequestLogger(t *testing.T) {
	prev := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	var buf bytes.Buffer
	app := fiber.New()
	app.Use(
		NewHandlerMiddleware(zerolog.New(&buf).Level(zerolog.TraceLevel)),
		RequestIDHandler("request_id", "X-Request-ID"),
	)
	app.Get("/", func(ctx *fiber.Ctx) error {
		TraceFrom(ctx).Msg("trace")
		DebugFrom(ctx).Msg("debug")
		InfoFrom(ctx).Msg("info")
		WarnFrom(ctx).Msg("warn")
		ErrorFrom(ctx).Msg("error")
		return ctx.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	id := resp.Header.Get("X-Request-ID")
	require.NotEmpty(t, id)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 5)
	for i, level := range []string{"trace", "debug", "info", "warn", "error"} {
		assert.Equal(t, level, gjson.GetBytes(lines[i], "level").String())
		assert.Equal(t, level, gjson.GetBytes(lines[i], "message").String())
		assert.Equal(t, id, gjson.GetBytes(lines[i], "request_id").String())
	}
}
