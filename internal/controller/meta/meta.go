package meta

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cache"
	"go.uber.org/fx"

	"github.com/andhikaputrab/vgsales-dashboard/internal/pkg/bininfo"
	"github.com/andhikaputrab/vgsales-dashboard/internal/pkg/pgerr"
	"github.com/andhikaputrab/vgsales-dashboard/internal/server/svr"
	"github.com/andhikaputrab/vgsales-dashboard/internal/service"
)

type Meta struct {
	fx.In

	HealthService *service.Health
}

func RegisterMeta(meta *svr.Meta, c Meta) {
	meta.Get("/bininfo", c.BinInfo)

	meta.Get("/health", cache.New(cache.Config{
		// cache it for a second to mitigate potential DDoS
		Expiration: time.Second,
	}), c.Health)
}

func (c *Meta) BinInfo(ctx *fiber.Ctx) error {
	return ctx.JSON(bininfo.Get())
}

func (c *Meta) Health(ctx *fiber.Ctx) error {
	if err := c.HealthService.Ping(ctx.UserContext()); err != nil {
		return pgerr.ErrDataLoadFailed.Msg("%s", err.Error())
	}

	return ctx.JSON(fiber.Map{
		"status": "ok",
	})
}
