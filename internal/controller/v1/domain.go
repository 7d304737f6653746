package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/andhikaputrab/vgsales-dashboard/internal/model"
	"github.com/andhikaputrab/vgsales-dashboard/internal/pkg/cachectrl"
	"github.com/andhikaputrab/vgsales-dashboard/internal/pkg/flog"
	"github.com/andhikaputrab/vgsales-dashboard/internal/pkg/pgerr"
	"github.com/andhikaputrab/vgsales-dashboard/internal/server/svr"
	"github.com/andhikaputrab/vgsales-dashboard/internal/service"
)

type Domain struct {
	fx.In

	DatasetService   *service.Dataset
	DashboardService *service.Dashboard
}

func RegisterDomain(v1 *svr.V1, c Domain) {
	v1.Get("/domain", c.GetDomain)
	v1.Get("/selections/:dimension", c.GetSelections)
}

// @Summary      Get Dataset Domain
// @Description  Get the genres, platforms, publishers and year bounds observed in the loaded dataset.
// @Tags         Domain
// @Produce      json
// @Success      200     {object}  types.DomainResponse
// @Router       /api/v1/domain [GET]
func (c *Domain) GetDomain(ctx *fiber.Ctx) error {
	domain, err := c.DatasetService.Domain()
	if err != nil {
		flog.ErrorFrom(ctx).
			Err(err).
			Str("evt.name", "domain.build").
			Msg("failed to build dataset domain")
		return err
	}
	cachectrl.OptIn(ctx, domain.LoadedAt)
	return send(ctx, domain.Fingerprint, domain)
}

// @Summary      Get Comparable Values
// @Description  Get the distinct values of a categorical dimension left after applying the filters.
// @Tags         Domain
// @Produce      json
// @Param        dimension  path      string  true  "genre, platform or publisher"
// @Success      200        {array}   string
// @Failure      400        {object}  pgerr.PenguinError "Invalid dimension or filters"
// @Router       /api/v1/selections/{dimension} [GET]
func (c *Domain) GetSelections(ctx *fiber.Ctx) error {
	dim, err := model.ParseDimension(ctx.Params("dimension"))
	if err != nil {
		return pgerr.ErrInvalidReq.Msg("%s", err.Error())
	}
	q, err := parseDashboardQuery(ctx)
	if err != nil {
		return err
	}

	values, err := c.DashboardService.Selections(ctx.UserContext(), q, dim)
	if err != nil {
		return err
	}
	return send(ctx, c.DatasetService.Get().Fingerprint, values)
}
