package v1

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"go.uber.org/fx"

	"github.com/andhikaputrab/vgsales-dashboard/internal/app/appconfig"
	"github.com/andhikaputrab/vgsales-dashboard/internal/model/types"
	"github.com/andhikaputrab/vgsales-dashboard/internal/pkg/cachectrl"
	"github.com/andhikaputrab/vgsales-dashboard/internal/pkg/flog"
	"github.com/andhikaputrab/vgsales-dashboard/internal/pkg/pgerr"
	"github.com/andhikaputrab/vgsales-dashboard/internal/pkg/wire"
	"github.com/andhikaputrab/vgsales-dashboard/internal/server/svr"
	"github.com/andhikaputrab/vgsales-dashboard/internal/service"
	"github.com/andhikaputrab/vgsales-dashboard/internal/util/rekuest"
)

type Dashboard struct {
	fx.In

	Config           *appconfig.Config
	DatasetService   *service.Dataset
	DashboardService *service.Dashboard
}

func RegisterDashboard(v1 *svr.V1, c Dashboard) {
	v1.Get("/dashboard", c.GetDashboard)

	batch := []fiber.Handler{c.BatchDashboard}
	if !c.Config.DevMode {
		batch = append([]fiber.Handler{limiter.New(limiter.Config{
			Max:        60,
			Expiration: time.Minute,
			LimitReached: func(ctx *fiber.Ctx) error {
				return ctx.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"code":    "TOO_MANY_REQUESTS",
					"message": "Your client is sending batch requests too frequently.",
				})
			},
		})}, batch...)
	}
	v1.Post("/dashboard/batch", batch...)
}

// @Summary      Render Dashboard
// @Description  Filter the dataset once and derive the summary, grouped aggregate, year trend, region share matrix, ranking and an optional comparison from the same filtered records.
// @Tags         Dashboard
// @Produce      json
// @Param        yearMin    query     int     false  "Inclusive lower year bound"
// @Param        yearMax    query     int     false  "Inclusive upper year bound"
// @Param        genres     query     string  false  "Comma separated genres"
// @Param        platforms  query     string  false  "Comma separated platforms"
// @Param        publisher  query     string  false  "Exact publisher"
// @Param        metric     query     string  false  "Sales metric"  default(global_sales)
// @Param        groupBy    query     string  false  "One or two comma separated dimensions"  default(year,genre)
// @Param        top        query     int     false  "Ranking size"
// @Param        window     query     int     false  "Moving average window"
// @Param        matrix     query     string  false  "Region matrix dimension"  default(genre)
// @Param        regions    query     string  false  "Comma separated regional metrics"
// @Param        compareBy  query     string  false  "genre, platform or publisher"
// @Param        compareA   query     string  false  "First entity"
// @Param        compareB   query     string  false  "Second entity"
// @Success      200        {object}  types.DashboardResponse
// @Failure      400        {object}  pgerr.PenguinError "Invalid query parameters"
// @Router       /api/v1/dashboard [GET]
func (c *Dashboard) GetDashboard(ctx *fiber.Ctx) error {
	q, err := parseDashboardQuery(ctx)
	if err != nil {
		return err
	}
	resp, err := c.DashboardService.Run(ctx.UserContext(), q)
	if err != nil {
		return err
	}
	flog.TraceFrom(ctx).
		Str("evt.name", "dashboard.render").
		Int("records", resp.Records).
		Bool("comparisonRejected", resp.ComparisonIssue != nil).
		Msg("rendered dashboard")
	return send(ctx, resp.Fingerprint, resp)
}

// @Summary      Render Dashboards in Batch
// @Tags         Dashboard
// @Accept       json
// @Produce      json
// @Param        query  body      types.DashboardBatch  true  "Queries to evaluate"
// @Success      200    {object}  types.DashboardBatchResponse
// @Failure      400    {object}  pgerr.PenguinError "Invalid request body"
// @Router       /api/v1/dashboard/batch [POST]
func (c *Dashboard) BatchDashboard(ctx *fiber.Ctx) error {
	var batch types.DashboardBatch
	if err := rekuest.ValidBody(ctx, &batch); err != nil {
		return err
	}
	if len(batch.Queries) > c.Config.BatchMaxQueries {
		flog.WarnFrom(ctx).
			Str("evt.name", "dashboard.batch.rejected").
			Int("queries", len(batch.Queries)).
			Int("max", c.Config.BatchMaxQueries).
			Msg("batch exceeds the query limit")
		return pgerr.ErrInvalidReq.Msg("batch must not contain more than %d queries", c.Config.BatchMaxQueries)
	}
	flog.DebugFrom(ctx).
		Str("evt.name", "dashboard.batch").
		Int("queries", len(batch.Queries)).
		Msg("evaluating dashboard batch")

	resp, err := c.DashboardService.RunBatch(ctx.UserContext(), batch.Queries)
	if err != nil {
		return err
	}
	cachectrl.OptOut(ctx)
	return wire.Send(ctx, resp)
}
