package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/andhikaputrab/vgsales-dashboard/internal/model/types"
	"github.com/andhikaputrab/vgsales-dashboard/internal/server/svr"
	"github.com/andhikaputrab/vgsales-dashboard/internal/service"
	"github.com/andhikaputrab/vgsales-dashboard/internal/util/rekuest"
)

type Analysis struct {
	fx.In

	DatasetService   *service.Dataset
	DashboardService *service.Dashboard
}

func RegisterAnalysis(v1 *svr.V1, c Analysis) {
	v1.Get("/aggregate", c.GetAggregate)
	v1.Get("/trend", c.GetTrend)
	v1.Get("/matrix", c.GetMatrix)
	v1.Get("/top", c.GetTop)
	v1.Get("/compare", c.GetCompare)
}

// @Summary      Get Grouped Aggregate
// @Tags         Analysis
// @Produce      json
// @Success      200     {object}  model.GroupedAggregate
// @Failure      400     {object}  pgerr.PenguinError "Invalid query parameters"
// @Router       /api/v1/aggregate [GET]
func (c *Analysis) GetAggregate(ctx *fiber.Ctx) error {
	q, err := parseDashboardQuery(ctx)
	if err != nil {
		return err
	}
	agg, err := c.DashboardService.Aggregate(ctx.UserContext(), q)
	if err != nil {
		return err
	}
	return send(ctx, c.DatasetService.Get().Fingerprint, agg)
}

// @Summary      Get Year Trend
// @Tags         Analysis
// @Produce      json
// @Success      200     {object}  model.TrendSeries
// @Router       /api/v1/trend [GET]
func (c *Analysis) GetTrend(ctx *fiber.Ctx) error {
	q, err := parseDashboardQuery(ctx)
	if err != nil {
		return err
	}
	series, err := c.DashboardService.Trend(ctx.UserContext(), q)
	if err != nil {
		return err
	}
	return send(ctx, c.DatasetService.Get().Fingerprint, series)
}

// @Summary      Get Region Share Matrix
// @Tags         Analysis
// @Produce      json
// @Success      200     {object}  model.RegionMatrix
// @Router       /api/v1/matrix [GET]
func (c *Analysis) GetMatrix(ctx *fiber.Ctx) error {
	q, err := parseDashboardQuery(ctx)
	if err != nil {
		return err
	}
	matrix, err := c.DashboardService.Matrix(ctx.UserContext(), q)
	if err != nil {
		return err
	}
	return send(ctx, c.DatasetService.Get().Fingerprint, matrix)
}

// @Summary      Get Top Records
// @Tags         Analysis
// @Produce      json
// @Success      200     {object}  types.RankingResponse
// @Router       /api/v1/top [GET]
func (c *Analysis) GetTop(ctx *fiber.Ctx) error {
	q, err := parseDashboardQuery(ctx)
	if err != nil {
		return err
	}
	ranking, err := c.DashboardService.Top(ctx.UserContext(), q)
	if err != nil {
		return err
	}
	return send(ctx, c.DatasetService.Get().Fingerprint, ranking)
}

// @Summary      Compare Two Entities
// @Tags         Analysis
// @Produce      json
// @Success      200     {object}  model.ComparisonResult
// @Failure      400     {object}  pgerr.PenguinError "Missing comparison parameters"
// @Failure      422     {object}  pgerr.PenguinError "The comparison cannot be made on the filtered records"
// @Router       /api/v1/compare [GET]
func (c *Analysis) GetCompare(ctx *fiber.Ctx) error {
	q, err := parseDashboardQuery(ctx)
	if err != nil {
		return err
	}
	if err := rekuest.ValidStruct(ctx, &types.CompareSelection{
		CompareBy: q.CompareBy,
		CompareA:  q.CompareA,
		CompareB:  q.CompareB,
	}); err != nil {
		return err
	}
	result, err := c.DashboardService.Compare(ctx.UserContext(), q)
	if err != nil {
		return err
	}
	return send(ctx, c.DatasetService.Get().Fingerprint, result)
}
