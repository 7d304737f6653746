package v1

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gopkg.in/guregu/null.v3"

	"github.com/andhikaputrab/vgsales-dashboard/internal/model/types"
	"github.com/andhikaputrab/vgsales-dashboard/internal/pkg/cachectrl"
	"github.com/andhikaputrab/vgsales-dashboard/internal/pkg/pgerr"
	"github.com/andhikaputrab/vgsales-dashboard/internal/pkg/wire"
	"github.com/andhikaputrab/vgsales-dashboard/internal/util"
	"github.com/andhikaputrab/vgsales-dashboard/internal/util/rekuest"
)

func queryInt(ctx *fiber.Ctx, key string) (null.Int, error) {
	raw := strings.TrimSpace(ctx.Query(key))
	if raw == "" {
		return null.Int{}, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return null.Int{}, pgerr.ErrInvalidReq.Msg("query parameter %q must be an integer", key)
	}
	return null.IntFrom(int64(v)), nil
}

// send answers conditional requests for the dataset version before writing v.
func send(ctx *fiber.Ctx, version string, v any) error {
	if cachectrl.ETag(ctx, version) {
		return nil
	}
	return wire.Send(ctx, v)
}

// parseDashboardQuery reads a DashboardQuery from the query string. List parameters are comma separated.
func parseDashboardQuery(ctx *fiber.Ctx) (*types.DashboardQuery, error) {
	q := &types.DashboardQuery{
		Genres:    util.SplitList(ctx.Query("genres")),
		Platforms: util.SplitList(ctx.Query("platforms")),
		Publisher: strings.TrimSpace(ctx.Query("publisher")),
		Metric:    strings.TrimSpace(ctx.Query("metric")),
		GroupBy:   util.SplitList(ctx.Query("groupBy")),
		Matrix:    strings.TrimSpace(ctx.Query("matrix")),
		Regions:   util.SplitList(ctx.Query("regions")),
		CompareBy: strings.TrimSpace(ctx.Query("compareBy")),
		CompareA:  ctx.Query("compareA"),
		CompareB:  ctx.Query("compareB"),
	}

	var err error
	if q.YearMin, err = queryInt(ctx, "yearMin"); err != nil {
		return nil, err
	}
	if q.YearMax, err = queryInt(ctx, "yearMax"); err != nil {
		return nil, err
	}
	if q.Top, err = queryInt(ctx, "top"); err != nil {
		return nil, err
	}
	if q.Window, err = queryInt(ctx, "window"); err != nil {
		return nil, err
	}

	if err := rekuest.ValidStruct(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}
