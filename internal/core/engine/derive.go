package engine

import (
	"slices"
	"strconv"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gopkg.in/guregu/null.v3"

	"github.com/andhikaputrab/vgsales-dashboard/internal/model"
)

const DefaultWindow = 3

// MovingAverage computes the trailing mean of series over window points. The first
// window-1 entries are undefined. A window below 1 is treated as 1.
func MovingAverage(series []float64, window int) []null.Float {
	if window < 1 {
		window = 1
	}
	out := make([]null.Float, len(series))
	for i := window - 1; i < len(series); i++ {
		out[i] = null.FloatFrom(lo.Sum(series[i-window+1:i+1]) / float64(window))
	}
	return out
}

// YearTrend sums metric per year in ascending order and attaches the moving average.
// Missing years are not filled in.
func YearTrend(view []*model.Record, metric model.Metric, window int) (*model.TrendSeries, error) {
	agg, err := GroupSum(view, []model.Dimension{model.DimensionYear}, metric)
	if err != nil {
		return nil, err
	}

	trend := &model.TrendSeries{
		Metric: metric,
		Window: max(window, 1),
		Years:  make([]int, 0, len(agg.Groups)),
		Totals: make([]float64, 0, len(agg.Groups)),
	}
	for _, g := range agg.Groups {
		year, err := strconv.Atoi(g.Key[0])
		if err != nil {
			return nil, errors.Wrap(err, "malformed year key")
		}
		trend.Years = append(trend.Years, year)
		trend.Totals = append(trend.Totals, g.Value)
	}
	trend.MovingAverage = MovingAverage(trend.Totals, window)

	return trend, nil
}

func validateRegions(regions []model.Metric) error {
	for _, r := range regions {
		if err := validateMetric(r); err != nil {
			return err
		}
	}
	if len(lo.Uniq(regions)) != len(regions) {
		return errors.Wrap(model.ErrUnknownMetric, "duplicated region")
	}
	return nil
}

// RegionSums builds the dimension by region matrix of summed sales. Empty regions
// fall back to model.DefaultRegions.
func RegionSums(view []*model.Record, dim model.Dimension, regions []model.Metric) (*model.RegionMatrix, error) {
	if err := validateDimensions([]model.Dimension{dim}); err != nil {
		return nil, err
	}
	if len(regions) == 0 {
		regions = model.DefaultRegions
	}
	if err := validateRegions(regions); err != nil {
		return nil, err
	}

	grouped := lo.GroupBy(view, func(r *model.Record) string {
		return dim.Of(r)
	})
	keys := lo.Keys(grouped)
	slices.SortFunc(keys, dim.Compare)

	rows := make([]model.MatrixRow, 0, len(keys))
	for _, key := range keys {
		row := model.MatrixRow{
			Key:    key,
			Values: make([]float64, len(regions)),
		}
		for _, r := range grouped[key] {
			for i, region := range regions {
				row.Values[i] += region.Of(r)
			}
		}
		row.Total = lo.Sum(row.Values)
		rows = append(rows, row)
	}

	return &model.RegionMatrix{
		Dimension: dim,
		Regions:   slices.Clone(regions),
		Rows:      rows,
	}, nil
}

// Normalize divides every row of m by its own total. Rows whose total is zero get
// zero shares and are marked undefined. m is left untouched.
func Normalize(m *model.RegionMatrix) *model.RegionMatrix {
	out := &model.RegionMatrix{
		Dimension:  m.Dimension,
		Regions:    slices.Clone(m.Regions),
		Rows:       make([]model.MatrixRow, len(m.Rows)),
		Normalized: true,
	}
	for i, row := range m.Rows {
		shares := make([]float64, len(row.Values))
		defined := row.Total > 0
		if defined {
			for j, v := range row.Values {
				shares[j] = v / row.Total
			}
		}
		out.Rows[i] = model.MatrixRow{
			Key:     row.Key,
			Total:   row.Total,
			Values:  slices.Clone(row.Values),
			Shares:  shares,
			Defined: defined,
		}
	}
	return out
}
