package engine

import (
	"github.com/samber/lo"
	"gopkg.in/guregu/null.v3"

	"github.com/andhikaputrab/vgsales-dashboard/internal/model"
)

// Compare sums metric for two values a and b of a categorical dimension within view.
// DeltaPercent is (b - a) / a * 100 and only defined when a's total is positive.
func Compare(view []*model.Record, dim model.Dimension, a, b string, metric model.Metric) (*model.ComparisonResult, error) {
	if !dim.Categorical() {
		return nil, invalidSelection("dimension %q cannot be compared", dim)
	}
	if err := validateMetric(metric); err != nil {
		return nil, err
	}
	if a == b {
		return nil, invalidSelection("entities must differ, both are %q", a)
	}

	distinct := lo.Uniq(lo.Map(view, func(r *model.Record, _ int) string {
		return dim.Of(r)
	}))
	if len(distinct) < 2 {
		return nil, invalidSelection("filtered view has %d distinct %s value(s), need at least 2", len(distinct), dim)
	}

	subset := func(entity string) []*model.Record {
		return lo.Filter(view, func(r *model.Record, _ int) bool {
			return dim.Of(r) == entity
		})
	}
	subsetA, subsetB := subset(a), subset(b)
	if len(subsetA) == 0 {
		return nil, invalidSelection("%s %q is absent from the filtered view", dim, a)
	}
	if len(subsetB) == 0 {
		return nil, invalidSelection("%s %q is absent from the filtered view", dim, b)
	}

	result := &model.ComparisonResult{
		Dimension:   dim,
		Metric:      metric,
		EntityA:     a,
		EntityB:     b,
		ValueA:      lo.SumBy(subsetA, metric.Of),
		ValueB:      lo.SumBy(subsetB, metric.Of),
		BestRecordA: best(subsetA, metric),
		BestRecordB: best(subsetB, metric),
	}
	if result.ValueA > 0 {
		result.DeltaPercent = null.FloatFrom((result.ValueB - result.ValueA) / result.ValueA * 100)
	}

	return result, nil
}

func best(records []*model.Record, metric model.Metric) *model.Record {
	return lo.MaxBy(records, func(x, y *model.Record) bool {
		vx, vy := metric.Of(x), metric.Of(y)
		return vx > vy || (vx == vy && x.Rank < y.Rank)
	})
}
