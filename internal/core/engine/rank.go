package engine

import (
	"cmp"
	"slices"

	"gopkg.in/guregu/null.v3"

	"github.com/andhikaputrab/vgsales-dashboard/internal/model"
)

const DefaultTopN = 100

// TopN returns up to n records of view ordered by metric descending. Ties are
// broken by ascending Rank, then by position in view. n <= 0 yields an empty ranking.
func TopN(view []*model.Record, metric model.Metric, n int) []*model.Record {
	if n <= 0 || len(view) == 0 {
		return []*model.Record{}
	}

	ranked := slices.Clone(view)
	slices.SortStableFunc(ranked, func(a, b *model.Record) int {
		if c := cmp.Compare(metric.Of(b), metric.Of(a)); c != 0 {
			return c
		}
		return cmp.Compare(a.Rank, b.Rank)
	})

	return ranked[:min(n, len(ranked))]
}

// Rank wraps TopN with the metadata of a ranking table.
func Rank(view []*model.Record, metric model.Metric, n int) (*model.Ranking, error) {
	if err := validateMetric(metric); err != nil {
		return nil, err
	}
	records := TopN(view, metric, n)

	ranking := &model.Ranking{
		Metric:  metric,
		Limit:   max(n, 0),
		Records: records,
	}
	if len(records) > 0 {
		ranking.MaxValue = null.FloatFrom(metric.Of(records[0]))
	}
	return ranking, nil
}
