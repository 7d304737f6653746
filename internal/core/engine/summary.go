package engine

import (
	"github.com/samber/lo"
	"gopkg.in/guregu/null.v3"

	"github.com/andhikaputrab/vgsales-dashboard/internal/model"
)

// Summarize computes the headline figures of view. Empty views keep every optional field null.
func Summarize(view []*model.Record, metric model.Metric) (*model.Summary, error) {
	if err := validateMetric(metric); err != nil {
		return nil, err
	}

	summary := &model.Summary{
		Metric:  metric,
		Records: len(view),
		Total:   lo.SumBy(view, metric.Of),
	}
	if len(view) == 0 {
		return summary, nil
	}

	summary.DominantGenre = null.StringFrom(mode(view, func(r *model.Record) string { return r.Genre }))
	summary.TopPublisher = null.StringFrom(mode(view, func(r *model.Record) string { return r.Publisher }))

	years := lo.Map(view, func(r *model.Record, _ int) int { return r.Year })
	summary.FirstYear = null.IntFrom(int64(lo.Min(years)))
	summary.LastYear = null.IntFrom(int64(lo.Max(years)))

	return summary, nil
}

// mode returns the most frequent value; ties go to the lexicographically smallest.
func mode(view []*model.Record, sel func(r *model.Record) string) string {
	counts := lo.CountValues(lo.Map(view, func(r *model.Record, _ int) string { return sel(r) }))

	var (
		winner string
		top    int
	)
	for value, n := range counts {
		if n > top || (n == top && value < winner) {
			winner, top = value, n
		}
	}
	return winner
}
