package engine

import (
	"slices"
	"strings"

	"github.com/ahmetb/go-linq/v3"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/andhikaputrab/vgsales-dashboard/internal/model"
)

const keySeparator = "\x1f"

func validateDimensions(dims []model.Dimension) error {
	if len(dims) < 1 || len(dims) > 2 {
		return errors.Wrapf(ErrInvalidDimensions, "got %d", len(dims))
	}
	for _, d := range dims {
		if !d.Valid() {
			return errors.Wrapf(ErrInvalidDimensions, "%q", d)
		}
	}
	if len(lo.Uniq(dims)) != len(dims) {
		return errors.Wrap(ErrInvalidDimensions, "duplicated dimension")
	}
	return nil
}

func validateMetric(m model.Metric) error {
	if !m.Valid() {
		return errors.Wrapf(model.ErrUnknownMetric, "%q", m)
	}
	return nil
}

func keyOf(r *model.Record, dims []model.Dimension) []string {
	return lo.Map(dims, func(d model.Dimension, _ int) string {
		return d.Of(r)
	})
}

// GroupSum groups view by one or two dimensions and sums metric within each group.
// The sum over all groups equals the sum of metric over view.
func GroupSum(view []*model.Record, dims []model.Dimension, metric model.Metric) (*model.GroupedAggregate, error) {
	if err := validateDimensions(dims); err != nil {
		return nil, err
	}
	if err := validateMetric(metric); err != nil {
		return nil, err
	}

	var grouped []linq.Group
	linq.From(view).
		GroupByT(
			func(r *model.Record) string { return strings.Join(keyOf(r, dims), keySeparator) },
			func(r *model.Record) *model.Record { return r }).
		ToSlice(&grouped)

	groups := make([]model.Group, 0, len(grouped))
	for _, g := range grouped {
		var sum float64
		for _, el := range g.Group {
			sum += metric.Of(el.(*model.Record))
		}
		groups = append(groups, model.Group{
			Key:   keyOf(g.Group[0].(*model.Record), dims),
			Value: sum,
			Count: len(g.Group),
		})
	}

	slices.SortFunc(groups, func(a, b model.Group) int {
		for i, d := range dims {
			if c := d.Compare(a.Key[i], b.Key[i]); c != 0 {
				return c
			}
		}
		return 0
	})

	return &model.GroupedAggregate{
		Dimensions: slices.Clone(dims),
		Metric:     metric,
		Groups:     groups,
	}, nil
}
