package engine

import (
	"github.com/samber/lo"

	"github.com/andhikaputrab/vgsales-dashboard/internal/model"
)

// Filter returns the records of ds matching every predicate of criteria, in dataset order.
// The result shares record pointers with ds and may be empty.
func Filter(ds *model.Dataset, criteria model.FilterCriteria) []*model.Record {
	genres := criteria.Genres.Resolve(ds.Domain.Genres)
	platforms := criteria.Platforms.Resolve(ds.Domain.Platforms)

	return lo.Filter(ds.Records, func(r *model.Record, _ int) bool {
		if !criteria.Years.Contains(r.Year) {
			return false
		}
		if _, ok := genres[r.Genre]; !ok {
			return false
		}
		if _, ok := platforms[r.Platform]; !ok {
			return false
		}
		return criteria.Publisher.Matches(r.Publisher)
	})
}
