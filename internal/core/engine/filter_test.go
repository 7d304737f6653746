package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andhikaputrab/vgsales-dashboard/internal/model"
)

func TestFilterScenario(t *testing.T) {
	ds := scenarioDataset()

	view := Filter(ds, model.FilterCriteria{
		Years:  model.NewYearRange(2000, 2001),
		Genres: model.SubsetOf("Action"),
	})

	require.Len(t, view, 2)
	assert.Equal(t, "a", view[0].Name)
	assert.Equal(t, "c", view[1].Name)
}

func TestFilterEmptySubsetSelectsAll(t *testing.T) {
	ds := fixtureDataset()
	all := model.CriteriaFor(&ds.Domain)

	empty := all
	empty.Genres = model.SubsetOf()
	empty.Platforms = model.SubsetOf("")

	assert.Equal(t, Filter(ds, all), Filter(ds, empty))
	assert.Len(t, Filter(ds, all), len(ds.Records))
}

func TestFilterConjunction(t *testing.T) {
	ds := fixtureDataset()

	criterias := []model.FilterCriteria{
		{Years: model.NewYearRange(2013, 2006), Genres: model.SubsetOf("Action", "Sports")},
		{Years: model.NewYearRange(1980, 2020), Platforms: model.SubsetOf("X360"), Publisher: model.ExactPublisher("Activision")},
		{Years: model.NewYearRange(2008, 2008)},
		{Years: model.NewYearRange(1980, 2020), Genres: model.SubsetOf("Puzzle")},
	}

	for _, criteria := range criterias {
		view := Filter(ds, criteria)
		genres := criteria.Genres.Resolve(ds.Domain.Genres)
		platforms := criteria.Platforms.Resolve(ds.Domain.Platforms)
		for _, r := range view {
			assert.True(t, criteria.Years.Contains(r.Year))
			assert.Contains(t, genres, r.Genre)
			assert.Contains(t, platforms, r.Platform)
			assert.True(t, criteria.Publisher.Matches(r.Publisher))
			assert.Contains(t, ds.Records, r, "filtered records must come from the dataset")
		}
	}
}

func TestFilterAbsentGenreYieldsEmptyView(t *testing.T) {
	ds := fixtureDataset()
	criteria := model.CriteriaFor(&ds.Domain)
	criteria.Genres = model.SubsetOf("Visual Novel")

	view := Filter(ds, criteria)
	assert.NotNil(t, view)
	assert.Empty(t, view)
}

func TestFilterKeepsDatasetOrder(t *testing.T) {
	ds := fixtureDataset()
	criteria := model.CriteriaFor(&ds.Domain)
	criteria.Platforms = model.SubsetOf("X360")

	view := Filter(ds, criteria)
	ranks := make([]int, 0, len(view))
	for _, r := range view {
		ranks = append(ranks, r.Rank)
	}
	assert.Equal(t, []int{7, 8, 9, 12}, ranks)
}
