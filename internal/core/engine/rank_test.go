package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andhikaputrab/vgsales-dashboard/internal/model"
)

func TestTopNProperties(t *testing.T) {
	view := fixtureDataset().Records

	for _, metric := range model.Metrics {
		for _, n := range []int{-1, 0, 1, 3, len(view), len(view) + 10, DefaultTopN} {
			top := TopN(view, metric, n)
			assert.Len(t, top, max(0, min(n, len(view))))
			for i := 1; i < len(top); i++ {
				prev, cur := metric.Of(top[i-1]), metric.Of(top[i])
				assert.GreaterOrEqual(t, prev, cur)
				if prev == cur {
					assert.Less(t, top[i-1].Rank, top[i].Rank)
				}
			}
		}
	}
}

func TestTopNTiesByRankThenInputOrder(t *testing.T) {
	view := []*model.Record{
		{Rank: 9, Name: "late", GlobalSales: 5},
		{Rank: 2, Name: "early", GlobalSales: 5},
		{Rank: 4, Name: "first-dup", GlobalSales: 1},
		{Rank: 4, Name: "second-dup", GlobalSales: 1},
		{Rank: 1, Name: "top", GlobalSales: 7},
	}

	top := TopN(view, model.MetricGlobalSales, 10)
	names := make([]string, 0, len(top))
	for _, r := range top {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"top", "early", "late", "first-dup", "second-dup"}, names)
	assert.Equal(t, "late", view[0].Name, "input must not be reordered")
}

func TestRankEmptyView(t *testing.T) {
	ranking, err := Rank([]*model.Record{}, model.MetricGlobalSales, DefaultTopN)
	require.NoError(t, err)
	assert.NotNil(t, ranking.Records)
	assert.Empty(t, ranking.Records)
	assert.False(t, ranking.MaxValue.Valid)
}

func TestRankMaxValue(t *testing.T) {
	ranking, err := Rank(fixtureDataset().Records, model.MetricJPSales, 2)
	require.NoError(t, err)
	require.Len(t, ranking.Records, 2)
	assert.Equal(t, 5, ranking.Records[0].Rank)
	assert.InDelta(t, 10.22, ranking.MaxValue.Float64, 1e-12)
}
