package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"

	"github.com/andhikaputrab/vgsales-dashboard/internal/model"
)

func TestMovingAverageScenario(t *testing.T) {
	got := MovingAverage([]float64{1, 2, 3, 4, 5}, 3)

	assert.Equal(t, []null.Float{
		{},
		{},
		null.FloatFrom(2),
		null.FloatFrom(3),
		null.FloatFrom(4),
	}, got)
}

func TestMovingAverageProperties(t *testing.T) {
	series := []float64{4.5, 0, 12.25, 7, 3.5, 9, 1}

	for window := 1; window <= len(series)+1; window++ {
		got := MovingAverage(series, window)
		require.Len(t, got, len(series))
		for i, v := range got {
			if i < window-1 {
				assert.False(t, v.Valid, "window=%d i=%d", window, i)
				continue
			}
			var sum float64
			for _, x := range series[i-window+1 : i+1] {
				sum += x
			}
			assert.True(t, v.Valid)
			assert.InDelta(t, sum/float64(window), v.Float64, 1e-12)
		}
	}
}

func TestMovingAverageDegenerateWindow(t *testing.T) {
	got := MovingAverage([]float64{2, 4}, 0)
	assert.Equal(t, []null.Float{null.FloatFrom(2), null.FloatFrom(4)}, got)

	assert.Empty(t, MovingAverage(nil, 3))
}

func TestYearTrend(t *testing.T) {
	ds := fixtureDataset()

	trend, err := YearTrend(ds.Records, model.MetricGlobalSales, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{1985, 1996, 2006, 2008, 2009, 2010, 2011, 2013}, trend.Years)
	assert.Len(t, trend.Totals, len(trend.Years))
	assert.Len(t, trend.MovingAverage, len(trend.Years))
	assert.False(t, trend.MovingAverage[1].Valid)
	assert.InDelta(t, (trend.Totals[0]+trend.Totals[1]+trend.Totals[2])/3, trend.MovingAverage[2].Float64, 1e-9)
}

func TestNormalizeScenario(t *testing.T) {
	m := Normalize(&model.RegionMatrix{
		Dimension: model.DimensionGenre,
		Regions:   model.DefaultRegions,
		Rows:      []model.MatrixRow{{Key: "Action", Total: 10, Values: []float64{4, 1, 5}}},
	})

	require.Len(t, m.Rows, 1)
	assert.True(t, m.Rows[0].Defined)
	assert.InDeltaSlice(t, []float64{0.4, 0.1, 0.5}, m.Rows[0].Shares, 1e-12)
}

func TestRegionSumsNormalized(t *testing.T) {
	ds := fixtureDataset()

	sums, err := RegionSums(ds.Records, model.DimensionGenre, nil)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultRegions, sums.Regions)
	assert.False(t, sums.Normalized)

	m := Normalize(sums)
	assert.True(t, m.Normalized)
	assert.Equal(t, ds.Domain.Genres, keysOf(m.Rows))
	for _, row := range m.Rows {
		require.Len(t, row.Shares, 3)
		if row.Total == 0 {
			continue
		}
		var total float64
		for _, s := range row.Shares {
			total += s
		}
		assert.True(t, row.Defined)
		assert.InDelta(t, 1.0, total, 1e-9, "row %s", row.Key)
	}

	assert.Nil(t, sums.Rows[0].Shares, "normalisation must not touch its input")
}

func TestNormalizeZeroRow(t *testing.T) {
	view := []*model.Record{
		{Rank: 1, Year: 2008, Genre: "Action"},
		{Rank: 2, Year: 2008, Genre: "Sports", NASales: 1, JPSales: 1},
	}

	sums, err := RegionSums(view, model.DimensionGenre, []model.Metric{model.MetricNASales, model.MetricJPSales})
	require.NoError(t, err)
	m := Normalize(sums)

	require.Len(t, m.Rows, 2)
	assert.Equal(t, "Action", m.Rows[0].Key)
	assert.False(t, m.Rows[0].Defined)
	assert.Equal(t, []float64{0, 0}, m.Rows[0].Shares)
	assert.True(t, m.Rows[1].Defined)
	assert.Equal(t, []float64{0.5, 0.5}, m.Rows[1].Shares)
}

func TestRegionSumsRejectsDuplicatedRegion(t *testing.T) {
	_, err := RegionSums(nil, model.DimensionGenre, []model.Metric{model.MetricNASales, model.MetricNASales})
	assert.Error(t, err)
}

func keysOf(rows []model.MatrixRow) []string {
	keys := make([]string, 0, len(rows))
	for _, r := range rows {
		keys = append(keys, r.Key)
	}
	return keys
}
