package query

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"gopkg.in/guregu/null.v3"

	"github.com/andhikaputrab/vgsales-dashboard/internal/core/engine"
	"github.com/andhikaputrab/vgsales-dashboard/internal/model"
	"github.com/andhikaputrab/vgsales-dashboard/internal/model/types"
)

func sampleResponse() *types.DashboardResponse {
	wii := &model.Record{Rank: 1, Name: "Wii Sports", Platform: "Wii", Year: 2006, Genre: "Sports", Publisher: "Nintendo", GlobalSales: 82.74}
	return &types.DashboardResponse{
		Fingerprint: "f00d",
		Results: &engine.Results{
			Records: 1234,
			Summary: &model.Summary{
				Metric:        model.MetricGlobalSales,
				Records:       1234,
				Total:         8920.44,
				DominantGenre: null.StringFrom("Action"),
				FirstYear:     null.IntFrom(1980),
				LastYear:      null.IntFrom(2016),
			},
			Top: &model.Ranking{
				Metric:  model.MetricGlobalSales,
				Limit:   1,
				Records: []*model.Record{wii},
			},
			Comparison: &model.ComparisonResult{
				Dimension:    model.DimensionGenre,
				EntityA:      "Sports",
				EntityB:      "Racing",
				ValueA:       100,
				ValueB:       75,
				DeltaPercent: null.FloatFrom(-25),
			},
		},
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeText(&buf, sampleResponse()))
	out := buf.String()

	assert.Contains(t, out, "Records:         1,234")
	assert.Contains(t, out, "8,920.44 M")
	assert.Contains(t, out, "Dominant genre:  Action")
	assert.Contains(t, out, "Top publisher:   -")
	assert.Contains(t, out, "Years:           1980 to 2016")
	assert.Contains(t, out, "#1      Wii Sports")
	assert.Contains(t, out, " 2006 ")
	assert.Contains(t, out, `genre "Sports" vs "Racing": 100.00 vs 75.00 (-25.0%)`)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, sampleResponse()))
	out := buf.String()

	assert.Equal(t, "f00d", gjson.Get(out, "fingerprint").String())
	assert.EqualValues(t, 1234, gjson.Get(out, "records").Int())
	assert.Equal(t, "Wii Sports", gjson.Get(out, "top.records.0.name").String())
	assert.Equal(t, gjson.Null, gjson.Get(out, "summary.topPublisher").Type)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
}
