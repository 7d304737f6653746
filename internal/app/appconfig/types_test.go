package appconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andhikaputrab/vgsales-dashboard/internal/app/appcontext"
	"github.com/andhikaputrab/vgsales-dashboard/internal/model"
)

func TestMetricListDecode(t *testing.T) {
	var l MetricList
	assert.NoError(t, l.Decode("na_sales, EU_SALES,jp_sales,"))
	assert.Equal(t, MetricList{model.MetricNASales, model.MetricEUSales, model.MetricJPSales}, l)

	assert.Error(t, l.Decode("na_sales,na_sales"))
	assert.Error(t, l.Decode("na_sales,revenue"))
	assert.Error(t, l.Decode(" , "))
}

func TestParseDefaults(t *testing.T) {
	t.Setenv("VGSALES_TOP_N_LIMIT", "25")
	t.Setenv("VGSALES_MATRIX_REGIONS", "other_sales,global_sales")

	conf, err := Parse(appcontext.Declare(appcontext.EnvCLI))
	assert.NoError(t, err)
	assert.Equal(t, 25, conf.TopNLimit)
	assert.Equal(t, 1000, conf.TopNMax)
	assert.Equal(t, 3, conf.MovingAverageWindow)
	assert.Equal(t, MetricList{model.MetricOtherSales, model.MetricGlobalSales}, conf.MatrixRegions)
	assert.Equal(t, "data/processed/vgsales_cleaned.csv", conf.DatasetPath)
	assert.Empty(t, conf.DatasetS3Bucket)
}
