package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ServiceName = "vgsales"
)

var (
	DatasetRecords = promauto.NewGauge(prometheus.GaugeOpts{
		Name: prometheus.BuildFQName(ServiceName, "dataset", "records"),
		Help: "Number of records in the loaded dataset",
	})
	DatasetLoadDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "dataset", "load_duration_seconds"),
		Help:    "Duration of dataset loading in seconds",
		Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
	}, []string{"source"})
	PipelineDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "pipeline", "duration_seconds"),
		Help:    "Duration of one pipeline evaluation in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
	}, []string{"operation"})
	PipelineFilteredRecords = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "pipeline", "filtered_records"),
		Help:    "Number of records left after filtering",
		Buckets: prometheus.ExponentialBuckets(1, 4, 9),
	})
	ComparisonRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "pipeline", "comparison_rejected_total"),
		Help: "Number of comparisons rejected as invalid selections",
	})
)
