package appconfig

import (
	"time"

	"github.com/andhikaputrab/vgsales-dashboard/internal/app/appcontext"
)

type ConfigSpec struct {
	// ServiceAddress is the listen address would listen on for serving API requests.
	ServiceAddress string `required:"true" split_words:"true" default:"localhost:9010"`

	// LogJsonStdout is whether to log JSON logs (instead of pretty-print logs) to stdout for the ease of log collection.
	LogJsonStdout bool `split_words:"true" default:"false"`

	// LogFile is the rotating log file path. Leaving this empty disables file logging.
	LogFile string `split_words:"true" default:"logs/app.log"`

	// TrustedProxies is a list of trusted proxies that are trusted to report a real IP via the X-Forwarded-For header.
	TrustedProxies []string `required:"true" split_words:"true" default:"::1,127.0.0.1,10.0.0.0/8"`

	// DevMode to indicate development mode. When true, the program would spin up utilities for debugging and
	// provide a more contextual message when encountered a panic. See internal/server/httpserver/http.go for the
	// actual implementation details.
	DevMode bool `split_words:"true"`

	// TracingEnabled to indicate whether to enable OpenTelemetry tracing.
	TracingEnabled bool `split_words:"true"`

	// TracingExporters to indicate which exporters to use for tracing.
	// Valid values are: jaeger, otlp, stdout (for debug).
	TracingExporters []string `split_words:"true" default:"stdout"`

	// TracingSampleRate to indicate the sampling rate for tracing.
	// Valid values are: 0.0 (disabled), 1.0 (all traces), or a value between 0.0 and 1.0 (sampling rate).
	TracingSampleRate float64 `split_words:"true" default:"1.0"`

	// SentryDSN is the DSN of the Sentry server. See https://pkg.go.dev/github.com/getsentry/sentry-go#ClientOptions
	SentryDSN string `split_words:"true"`

	// DatasetPath is the local CSV file holding the sales records. Ignored when DatasetS3Bucket is set.
	DatasetPath string `split_words:"true" default:"data/processed/vgsales_cleaned.csv"`

	// DatasetS3Bucket enables loading the dataset from an S3 compatible object storage.
	DatasetS3Bucket string `envconfig:"DATASET_S3_BUCKET"`

	DatasetS3Key      string `envconfig:"DATASET_S3_KEY" default:"vgsales_cleaned.csv"`
	DatasetS3Region   string `envconfig:"DATASET_S3_REGION" default:"us-east-1"`
	DatasetS3Endpoint string `envconfig:"DATASET_S3_ENDPOINT"`

	AWSAccessKey string `envconfig:"AWS_ACCESS_KEY"`
	AWSSecretKey string `envconfig:"AWS_SECRET_KEY"`

	// DatasetLoadTimeout bounds the whole startup load, retries included.
	DatasetLoadTimeout time.Duration `split_words:"true" default:"30s"`

	// DatasetLoadAttempts is how many times a failing remote fetch is attempted.
	DatasetLoadAttempts uint `split_words:"true" default:"3"`

	// TopNLimit is the ranking size used when the request does not specify one.
	TopNLimit int `split_words:"true" default:"100"`

	// TopNMax is the largest ranking size a client may request.
	TopNMax int `split_words:"true" default:"1000"`

	// MovingAverageWindow is the trailing window of the year trend when the request does not specify one.
	MovingAverageWindow int `split_words:"true" default:"3"`

	// MatrixRegions are the regional columns of the region share matrix.
	MatrixRegions MetricList `split_words:"true" default:"na_sales,eu_sales,jp_sales"`

	// BatchConcurrency limits how many queries of one batch request are evaluated at once.
	BatchConcurrency int `split_words:"true" default:"4"`

	// BatchMaxQueries is the largest number of queries accepted in one batch request.
	BatchMaxQueries int `split_words:"true" default:"32"`

	// HTTPServerShutdownTimeout is the timeout for the HTTP server to shut down gracefully.
	HTTPServerShutdownTimeout time.Duration `required:"true" split_words:"true" default:"60s"`
}

type Config struct {
	// ConfigSpec is the environment-derived part of Config.
	ConfigSpec

	// AppContext is the application context
	AppContext appcontext.Ctx
}
