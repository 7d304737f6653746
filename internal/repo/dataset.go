package repo

import (
	"bytes"
	"context"
	"strconv"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"github.com/zeebo/xxh3"

	"github.com/andhikaputrab/vgsales-dashboard/internal/app/appconfig"
	"github.com/andhikaputrab/vgsales-dashboard/internal/model"
	"github.com/andhikaputrab/vgsales-dashboard/internal/pkg/observability"
)

type Dataset struct {
	source   Source
	attempts uint
	delay    time.Duration
}

// NewDataset picks the S3 source when a bucket is configured and a client is available,
// and the local file otherwise.
func NewDataset(conf *appconfig.Config, client *s3.Client) *Dataset {
	var source Source = &FileSource{Path: conf.DatasetPath}
	if conf.DatasetS3Bucket != "" && client != nil {
		source = &S3Source{
			Client: client,
			Bucket: conf.DatasetS3Bucket,
			Key:    conf.DatasetS3Key,
		}
	}
	return NewDatasetFromSource(source, conf.DatasetLoadAttempts)
}

func NewDatasetFromSource(source Source, attempts uint) *Dataset {
	return &Dataset{
		source:   source,
		attempts: max(attempts, 1),
		delay:    500 * time.Millisecond,
	}
}

// Load fetches and parses the dataset. Missing sources are not retried.
func (r *Dataset) Load(ctx context.Context) (*model.Dataset, error) {
	timer := prometheus.NewTimer(observability.DatasetLoadDuration.WithLabelValues(r.source.Name()))
	defer timer.ObserveDuration()

	var data []byte
	err := retry.Do(
		func() error {
			var err error
			data, err = r.source.Fetch(ctx)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(r.attempts),
		retry.Delay(r.delay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return !errors.Is(err, ErrSourceNotFound)
		}),
		retry.OnRetry(func(n uint, err error) {
			log.Warn().
				Err(err).
				Str("evt.name", "repo.dataset.fetch.retry").
				Str("source", r.source.Name()).
				Uint("attempt", n+1).
				Msg("failed to fetch dataset, retrying")
		}),
	)
	if err != nil {
		return nil, &LoadError{Source: r.source.Name(), Err: err}
	}

	records, err := ParseCSV(bytes.NewReader(data))
	if err != nil {
		return nil, &LoadError{Source: r.source.Name(), Err: err}
	}

	ds := model.NewDataset(records, r.source.Name(), fingerprint(data))
	observability.DatasetRecords.Set(float64(len(ds.Records)))

	log.Info().
		Str("evt.name", "repo.dataset.loaded").
		Str("source", ds.Source).
		Str("fingerprint", ds.Fingerprint).
		Int("records", len(ds.Records)).
		Msg("dataset loaded")

	return ds, nil
}

func fingerprint(data []byte) string {
	return strconv.FormatUint(xxh3.Hash(data), 16)
}

// LoadDataset makes a load failure fatal to application startup.
func LoadDataset(conf *appconfig.Config, repo *Dataset) (*model.Dataset, error) {
	ctx, cancel := context.WithTimeout(context.Background(), conf.DatasetLoadTimeout)
	defer cancel()

	return repo.Load(ctx)
}
