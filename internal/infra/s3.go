package infra

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/andhikaputrab/vgsales-dashboard/internal/app/appconfig"
)

// S3 returns nil when no dataset bucket is configured.
func S3(conf *appconfig.Config) (*s3.Client, error) {
	if conf.DatasetS3Bucket == "" {
		log.Debug().Msg("S3 dataset source is disabled due to missing bucket.")
		return nil, nil
	}

	opts := []func(*config.LoadOptions) error{
		config.WithRegion(conf.DatasetS3Region),
	}
	if conf.AWSAccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(conf.AWSAccessKey, conf.AWSSecretKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load aws config")
	}

	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if conf.DatasetS3Endpoint != "" {
			o.BaseEndpoint = aws.String(conf.DatasetS3Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}
