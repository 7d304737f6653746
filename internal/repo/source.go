package repo

import (
	"context"
	"io"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/pkg/errors"
)

// Source yields the raw bytes of the sales CSV.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]byte, error)
}

type FileSource struct {
	Path string
}

func (s *FileSource) Name() string {
	return "file"
}

func (s *FileSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, errors.Wrap(ErrSourceNotFound, s.Path)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read dataset file")
	}
	return data, nil
}

type S3Source struct {
	Client *s3.Client
	Bucket string
	Key    string
}

func (s *S3Source) Name() string {
	return "s3"
}

func (s *S3Source) Fetch(ctx context.Context) ([]byte, error) {
	out, err := s.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(s.Key),
	})
	if err != nil {
		var ae smithy.APIError
		if errors.As(err, &ae) {
			switch ae.ErrorCode() {
			case "NoSuchKey", "NoSuchBucket", "NotFound":
				return nil, errors.Wrapf(ErrSourceNotFound, "s3://%s/%s", s.Bucket, s.Key)
			}
		}
		return nil, errors.Wrap(err, "failed to invoke GetObject")
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read object body")
	}
	return data, nil
}
