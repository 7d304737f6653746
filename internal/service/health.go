package service

import (
	"context"

	"github.com/pkg/errors"
)

var ErrDatasetEmpty = errors.New("dataset has no records")

type Health struct {
	DatasetService *Dataset
}

func NewHealth(datasetService *Dataset) *Health {
	return &Health{
		DatasetService: datasetService,
	}
}

func (s *Health) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	ds := s.DatasetService.Get()
	if ds == nil || len(ds.Records) == 0 {
		return ErrDatasetEmpty
	}
	return nil
}
