package service

import (
	"time"

	"github.com/andhikaputrab/vgsales-dashboard/internal/model"
	"github.com/andhikaputrab/vgsales-dashboard/internal/model/types"
	"github.com/andhikaputrab/vgsales-dashboard/internal/pkg/cache"
)

type Dataset struct {
	dataset *model.Dataset
	domain  *cache.Singular[*types.DomainResponse]
}

func NewDataset(ds *model.Dataset) *Dataset {
	return &Dataset{
		dataset: ds,
		domain:  cache.NewSingular[*types.DomainResponse]("domain"),
	}
}

func (s *Dataset) Get() *model.Dataset {
	return s.dataset
}

// Domain describes the loaded dataset and the selections it supports.
func (s *Dataset) Domain() (*types.DomainResponse, error) {
	var resp *types.DomainResponse
	_, err := s.domain.MutexGetSet(&resp, func() (*types.DomainResponse, error) {
		return &types.DomainResponse{
			Domain:      s.dataset.Domain,
			Records:     len(s.dataset.Records),
			Fingerprint: s.dataset.Fingerprint,
			Source:      s.dataset.Source,
			LoadedAt:    s.dataset.LoadedAt,
			Metrics:     model.Metrics,
			Dimensions:  model.Dimensions,
		}, nil
	}, time.Hour)
	return resp, err
}
