package model

import (
	"slices"
	"time"

	"github.com/ahmetb/go-linq/v3"
	"github.com/goccy/go-json"
	"github.com/samber/lo"
)

// Domain holds the values observed in a Dataset.
type Domain struct {
	Genres     []string `json:"genres"`
	Platforms  []string `json:"platforms"`
	Publishers []string `json:"publishers"`
	YearMin    int      `json:"yearMin"`
	YearMax    int      `json:"yearMax"`
}

func (d *Domain) YearRange() YearRange {
	return YearRange{Min: d.YearMin, Max: d.YearMax}
}

// Values returns the observed values along a categorical dimension.
func (d *Domain) Values(dim Dimension) []string {
	switch dim {
	case DimensionGenre:
		return d.Genres
	case DimensionPlatform:
		return d.Platforms
	case DimensionPublisher:
		return d.Publishers
	}
	return nil
}

// Dataset is the immutable in-memory table every query runs against.
// Records must never be mutated once the Dataset is built.
type Dataset struct {
	Records     []*Record
	Domain      Domain
	Fingerprint string
	Source      string
	LoadedAt    time.Time
}

func NewDataset(records []*Record, source, fingerprint string) *Dataset {
	return &Dataset{
		Records:     records,
		Domain:      observeDomain(records),
		Fingerprint: fingerprint,
		Source:      source,
		LoadedAt:    time.Now(),
	}
}

func observeDomain(records []*Record) Domain {
	distinct := func(sel func(r *Record) string) []string {
		values := []string{}
		linq.From(records).SelectT(sel).Distinct().ToSlice(&values)
		slices.Sort(values)
		return values
	}

	domain := Domain{
		Genres:     distinct(func(r *Record) string { return r.Genre }),
		Platforms:  distinct(func(r *Record) string { return r.Platform }),
		Publishers: distinct(func(r *Record) string { return r.Publisher }),
	}
	if len(records) > 0 {
		years := lo.Map(records, func(r *Record, _ int) int { return r.Year })
		domain.YearMin = lo.Min(years)
		domain.YearMax = lo.Max(years)
	}
	return domain
}

func marshalStrings(values []string) ([]byte, error) {
	return json.Marshal(values)
}
