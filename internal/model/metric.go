package model

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

var (
	ErrUnknownMetric    = errors.New("unknown metric")
	ErrUnknownDimension = errors.New("unknown dimension")
)

type Metric string

const (
	MetricNASales     Metric = "na_sales"
	MetricEUSales     Metric = "eu_sales"
	MetricJPSales     Metric = "jp_sales"
	MetricOtherSales  Metric = "other_sales"
	MetricGlobalSales Metric = "global_sales"
)

var (
	Metrics = []Metric{MetricNASales, MetricEUSales, MetricJPSales, MetricOtherSales, MetricGlobalSales}

	// DefaultRegions are the regional columns of the region share matrix.
	DefaultRegions = []Metric{MetricNASales, MetricEUSales, MetricJPSales}
)

func ParseMetric(s string) (Metric, error) {
	m := Metric(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", errors.Wrapf(ErrUnknownMetric, "%q", s)
	}
	return m, nil
}

func (m Metric) Valid() bool {
	return lo.Contains(Metrics, m)
}

// Of returns the value of m on r. Unknown metrics yield 0.
func (m Metric) Of(r *Record) float64 {
	switch m {
	case MetricNASales:
		return r.NASales
	case MetricEUSales:
		return r.EUSales
	case MetricJPSales:
		return r.JPSales
	case MetricOtherSales:
		return r.OtherSales
	case MetricGlobalSales:
		return r.GlobalSales
	}
	return 0
}

type Dimension string

const (
	DimensionYear      Dimension = "year"
	DimensionGenre     Dimension = "genre"
	DimensionPlatform  Dimension = "platform"
	DimensionPublisher Dimension = "publisher"
)

var (
	Dimensions = []Dimension{DimensionYear, DimensionGenre, DimensionPlatform, DimensionPublisher}

	// DefaultGrouping mirrors the genre-by-year area chart of the dashboard.
	DefaultGrouping = []Dimension{DimensionYear, DimensionGenre}
)

func ParseDimension(s string) (Dimension, error) {
	d := Dimension(strings.ToLower(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", errors.Wrapf(ErrUnknownDimension, "%q", s)
	}
	return d, nil
}

func (d Dimension) Valid() bool {
	return lo.Contains(Dimensions, d)
}

// Categorical reports whether d is a named entity dimension usable for head-to-head comparison.
func (d Dimension) Categorical() bool {
	return d == DimensionGenre || d == DimensionPlatform || d == DimensionPublisher
}

// Of returns the key of r along d. Years are rendered in base 10.
func (d Dimension) Of(r *Record) string {
	switch d {
	case DimensionYear:
		return strconv.Itoa(r.Year)
	case DimensionGenre:
		return r.Genre
	case DimensionPlatform:
		return r.Platform
	case DimensionPublisher:
		return r.Publisher
	}
	return ""
}

// Compare orders two keys of d. Year keys compare numerically.
func (d Dimension) Compare(a, b string) int {
	if d == DimensionYear {
		ai, aerr := strconv.Atoi(a)
		bi, berr := strconv.Atoi(b)
		if aerr == nil && berr == nil {
			switch {
			case ai < bi:
				return -1
			case ai > bi:
				return 1
			}
			return 0
		}
	}
	return strings.Compare(a, b)
}
