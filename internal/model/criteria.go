package model

import (
	"github.com/samber/lo"
)

// Selection picks values of a categorical dimension. The zero value selects everything,
// and so does a subset with no values.
type Selection struct {
	values []string
}

func AllOf() Selection {
	return Selection{}
}

func SubsetOf(values ...string) Selection {
	return Selection{values: lo.Uniq(lo.Compact(values))}
}

func (s Selection) IsAll() bool {
	return len(s.values) == 0
}

func (s Selection) Values() []string {
	return s.values
}

// Resolve returns the set of accepted values given the observed domain.
func (s Selection) Resolve(domain []string) map[string]struct{} {
	src := s.values
	if s.IsAll() {
		src = domain
	}
	return lo.SliceToMap(src, func(v string) (string, struct{}) {
		return v, struct{}{}
	})
}

func (s Selection) MarshalJSON() ([]byte, error) {
	if s.IsAll() {
		return []byte(`"*"`), nil
	}
	return marshalStrings(s.values)
}

// PublisherSelection is either every publisher or exactly one.
type PublisherSelection struct {
	exact string
}

func AllPublishers() PublisherSelection {
	return PublisherSelection{}
}

// ExactPublisher selects a single publisher. An empty name selects every publisher.
func ExactPublisher(p string) PublisherSelection {
	return PublisherSelection{exact: p}
}

func (s PublisherSelection) IsAll() bool {
	return s.exact == ""
}

func (s PublisherSelection) Publisher() string {
	return s.exact
}

func (s PublisherSelection) Matches(publisher string) bool {
	return s.IsAll() || s.exact == publisher
}

func (s PublisherSelection) MarshalJSON() ([]byte, error) {
	if s.IsAll() {
		return []byte(`"*"`), nil
	}
	return marshalStrings([]string{s.exact})
}

// YearRange is inclusive on both ends.
type YearRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

func NewYearRange(a, b int) YearRange {
	if a > b {
		a, b = b, a
	}
	return YearRange{Min: a, Max: b}
}

func (r YearRange) Contains(year int) bool {
	return r.Min <= year && year <= r.Max
}

type FilterCriteria struct {
	Years     YearRange          `json:"years"`
	Genres    Selection          `json:"genres"`
	Platforms Selection          `json:"platforms"`
	Publisher PublisherSelection `json:"publisher"`
}

// CriteriaFor returns criteria that accept every record of the domain.
func CriteriaFor(domain *Domain) FilterCriteria {
	return FilterCriteria{
		Years:     domain.YearRange(),
		Genres:    AllOf(),
		Platforms: AllOf(),
		Publisher: AllPublishers(),
	}
}
