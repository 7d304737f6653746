package types

import "gopkg.in/guregu/null.v3"

// DashboardQuery carries the user selections for one dashboard evaluation.
// Absent fields fall back to the whole observed domain and the configured defaults.
type DashboardQuery struct {
	YearMin   null.Int `json:"yearMin" swaggertype:"integer" validate:"omitempty,gte=0,lte=9999"`
	YearMax   null.Int `json:"yearMax" swaggertype:"integer" validate:"omitempty,gte=0,lte=9999"`
	Genres    []string `json:"genres" validate:"omitempty,dive,required,max=64"`
	Platforms []string `json:"platforms" validate:"omitempty,dive,required,max=64"`
	Publisher string   `json:"publisher" validate:"max=128"`

	Metric  string   `json:"metric" validate:"omitempty,metric"`
	GroupBy []string `json:"groupBy" validate:"omitempty,max=2,unique,dive,dimension"`
	Top     null.Int `json:"top" swaggertype:"integer" validate:"omitempty,gte=0"`
	Window  null.Int `json:"window" swaggertype:"integer" validate:"omitempty,gte=1,lte=100"`
	Matrix  string   `json:"matrix" validate:"omitempty,dimension"`
	Regions []string `json:"regions" validate:"omitempty,unique,dive,metric"`

	CompareBy string `json:"compareBy" validate:"max=16"`
	CompareA  string `json:"compareA" validate:"max=128"`
	CompareB  string `json:"compareB" validate:"max=128"`
}

// WantsComparison reports whether any comparison field was supplied.
func (q *DashboardQuery) WantsComparison() bool {
	return q.CompareBy != "" || q.CompareA != "" || q.CompareB != ""
}

type DashboardBatch struct {
	Queries []*DashboardQuery `json:"queries" validate:"required,min=1,dive,required"`
}

type CompareSelection struct {
	CompareBy string `json:"compareBy" validate:"required"`
	CompareA  string `json:"compareA" validate:"required"`
	CompareB  string `json:"compareB" validate:"required"`
}
