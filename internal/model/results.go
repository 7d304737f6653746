package model

import (
	"gopkg.in/guregu/null.v3"
)

type Group struct {
	Key   []string `json:"key"`
	Value float64  `json:"value"`
	Count int      `json:"count"`
}

// GroupedAggregate holds one summed value per distinct key, ordered by key.
type GroupedAggregate struct {
	Dimensions []Dimension `json:"dimensions"`
	Metric     Metric      `json:"metric"`
	Groups     []Group     `json:"groups"`
}

// Total returns the sum over every group.
func (a *GroupedAggregate) Total() float64 {
	var total float64
	for _, g := range a.Groups {
		total += g.Value
	}
	return total
}

type TrendSeries struct {
	Metric        Metric       `json:"metric"`
	Window        int          `json:"window"`
	Years         []int        `json:"years"`
	Totals        []float64    `json:"totals"`
	MovingAverage []null.Float `json:"movingAverage"`
}

// MatrixRow is one dimension value across the selected regions. Shares are only
// present after normalisation; a row with a zero total has zero shares and Defined unset.
type MatrixRow struct {
	Key     string    `json:"key"`
	Total   float64   `json:"total"`
	Values  []float64 `json:"values"`
	Shares  []float64 `json:"shares,omitempty"`
	Defined bool      `json:"defined"`
}

type RegionMatrix struct {
	Dimension  Dimension   `json:"dimension"`
	Regions    []Metric    `json:"regions"`
	Rows       []MatrixRow `json:"rows"`
	Normalized bool        `json:"normalized"`
}

type Ranking struct {
	Metric  Metric    `json:"metric"`
	Limit   int       `json:"limit"`
	Records []*Record `json:"records"`
	// MaxValue is the metric of the first entry, the upper bound of a progress column.
	MaxValue null.Float `json:"maxValue"`
}

type ComparisonResult struct {
	Dimension    Dimension  `json:"dimension"`
	Metric       Metric     `json:"metric"`
	EntityA      string     `json:"entityA"`
	EntityB      string     `json:"entityB"`
	ValueA       float64    `json:"valueA"`
	ValueB       float64    `json:"valueB"`
	DeltaPercent null.Float `json:"deltaPercent"`
	BestRecordA  *Record    `json:"bestRecordA"`
	BestRecordB  *Record    `json:"bestRecordB"`
}

type Summary struct {
	Metric        Metric      `json:"metric"`
	Records       int         `json:"records"`
	Total         float64     `json:"total"`
	DominantGenre null.String `json:"dominantGenre"`
	TopPublisher  null.String `json:"topPublisher"`
	FirstYear     null.Int    `json:"firstYear"`
	LastYear      null.Int    `json:"lastYear"`
}

// SelectionIssue reports a rejected comparison without failing the surrounding run.
type SelectionIssue struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
