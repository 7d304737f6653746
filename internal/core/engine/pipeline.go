package engine

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gopkg.in/guregu/null.v3"

	"github.com/andhikaputrab/vgsales-dashboard/internal/model"
)

type CompareRequest struct {
	Dimension model.Dimension `json:"dimension"`
	EntityA   string          `json:"entityA"`
	EntityB   string          `json:"entityB"`
}

// Request is a snapshot of every selection a dashboard render needs.
// Zero values of Metric, Dimensions, MatrixDimension and Regions take their defaults,
// and so do unset TopN (DefaultTopN) and Window (DefaultWindow).
// Criteria should come from model.CriteriaFor; a zero year range spans the dataset's years.
type Request struct {
	Criteria        model.FilterCriteria
	Metric          model.Metric
	Dimensions      []model.Dimension
	TopN            null.Int
	Window          null.Int
	MatrixDimension model.Dimension
	Regions         []model.Metric
	Compare         *CompareRequest
}

type Results struct {
	Records         int                     `json:"records"`
	Summary         *model.Summary          `json:"summary"`
	Aggregate       *model.GroupedAggregate `json:"aggregate"`
	Trend           *model.TrendSeries      `json:"trend"`
	Matrix          *model.RegionMatrix     `json:"matrix"`
	Top             *model.Ranking          `json:"top"`
	Comparison      *model.ComparisonResult `json:"comparison,omitempty"`
	ComparisonIssue *model.SelectionIssue   `json:"comparisonIssue,omitempty"`
}

func (r Request) withDefaults() Request {
	if r.Metric == "" {
		r.Metric = model.MetricGlobalSales
	}
	if len(r.Dimensions) == 0 {
		r.Dimensions = model.DefaultGrouping
	}
	if r.MatrixDimension == "" {
		r.MatrixDimension = model.DimensionGenre
	}
	if len(r.Regions) == 0 {
		r.Regions = model.DefaultRegions
	}
	if !r.TopN.Valid {
		r.TopN = null.IntFrom(DefaultTopN)
	}
	if !r.Window.Valid {
		r.Window = null.IntFrom(DefaultWindow)
	}
	return r
}

// Validate reports malformed request shapes. Comparison selections are not checked here
// since they depend on the filtered view.
func (r Request) Validate() error {
	r = r.withDefaults()
	if err := validateMetric(r.Metric); err != nil {
		return err
	}
	if err := validateDimensions(r.Dimensions); err != nil {
		return err
	}
	if err := validateDimensions([]model.Dimension{r.MatrixDimension}); err != nil {
		return errors.Wrap(err, "matrix dimension")
	}
	return validateRegions(r.Regions)
}

// Run filters ds once and derives every dashboard result from the same view.
// A rejected comparison is reported in Results.ComparisonIssue and never fails the run.
func Run(ds *model.Dataset, req Request) (*Results, error) {
	req = req.withDefaults()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if req.Criteria.Years == (model.YearRange{}) {
		req.Criteria.Years = ds.Domain.YearRange()
	}

	view := Filter(ds, req.Criteria)
	if l := log.Trace(); l.Enabled() {
		l.Str("evt.name", "engine.filter").
			Int("dataset", len(ds.Records)).
			Int("view", len(view)).
			Msg("filtered dataset")
	}

	results := &Results{Records: len(view)}

	var err error
	if results.Summary, err = Summarize(view, req.Metric); err != nil {
		return nil, err
	}
	if results.Aggregate, err = GroupSum(view, req.Dimensions, req.Metric); err != nil {
		return nil, err
	}
	if results.Trend, err = YearTrend(view, req.Metric, int(req.Window.Int64)); err != nil {
		return nil, err
	}
	sums, err := RegionSums(view, req.MatrixDimension, req.Regions)
	if err != nil {
		return nil, err
	}
	results.Matrix = Normalize(sums)
	if results.Top, err = Rank(view, req.Metric, int(req.TopN.Int64)); err != nil {
		return nil, err
	}

	if req.Compare != nil {
		comparison, err := Compare(view, req.Compare.Dimension, req.Compare.EntityA, req.Compare.EntityB, req.Metric)
		var selErr *SelectionError
		switch {
		case errors.As(err, &selErr):
			results.ComparisonIssue = &model.SelectionIssue{
				Code:    "INVALID_SELECTION",
				Message: selErr.Reason,
			}
		case err != nil:
			return nil, err
		default:
			results.Comparison = comparison
		}
	}

	return results, nil
}
