package service

import (
	"context"
	"slices"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
	"gopkg.in/guregu/null.v3"

	"github.com/andhikaputrab/vgsales-dashboard/internal/app/appconfig"
	"github.com/andhikaputrab/vgsales-dashboard/internal/core/engine"
	"github.com/andhikaputrab/vgsales-dashboard/internal/model"
	"github.com/andhikaputrab/vgsales-dashboard/internal/model/types"
	"github.com/andhikaputrab/vgsales-dashboard/internal/pkg/observability"
	"github.com/andhikaputrab/vgsales-dashboard/internal/pkg/pgerr"
)

type Dashboard struct {
	Config         *appconfig.Config
	DatasetService *Dataset

	tracer trace.Tracer
}

func NewDashboard(conf *appconfig.Config, datasetService *Dataset) *Dashboard {
	return &Dashboard{
		Config:         conf,
		DatasetService: datasetService,
		tracer:         otel.Tracer("github.com/andhikaputrab/vgsales-dashboard/internal/service"),
	}
}

func (s *Dashboard) observe(ctx context.Context, op string) (context.Context, func(err error)) {
	ctx, span := s.tracer.Start(ctx, "dashboard."+op)
	timer := prometheus.NewTimer(observability.PipelineDuration.WithLabelValues(op))

	return ctx, func(err error) {
		timer.ObserveDuration()
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}
}

// Request turns a query into an engine request. Absent filters select the
// whole observed domain and absent parameters take the configured defaults.
func (s *Dashboard) Request(q *types.DashboardQuery) (engine.Request, error) {
	ds := s.DatasetService.Get()

	years := ds.Domain.YearRange()
	if q.YearMin.Valid {
		years.Min = int(q.YearMin.Int64)
	}
	if q.YearMax.Valid {
		years.Max = int(q.YearMax.Int64)
	}

	req := engine.Request{
		Criteria: model.FilterCriteria{
			Years:     model.NewYearRange(years.Min, years.Max),
			Genres:    model.SubsetOf(q.Genres...),
			Platforms: model.SubsetOf(q.Platforms...),
			Publisher: model.ExactPublisher(strings.TrimSpace(q.Publisher)),
		},
		Metric:  model.MetricGlobalSales,
		TopN:    null.IntFrom(int64(s.Config.TopNLimit)),
		Window:  null.IntFrom(int64(s.Config.MovingAverageWindow)),
		Regions: s.Config.MatrixRegions,
	}

	var err error
	if q.Metric != "" {
		if req.Metric, err = model.ParseMetric(q.Metric); err != nil {
			return req, pgerr.ErrInvalidReq.Msg("%s", err.Error())
		}
	}
	for _, raw := range q.GroupBy {
		dim, err := model.ParseDimension(raw)
		if err != nil {
			return req, pgerr.ErrInvalidReq.Msg("%s", err.Error())
		}
		req.Dimensions = append(req.Dimensions, dim)
	}
	if q.Matrix != "" {
		if req.MatrixDimension, err = model.ParseDimension(q.Matrix); err != nil {
			return req, pgerr.ErrInvalidReq.Msg("%s", err.Error())
		}
	}
	if len(q.Regions) > 0 {
		req.Regions = make([]model.Metric, 0, len(q.Regions))
		for _, raw := range q.Regions {
			region, err := model.ParseMetric(raw)
			if err != nil {
				return req, pgerr.ErrInvalidReq.Msg("%s", err.Error())
			}
			req.Regions = append(req.Regions, region)
		}
	}
	if q.Top.Valid {
		req.TopN = q.Top
	}
	if req.TopN.Int64 > int64(s.Config.TopNMax) {
		return req, pgerr.ErrInvalidReq.Msg("top must not exceed %d", s.Config.TopNMax)
	}
	if q.Window.Valid {
		req.Window = q.Window
	}
	if q.WantsComparison() {
		req.Compare = &engine.CompareRequest{
			Dimension: model.Dimension(strings.ToLower(strings.TrimSpace(q.CompareBy))),
			EntityA:   q.CompareA,
			EntityB:   q.CompareB,
		}
	}

	if err := req.Validate(); err != nil {
		return req, pgerr.ErrInvalidReq.Msg("%s", err.Error())
	}
	return req, nil
}

// Run evaluates one query against the loaded dataset.
func (s *Dashboard) Run(ctx context.Context, q *types.DashboardQuery) (resp *types.DashboardResponse, err error) {
	ctx, done := s.observe(ctx, "run")
	defer func() { done(err) }()

	req, err := s.Request(q)
	if err != nil {
		return nil, err
	}
	return s.run(ctx, req)
}

func (s *Dashboard) run(ctx context.Context, req engine.Request) (*types.DashboardResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ds := s.DatasetService.Get()

	results, err := engine.Run(ds, req)
	if err != nil {
		return nil, pgerr.ErrInvalidReq.Msg("%s", err.Error())
	}

	observability.PipelineFilteredRecords.Observe(float64(results.Records))
	if results.ComparisonIssue != nil {
		observability.ComparisonRejected.Inc()
	}
	trace.SpanFromContext(ctx).SetAttributes(
		attribute.Int("records", results.Records),
		attribute.String("metric", string(req.Metric)),
	)

	return &types.DashboardResponse{
		Fingerprint: ds.Fingerprint,
		Criteria:    req.Criteria,
		Results:     results,
	}, nil
}

// RunBatch evaluates queries concurrently. Results are in query order and the first
// failing query fails the whole batch.
func (s *Dashboard) RunBatch(ctx context.Context, queries []*types.DashboardQuery) (resp *types.DashboardBatchResponse, err error) {
	ctx, done := s.observe(ctx, "batch")
	defer func() { done(err) }()

	if len(queries) > s.Config.BatchMaxQueries {
		return nil, pgerr.ErrInvalidReq.Msg("batch must not contain more than %d queries", s.Config.BatchMaxQueries)
	}

	requests := make([]engine.Request, len(queries))
	for i, q := range queries {
		if requests[i], err = s.Request(q); err != nil {
			var pe *pgerr.PenguinError
			if errors.As(err, &pe) {
				return nil, pe.WithExtras(pgerr.Extras{"query": i})
			}
			return nil, err
		}
	}

	results := make([]*types.DashboardResponse, len(requests))
	eg, ectx := errgroup.WithContext(ctx)
	eg.SetLimit(max(s.Config.BatchConcurrency, 1))
	for i, req := range requests {
		i, req := i, req
		eg.Go(func() error {
			r, err := s.run(ectx, req)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return &types.DashboardBatchResponse{Results: results}, nil
}

func (s *Dashboard) view(ctx context.Context, q *types.DashboardQuery) (engine.Request, []*model.Record, error) {
	req, err := s.Request(q)
	if err != nil {
		return req, nil, err
	}
	if err := ctx.Err(); err != nil {
		return req, nil, err
	}
	view := engine.Filter(s.DatasetService.Get(), req.Criteria)
	observability.PipelineFilteredRecords.Observe(float64(len(view)))
	return req, view, nil
}

func (s *Dashboard) Aggregate(ctx context.Context, q *types.DashboardQuery) (agg *model.GroupedAggregate, err error) {
	ctx, done := s.observe(ctx, "aggregate")
	defer func() { done(err) }()

	req, view, err := s.view(ctx, q)
	if err != nil {
		return nil, err
	}
	dims := req.Dimensions
	if len(dims) == 0 {
		dims = model.DefaultGrouping
	}
	return engine.GroupSum(view, dims, req.Metric)
}

func (s *Dashboard) Trend(ctx context.Context, q *types.DashboardQuery) (series *model.TrendSeries, err error) {
	ctx, done := s.observe(ctx, "trend")
	defer func() { done(err) }()

	req, view, err := s.view(ctx, q)
	if err != nil {
		return nil, err
	}
	return engine.YearTrend(view, req.Metric, int(req.Window.Int64))
}

func (s *Dashboard) Matrix(ctx context.Context, q *types.DashboardQuery) (matrix *model.RegionMatrix, err error) {
	ctx, done := s.observe(ctx, "matrix")
	defer func() { done(err) }()

	req, view, err := s.view(ctx, q)
	if err != nil {
		return nil, err
	}
	dim := req.MatrixDimension
	if dim == "" {
		dim = model.DimensionGenre
	}
	sums, err := engine.RegionSums(view, dim, req.Regions)
	if err != nil {
		return nil, err
	}
	return engine.Normalize(sums), nil
}

// Top returns the ranking table with each row's value under the selected metric.
func (s *Dashboard) Top(ctx context.Context, q *types.DashboardQuery) (resp *types.RankingResponse, err error) {
	ctx, done := s.observe(ctx, "top")
	defer func() { done(err) }()

	req, view, err := s.view(ctx, q)
	if err != nil {
		return nil, err
	}
	ranking, err := engine.Rank(view, req.Metric, int(req.TopN.Int64))
	if err != nil {
		return nil, err
	}

	resp = &types.RankingResponse{
		Metric:   ranking.Metric,
		Limit:    ranking.Limit,
		MaxValue: ranking.MaxValue,
		Rows:     make([]*types.RankingRow, 0, len(ranking.Records)),
	}
	for _, record := range ranking.Records {
		row := &types.RankingRow{}
		if err := copier.Copy(row, record); err != nil {
			return nil, errors.Wrap(err, "failed to copy ranking row")
		}
		row.Value = req.Metric.Of(record)
		resp.Rows = append(resp.Rows, row)
	}
	return resp, nil
}

// Compare requires a full comparison selection and reports rejected selections
// as pgerr.ErrInvalidSelection.
func (s *Dashboard) Compare(ctx context.Context, q *types.DashboardQuery) (result *model.ComparisonResult, err error) {
	ctx, done := s.observe(ctx, "compare")
	defer func() { done(err) }()

	req, view, err := s.view(ctx, q)
	if err != nil {
		return nil, err
	}
	if req.Compare == nil {
		return nil, pgerr.ErrInvalidReq.Msg("compareBy, compareA and compareB are required")
	}

	result, err = engine.Compare(view, req.Compare.Dimension, req.Compare.EntityA, req.Compare.EntityB, req.Metric)
	var selErr *engine.SelectionError
	if errors.As(err, &selErr) {
		observability.ComparisonRejected.Inc()
		return nil, pgerr.ErrInvalidSelection.Msg("%s", selErr.Reason)
	}
	return result, err
}

// Selections lists the values a comparison may name along dim within the filtered view.
func (s *Dashboard) Selections(ctx context.Context, q *types.DashboardQuery, dim model.Dimension) ([]string, error) {
	if !dim.Categorical() {
		return nil, pgerr.ErrInvalidReq.Msg("dimension %q is not categorical", dim)
	}
	_, view, err := s.view(ctx, q)
	if err != nil {
		return nil, err
	}
	values := lo.Uniq(lo.Map(view, func(r *model.Record, _ int) string {
		return dim.Of(r)
	}))
	slices.Sort(values)
	return values, nil
}
