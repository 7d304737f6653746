package types

import (
	"time"

	"gopkg.in/guregu/null.v3"

	"github.com/andhikaputrab/vgsales-dashboard/internal/core/engine"
	"github.com/andhikaputrab/vgsales-dashboard/internal/model"
)

type DomainResponse struct {
	model.Domain
	Records     int               `json:"records"`
	Fingerprint string            `json:"fingerprint"`
	Source      string            `json:"source"`
	LoadedAt    time.Time         `json:"loadedAt"`
	Metrics     []model.Metric    `json:"metrics"`
	Dimensions  []model.Dimension `json:"dimensions"`
}

type DashboardResponse struct {
	Fingerprint string               `json:"fingerprint"`
	Criteria    model.FilterCriteria `json:"criteria"`
	*engine.Results
}

type DashboardBatchResponse struct {
	Results []*DashboardResponse `json:"results"`
}

type RankingRow struct {
	Rank      int     `json:"rank"`
	Name      string  `json:"name"`
	Platform  string  `json:"platform"`
	Year      int     `json:"year"`
	Genre     string  `json:"genre"`
	Publisher string  `json:"publisher"`
	Value     float64 `json:"value"`
}

type RankingResponse struct {
	Metric   model.Metric  `json:"metric"`
	Limit    int           `json:"limit"`
	MaxValue null.Float    `json:"maxValue" swaggertype:"number"`
	Rows     []*RankingRow `json:"rows"`
}
