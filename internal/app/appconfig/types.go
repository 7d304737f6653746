package appconfig

import (
	"fmt"
	"strings"

	"github.com/andhikaputrab/vgsales-dashboard/internal/model"
)

type MetricList []model.Metric

func (l *MetricList) Decode(value string) error {
	*l = MetricList{}
	seen := map[model.Metric]struct{}{}
	for _, part := range strings.Split(value, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		m, err := model.ParseMetric(part)
		if err != nil {
			return fmt.Errorf("invalid metric list: %w", err)
		}
		if _, ok := seen[m]; ok {
			return fmt.Errorf("invalid metric list: %s is listed more than once", m)
		}
		seen[m] = struct{}{}
		*l = append(*l, m)
	}
	if len(*l) == 0 {
		return fmt.Errorf("invalid metric list: expect at least one metric, but got: %q", value)
	}
	return nil
}
