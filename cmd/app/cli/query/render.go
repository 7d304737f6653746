package query

import (
	"io"
	"strconv"

	"github.com/goccy/go-json"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/guregu/null.v3"

	"github.com/andhikaputrab/vgsales-dashboard/internal/model/types"
)

func writeJSON(w io.Writer, resp *types.DashboardResponse) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}

func orDash(s null.String) string {
	if !s.Valid {
		return "-"
	}
	return s.String
}

func yearOrDash(i null.Int) string {
	if !i.Valid {
		return "-"
	}
	return strconv.FormatInt(i.Int64, 10)
}

func writeText(w io.Writer, resp *types.DashboardResponse) error {
	p := message.NewPrinter(language.English)
	s := resp.Summary

	p.Fprintf(w, "Records:         %d\n", resp.Records)
	p.Fprintf(w, "Total %-10s %.2f M\n", string(s.Metric)+":", s.Total)
	p.Fprintf(w, "Dominant genre:  %s\n", orDash(s.DominantGenre))
	p.Fprintf(w, "Top publisher:   %s\n", orDash(s.TopPublisher))
	p.Fprintf(w, "Years:           %s to %s\n", yearOrDash(s.FirstYear), yearOrDash(s.LastYear))

	if resp.Top != nil && len(resp.Top.Records) > 0 {
		p.Fprintf(w, "\nTop %d by %s:\n", len(resp.Top.Records), resp.Top.Metric)
		for _, r := range resp.Top.Records {
			// rank and year are identifiers, keep them out of locale digit grouping
			p.Fprintf(w, "  #%-6s %-40s %-6s %4s %10.2f\n", strconv.Itoa(r.Rank), truncate(r.Name, 40), r.Platform, strconv.Itoa(r.Year), resp.Top.Metric.Of(r))
		}
	}

	if c := resp.Comparison; c != nil {
		p.Fprintf(w, "\n%s %q vs %q: %.2f vs %.2f", c.Dimension, c.EntityA, c.EntityB, c.ValueA, c.ValueB)
		if c.DeltaPercent.Valid {
			p.Fprintf(w, " (%+.1f%%)", c.DeltaPercent.Float64)
		}
		p.Fprintln(w)
	}
	if issue := resp.ComparisonIssue; issue != nil {
		p.Fprintf(w, "\nComparison unavailable: %s\n", issue.Message)
	}

	return nil
}

func truncate(s string, n int) string {
	if len([]rune(s)) <= n {
		return s
	}
	return string([]rune(s)[:n-1]) + "…"
}
