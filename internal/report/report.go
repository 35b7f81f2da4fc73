package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/northloop/trendlens-cli/internal/dataset"
	"github.com/northloop/trendlens-cli/internal/stats"
)

const (
	categoryColumn   = "Category"
	popularityColumn = "Popularity_Score"
)

// Reporter prints dataset statistics to a writer in a fixed layout.
type Reporter struct {
	w io.Writer
}

func New(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Print renders the descriptive-statistics table for every numeric column
// and, when a Popularity_Score column exists, the per-category median
// ranking. A missing Popularity_Score skips the ranking silently.
func (r *Reporter) Print(ds *dataset.Dataset) error {
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, strings.Repeat("=", 40))
	fmt.Fprintln(r.w, " DATASET STATISTICS ")
	fmt.Fprintln(r.w, strings.Repeat("=", 40))

	sums := stats.Describe(ds)
	if len(sums) == 0 {
		fmt.Fprintln(r.w, "(no numeric columns)")
	} else {
		r.printDescribe(sums)
	}

	if !ds.HasColumn(popularityColumn) {
		return nil
	}
	ranked, err := stats.GroupMedian(ds, categoryColumn, popularityColumn)
	if err != nil {
		return fmt.Errorf("rank category medians: %w", err)
	}
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, strings.Repeat("-", 40))
	fmt.Fprintln(r.w, "Median popularity by category:")
	fmt.Fprintln(r.w, strings.Repeat("-", 40))
	r.printRanked(ranked)
	return nil
}

// printDescribe lays the table out with one column per numeric field and
// one row per statistic.
func (r *Reporter) printDescribe(sums []stats.Summary) {
	t := table.NewWriter()
	t.SetOutputMirror(r.w)
	t.SetStyle(table.StyleLight)

	header := make(table.Row, len(sums)+1)
	header[0] = ""
	for i, s := range sums {
		header[i+1] = s.Column
	}
	t.AppendHeader(header)

	rows := []struct {
		label string
		pick  func(stats.Summary) string
	}{
		{"count", func(s stats.Summary) string { return fmt.Sprintf("%d", s.Count) }},
		{"mean", func(s stats.Summary) string { return formatStat(s.Mean) }},
		{"std", func(s stats.Summary) string { return formatStat(s.Std) }},
		{"min", func(s stats.Summary) string { return formatStat(s.Min) }},
		{"25%", func(s stats.Summary) string { return formatStat(s.Q25) }},
		{"50%", func(s stats.Summary) string { return formatStat(s.Median) }},
		{"75%", func(s stats.Summary) string { return formatStat(s.Q75) }},
		{"max", func(s stats.Summary) string { return formatStat(s.Max) }},
	}
	for _, spec := range rows {
		row := make(table.Row, len(sums)+1)
		row[0] = spec.label
		for i, s := range sums {
			row[i+1] = spec.pick(s)
		}
		t.AppendRow(row)
	}
	t.Render()
}

func (r *Reporter) printRanked(ranked []stats.RankedMedian) {
	t := table.NewWriter()
	t.SetOutputMirror(r.w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{categoryColumn, "Median " + popularityColumn, "Rows"})
	for _, g := range ranked {
		t.AppendRow(table.Row{g.Group, formatStat(g.Median), g.Count})
	}
	t.Render()
}

func formatStat(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
