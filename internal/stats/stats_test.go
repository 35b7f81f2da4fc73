package stats_test

import (
	"math"
	"testing"

	"github.com/northloop/trendlens-cli/internal/dataset"
	"github.com/northloop/trendlens-cli/internal/stats"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func trendDataset() *dataset.Dataset {
	return &dataset.Dataset{
		Columns: []string{"Category", "Popularity_Score", "Brand"},
		Rows: [][]string{
			{"Coats", "80", "A"},
			{"Coats", "60", "A"},
			{"Boots", "90", "B"},
			{"Boots", "70", "B"},
			{"Scarves", "95", "C"},
		},
	}
}

func TestDescribeComputesSummary(t *testing.T) {
	ds := &dataset.Dataset{
		Columns: []string{"Name", "Score"},
		Rows: [][]string{
			{"a", "1"}, {"b", "2"}, {"c", "3"}, {"d", "4"},
		},
	}
	sums := stats.Describe(ds)
	if len(sums) != 1 {
		t.Fatalf("summaries = %d, want 1", len(sums))
	}
	s := sums[0]
	if s.Column != "Score" || s.Count != 4 {
		t.Fatalf("unexpected summary target: %+v", s)
	}
	if !approx(s.Mean, 2.5) {
		t.Fatalf("mean = %v, want 2.5", s.Mean)
	}
	// Sample std of 1..4.
	if !approx(s.Std, math.Sqrt(5.0/3.0)) {
		t.Fatalf("std = %v, want %v", s.Std, math.Sqrt(5.0/3.0))
	}
	if s.Min != 1 || s.Max != 4 {
		t.Fatalf("min/max = %v/%v, want 1/4", s.Min, s.Max)
	}
	if !approx(s.Q25, 1.75) || !approx(s.Median, 2.5) || !approx(s.Q75, 3.25) {
		t.Fatalf("quartiles = %v %v %v, want 1.75 2.5 3.25", s.Q25, s.Median, s.Q75)
	}
}

func TestDescribeSkipsNonNumeric(t *testing.T) {
	ds := trendDataset()
	sums := stats.Describe(ds)
	if len(sums) != 1 || sums[0].Column != "Popularity_Score" {
		t.Fatalf("summaries = %+v, want only Popularity_Score", sums)
	}
}

func TestGroupMedianRanksDescending(t *testing.T) {
	ranked, err := stats.GroupMedian(trendDataset(), "Category", "Popularity_Score")
	if err != nil {
		t.Fatalf("group median: %v", err)
	}
	if len(ranked) != 3 {
		t.Fatalf("groups = %d, want 3", len(ranked))
	}
	// Scarves 95, Boots 80, Coats 70 (median of {80,60}).
	if ranked[0].Group != "Scarves" || !approx(ranked[0].Median, 95) {
		t.Fatalf("rank 1 = %+v, want Scarves 95", ranked[0])
	}
	if ranked[1].Group != "Boots" || !approx(ranked[1].Median, 80) {
		t.Fatalf("rank 2 = %+v, want Boots 80", ranked[1])
	}
	if ranked[2].Group != "Coats" || !approx(ranked[2].Median, 70) {
		t.Fatalf("rank 3 = %+v, want Coats 70", ranked[2])
	}
}

func TestGroupMedianMissingColumns(t *testing.T) {
	ds := trendDataset()
	if _, err := stats.GroupMedian(ds, "Nope", "Popularity_Score"); err == nil {
		t.Fatal("expected error for missing group column")
	}
	if _, err := stats.GroupMedian(ds, "Category", "Brand"); err == nil {
		t.Fatal("expected error for non-numeric value column")
	}
}

func TestQuantileInterpolation(t *testing.T) {
	sorted := []float64{10, 20, 30, 40}
	cases := []struct {
		q, want float64
	}{
		{0, 10}, {1, 40}, {0.5, 25}, {0.25, 17.5}, {0.75, 32.5},
	}
	for _, c := range cases {
		if got := stats.Quantile(sorted, c.q); !approx(got, c.want) {
			t.Fatalf("quantile(%v) = %v, want %v", c.q, got, c.want)
		}
	}
	if got := stats.Quantile(nil, 0.5); got != 0 {
		t.Fatalf("quantile of empty = %v, want 0", got)
	}
}
