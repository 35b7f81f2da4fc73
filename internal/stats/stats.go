package stats

import (
	"fmt"
	"math"
	"sort"

	"github.com/northloop/trendlens-cli/internal/dataset"
)

// Summary holds the descriptive statistics for one numeric column:
// count, mean, sample standard deviation, min, quartiles, max.
type Summary struct {
	Column string
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q25    float64
	Median float64
	Q75    float64
	Max    float64
}

// RankedMedian is one group in a median ranking.
type RankedMedian struct {
	Group  string
	Median float64
	Count  int
}

// Describe computes a Summary for every numeric column of the dataset,
// in header order.
func Describe(ds *dataset.Dataset) []Summary {
	var out []Summary
	for _, name := range ds.NumericColumns() {
		vals, _ := ds.NumericColumn(name)
		out = append(out, summarize(name, vals))
	}
	return out
}

func summarize(name string, vals []float64) Summary {
	s := Summary{Column: name, Count: len(vals)}
	if len(vals) == 0 {
		return s
	}
	// Welford mean/variance, single pass.
	var mean, m2 float64
	s.Min = math.Inf(1)
	s.Max = math.Inf(-1)
	for i, v := range vals {
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
		delta := v - mean
		mean += delta / float64(i+1)
		m2 += delta * (v - mean)
	}
	s.Mean = mean
	if len(vals) > 1 {
		s.Std = math.Sqrt(m2 / float64(len(vals)-1))
	}
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)
	s.Q25 = Quantile(sorted, 0.25)
	s.Median = Quantile(sorted, 0.5)
	s.Q75 = Quantile(sorted, 0.75)
	return s
}

// GroupMedian groups rows by groupCol, computes the median of valueCol per
// group, and returns the groups sorted descending by median (ties broken by
// group name). valueCol must be fully numeric.
func GroupMedian(ds *dataset.Dataset, groupCol, valueCol string) ([]RankedMedian, error) {
	groups, ok := ds.Column(groupCol)
	if !ok {
		return nil, fmt.Errorf("column %q not present", groupCol)
	}
	vals, ok := ds.NumericColumn(valueCol)
	if !ok {
		return nil, fmt.Errorf("column %q not present or not numeric", valueCol)
	}
	byGroup := make(map[string][]float64)
	for i, g := range groups {
		byGroup[g] = append(byGroup[g], vals[i])
	}
	out := make([]RankedMedian, 0, len(byGroup))
	for g, vs := range byGroup {
		sort.Float64s(vs)
		out = append(out, RankedMedian{Group: g, Median: Quantile(vs, 0.5), Count: len(vs)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Median == out[j].Median {
			return out[i].Group < out[j].Group
		}
		return out[i].Median > out[j].Median
	})
	return out, nil
}

// Quantile interpolates the q-th quantile of an ascending-sorted slice.
func Quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	w := pos - float64(lo)
	return sorted[lo]*(1-w) + sorted[hi]*w
}
