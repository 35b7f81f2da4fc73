package charts

import (
	"fmt"
	"image/color"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/northloop/trendlens-cli/internal/dataset"
)

const (
	colorColumn      = "Color"
	brandColumn      = "Brand"
	priceColumn      = "Price(USD)"
	styleColumn      = "Style"
	seasonColumn     = "Season"
	ratingColumn     = "Customer_Rating"
	popularityColumn = "Popularity_Score"
)

// colorFrequencyPanel counts rows per distinct Color, bars in descending
// frequency order.
func colorFrequencyPanel(ds *dataset.Dataset, opt Options) (*plot.Plot, error) {
	cells, ok := ds.Column(colorColumn)
	if !ok {
		return nil, fmt.Errorf("column %q not present", colorColumn)
	}
	counts := make(map[string]int)
	for _, c := range cells {
		counts[c]++
	}
	labels := make([]string, 0, len(counts))
	for c := range counts {
		labels = append(labels, c)
	}
	sort.Slice(labels, func(i, j int) bool {
		if counts[labels[i]] == counts[labels[j]] {
			return labels[i] < labels[j]
		}
		return counts[labels[i]] > counts[labels[j]]
	})
	if opt.TopColors > 0 && len(labels) > opt.TopColors {
		labels = labels[:opt.TopColors]
	}
	values := make(plotter.Values, len(labels))
	for i, l := range labels {
		values[i] = float64(counts[l])
	}

	p := plot.New()
	p.Title.Text = "Trending Colors"
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = "Color"
	p.Y.Label.Text = "Count"

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return nil, fmt.Errorf("color bars: %w", err)
	}
	bars.Color = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.YAlign = draw.YCenter
	p.X.Tick.Label.XAlign = draw.XRight
	p.Y.Min = 0
	return p, nil
}

// brandPricePanel draws the mean Price(USD) per Brand as horizontal bars,
// ascending by value.
func brandPricePanel(ds *dataset.Dataset, _ Options) (*plot.Plot, error) {
	brands, ok := ds.Column(brandColumn)
	if !ok {
		return nil, fmt.Errorf("column %q not present", brandColumn)
	}
	prices, ok := ds.NumericColumn(priceColumn)
	if !ok {
		return nil, fmt.Errorf("column %q not present or not numeric", priceColumn)
	}
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for i, b := range brands {
		sums[b] += prices[i]
		counts[b]++
	}
	labels := make([]string, 0, len(sums))
	for b := range sums {
		labels = append(labels, b)
	}
	mean := func(b string) float64 { return sums[b] / float64(counts[b]) }
	sort.Slice(labels, func(i, j int) bool {
		mi, mj := mean(labels[i]), mean(labels[j])
		if mi == mj {
			return labels[i] < labels[j]
		}
		return mi < mj
	})
	values := make(plotter.Values, len(labels))
	for i, b := range labels {
		values[i] = mean(b)
	}

	p := plot.New()
	p.Title.Text = "Average Price by Brand (USD)"
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = "Average price, USD"
	p.Y.Label.Text = "Brand"

	bars, err := plotter.NewBarChart(values, vg.Points(15))
	if err != nil {
		return nil, fmt.Errorf("price bars: %w", err)
	}
	bars.Horizontal = true
	bars.Color = color.RGBA{R: 135, G: 206, B: 235, A: 255}
	bars.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	bars.LineStyle.Width = vg.Points(0.5)
	p.Add(bars)
	p.NominalY(labels...)
	p.X.Min = 0
	return p, nil
}

// popularitySpreadPanel draws a box-and-whisker of Popularity_Score per
// Style, styles in first-seen order.
func popularitySpreadPanel(ds *dataset.Dataset, _ Options) (*plot.Plot, error) {
	styles, ok := ds.Column(styleColumn)
	if !ok {
		return nil, fmt.Errorf("column %q not present", styleColumn)
	}
	scores, ok := ds.NumericColumn(popularityColumn)
	if !ok {
		return nil, fmt.Errorf("column %q not present or not numeric", popularityColumn)
	}
	var order []string
	byStyle := make(map[string]plotter.Values)
	for i, s := range styles {
		if _, seen := byStyle[s]; !seen {
			order = append(order, s)
		}
		byStyle[s] = append(byStyle[s], scores[i])
	}

	p := plot.New()
	p.Title.Text = "Popularity Spread by Style"
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = "Style"
	p.Y.Label.Text = "Popularity score"

	for i, s := range order {
		box, err := plotter.NewBoxPlot(vg.Points(20), float64(i), byStyle[s])
		if err != nil {
			return nil, fmt.Errorf("box for style %q: %w", s, err)
		}
		p.Add(box)
	}
	p.NominalX(order...)
	return p, nil
}

// seasonTrendPanel draws the mean Customer_Rating per Season as a connected
// line with point markers.
func seasonTrendPanel(ds *dataset.Dataset, opt Options) (*plot.Plot, error) {
	seasons, ok := ds.Column(seasonColumn)
	if !ok {
		return nil, fmt.Errorf("column %q not present", seasonColumn)
	}
	ratings, ok := ds.NumericColumn(ratingColumn)
	if !ok {
		return nil, fmt.Errorf("column %q not present or not numeric", ratingColumn)
	}
	sums := make(map[string]float64)
	counts := make(map[string]int)
	var firstSeen []string
	for i, s := range seasons {
		if counts[s] == 0 {
			firstSeen = append(firstSeen, s)
		}
		sums[s] += ratings[i]
		counts[s]++
	}
	order := seasonOrder(firstSeen, opt.SeasonOrder)

	pts := make(plotter.XYs, len(order))
	for i, s := range order {
		pts[i].X = float64(i)
		pts[i].Y = sums[s] / float64(counts[s])
	}

	p := plot.New()
	p.Title.Text = "Customer Rating by Season"
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = "Season"
	p.Y.Label.Text = "Average rating"

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return nil, fmt.Errorf("rating line: %w", err)
	}
	red := color.RGBA{R: 220, G: 20, B: 60, A: 255}
	line.Color = red
	line.Width = vg.Points(2.5)
	points.Color = red
	points.Shape = draw.CircleGlyph{}
	points.Radius = vg.Points(4)
	p.Add(plotter.NewGrid(), line, points)
	p.NominalX(order...)
	return p, nil
}

// canonical calendar positions; Autumn and Fall share a slot.
var seasonRank = map[string]int{
	"winter": 0,
	"spring": 1,
	"summer": 2,
	"fall":   3,
	"autumn": 3,
}

// seasonOrder returns the seasons in calendar order when mode is "calendar"
// and every season is a recognized name; otherwise it keeps first-seen
// order, which reproduces the incidental data ordering of the source file.
func seasonOrder(firstSeen []string, mode string) []string {
	if mode != "calendar" {
		return firstSeen
	}
	for _, s := range firstSeen {
		if _, ok := seasonRank[strings.ToLower(s)]; !ok {
			return firstSeen
		}
	}
	ordered := make([]string, len(firstSeen))
	copy(ordered, firstSeen)
	sort.SliceStable(ordered, func(i, j int) bool {
		return seasonRank[strings.ToLower(ordered[i])] < seasonRank[strings.ToLower(ordered[j])]
	})
	return ordered
}
