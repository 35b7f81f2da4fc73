package charts

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/northloop/trendlens-cli/internal/dataset"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fullDataset() *dataset.Dataset {
	return &dataset.Dataset{
		Columns: []string{"Category", "Color", "Brand", "Price(USD)", "Style", "Season", "Customer_Rating", "Popularity_Score"},
		Rows: [][]string{
			{"Coats", "Black", "A", "100", "Casual", "Winter", "4.5", "80"},
			{"Coats", "White", "A", "120", "Formal", "Fall", "4.0", "60"},
			{"Boots", "Black", "B", "80", "Casual", "Winter", "4.8", "90"},
			{"Scarves", "Red", "C", "30", "Casual", "Spring", "3.9", "70"},
		},
	}
}

func TestRenderWritesFigure(t *testing.T) {
	out := filepath.Join(t.TempDir(), "figure.png")
	if err := Render(fullDataset(), out, DefaultOptions(), discardLogger()); err != nil {
		t.Fatalf("render: %v", err)
	}
	info, err := os.Stat(out)
	if err != nil {
		t.Fatalf("stat figure: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("figure is empty")
	}
}

func TestRenderSurvivesMissingColumn(t *testing.T) {
	ds := fullDataset()
	// Drop the Color column; Panel A must fail alone.
	idx := -1
	for i, c := range ds.Columns {
		if c == "Color" {
			idx = i
		}
	}
	ds.Columns = append(ds.Columns[:idx], ds.Columns[idx+1:]...)
	for i, row := range ds.Rows {
		ds.Rows[i] = append(row[:idx], row[idx+1:]...)
	}

	out := filepath.Join(t.TempDir(), "figure.png")
	if err := Render(ds, out, DefaultOptions(), discardLogger()); err != nil {
		t.Fatalf("render: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("figure not written: %v", err)
	}
}

func TestPanelBuildersRejectMissingColumns(t *testing.T) {
	ds := &dataset.Dataset{Columns: []string{"Other"}, Rows: [][]string{{"x"}}}
	opt := DefaultOptions()
	for _, row := range panels {
		for _, spec := range row {
			if _, err := spec.build(ds, opt); err == nil {
				t.Fatalf("panel %q should fail without its columns", spec.name)
			}
		}
	}
}

func TestColorFrequencyOrdering(t *testing.T) {
	ds := fullDataset()
	p, err := colorFrequencyPanel(ds, DefaultOptions())
	if err != nil {
		t.Fatalf("color panel: %v", err)
	}
	if p.Title.Text != "Trending Colors" {
		t.Fatalf("title = %q", p.Title.Text)
	}
}

func TestSeasonOrderCalendar(t *testing.T) {
	got := seasonOrder([]string{"Fall", "Spring", "Winter"}, "calendar")
	want := []string{"Winter", "Spring", "Fall"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
}

func TestSeasonOrderFallsBackOnUnknownValues(t *testing.T) {
	first := []string{"Holiday", "Winter"}
	if got := seasonOrder(first, "calendar"); !reflect.DeepEqual(got, first) {
		t.Fatalf("order = %v, want first-seen %v", got, first)
	}
}

func TestSeasonOrderFirstSeenMode(t *testing.T) {
	first := []string{"Summer", "Winter"}
	if got := seasonOrder(first, "first-seen"); !reflect.DeepEqual(got, first) {
		t.Fatalf("order = %v, want %v", got, first)
	}
}
