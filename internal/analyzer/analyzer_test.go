package analyzer_test

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/northloop/trendlens-cli/internal/analyzer"
	"github.com/northloop/trendlens-cli/internal/charts"
)

const sampleCSV = `Category,Color,Brand,Price(USD),Style,Season,Customer_Rating,Popularity_Score
Coats,Black,A,100,Casual,Winter,4.5,80
Coats,Black,A,100,Casual,Winter,4.5,80
Coats,Black,A,110,Casual,Winter,4.2,60
Boots,Brown,B,80,Casual,Fall,4.8,90
`

func newAnalyzer(t *testing.T, csvPath string, out io.Writer) (*analyzer.Analyzer, string) {
	t.Helper()
	figure := filepath.Join(t.TempDir(), "figure.png")
	return &analyzer.Analyzer{
		Path:      csvPath,
		ChartPath: figure,
		ChartOpts: charts.DefaultOptions(),
		Out:       out,
		Log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, figure
}

func TestRunFullPipeline(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "trends.csv")
	if err := os.WriteFile(csvPath, []byte(sampleCSV), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	var buf bytes.Buffer
	a, figure := newAnalyzer(t, csvPath, &buf)
	if err := a.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "DATASET STATISTICS") {
		t.Fatalf("missing statistics section:\n%s", out)
	}
	// Duplicate row dropped, Coats median of {80,60} = 70.
	if !strings.Contains(out, "70.00") {
		t.Fatalf("expected Coats median 70.00:\n%s", out)
	}
	if _, err := os.Stat(figure); err != nil {
		t.Fatalf("figure not written: %v", err)
	}
}

func TestRunMissingFileShortCircuits(t *testing.T) {
	var buf bytes.Buffer
	a, figure := newAnalyzer(t, filepath.Join(t.TempDir(), "absent.csv"), &buf)
	if err := a.Run(); err == nil {
		t.Fatal("expected load failure")
	}
	if buf.Len() != 0 {
		t.Fatalf("reporter ran after failed load:\n%s", buf.String())
	}
	if _, err := os.Stat(figure); err == nil {
		t.Fatal("figure written after failed load")
	}
}
