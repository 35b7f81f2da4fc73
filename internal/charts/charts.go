package charts

import (
	"bytes"
	"fmt"
	"log/slog"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/northloop/trendlens-cli/internal/dataset"
	"github.com/northloop/trendlens-cli/internal/utils"
)

// Options controls the composed figure.
type Options struct {
	// Title is drawn across the top of the figure.
	Title string
	// Width and Height of the whole figure.
	Width  vg.Length
	Height vg.Length
	// SeasonOrder is "calendar" or "first-seen"; see seasonOrder.
	SeasonOrder string
	// TopColors caps the color-frequency bars; 0 keeps all colors.
	TopColors int
}

// DefaultOptions returns the figure settings of the standard report.
func DefaultOptions() Options {
	return Options{
		Title:       "Winter Fashion Trends Analysis (2023-2025)",
		Width:       18 * vg.Inch,
		Height:      12 * vg.Inch,
		SeasonOrder: "calendar",
	}
}

type panelSpec struct {
	name  string
	build func(*dataset.Dataset, Options) (*plot.Plot, error)
}

// The four panels, in grid order. Each builder is independent: a failure
// leaves its slot blank and must not stop the others.
var panels = [2][2]panelSpec{
	{
		{name: "color frequency", build: colorFrequencyPanel},
		{name: "brand price", build: brandPricePanel},
	},
	{
		{name: "popularity spread", build: popularitySpreadPanel},
		{name: "season rating trend", build: seasonTrendPanel},
	},
}

// Render builds the four panels, composes them 2x2 under the figure title,
// and writes the result as a PNG at path. Per-panel failures are logged as
// warnings; Render only errors when the figure itself cannot be written.
func Render(ds *dataset.Dataset, path string, opt Options, log *slog.Logger) error {
	if opt.Width <= 0 || opt.Height <= 0 {
		def := DefaultOptions()
		opt.Width, opt.Height = def.Width, def.Height
	}

	grid := make([][]*plot.Plot, len(panels))
	rendered := 0
	for r := range panels {
		grid[r] = make([]*plot.Plot, len(panels[r]))
		for c, spec := range panels[r] {
			p, err := spec.build(ds, opt)
			if err != nil {
				log.Warn("skipping chart panel", "panel", spec.name, "error", err)
				continue
			}
			grid[r][c] = p
			rendered++
		}
	}
	log.Debug("chart panels built", "rendered", rendered, "total", 4)

	img := vgimg.New(opt.Width, opt.Height)
	dc := draw.New(img)
	body := dc
	if opt.Title != "" {
		const titleHeight = vg.Centimeter
		head := plot.New()
		head.Title.Text = opt.Title
		head.Title.TextStyle.Font.Size = vg.Points(18)
		head.HideAxes()
		head.Draw(draw.Crop(dc, 0, 0, dc.Max.Y-dc.Min.Y-titleHeight, 0))
		body = draw.Crop(dc, 0, 0, 0, -titleHeight)
	}

	tiles := draw.Tiles{
		Rows: 2, Cols: 2,
		PadX: vg.Millimeter * 4, PadY: vg.Millimeter * 4,
		PadTop: vg.Millimeter * 2, PadBottom: vg.Millimeter * 2,
		PadLeft: vg.Millimeter * 2, PadRight: vg.Millimeter * 2,
	}
	canvases := plot.Align(grid, tiles, body)
	for r := range grid {
		for c := range grid[r] {
			if grid[r][c] == nil {
				continue
			}
			grid[r][c].Draw(canvases[r][c])
		}
	}

	var buf bytes.Buffer
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(&buf); err != nil {
		return fmt.Errorf("encode figure: %w", err)
	}
	if err := utils.SafeWriteFile(path, buf.Bytes()); err != nil {
		return fmt.Errorf("write figure: %w", err)
	}
	return nil
}
