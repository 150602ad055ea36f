// Package render draws peeled layer sequences as depth-colored scatter
// plots, either as an interactive HTML chart or a static PNG. Only the
// first two coordinates are drawn; the depth ordering carries the rest of
// the story.
package render

import (
	"fmt"
	"math"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/coin-lab/paretoviz/internal/peel"
	"github.com/coin-lab/paretoviz/internal/pointset"
)

// viridisColors is the color ramp used for depth shading, outermost layer
// dark, innermost bright.
var viridisColors = []string{
	"#440154", "#482777", "#3e4989", "#31688e", "#26828e",
	"#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725",
}

// WriteHTML renders the layer sequence as an interactive scatter chart with
// a depth visual map and writes it to path.
func WriteHTML(path string, cloud pointset.Cloud, seq peel.Sequence, title string) error {
	if cloud.Dim() < 2 {
		return fmt.Errorf("render: need at least 2 dimensions, got %d", cloud.Dim())
	}

	data := make([]opts.ScatterData, 0, cloud.Len())
	maxAbs := 0.0
	for depth, layer := range seq {
		for _, idx := range layer {
			x, y := cloud[idx][0], cloud[idx][1]
			if math.Abs(x) > maxAbs {
				maxAbs = math.Abs(x)
			}
			if math.Abs(y) > maxAbs {
				maxAbs = math.Abs(y)
			}
			data = append(data, opts.ScatterData{Value: []interface{}{x, y, depth}})
		}
	}

	// Add a small padding so points at the edges are visible.
	pad := maxAbs * 1.05
	if pad == 0 {
		pad = 1.0
	}
	maxDepth := len(seq) - 1
	if maxDepth < 1 {
		maxDepth = 1
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Theme: "dark", Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: fmt.Sprintf("points=%d layers=%d", cloud.Len(), len(seq))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: -pad, Max: pad, Name: "f1", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Min: -pad, Max: pad, Name: "f2", NameLocation: "middle", NameGap: 30}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(maxDepth),
			Dimension:  "2",
			InRange:    &opts.VisualMapInRange{Color: viridisColors},
		}),
	)
	scatter.AddSeries("layers", data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 6}))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create %s: %w", path, err)
	}
	defer f.Close()
	if err := scatter.Render(f); err != nil {
		return fmt.Errorf("render: %s: %w", path, err)
	}
	return nil
}
