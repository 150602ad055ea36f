package render

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/coin-lab/paretoviz/internal/peel"
	"github.com/coin-lab/paretoviz/internal/pointset"
)

// SavePNG renders the layer sequence as a static scatter plot, one series
// per layer, and saves it to path. The file extension selects the format
// (png, pdf, svg, ...).
func SavePNG(path string, cloud pointset.Cloud, seq peel.Sequence, title string) error {
	if cloud.Dim() < 2 {
		return fmt.Errorf("render: need at least 2 dimensions, got %d", cloud.Dim())
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "f1"
	p.Y.Label.Text = "f2"

	for depth, layer := range seq {
		pts := make(plotter.XYs, 0, len(layer))
		for _, idx := range layer {
			pts = append(pts, plotter.XY{X: cloud[idx][0], Y: cloud[idx][1]})
		}
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return fmt.Errorf("render: scatter for layer %d: %w", depth, err)
		}
		s.GlyphStyle.Color = plotutil.Color(depth)
		s.GlyphStyle.Radius = vg.Points(2)
		p.Add(s)
		p.Legend.Add(fmt.Sprintf("layer %d", depth), s)
	}

	if err := p.Save(8*vg.Inch, 8*vg.Inch, path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}
	return nil
}
