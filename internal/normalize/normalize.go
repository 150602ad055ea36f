// Package normalize rescales raw objective vectors into the unit box
// spanned by the ideal and nadir points of the cloud, the coordinate frame
// the peeling pipeline expects.
package normalize

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/coin-lab/paretoviz/internal/pointset"
)

// Bounds holds the per-coordinate extremes of a cloud: Ideal is the
// coordinate-wise minimum, Nadir the coordinate-wise maximum.
type Bounds struct {
	Ideal []float64
	Nadir []float64
}

// FindBounds scans the cloud for its ideal and nadir points.
func FindBounds(c pointset.Cloud) Bounds {
	m := c.Dim()
	if c.Len() == 0 || m == 0 {
		return Bounds{}
	}

	ideal := append([]float64(nil), c[0]...)
	nadir := append([]float64(nil), c[0]...)
	for _, p := range c[1:] {
		for j, v := range p {
			if v < ideal[j] {
				ideal[j] = v
			}
			if v > nadir[j] {
				nadir[j] = v
			}
		}
	}
	return Bounds{Ideal: ideal, Nadir: nadir}
}

// Normalize rescales every point into [0, 1] per coordinate using the given
// bounds. Coordinates with zero spread map to 0. The input cloud is not
// mutated.
func Normalize(c pointset.Cloud, b Bounds) (pointset.Cloud, error) {
	m := c.Dim()
	if c.Len() == 0 {
		return nil, nil
	}
	if len(b.Ideal) != m || len(b.Nadir) != m {
		return nil, fmt.Errorf("normalize: bounds dimension %d/%d does not match cloud dimension %d",
			len(b.Ideal), len(b.Nadir), m)
	}

	spread := make([]float64, m)
	floats.SubTo(spread, b.Nadir, b.Ideal)

	out := make(pointset.Cloud, c.Len())
	for i, p := range c {
		q := make([]float64, m)
		floats.SubTo(q, p, b.Ideal)
		for j := range q {
			if spread[j] == 0 {
				q[j] = 0
				continue
			}
			q[j] /= spread[j]
		}
		out[i] = q
	}
	return out, nil
}
