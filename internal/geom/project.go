// Package geom implements the geometric preprocessing applied to a point
// cloud before peeling: projection onto the unit simplex hyperplane and
// collapsing a redundant coordinate.
package geom

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/coin-lab/paretoviz/internal/pointset"
)

// Project maps every point onto the hyperplane orthogonal to the unit
// all-ones direction u = (1/sqrt(m), ..., 1/sqrt(m)), then offsets the
// result by u/sqrt(m). The output keeps the input dimension m even though
// the projected points span only m-1 geometric dimensions; Collapse removes
// the redundant coordinate afterwards.
//
// For each point p: p' = (p - (u·p)u) + u/sqrt(m).
func Project(c pointset.Cloud) pointset.Cloud {
	m := c.Dim()
	if m == 0 {
		return nil
	}

	u := make([]float64, m)
	for i := range u {
		u[i] = 1.0 / math.Sqrt(float64(m))
	}
	// The re-offset term u/sqrt(m) works out to 1/m per coordinate.
	offset := 1.0 / float64(m)

	out := make(pointset.Cloud, c.Len())
	for i, p := range c {
		q := append([]float64(nil), p...)
		s := floats.Dot(u, p)
		floats.AddScaled(q, -s, u)
		floats.AddConst(offset, q)
		out[i] = q
	}
	return out
}
