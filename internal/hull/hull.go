// Package hull identifies the convex-hull vertices of a subset of a point
// cloud. The hull computation is a pluggable capability behind VertexFinder
// so the peeling engine never depends on a concrete algorithm.
package hull

import (
	"errors"

	"github.com/coin-lab/paretoviz/internal/pointset"
)

// ErrDegenerate reports that no meaningful hull exists for the active
// subset: too few points for the dimension, or the points are not in
// general position (they span a lower-dimensional flat). Callers treat the
// whole subset as unpeeled; this is an expected outcome, not a failure.
var ErrDegenerate = errors.New("hull: active points are degenerate")

// VertexFinder computes the convex hull of the sub-cloud selected by an
// active index set and returns the original indices that are hull vertices.
// Implementations must be deterministic for a fixed input and must return
// ErrDegenerate rather than a low-level numerical error when the points are
// not in general position.
type VertexFinder interface {
	Vertices(cloud pointset.Cloud, active []int) ([]int, error)
}

// NewFinder returns the preferred finder for clouds of dimension m: the
// planar monotone chain for m == 2, the general LP finder otherwise.
func NewFinder(m int) VertexFinder {
	if m == 2 {
		return Chain2D{}
	}
	return &LPFinder{}
}
