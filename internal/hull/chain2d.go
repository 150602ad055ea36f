package hull

import (
	"sort"

	"github.com/coin-lab/paretoviz/internal/pointset"
)

// Chain2D finds hull vertices of planar clouds with Andrew's monotone chain.
// Strict turns are required when extending the chain, so points lying on the
// interior of a hull edge are not reported as vertices; only extreme points
// are, matching the LP finder's selection rule.
type Chain2D struct{}

// Vertices implements VertexFinder for clouds of dimension 2.
func (Chain2D) Vertices(cloud pointset.Cloud, active []int) ([]int, error) {
	k := len(active)
	if k <= 3 {
		return nil, ErrDegenerate
	}

	// Sort active indices by (x, y) without mutating the caller's slice.
	order := append([]int(nil), active...)
	sort.Slice(order, func(a, b int) bool {
		pa, pb := cloud[order[a]], cloud[order[b]]
		if pa[0] != pb[0] {
			return pa[0] < pb[0]
		}
		return pa[1] < pb[1]
	})

	cross := func(o, a, b []float64) float64 {
		return (a[0]-o[0])*(b[1]-o[1]) - (a[1]-o[1])*(b[0]-o[0])
	}

	var lower []int
	for _, idx := range order {
		for len(lower) >= 2 && cross(cloud[lower[len(lower)-2]], cloud[lower[len(lower)-1]], cloud[idx]) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, idx)
	}

	var upper []int
	for i := len(order) - 1; i >= 0; i-- {
		idx := order[i]
		for len(upper) >= 2 && cross(cloud[upper[len(upper)-2]], cloud[upper[len(upper)-1]], cloud[idx]) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, idx)
	}

	// Concatenate, dropping each chain's final point (it starts the other).
	vertices := append(lower[:len(lower)-1], upper[:len(upper)-1]...)
	// Fewer than three vertices means the points are collinear: no hull.
	if len(vertices) < 3 {
		return nil, ErrDegenerate
	}
	sort.Ints(vertices)
	return vertices, nil
}

// Verify at compile time that Chain2D implements VertexFinder.
var _ VertexFinder = Chain2D{}
