// Package peel implements onion peeling of a point cloud: the convex hull
// of the active points is extracted as a depth layer, its vertices are
// removed, and the process repeats until a stopping threshold or geometric
// degeneracy leaves a final lump of interior points.
package peel

import (
	"errors"
	"sort"

	"github.com/coin-lab/paretoviz/internal/hull"
	"github.com/coin-lab/paretoviz/internal/pointset"
)

// Layer is one peeled shell: the original cloud indices of its members,
// kept in ascending order.
type Layer []int

// Sequence is an ordered run of layers, outermost first. The layers are
// pairwise disjoint and their union is the full index set of the cloud
// that produced them.
type Sequence []Layer

// Points returns the total number of indices across all layers.
func (s Sequence) Points() int {
	n := 0
	for _, l := range s {
		n += len(l)
	}
	return n
}

// Engine drives the iterative peeling loop. The active index set is owned
// by a single call to Peel, so one engine can serve any number of
// independent runs.
type Engine struct {
	finder hull.VertexFinder
	policy ThresholdPolicy
}

// NewEngine creates an engine using the given hull finder and stopping
// policy. A nil finder selects the default for the cloud's dimension at
// peel time.
func NewEngine(finder hull.VertexFinder, policy ThresholdPolicy) *Engine {
	return &Engine{finder: finder, policy: policy}
}

// Peel decomposes the cloud into depth layers. The cloud is read-only; the
// returned sequence partitions the index set 0..Len()-1. Hull degeneracy is
// not an error: it terminates the loop and lumps the remaining active
// points into the final layer.
func (e *Engine) Peel(cloud pointset.Cloud) (Sequence, error) {
	if err := cloud.Validate(); err != nil {
		return nil, err
	}
	if cloud.Len() == 0 {
		return nil, nil
	}

	m := cloud.Dim()
	finder := e.finder
	if finder == nil {
		finder = hull.NewFinder(m)
	}

	active := cloud.AllIndices()
	var seq Sequence
	Logf("peeling %d points in %d dimensions (threshold=%s)", len(active), m, e.policy)

	for layer := 0; ; layer++ {
		if e.policy.Stop(len(active), m) {
			if len(active) > 0 {
				Logf("layer %d: %d points lumped at threshold", layer, len(active))
				seq = append(seq, Layer(active))
			}
			return seq, nil
		}

		vertices, err := finder.Vertices(cloud, active)
		if errors.Is(err, hull.ErrDegenerate) || (err == nil && len(vertices) == 0) {
			// The remaining points are not in general position. Lump them
			// together as the final layer and finish.
			Logf("layer %d: degenerate hull, %d points lumped", layer, len(active))
			seq = append(seq, Layer(active))
			return seq, nil
		}
		if err != nil {
			return nil, err
		}

		sort.Ints(vertices)
		seq = append(seq, Layer(vertices))
		active = subtract(active, vertices)
		Logf("layer %d: %d points peeled, %d left", layer, len(vertices), len(active))
	}
}

// subtract removes the sorted index set b from the sorted index set a.
func subtract(a, b []int) []int {
	out := a[:0]
	j := 0
	for _, v := range a {
		for j < len(b) && b[j] < v {
			j++
		}
		if j < len(b) && b[j] == v {
			continue
		}
		out = append(out, v)
	}
	return out
}
