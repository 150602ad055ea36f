// Package pointset provides the point-cloud data model and the text file
// formats used to move clouds and layer files between pipeline stages.
package pointset

import "fmt"

// Cloud is an ordered collection of points, all of the same dimension.
// Point i keeps the stable index i across every transformation in the
// pipeline; stages change coordinates but never reorder or reindex.
type Cloud [][]float64

// Len returns the number of points in the cloud.
func (c Cloud) Len() int { return len(c) }

// Dim returns the dimension of the points, or 0 for an empty cloud.
func (c Cloud) Dim() int {
	if len(c) == 0 {
		return 0
	}
	return len(c[0])
}

// Validate checks that every point has the same dimension. Ragged rows are a
// caller contract violation for the geometric stages.
func (c Cloud) Validate() error {
	if len(c) == 0 {
		return nil
	}
	dim := len(c[0])
	for i, p := range c {
		if len(p) != dim {
			return fmt.Errorf("pointset: point %d has dimension %d, want %d", i, len(p), dim)
		}
	}
	return nil
}

// Clone returns a deep copy of the cloud.
func (c Cloud) Clone() Cloud {
	out := make(Cloud, len(c))
	for i, p := range c {
		out[i] = append([]float64(nil), p...)
	}
	return out
}

// AllIndices returns the full index set 0..Len()-1 in ascending order. It is
// the initial active set for a peeling run.
func (c Cloud) AllIndices() []int {
	idx := make([]int, len(c))
	for i := range idx {
		idx[i] = i
	}
	return idx
}
