package geom

import (
	"fmt"

	"github.com/coin-lab/paretoviz/internal/pointset"
)

// CollapseTarget names which coordinate Collapse drops. The two call sites
// in the pipeline historically used different defaults: the standalone
// collapser drops the first coordinate, while the projection pipeline drops
// the last (the coordinate made redundant by Project). Both are kept as
// explicit named choices.
type CollapseTarget int

const (
	// CollapseFirst drops coordinate 0.
	CollapseFirst CollapseTarget = iota
	// CollapseLast drops coordinate m-1.
	CollapseLast
)

// String implements fmt.Stringer.
func (t CollapseTarget) String() string {
	switch t {
	case CollapseFirst:
		return "first"
	case CollapseLast:
		return "last"
	}
	return fmt.Sprintf("CollapseTarget(%d)", int(t))
}

// ParseCollapseTarget parses "first" or "last".
func ParseCollapseTarget(s string) (CollapseTarget, error) {
	switch s {
	case "first":
		return CollapseFirst, nil
	case "last":
		return CollapseLast, nil
	}
	return 0, fmt.Errorf("geom: unknown collapse target %q (want first or last)", s)
}

// Index returns the coordinate index the target resolves to for dimension m.
func (t CollapseTarget) Index(m int) int {
	if t == CollapseLast {
		return m - 1
	}
	return 0
}

// Collapse returns a new cloud with coordinate d removed from every point,
// reducing the dimension from m to m-1. An out-of-range d is a caller
// contract violation.
func Collapse(c pointset.Cloud, d int) (pointset.Cloud, error) {
	m := c.Dim()
	if d < 0 || d >= m {
		return nil, fmt.Errorf("geom: collapse dimension %d out of range for %d-dimensional cloud", d, m)
	}

	out := make(pointset.Cloud, c.Len())
	for i, p := range c {
		q := make([]float64, 0, m-1)
		q = append(q, p[:d]...)
		q = append(q, p[d+1:]...)
		out[i] = q
	}
	return out, nil
}
