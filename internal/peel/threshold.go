package peel

import "fmt"

// ThresholdPolicy decides when the engine stops peeling and lumps the
// remaining active points into a final layer. Two variants are in use in
// this domain and neither is canonically "correct", so the choice is an
// explicit configuration rather than a constant.
type ThresholdPolicy int

const (
	// HullSize stops once the active set has at most m+1 points, the
	// minimum count that could still carry a non-trivial hull in m
	// dimensions.
	HullSize ThresholdPolicy = iota
	// DoubleHull stops earlier, once the active set has fewer than 2m+1
	// points, leaving a thicker final layer.
	DoubleHull
)

// String implements fmt.Stringer.
func (p ThresholdPolicy) String() string {
	switch p {
	case HullSize:
		return "hull"
	case DoubleHull:
		return "double"
	}
	return fmt.Sprintf("ThresholdPolicy(%d)", int(p))
}

// ParseThresholdPolicy parses "hull" or "double".
func ParseThresholdPolicy(s string) (ThresholdPolicy, error) {
	switch s {
	case "hull":
		return HullSize, nil
	case "double":
		return DoubleHull, nil
	}
	return 0, fmt.Errorf("peel: unknown threshold policy %q (want hull or double)", s)
}

// Stop reports whether peeling should halt for an active set of the given
// size over points of dimension m.
func (p ThresholdPolicy) Stop(size, m int) bool {
	if p == DoubleHull {
		return size < 2*m+1
	}
	return size <= m+1
}
