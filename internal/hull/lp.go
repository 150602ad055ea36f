package hull

import (
	"errors"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/coin-lab/paretoviz/internal/pointset"
)

// DefaultRankTol is the relative singular-value cutoff used when deciding
// whether an active sub-cloud spans its full embedding dimension.
const DefaultRankTol = 1e-9

// LPFinder identifies hull vertices in any dimension by linear programming:
// a point is a vertex of the convex hull exactly when it cannot be written
// as a convex combination of the remaining active points. Each candidate is
// tested with a feasibility LP in standard form (minimize 0 subject to
// combination weights that are non-negative, sum to one, and reproduce the
// candidate's coordinates).
//
// Before any vertex test the finder checks that the sub-cloud is
// full-dimensional; a flat configuration (e.g. collinear points in the
// plane) is reported as ErrDegenerate, matching how facet-based hull
// solvers fail on inputs that are not in general position.
type LPFinder struct {
	// RankTol overrides DefaultRankTol when > 0.
	RankTol float64
}

// Vertices implements VertexFinder.
func (f *LPFinder) Vertices(cloud pointset.Cloud, active []int) ([]int, error) {
	k := len(active)
	m := cloud.Dim()
	// A hull over k <= m+1 points in m dimensions is trivial: every point
	// would be a vertex, so there is nothing to peel.
	if k <= m+1 {
		return nil, ErrDegenerate
	}
	if !f.fullRank(cloud, active, m) {
		return nil, ErrDegenerate
	}

	var vertices []int
	for i, idx := range active {
		inside, err := convexMember(cloud, active, i)
		if err != nil {
			// Numerical failure inside the LP solver on this configuration;
			// downgrade to degeneracy per the extractor contract.
			return nil, ErrDegenerate
		}
		if !inside {
			vertices = append(vertices, idx)
		}
	}
	if len(vertices) == 0 {
		return nil, ErrDegenerate
	}
	return vertices, nil
}

// fullRank reports whether the active points affinely span all m dimensions.
func (f *LPFinder) fullRank(cloud pointset.Cloud, active []int, m int) bool {
	tol := f.RankTol
	if tol <= 0 {
		tol = DefaultRankTol
	}

	origin := cloud[active[0]]
	a := mat.NewDense(len(active)-1, m, nil)
	for r, idx := range active[1:] {
		for c := 0; c < m; c++ {
			a.Set(r, c, cloud[idx][c]-origin[c])
		}
	}

	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDNone); !ok {
		return false
	}
	values := svd.Values(nil)
	if len(values) == 0 || values[0] == 0 {
		return false
	}
	cutoff := tol * values[0]
	rank := 0
	for _, v := range values {
		if v > cutoff {
			rank++
		}
	}
	return rank >= m
}

// convexMember reports whether active[i] lies in the convex hull of the
// other active points. The feasibility problem is solved as a phase-1 LP:
// find weights x >= 0 with sum(x) = 1 and sum(x_j * q_j) = p.
func convexMember(cloud pointset.Cloud, active []int, i int) (bool, error) {
	m := cloud.Dim()
	k := len(active)
	p := cloud[active[i]]

	a := mat.NewDense(m+1, k-1, nil)
	col := 0
	for j, idx := range active {
		if j == i {
			continue
		}
		q := cloud[idx]
		for r := 0; r < m; r++ {
			a.Set(r, col, q[r])
		}
		a.Set(m, col, 1)
		col++
	}

	b := make([]float64, m+1)
	copy(b, p)
	b[m] = 1

	c := make([]float64, k-1)
	_, _, err := lp.Simplex(c, a, b, 0, nil)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, lp.ErrInfeasible):
		return false, nil
	default:
		return false, err
	}
}

// Verify at compile time that *LPFinder implements VertexFinder.
var _ VertexFinder = (*LPFinder)(nil)
