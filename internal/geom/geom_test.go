package geom

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/coin-lab/paretoviz/internal/pointset"
)

func TestProject_Formula(t *testing.T) {
	// One point in 2D, checked against the projection formula by hand:
	// u = (1/sqrt(2), 1/sqrt(2)), s = u.p, p' = p - s*u + u/sqrt(2).
	p := []float64{3, 1}
	got := Project(pointset.Cloud{p})

	sqrt2 := math.Sqrt(2)
	s := (p[0] + p[1]) / sqrt2
	want := []float64{
		p[0] - s/sqrt2 + 0.5,
		p[1] - s/sqrt2 + 0.5,
	}
	for i := range want {
		if math.Abs(got[0][i]-want[i]) > 1e-12 {
			t.Errorf("coordinate %d = %v, want %v", i, got[0][i], want[i])
		}
	}
}

func TestProject_ImageOnUnitSimplex(t *testing.T) {
	// Every projected point's coordinates sum to exactly 1, for any
	// dimension: that is the simplex the projection targets.
	cloud := pointset.Cloud{
		{0.2, 0.9, 0.4},
		{-3, 7, 0},
		{1, 1, 1},
	}
	projected := Project(cloud)
	for i, p := range projected {
		sum := 0.0
		for _, v := range p {
			sum += v
		}
		if math.Abs(sum-1) > 1e-12 {
			t.Errorf("point %d: coordinate sum = %v, want 1", i, sum)
		}
	}
}

func TestProject_NearFixedOnItsImage(t *testing.T) {
	cloud := pointset.Cloud{
		{0.1, 0.5, 0.9, 0.3},
		{2, -1, 0.25, 0.75},
	}
	once := Project(cloud)
	twice := Project(once)
	for i := range once {
		for j := range once[i] {
			if math.Abs(once[i][j]-twice[i][j]) > 1e-12 {
				t.Errorf("point %d coordinate %d drifted: %v -> %v", i, j, once[i][j], twice[i][j])
			}
		}
	}
}

func TestProject_DoesNotMutateInput(t *testing.T) {
	cloud := pointset.Cloud{{5, 5}}
	Project(cloud)
	if cloud[0][0] != 5 || cloud[0][1] != 5 {
		t.Errorf("input mutated: %v", cloud[0])
	}
}

func TestCollapse(t *testing.T) {
	cloud := pointset.Cloud{
		{1, 2, 3},
		{4, 5, 6},
	}

	first, err := Collapse(cloud, CollapseFirst.Index(3))
	if err != nil {
		t.Fatalf("Collapse(first): %v", err)
	}
	if diff := cmp.Diff(pointset.Cloud{{2, 3}, {5, 6}}, first); diff != "" {
		t.Errorf("collapse first mismatch (-want +got):\n%s", diff)
	}

	last, err := Collapse(cloud, CollapseLast.Index(3))
	if err != nil {
		t.Fatalf("Collapse(last): %v", err)
	}
	if diff := cmp.Diff(pointset.Cloud{{1, 2}, {4, 5}}, last); diff != "" {
		t.Errorf("collapse last mismatch (-want +got):\n%s", diff)
	}

	mid, err := Collapse(cloud, 1)
	if err != nil {
		t.Fatalf("Collapse(1): %v", err)
	}
	if diff := cmp.Diff(pointset.Cloud{{1, 3}, {4, 6}}, mid); diff != "" {
		t.Errorf("collapse middle mismatch (-want +got):\n%s", diff)
	}
}

func TestCollapse_OutOfRange(t *testing.T) {
	cloud := pointset.Cloud{{1, 2}}
	if _, err := Collapse(cloud, 2); err == nil {
		t.Error("Collapse(2) on 2D cloud: expected error, got nil")
	}
	if _, err := Collapse(cloud, -1); err == nil {
		t.Error("Collapse(-1): expected error, got nil")
	}
}

func TestParseCollapseTarget(t *testing.T) {
	if got, err := ParseCollapseTarget("first"); err != nil || got != CollapseFirst {
		t.Errorf("ParseCollapseTarget(first) = %v, %v", got, err)
	}
	if got, err := ParseCollapseTarget("last"); err != nil || got != CollapseLast {
		t.Errorf("ParseCollapseTarget(last) = %v, %v", got, err)
	}
	if _, err := ParseCollapseTarget("middle"); err == nil {
		t.Error("ParseCollapseTarget(middle): expected error, got nil")
	}
}
