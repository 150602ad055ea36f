package hull

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/coin-lab/paretoviz/internal/pointset"
)

var square = pointset.Cloud{
	{0, 0}, {1, 0}, {1, 1}, {0, 1},
}

func TestChain2D_Square(t *testing.T) {
	got, err := Chain2D{}.Vertices(square, square.AllIndices())
	if err != nil {
		t.Fatalf("Vertices: %v", err)
	}
	want := []int{0, 1, 2, 3}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("vertices mismatch (-want +got):\n%s", diff)
	}
}

func TestChain2D_InteriorPointExcluded(t *testing.T) {
	cloud := append(square.Clone(), []float64{0.5, 0.5})
	got, err := Chain2D{}.Vertices(cloud, cloud.AllIndices())
	if err != nil {
		t.Fatalf("Vertices: %v", err)
	}
	want := []int{0, 1, 2, 3}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("vertices mismatch (-want +got):\n%s", diff)
	}
}

func TestChain2D_EdgeMidpointNotAVertex(t *testing.T) {
	// A point on the interior of a hull edge is not an extreme point and
	// must not be selected.
	cloud := append(square.Clone(), []float64{0.5, 0})
	got, err := Chain2D{}.Vertices(cloud, cloud.AllIndices())
	if err != nil {
		t.Fatalf("Vertices: %v", err)
	}
	want := []int{0, 1, 2, 3}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("vertices mismatch (-want +got):\n%s", diff)
	}
}

func TestChain2D_CollinearDegenerate(t *testing.T) {
	cloud := pointset.Cloud{{0, 0}, {1, 1}, {2, 2}, {3, 3}, {4, 4}}
	_, err := Chain2D{}.Vertices(cloud, cloud.AllIndices())
	if !errors.Is(err, ErrDegenerate) {
		t.Errorf("err = %v, want ErrDegenerate", err)
	}
}

func TestChain2D_TooFewPoints(t *testing.T) {
	_, err := Chain2D{}.Vertices(square, []int{0, 1, 2})
	if !errors.Is(err, ErrDegenerate) {
		t.Errorf("err = %v, want ErrDegenerate", err)
	}
}

func TestChain2D_ActiveSubset(t *testing.T) {
	// Only the active indices participate; returned indices are original.
	cloud := pointset.Cloud{
		{9, 9}, // 0: excluded from the active set
		{0, 0}, // 1
		{2, 0}, // 2
		{2, 2}, // 3
		{0, 2}, // 4
		{1, 1}, // 5: interior
	}
	got, err := Chain2D{}.Vertices(cloud, []int{1, 2, 3, 4, 5})
	if err != nil {
		t.Fatalf("Vertices: %v", err)
	}
	want := []int{1, 2, 3, 4}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("vertices mismatch (-want +got):\n%s", diff)
	}
}

func TestLPFinder_SquareMatchesChain(t *testing.T) {
	cloud := append(square.Clone(), []float64{0.5, 0.5})
	lpGot, err := (&LPFinder{}).Vertices(cloud, cloud.AllIndices())
	if err != nil {
		t.Fatalf("LPFinder: %v", err)
	}
	chainGot, err := Chain2D{}.Vertices(cloud, cloud.AllIndices())
	if err != nil {
		t.Fatalf("Chain2D: %v", err)
	}
	if diff := cmp.Diff(chainGot, lpGot); diff != "" {
		t.Errorf("finder disagreement (-chain +lp):\n%s", diff)
	}
}

func TestLPFinder_CubeWithCenter(t *testing.T) {
	cloud := pointset.Cloud{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1},
		{1, 1, 0}, {1, 0, 1}, {0, 1, 1}, {1, 1, 1},
		{0.5, 0.5, 0.5},
	}
	got, err := (&LPFinder{}).Vertices(cloud, cloud.AllIndices())
	if err != nil {
		t.Fatalf("Vertices: %v", err)
	}
	want := []int{0, 1, 2, 3, 4, 5, 6, 7}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("vertices mismatch (-want +got):\n%s", diff)
	}
}

func TestLPFinder_CoplanarDegenerate(t *testing.T) {
	// Six points on the z=0 plane inside a 3D embedding: not in general
	// position, no hull.
	cloud := pointset.Cloud{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0},
		{1, 1, 0}, {2, 1, 0}, {1, 2, 0},
	}
	_, err := (&LPFinder{}).Vertices(cloud, cloud.AllIndices())
	if !errors.Is(err, ErrDegenerate) {
		t.Errorf("err = %v, want ErrDegenerate", err)
	}
}

func TestLPFinder_TooFewPoints(t *testing.T) {
	cloud := pointset.Cloud{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1},
	}
	_, err := (&LPFinder{}).Vertices(cloud, cloud.AllIndices())
	if !errors.Is(err, ErrDegenerate) {
		t.Errorf("err = %v, want ErrDegenerate", err)
	}
}

func TestNewFinder(t *testing.T) {
	if _, ok := NewFinder(2).(Chain2D); !ok {
		t.Errorf("NewFinder(2) = %T, want Chain2D", NewFinder(2))
	}
	if _, ok := NewFinder(3).(*LPFinder); !ok {
		t.Errorf("NewFinder(3) = %T, want *LPFinder", NewFinder(3))
	}
}
