package face

import (
	"errors"
	"math"
	"testing"
)

func TestEmbeddingValidate(t *testing.T) {
	if err := make(Embedding, Dim).Validate(); err != nil {
		t.Fatalf("unexpected error for %d components: %v", Dim, err)
	}
	for _, n := range []int{0, Dim - 1, Dim + 1, Dim * 2} {
		if err := make(Embedding, n).Validate(); !errors.Is(err, ErrDimensionMismatch) {
			t.Fatalf("%d components: expected ErrDimensionMismatch, got %v", n, err)
		}
	}
}

func TestDistance(t *testing.T) {
	a := make(Embedding, Dim)
	b := make(Embedding, Dim)
	a[0], a[1] = 3, 4

	if d := Distance(a, b); math.Abs(d-5) > 1e-9 {
		t.Fatalf("expected distance 5, got %f", d)
	}
	if d := Distance(a, a); d != 0 {
		t.Fatalf("expected zero distance to self, got %f", d)
	}
}

func TestNearestDistancePicksMinimum(t *testing.T) {
	probe := make(Embedding, Dim)
	far := make(Embedding, Dim)
	near := make(Embedding, Dim)
	far[0] = 0.9
	near[0] = 0.2

	got := NearestDistance([]Embedding{far, near, far}, probe)
	if math.Abs(got-0.2) > 1e-6 {
		t.Fatalf("expected nearest distance 0.2, got %f", got)
	}
}

func TestNearestDistanceEmpty(t *testing.T) {
	if got := NearestDistance(nil, make(Embedding, Dim)); !math.IsInf(got, 1) {
		t.Fatalf("expected +Inf for empty set, got %f", got)
	}
}
