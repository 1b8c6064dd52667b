package biometric

import (
	"errors"
	"math"
	"testing"
)

func TestCosineSimilaritySelfSimilarity(t *testing.T) {
	vectors := [][]float64{
		{1, 2, 3},
		{-0.5, 0.25, 0.75, -1},
		{0.001, 1000},
	}
	for _, vector := range vectors {
		got, err := CosineSimilarity(vector, vector)
		if err != nil {
			t.Fatalf("CosineSimilarity() unexpected error: %v", err)
		}
		if math.Abs(got-1.0) > 1e-9 {
			t.Errorf("self similarity = %f, want 1.0", got)
		}
	}
}

func TestCosineSimilaritySymmetry(t *testing.T) {
	a := []float64{0.3, -0.7, 0.2, 0.9}
	b := []float64{-0.1, 0.5, 0.8, 0.4}
	ab, err := CosineSimilarity(a, b)
	if err != nil {
		t.Fatalf("CosineSimilarity(a, b) unexpected error: %v", err)
	}
	ba, err := CosineSimilarity(b, a)
	if err != nil {
		t.Fatalf("CosineSimilarity(b, a) unexpected error: %v", err)
	}
	if ab != ba {
		t.Errorf("similarity is not symmetric: %f != %f", ab, ba)
	}
}

func TestCosineSimilarityDimensionMismatch(t *testing.T) {
	_, err := CosineSimilarity([]float64{1, 2, 3}, []float64{1, 2})
	if err == nil {
		t.Fatal("expected DimensionMismatchError, got nil")
	}
	var mismatchErr *DimensionMismatchError
	if !errors.As(err, &mismatchErr) {
		t.Fatalf("expected DimensionMismatchError, got %T", err)
	}
	if mismatchErr.LenA != 3 || mismatchErr.LenB != 2 {
		t.Errorf("mismatch lengths = (%d, %d), want (3, 2)", mismatchErr.LenA, mismatchErr.LenB)
	}
}

func TestCosineSimilarityZeroMagnitude(t *testing.T) {
	tests := []struct {
		name string
		a    []float64
		b    []float64
	}{
		{name: "first vector zero", a: []float64{0, 0, 0}, b: []float64{1, 2, 3}},
		{name: "second vector zero", a: []float64{1, 2, 3}, b: []float64{0, 0, 0}},
		{name: "both vectors zero", a: []float64{0, 0}, b: []float64{0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CosineSimilarity(tt.a, tt.b)
			if err != nil {
				t.Fatalf("CosineSimilarity() unexpected error: %v", err)
			}
			if got != 0 {
				t.Errorf("CosineSimilarity() = %f, want 0", got)
			}
		})
	}
}
