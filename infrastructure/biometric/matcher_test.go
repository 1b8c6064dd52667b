package biometric

import (
	"math"
	"testing"

	"facegate.io/infrastructure/biometric/types"
)

// vectorWithCosine builds a 2-D unit vector whose cosine similarity to
// (1, 0) is exactly the given value.
func vectorWithCosine(cosine float64) []float64 {
	return []float64{cosine, math.Sqrt(1 - cosine*cosine)}
}

func TestLinearMatcherEmptyGallery(t *testing.T) {
	matcher := &LinearMatcher{}
	result := matcher.Match([]float64{1, 0}, []types.GalleryEntry{})
	if result.BestIdentityID != nil {
		t.Errorf("BestIdentityID = %v, want nil", *result.BestIdentityID)
	}
	if result.BestSimilarity != 0 {
		t.Errorf("BestSimilarity = %f, want 0", result.BestSimilarity)
	}
	if result.ConsideredCount != 0 {
		t.Errorf("ConsideredCount = %d, want 0", result.ConsideredCount)
	}
}

func TestLinearMatcherIdenticalEmbedding(t *testing.T) {
	probe := []float64{0.2, -0.4, 0.6, 0.8}
	matcher := &LinearMatcher{}
	result := matcher.Match(probe, []types.GalleryEntry{
		{IdentityID: "identity-a", Embedding: []float64{1, 0, 0, 0}},
		{IdentityID: "identity-b", Embedding: append([]float64{}, probe...)},
	})
	if result.BestIdentityID == nil || *result.BestIdentityID != "identity-b" {
		t.Fatalf("BestIdentityID = %v, want identity-b", result.BestIdentityID)
	}
	if math.Abs(result.BestSimilarity-1.0) > 1e-9 {
		t.Errorf("BestSimilarity = %f, want 1.0", result.BestSimilarity)
	}
	if result.ConsideredCount != 2 {
		t.Errorf("ConsideredCount = %d, want 2", result.ConsideredCount)
	}
}

func TestLinearMatcherPicksHighestSimilarity(t *testing.T) {
	probe := []float64{1, 0}
	matcher := &LinearMatcher{}
	result := matcher.Match(probe, []types.GalleryEntry{
		{IdentityID: "half", Embedding: vectorWithCosine(0.5)},
		{IdentityID: "nine-tenths", Embedding: vectorWithCosine(0.9)},
	})
	if result.BestIdentityID == nil || *result.BestIdentityID != "nine-tenths" {
		t.Fatalf("BestIdentityID = %v, want nine-tenths", result.BestIdentityID)
	}
	if math.Abs(result.BestSimilarity-0.9) > 1e-9 {
		t.Errorf("BestSimilarity = %f, want 0.9", result.BestSimilarity)
	}
}

func TestLinearMatcherFirstEntryWinsOnTie(t *testing.T) {
	probe := []float64{1, 0}
	matcher := &LinearMatcher{}
	result := matcher.Match(probe, []types.GalleryEntry{
		{IdentityID: "first", Embedding: vectorWithCosine(0.85)},
		{IdentityID: "second", Embedding: vectorWithCosine(0.85)},
	})
	if result.BestIdentityID == nil || *result.BestIdentityID != "first" {
		t.Fatalf("BestIdentityID = %v, want first (tie keeps first encountered)", result.BestIdentityID)
	}
}

func TestLinearMatcherSkipsMismatchedLengths(t *testing.T) {
	probe := []float64{1, 0}
	matcher := &LinearMatcher{}
	result := matcher.Match(probe, []types.GalleryEntry{
		{IdentityID: "wrong-length", Embedding: []float64{1, 0, 0}},
		{IdentityID: "valid", Embedding: vectorWithCosine(0.7)},
	})
	if result.ConsideredCount != 1 {
		t.Errorf("ConsideredCount = %d, want 1 (mismatched entry excluded)", result.ConsideredCount)
	}
	if result.BestIdentityID == nil || *result.BestIdentityID != "valid" {
		t.Fatalf("BestIdentityID = %v, want valid", result.BestIdentityID)
	}
}

func TestIndexedMatcherAgreesWithLinearScan(t *testing.T) {
	probe := []float64{1, 0}
	gallery := []types.GalleryEntry{
		{IdentityID: "half", Embedding: vectorWithCosine(0.5)},
		{IdentityID: "nine-tenths", Embedding: vectorWithCosine(0.9)},
		{IdentityID: "quarter", Embedding: vectorWithCosine(0.25)},
	}

	linear := (&LinearMatcher{}).Match(probe, gallery)
	indexed := NewIndexedMatcher().Match(probe, gallery)

	if indexed.BestIdentityID == nil || linear.BestIdentityID == nil {
		t.Fatal("both matchers should find a best entry")
	}
	if *indexed.BestIdentityID != *linear.BestIdentityID {
		t.Errorf("indexed best = %s, linear best = %s", *indexed.BestIdentityID, *linear.BestIdentityID)
	}
	if math.Abs(indexed.BestSimilarity-linear.BestSimilarity) > 1e-6 {
		t.Errorf("indexed similarity = %f, linear similarity = %f", indexed.BestSimilarity, linear.BestSimilarity)
	}
}

func TestIndexedMatcherEmptyGallery(t *testing.T) {
	result := NewIndexedMatcher().Match([]float64{1, 0}, []types.GalleryEntry{})
	if result.BestIdentityID != nil {
		t.Errorf("BestIdentityID = %v, want nil", *result.BestIdentityID)
	}
	if result.BestSimilarity != 0 || result.ConsideredCount != 0 {
		t.Errorf("result = %+v, want zero value besides nil identity", result)
	}
}
