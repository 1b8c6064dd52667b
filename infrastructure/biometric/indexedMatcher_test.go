package biometric

import (
	"math"
	"testing"

	"facegate.io/infrastructure/biometric/types"
)

func TestIndexedMatcherRefreshesOnSameSizeGalleryChange(t *testing.T) {
	former := types.GalleryEntry{IdentityID: "identity-former", Embedding: []float64{1, 0, 0}}
	current := types.GalleryEntry{IdentityID: "identity-current", Embedding: []float64{0, 1, 0}}

	matcher := NewIndexedMatcher()
	matcher.Rebuild([]types.GalleryEntry{former}, 3)

	// the gallery lost former and gained current, keeping its size
	result := matcher.Match(current.Embedding, []types.GalleryEntry{current})
	if result.BestIdentityID == nil || *result.BestIdentityID != "identity-current" {
		t.Fatalf("BestIdentityID = %v, want identity-current", result.BestIdentityID)
	}
	if math.Abs(result.BestSimilarity-1.0) > 1e-9 {
		t.Errorf("BestSimilarity = %f, want 1.0", result.BestSimilarity)
	}

	// probing with former's embedding must not resurrect it either
	result = matcher.Match(former.Embedding, []types.GalleryEntry{current})
	if result.BestIdentityID != nil {
		t.Errorf("BestIdentityID = %v, want nil for an identity no longer enrolled", *result.BestIdentityID)
	}
}

func TestIndexedMatcherReusesIndexForUnchangedGallery(t *testing.T) {
	gallery := []types.GalleryEntry{
		{IdentityID: "identity-a", Embedding: vectorWithCosine(0.5)},
		{IdentityID: "identity-b", Embedding: vectorWithCosine(0.9)},
	}

	matcher := NewIndexedMatcher()
	matcher.Rebuild(gallery, 2)
	graphBefore := matcher.graph

	result := matcher.Match([]float64{1, 0}, gallery)
	if matcher.graph != graphBefore {
		t.Error("index was rebuilt for an unchanged gallery snapshot")
	}
	if result.BestIdentityID == nil || *result.BestIdentityID != "identity-b" {
		t.Fatalf("BestIdentityID = %v, want identity-b", result.BestIdentityID)
	}
	if result.ConsideredCount != 2 {
		t.Errorf("ConsideredCount = %d, want 2", result.ConsideredCount)
	}
}
