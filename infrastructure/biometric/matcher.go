package biometric

import (
	"errors"

	"facegate.io/infrastructure/biometric/types"
	"facegate.io/infrastructure/logger"
)

// Matcher finds the gallery entry closest to a probe embedding. The
// contract is interchangeable between the linear scanner and an indexed
// nearest-neighbor structure.
type Matcher interface {
	Match(probe []float64, gallery []types.GalleryEntry) types.MatchResult
}

// LinearMatcher scans every entry. O(gallery size), fine for small
// deployments.
type LinearMatcher struct{}

func (m *LinearMatcher) Match(probe []float64, gallery []types.GalleryEntry) types.MatchResult {
	result := types.MatchResult{}
	if len(gallery) == 0 {
		return result
	}

	for _, entry := range gallery {
		similarity, err := CosineSimilarity(probe, entry.Embedding)
		if err != nil {
			// skip but never treat a dimension mismatch as "no match"
			var mismatchErr *DimensionMismatchError
			if errors.As(err, &mismatchErr) {
				logger.Warning("skipping gallery entry with mismatched embedding length", logger.LoggerOptions{
					Key:  "identityID",
					Data: entry.IdentityID,
				}, logger.LoggerOptions{
					Key:  "error",
					Data: err,
				})
				continue
			}
			logger.Warning("skipping undecodable gallery entry", logger.LoggerOptions{
				Key:  "identityID",
				Data: entry.IdentityID,
			}, logger.LoggerOptions{
				Key:  "error",
				Data: err,
			})
			continue
		}
		result.ConsideredCount++
		// strict > keeps the first entry on a tie; gallery iteration
		// order is stable but otherwise implementation-defined
		if similarity > result.BestSimilarity {
			identityID := entry.IdentityID
			result.BestIdentityID = &identityID
			result.BestSimilarity = similarity
		}
	}
	return result
}
