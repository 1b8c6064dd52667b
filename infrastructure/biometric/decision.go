package biometric

import (
	"facegate.io/infrastructure/biometric/types"
)

// Decide applies the fixed threshold to a match result. The similarity
// and threshold are always echoed so callers can render "how close"
// feedback even on a rejection.
func Decide(result types.MatchResult, threshold float64) types.AuthDecision {
	decision := types.AuthDecision{
		Similarity: result.BestSimilarity,
		Threshold:  threshold,
	}
	if result.BestSimilarity >= threshold && result.BestIdentityID != nil {
		decision.Authenticated = true
		decision.IdentityID = result.BestIdentityID
	}
	return decision
}
