package types

// LandmarkPoint is one detector output point in normalized image-relative
// coordinates. Z defaults to 0 for 2-D detectors.
type LandmarkPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// GalleryEntry is the matcher's view of one enrolled identity.
type GalleryEntry struct {
	IdentityID          string
	Embedding           []float64
	QualityAtEnrollment float64
}

type MatchResult struct {
	BestIdentityID  *string `json:"bestIdentityID"`
	BestSimilarity  float64 `json:"bestSimilarity"`
	ConsideredCount int     `json:"consideredCount"`
}

type AuthDecision struct {
	Authenticated bool    `json:"authenticated"`
	IdentityID    *string `json:"identityID"`
	Similarity    float64 `json:"similarity"`
	Threshold     float64 `json:"threshold"`
}
