package dto

import (
	biometric_types "facegate.io/infrastructure/biometric/types"
)

// CaptureScoreDTO carries one detector frame's landmark set so clients
// without a local pipeline can have it scored and normalized server side.
type CaptureScoreDTO struct {
	Landmarks []biometric_types.LandmarkPoint `json:"landmarks" validate:"required,min=1"`
}

type CaptureScoreResponse struct {
	Quality         float64   `json:"quality"`
	Embedding       []float64 `json:"embedding"`
	EmbeddingLength int       `json:"embeddingLength"`
	EnrollmentReady bool      `json:"enrollmentReady"`
}
