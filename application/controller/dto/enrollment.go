package dto

// EnrollmentDTO is the captured frame a client submits for enrollment.
// The embedding length is pinned to the key-point schema and quality is
// the client-computed capture score, re-gated server side.
type EnrollmentDTO struct {
	IdentityID string    `json:"identityID" validate:"required"`
	Embedding  []float64 `json:"embedding" validate:"required,embedding"`
	Quality    float64   `json:"quality" validate:"gte=0,lte=1"`
}

type EnrollmentResponse struct {
	EnrollmentID string `json:"enrollmentID"`
}
