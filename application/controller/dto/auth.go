package dto

// AuthenticateDTO carries the probe embedding for a 1:N match.
type AuthenticateDTO struct {
	Embedding []float64 `json:"embedding" validate:"required,embedding"`
}

type AuthenticateResponse struct {
	Authenticated bool    `json:"authenticated"`
	IdentityID    *string `json:"identityID"`
	Similarity    float64 `json:"similarity"`
	Threshold     float64 `json:"threshold"`
	SessionToken  *string `json:"sessionToken,omitempty"`
}
