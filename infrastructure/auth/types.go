package auth

type ClaimsData struct {
	IdentityID string
	Similarity float64
	UserAgent  string
	IssuedAt   int64
	ExpiresAt  int64
}
