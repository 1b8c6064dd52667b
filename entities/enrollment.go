package entities

import (
	"time"

	"facegate.io/application/utils"
)

// Enrollment is one identity's gallery entry. The unique index on
// identityID makes a racing double-enrollment fail at the storage layer.
type Enrollment struct {
	IdentityID          string    `bson:"identityID" json:"identityID"`
	Embedding           []float64 `bson:"embedding" json:"embedding"`
	QualityAtEnrollment float64   `bson:"qualityAtEnrollment" json:"qualityAtEnrollment"`
	ClientKey           string    `bson:"clientKey" json:"clientKey"`

	ID        string    `bson:"_id" json:"id"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

func (model Enrollment) ParseModel() any {
	now := time.Now()
	if model.CreatedAt.IsZero() {
		model.CreatedAt = now
		if model.ID == "" {
			model.ID = utils.GenerateUULDString()
		}
	}
	model.UpdatedAt = now
	return &model
}
