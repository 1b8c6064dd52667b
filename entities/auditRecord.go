package entities

import (
	"time"

	"facegate.io/application/utils"
)

// AuditRecord captures exactly one authentication decision, success or
// failure, including the empty-gallery case.
type AuditRecord struct {
	IdentityID    *string `bson:"identityID" json:"identityID"`
	Authenticated bool    `bson:"authenticated" json:"authenticated"`
	Similarity    float64 `bson:"similarity" json:"similarity"`
	Threshold     float64 `bson:"threshold" json:"threshold"`
	ClientKey     string  `bson:"clientKey" json:"clientKey"`

	ID        string    `bson:"_id" json:"id"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

func (model AuditRecord) ParseModel() any {
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
