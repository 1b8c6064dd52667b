package biometric

import (
	"testing"

	"facegate.io/application/utils"
	"facegate.io/infrastructure/biometric/types"
)

func TestDecide(t *testing.T) {
	threshold := 0.80
	tests := []struct {
		name              string
		result            types.MatchResult
		wantAuthenticated bool
		wantIdentity      *string
	}{
		{
			name: "similarity above threshold authenticates",
			result: types.MatchResult{
				BestIdentityID:  utils.GetStringPointer("identity-a"),
				BestSimilarity:  0.9,
				ConsideredCount: 2,
			},
			wantAuthenticated: true,
			wantIdentity:      utils.GetStringPointer("identity-a"),
		},
		{
			name: "similarity exactly at threshold authenticates",
			result: types.MatchResult{
				BestIdentityID:  utils.GetStringPointer("identity-a"),
				BestSimilarity:  0.80,
				ConsideredCount: 1,
			},
			wantAuthenticated: true,
			wantIdentity:      utils.GetStringPointer("identity-a"),
		},
		{
			name: "similarity just below threshold rejects",
			result: types.MatchResult{
				BestIdentityID:  utils.GetStringPointer("identity-a"),
				BestSimilarity:  0.79,
				ConsideredCount: 1,
			},
			wantAuthenticated: false,
			wantIdentity:      nil,
		},
		{
			name:              "empty gallery result rejects",
			result:            types.MatchResult{},
			wantAuthenticated: false,
			wantIdentity:      nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := Decide(tt.result, threshold)
			if decision.Authenticated != tt.wantAuthenticated {
				t.Errorf("Authenticated = %v, want %v", decision.Authenticated, tt.wantAuthenticated)
			}
			if decision.Threshold != threshold {
				t.Errorf("Threshold = %f, decision must always echo the threshold used", decision.Threshold)
			}
			if decision.Similarity != tt.result.BestSimilarity {
				t.Errorf("Similarity = %f, decision must always echo the similarity", decision.Similarity)
			}
			if tt.wantIdentity == nil && decision.IdentityID != nil {
				t.Errorf("IdentityID = %v, want nil on rejection", *decision.IdentityID)
			}
			if tt.wantIdentity != nil && (decision.IdentityID == nil || *decision.IdentityID != *tt.wantIdentity) {
				t.Errorf("IdentityID = %v, want %v", decision.IdentityID, *tt.wantIdentity)
			}
		})
	}
}
