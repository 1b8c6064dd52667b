package biometric

import (
	"math"
	"testing"

	"facegate.io/infrastructure/biometric/types"
)

// wellFramedFace builds a full 468-point set that passes every quality
// heuristic: level eyes, centered nose, sensible width, flat depth.
func wellFramedFace() []types.LandmarkPoint {
	landmarks := make([]types.LandmarkPoint, 468)
	for i := range landmarks {
		landmarks[i] = types.LandmarkPoint{X: 0.5, Y: 0.5, Z: 0}
	}
	landmarks[LeftEyeCornerIndex] = types.LandmarkPoint{X: 0.35, Y: 0.45, Z: 0}
	landmarks[RightEyeCornerIndex] = types.LandmarkPoint{X: 0.65, Y: 0.45, Z: 0}
	landmarks[NoseTipIndex] = types.LandmarkPoint{X: 0.5, Y: 0.55, Z: 0}
	return landmarks
}

func TestScoreQualityDegenerateSets(t *testing.T) {
	tests := []struct {
		name      string
		landmarks []types.LandmarkPoint
	}{
		{name: "empty set", landmarks: []types.LandmarkPoint{}},
		{name: "set too short for anchors", landmarks: make([]types.LandmarkPoint, 100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScoreQuality(tt.landmarks); got != 0 {
				t.Errorf("ScoreQuality() = %f, want exactly 0", got)
			}
		})
	}
}

func TestScoreQualityWellFramedFace(t *testing.T) {
	if got := ScoreQuality(wellFramedFace()); got != 1.0 {
		t.Errorf("ScoreQuality() = %f, want 1.0", got)
	}
}

func TestScoreQualityPenalties(t *testing.T) {
	tests := []struct {
		name   string
		mutate func([]types.LandmarkPoint)
		want   float64
	}{
		{
			name: "tilted face attenuates by 0.8",
			mutate: func(landmarks []types.LandmarkPoint) {
				landmarks[RightEyeCornerIndex].Y = 0.55
			},
			want: 0.8,
		},
		{
			name: "turned face attenuates by 0.7",
			mutate: func(landmarks []types.LandmarkPoint) {
				landmarks[NoseTipIndex].X = 0.62
			},
			want: 0.7,
		},
		{
			name: "face too far attenuates by 0.6",
			mutate: func(landmarks []types.LandmarkPoint) {
				landmarks[LeftEyeCornerIndex].X = 0.47
				landmarks[RightEyeCornerIndex].X = 0.53
			},
			want: 0.6,
		},
		{
			name: "face too close attenuates by 0.6",
			mutate: func(landmarks []types.LandmarkPoint) {
				landmarks[LeftEyeCornerIndex].X = 0.2
				landmarks[RightEyeCornerIndex].X = 0.8
			},
			want: 0.6,
		},
		{
			name: "excessive depth attenuates by 0.8",
			mutate: func(landmarks []types.LandmarkPoint) {
				for i := range landmarks {
					landmarks[i].Z = 0.2
				}
			},
			want: 0.8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			landmarks := wellFramedFace()
			tt.mutate(landmarks)
			got := ScoreQuality(landmarks)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ScoreQuality() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestScoreQualityAlwaysInRange(t *testing.T) {
	landmarks := wellFramedFace()
	landmarks[RightEyeCornerIndex] = types.LandmarkPoint{X: 0.95, Y: 0.9, Z: 0.4}
	landmarks[NoseTipIndex] = types.LandmarkPoint{X: 0.05, Y: 0.1, Z: -0.4}
	for i := range landmarks {
		landmarks[i].Z = 0.9
	}
	got := ScoreQuality(landmarks)
	if got < 0 || got > 1 {
		t.Errorf("ScoreQuality() = %f, want value in [0,1]", got)
	}
}
