package biometric

import (
	"math"

	"facegate.io/infrastructure/biometric/types"
)

// ScoreQuality grades how usable a captured landmark set is for
// enrollment or matching. Each heuristic attenuates the score
// independently so the capturing client gets smooth feedback instead of
// hard cutoffs. Returns 0 for an empty set or one missing the anchors.
func ScoreQuality(landmarks []types.LandmarkPoint) float64 {
	if len(landmarks) == 0 {
		return 0
	}
	if len(landmarks) <= RightEyeCornerIndex {
		return 0
	}

	nose := landmarks[NoseTipIndex]
	leftEye := landmarks[LeftEyeCornerIndex]
	rightEye := landmarks[RightEyeCornerIndex]

	score := 1.0

	// face not level
	if math.Abs(leftEye.Y-rightEye.Y) > 0.05 {
		score *= 0.8
	}

	// face turned sideways
	eyeCenterX := (leftEye.X + rightEye.X) / 2
	if math.Abs(nose.X-eyeCenterX) > 0.05 {
		score *= 0.7
	}

	// too far from or too close to the camera
	faceWidth := math.Abs(leftEye.X - rightEye.X)
	if faceWidth < 0.1 || faceWidth > 0.5 {
		score *= 0.6
	}

	// excessive depth variation, e.g. an extreme angle
	var zSum float64
	for _, point := range landmarks {
		zSum += point.Z
	}
	avgZ := zSum / float64(len(landmarks))
	if math.Abs(avgZ) > 0.1 {
		score *= 0.8
	}

	return math.Max(0, math.Min(1, score))
}
