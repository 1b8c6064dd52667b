package biometric

import (
	"math"

	"facegate.io/infrastructure/biometric/types"
)

// NormalizeLandmarks flattens the schema-selected landmarks into an
// embedding and z-scores the whole vector with a single mean and
// population standard deviation. Indices outside the landmark set are
// dropped, shrinking the embedding instead of padding it; length
// mismatches are caught downstream as hard errors.
func NormalizeLandmarks(landmarks []types.LandmarkPoint, schema []int) []float64 {
	flattened := []float64{}
	for _, index := range dedupeIndices(schema) {
		if index < 0 || index >= len(landmarks) {
			continue
		}
		point := landmarks[index]
		flattened = append(flattened, point.X, point.Y, point.Z)
	}
	if len(flattened) == 0 {
		return flattened
	}

	var sum float64
	for _, v := range flattened {
		sum += v
	}
	mean := sum / float64(len(flattened))

	var variance float64
	for _, v := range flattened {
		variance += (v - mean) * (v - mean)
	}
	stdDev := math.Sqrt(variance / float64(len(flattened)))

	// constant input has no direction to scale, return it untouched
	if stdDev == 0 {
		return flattened
	}

	normalized := make([]float64, len(flattened))
	for i, v := range flattened {
		normalized[i] = (v - mean) / stdDev
	}
	return normalized
}

// dedupeIndices removes repeated schema indices keeping first-seen order,
// so the output length stays deterministic for a given schema.
func dedupeIndices(schema []int) []int {
	seen := map[int]bool{}
	deduped := []int{}
	for _, index := range schema {
		if seen[index] {
			continue
		}
		seen[index] = true
		deduped = append(deduped, index)
	}
	return deduped
}
