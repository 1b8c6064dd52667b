package biometric

import (
	"fmt"
	"math"
)

// DimensionMismatchError signals that two embeddings of different lengths
// were compared. This is a protocol error, never a soft "no match".
type DimensionMismatchError struct {
	LenA int
	LenB int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("embedding dimension mismatch: %d != %d", e.LenA, e.LenB)
}

// CosineSimilarity returns dot(a,b) / (|a|*|b|). A zero-magnitude vector
// has no direction to compare, so its similarity is defined as 0.
func CosineSimilarity(a []float64, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, &DimensionMismatchError{LenA: len(a), LenB: len(b)}
	}

	var dot, magA, magB float64
	for i := range a {
		dot += a[i] * b[i]
		magA += a[i] * a[i]
		magB += b[i] * b[i]
	}
	if magA == 0 || magB == 0 {
		return 0, nil
	}
	return dot / (math.Sqrt(magA) * math.Sqrt(magB)), nil
}
