package validator

import (
	"math"

	"github.com/go-playground/validator/v10"
)

func validateFiniteFloat(fl validator.FieldLevel) bool {
	value := fl.Field().Float()
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}

// validateEmbedding checks a whole float slice in one pass so DTOs do not
// need a dive rule per element.
func validateEmbedding(fl validator.FieldLevel) bool {
	values, ok := fl.Field().Interface().([]float64)
	if !ok {
		return false
	}
	if len(values) == 0 {
		return false
	}
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
