package validator

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func init() {
	validate.RegisterValidation("finite", validateFiniteFloat)
	validate.RegisterValidation("embedding", validateEmbedding)
}

type Validator struct{}

func (v *Validator) ValidateStruct(payload interface{}) *[]error {
	return validateStruct(payload)
}

func (v *Validator) ValidateValue(value any, rules string) error {
	return validateField(value, rules)
}

var ValidatorInstance = Validator{}

func validateStruct(payload interface{}) *[]error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		errs := []error{err}
		return &errs
	}
	errs := []error{}
	for _, fieldErr := range validationErrs {
		errs = append(errs, errors.New(translateFieldError(fieldErr)))
	}
	return &errs
}

func validateField(value any, rules string) error {
	return validate.Var(value, rules)
}

func translateFieldError(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fieldErr.Field())
	case "min":
		return fmt.Sprintf("%s must have at least %s items or characters", fieldErr.Field(), fieldErr.Param())
	case "max":
		return fmt.Sprintf("%s must have at most %s items or characters", fieldErr.Field(), fieldErr.Param())
	case "len":
		return fmt.Sprintf("%s must have a length of exactly %s", fieldErr.Field(), fieldErr.Param())
	case "gte":
		return fmt.Sprintf("%s must be %s or more", fieldErr.Field(), fieldErr.Param())
	case "lte":
		return fmt.Sprintf("%s must be %s or less", fieldErr.Field(), fieldErr.Param())
	case "finite":
		return fmt.Sprintf("%s must contain only finite numbers", fieldErr.Field())
	case "embedding":
		return fmt.Sprintf("%s must be a fixed-length vector of finite numbers", fieldErr.Field())
	default:
		return fmt.Sprintf("%s failed validation for rule %s", fieldErr.Field(), fieldErr.Tag())
	}
}
