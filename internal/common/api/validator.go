package api

import "github.com/go-playground/validator/v10"

// NewValidator builds the single validator instance shared by all
// controllers.
func NewValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}
