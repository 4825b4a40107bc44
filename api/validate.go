package api

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/vijayleo46/portfolio-backend/errs"
)

// Single validator instance shared by every handler; the entity structs carry
// the schema in their `validate` tags.
var validate = validator.New()

// validateEntity runs tag-driven validation and converts the first failure
// into a field-keyed bad-request error.
func validateEntity(entity any) error {
	err := validate.Struct(entity)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return errs.NewBadRequestError("invalid payload")
	}

	first := fieldErrors[0]
	switch first.Tag() {
	case "required":
		return errs.NewMissingRequiredFieldError(first.Field())
	case "url":
		return errs.NewInvalidFieldError(first.Field(), "must be a well-formed URL")
	case "email":
		return errs.NewInvalidFieldError(first.Field(), "must be a well-formed email address")
	case "oneof":
		return errs.NewInvalidFieldError(first.Field(), fmt.Sprintf("must be one of: %s", first.Param()))
	default:
		return errs.NewInvalidFieldError(first.Field(), fmt.Sprintf("failed %s validation", first.Tag()))
	}
}
