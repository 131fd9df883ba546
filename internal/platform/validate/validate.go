// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate collects field-level errors before returning a single
// [apperr.AppError].
//
// # Architecture
//
// Struct rules live on DTO `validate` tags and are checked by [Struct]
// (go-playground/validator). Guard rules that depend on request context,
// such as a path id matching the body id, use the chainable [Validator].
// This package is used in the service layer, never in storage.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/taibuivan/pokereview/internal/platform/apperr"
)

var (
	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = apperr.ValidationError("Invalid JSON payload")

	// ErrBodyRequired is returned when the request body is empty or JSON null.
	ErrBodyRequired = apperr.ValidationError("Request body is required")
)

var (
	structValidator     *validator.Validate
	structValidatorOnce sync.Once
)

// engine returns the shared validator instance, configured to report JSON field names.
func engine() *validator.Validate {
	structValidatorOnce.Do(func() {
		structValidator = validator.New(validator.WithRequiredStructEnabled())
		structValidator.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
			if name == "" || name == "-" {
				return field.Name
			}
			return name
		})
	})
	return structValidator
}

// Struct validates s against its `validate` tags.
//
// It returns a VALIDATION_ERROR [apperr.AppError] listing every failing field,
// or nil when all rules pass.
func Struct(s any) error {
	err := engine().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return apperr.Internal(err)
	}

	details := make([]apperr.FieldError, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		details = append(details, apperr.FieldError{
			Field:   fieldErr.Field(),
			Message: friendlyMessage(fieldErr),
		})
	}
	return apperr.ValidationError("Validation failed", details...)
}

// friendlyMessage renders a validator tag failure as a client-facing sentence.
func friendlyMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "This field is required"
	case "max":
		return fmt.Sprintf("Maximum %s characters", fieldErr.Param())
	case "min":
		return fmt.Sprintf("Minimum %s characters", fieldErr.Param())
	case "gte":
		return "Must be greater than or equal to " + fieldErr.Param()
	case "lte":
		return "Must be less than or equal to " + fieldErr.Param()
	case "oneof":
		return "Must be one of: " + fieldErr.Param()
	case "numeric":
		return "Must be numeric"
	default:
		return "Is invalid"
	}
}

// Validator collects field-level validation errors via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every request/operation.
type Validator struct {
	errs []apperr.FieldError
}

// Positive fails if value is zero or negative. Used for required numeric query ids.
func (v *Validator) Positive(field string, value int) *Validator {
	if value <= 0 {
		v.add(field, "Must be a positive identifier")
	}
	return v
}

// Custom adds a failure with a custom message if the condition is true.
//
// # Example
//
//	v.Custom("id", body.ID != pathID, "Must match the identifier in the path")
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if failed {
		v.add(field, message)
	}
	return v
}

// Err returns a [apperr.AppError] (VALIDATION_ERROR) if any rules failed,
// or nil if all rules passed.
//
// Call it at the end of the chain.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.ValidationError("Validation failed", v.errs...)
}

// add appends a [apperr.FieldError] to the internal slice.
func (v *Validator) add(field, message string) {
	v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
}
