// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate provides a chainable Validator that collects field-level
// errors before returning a single [apperr.AppError].
//
// # Architecture
//
// Handlers use it for payload shape (required fields), services for domain
// rules (ranges, password strength). Storage never validates.
package validate

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/taibuivan/strongly/internal/platform/apperr"
)

var (
	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = apperr.ValidationError("Invalid JSON payload")

	// ErrEmptyBatch is returned for an array body without elements.
	ErrEmptyBatch = apperr.ValidationError("Request body must contain at least one item")
)

// Password length bounds. bcrypt ignores everything past 72 bytes.
const (
	PasswordMinLen = 8
	PasswordMaxLen = 72
)

// Validator collects field-level validation errors via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every request/operation.
type Validator struct {
	errs []apperr.FieldError
}

// Required fails if the trimmed value is empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.add(field, "This field is required")
	}
	return v
}

// MaxLen fails if the Unicode character count exceeds max.
func (v *Validator) MaxLen(field, value string, max int) *Validator {
	if utf8.RuneCountInString(value) > max {
		v.add(field, fmt.Sprintf("Maximum %d characters", max))
	}
	return v
}

// NonNegative fails if the value is below zero.
func (v *Validator) NonNegative(field string, value float64) *Validator {
	if value < 0 {
		v.add(field, "Must not be negative")
	}
	return v
}

// Password enforces the account password policy.
//
// # Policy
//
// 8 to 72 characters, no leading or trailing whitespace, and at least one
// upper case letter, lower case letter, digit and special character.
func (v *Validator) Password(field, value string) *Validator {
	length := len(value)
	switch {
	case length < PasswordMinLen:
		v.add(field, fmt.Sprintf("Password must be longer than %d characters", PasswordMinLen-1))
		return v
	case length > PasswordMaxLen:
		v.add(field, fmt.Sprintf("Password must be less than %d characters", PasswordMaxLen+1))
		return v
	case strings.TrimSpace(value) != value:
		v.add(field, "Password must not start or end with empty spaces")
		return v
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range value {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	if !hasUpper || !hasLower || !hasDigit || !hasSpecial {
		v.add(field, "Password must contain 1 upper case, lower case, number and special character")
	}
	return v
}

// Custom adds a failure with a custom message if the condition is true.
//
// # Example
//
//	v.Custom("workout_id", set.WorkoutID != exercise.WorkoutID, "Must match the exercise's workout")
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if failed {
		v.add(field, message)
	}
	return v
}

// Err returns a [apperr.AppError] (VALIDATION_ERROR) if any rules failed,
// or nil if all rules passed.
//
// This is the only output method; call it at the end of the chain.
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

// RequiredError is a shortcut to create a single-field validation error.
func RequiredError(field, message string) *apperr.AppError {
	return apperr.ValidationError("Validation failed", apperr.FieldError{
		Field:   field,
		Message: message,
	})
}

// AtIndex prefixes every field name in a validation error with the item's
// position ("[2].title") so bulk bodies point at the offending element.
// Single-item bodies (total == 1) and non-validation errors pass through.
func AtIndex(err error, index, total int) error {
	appErr := apperr.As(err)
	if appErr == nil || appErr.Code != apperr.CodeValidation || total == 1 {
		return err
	}

	details := make([]apperr.FieldError, len(appErr.Details))
	for i, detail := range appErr.Details {
		details[i] = apperr.FieldError{Field: fmt.Sprintf("[%d].%s", index, detail.Field), Message: detail.Message}
	}
	return apperr.ValidationError(appErr.Message, details...)
}

// MissingField is the error for a required body field that was not sent at all.
func MissingField(field string) *apperr.AppError {
	return apperr.ValidationError(
		fmt.Sprintf("Missing '%s' in request body", field),
		apperr.FieldError{Field: field, Message: "This field is required"},
	)
}
