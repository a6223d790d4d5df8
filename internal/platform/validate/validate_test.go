// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/strongly/internal/platform/apperr"
	"github.com/taibuivan/strongly/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "title", "Leg Day", false},
		{"empty_string", "name", "", true},
		{"whitespace_only", "name", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_Password checks the account password policy.
*/
func TestValidator_Password(t *testing.T) {
	tests := []struct {
		name     string
		password string
		isValid  bool
	}{
		{"valid", "Str0ng!Pass", true},
		{"too_short", "S0!a", false},
		{"too_long", "Aa1!" + strings.Repeat("x", 70), false},
		{"leading_space", " Str0ng!Pass", false},
		{"trailing_space", "Str0ng!Pass ", false},
		{"no_upper", "str0ng!pass", false},
		{"no_lower", "STR0NG!PASS", false},
		{"no_digit", "Strong!Pass", false},
		{"no_special", "Str0ngPass", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Password("password", tt.password)

			assert.Equal(t, !tt.isValid, v.Err() != nil)
		})
	}
}

/*
TestValidator_NonNegative accepts zero, which PATCH must be able to write.
*/
func TestValidator_NonNegative(t *testing.T) {
	v := &validate.Validator{}
	v.NonNegative("reps", 0).NonNegative("weight", 135.5)
	assert.NoError(t, v.Err())

	v.NonNegative("weight", -1)
	assert.Error(t, v.Err())
}

/*
TestValidator_Chain tests error accumulation across rules.
*/
func TestValidator_Chain(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("title", "").
		MaxLen("title", "abcdef", 3).
		NonNegative("reps", -1).
		Err()

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "Validation failed", ae.Message)
	assert.Len(t, ae.Details, 3)
}

func TestMissingField(t *testing.T) {
	ae := validate.MissingField("title")

	assert.Equal(t, "Missing 'title' in request body", ae.Message)
	require.Len(t, ae.Details, 1)
	assert.Equal(t, "title", ae.Details[0].Field)
}

func TestAtIndex(t *testing.T) {
	t.Run("prefixes fields in a batch", func(t *testing.T) {
		ae := apperr.As(validate.AtIndex(validate.MissingField("title"), 2, 3))
		require.NotNil(t, ae)
		assert.Equal(t, "Missing 'title' in request body", ae.Message)
		assert.Equal(t, "[2].title", ae.Details[0].Field)
	})

	t.Run("single item is untouched", func(t *testing.T) {
		ae := apperr.As(validate.AtIndex(validate.MissingField("title"), 0, 1))
		assert.Equal(t, "title", ae.Details[0].Field)
	})

	t.Run("non-validation errors pass through", func(t *testing.T) {
		notFound := apperr.NotFound("Workout")
		assert.Same(t, notFound, validate.AtIndex(notFound, 1, 2))
	})
}
