// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/tpnlocations/internal/platform/apperr"
	"github.com/taibuivan/tpnlocations/internal/platform/validate"
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
		{"valid_string", "name", "Grace Field House", false},
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
				assert.Equal(t, apperr.CodeValidation, ae.Code)
				assert.Equal(t, http.StatusUnprocessableEntity, ae.HTTPStatus)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_URL checks the image URL validation rule.
*/
func TestValidator_URL(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		isValid bool
	}{
		{"https", "https://example.com/gfh.png", true},
		{"http", "http://example.com/gfh.png", true},
		{"relative", "/images/gfh.png", false},
		{"ftp", "ftp://example.com/gfh.png", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.URL("img", tt.value)
			assert.Equal(t, !tt.isValid, v.Err() != nil)
		})
	}
}

/*
TestValidator_MaxLen counts runes rather than bytes.
*/
func TestValidator_MaxLen(t *testing.T) {
	v := &validate.Validator{}
	assert.NoError(t, v.MaxLen("name", "グレイス=フィールド", 10).Err())
	assert.Error(t, v.MaxLen("name", "グレイス=フィールドハウス", 10).Err())
}

/*
TestValidator_Positive rejects zero and negative identifiers.
*/
func TestValidator_Positive(t *testing.T) {
	assert.NoError(t, (&validate.Validator{}).Positive("id", 1).Err())
	assert.Error(t, (&validate.Validator{}).Positive("id", 0).Err())
	assert.Error(t, (&validate.Validator{}).Positive("id", -4).Err())
}

/*
TestValidator_Chain tests the fluent API (chaining multiple rules).
*/
func TestValidator_Chain(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("name", "Goldy Pond").
		MaxLen("name", "Goldy Pond", 200).
		URL("img", "https://tpn-locations.example/img/goldy-pond.png").
		Err()

	assert.NoError(t, err)
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("name", "").
		Required("world", " ").
		URL("img", "not-a-url").
		Custom("name", false, "never reported").
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)

	// Should accumulate all 3 errors
	assert.Len(t, ae.Details, 3)
}
