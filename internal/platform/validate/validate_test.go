// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/pokereview/internal/platform/apperr"
	"github.com/taibuivan/pokereview/internal/platform/validate"
)

type sampleInput struct {
	Name  string `json:"name" validate:"required,max=10"`
	Title string `json:"title,omitempty" validate:"max=5"`
}

/*
TestStruct_Rules tests tag-driven validation and JSON field naming.
*/
func TestStruct_Rules(t *testing.T) {
	tests := []struct {
		name      string
		input     sampleInput
		hasError  bool
		badFields []string
	}{
		{"valid", sampleInput{Name: "Pikachu"}, false, nil},
		{"missing_name", sampleInput{}, true, []string{"name"}},
		{"too_long", sampleInput{Name: "Charmander-X", Title: "abcdef"}, true, []string{"name", "title"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.input)

			if !tt.hasError {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)

			fields := make([]string, 0, len(ae.Details))
			for _, detail := range ae.Details {
				fields = append(fields, detail.Field)
			}
			assert.ElementsMatch(t, tt.badFields, fields)
		})
	}
}

/*
TestValidator_Chain tests the fluent API (chaining multiple rules).
*/
func TestValidator_Chain(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Positive("ownerId", 1).
		Custom("id", false, "Must match").
		Err()

	assert.NoError(t, err)
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Positive("ownerId", 0).         // Fails
		Positive("catId", -3).          // Fails
		Custom("id", true, "Mismatch"). // Fails
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)

	// Should accumulate all 3 errors
	assert.Len(t, ae.Details, 3)
	assert.Equal(t, "ownerId", ae.Details[0].Field)
}

func TestSameName(t *testing.T) {
	assert.True(t, validate.SameName("Pikachu", "  pikachu "))
	assert.True(t, validate.SameName("ÉCLAIR", "éclair"))
	assert.False(t, validate.SameName("Pikachu", "Raichu"))
}

func TestContainsName(t *testing.T) {
	names := []string{"Fire", "Water"}
	identity := func(s string) string { return s }

	assert.True(t, validate.ContainsName(names, " water", identity))
	assert.False(t, validate.ContainsName(names, "Grass", identity))
	assert.False(t, validate.ContainsName(nil, "Grass", identity))
}

type stubChecker struct {
	ids map[int]bool
	err error
}

func (s stubChecker) Exists(_ context.Context, id int) (bool, error) {
	return s.ids[id], s.err
}

func TestFound(t *testing.T) {
	ctx := context.Background()
	checker := stubChecker{ids: map[int]bool{1: true}}

	require.NoError(t, validate.Found(ctx, checker, 1, "Owner"))

	err := validate.Found(ctx, checker, 2, "Owner")
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPStatus)
	assert.Equal(t, "Owner not found!", appErr.Message)

	err = validate.Found(ctx, stubChecker{err: errors.New("boom")}, 1, "Owner")
	appErr = apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPStatus)
}
