package dferr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogCodes(t *testing.T) {
	cases := map[Kind]string{
		KindUniquenessExhausted: "DF-GEN-001",
		KindInvalidFieldConfig:  "DF-GEN-002",
		KindCountExceeded:       "DF-GEN-003",
		KindNoFieldsSelected:    "DF-GEN-004",
		KindEngineFailure:       "DF-GEN-005",
		KindInvalidDemographics: "DF-GEN-006",
		KindInvalidAgeRange:     "DF-GEN-007",
		KindInvalidLocation:     "DF-GEN-008",
		KindUnknown:             "DF-SYS-001",
	}
	for kind, code := range cases {
		assert.Equal(t, code, New(kind, "").Code())
	}
}

func TestErrorString(t *testing.T) {
	err := New(KindCountExceeded, "got 10001")
	assert.Equal(t, "[DF-GEN-003] record count outside allowed range: got 10001", err.Error())

	bare := New(KindNoFieldsSelected, "")
	assert.Equal(t, "[DF-GEN-004] no fields selected for generation", bare.Error())
}

func TestNewf(t *testing.T) {
	err := Newf(KindInvalidFieldConfig, "field %q: %s", "user_id", "duplicate name")
	assert.Contains(t, err.Error(), `field "user_id": duplicate name`)
}

func TestWrapAndUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(KindEngineFailure, cause)
	require.NotNil(t, err)
	assert.Equal(t, cause, errors.Unwrap(err))
	assert.True(t, errors.Is(err, cause))

	// Wrapping through fmt.Errorf keeps the classification reachable.
	outer := fmt.Errorf("generate: %w", err)
	assert.True(t, IsKind(outer, KindEngineFailure))
	assert.Equal(t, KindEngineFailure, KindOf(outer))

	assert.Nil(t, Wrap(KindEngineFailure, nil))
}

func TestWith(t *testing.T) {
	err := New(KindUniquenessExhausted, "email").
		With("fieldName", "email").
		With("attempts", 100)
	assert.Equal(t, "email", err.Context["fieldName"])
	assert.Equal(t, 100, err.Context["attempts"])
}

func TestKindOfUnclassified(t *testing.T) {
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	assert.Equal(t, KindUnknown, KindOf(nil))
	assert.False(t, IsKind(errors.New("plain"), KindCountExceeded))
}

func TestIsValidation(t *testing.T) {
	validation := []Kind{
		KindCountExceeded, KindNoFieldsSelected, KindInvalidDemographics,
		KindInvalidAgeRange, KindInvalidLocation, KindInvalidFieldConfig,
	}
	for _, k := range validation {
		assert.True(t, IsValidation(New(k, "")), "kind %d", k)
	}
	assert.False(t, IsValidation(New(KindUniquenessExhausted, "")))
	assert.False(t, IsValidation(New(KindEngineFailure, "")))
	assert.False(t, IsValidation(errors.New("plain")))
}

func TestMetadataFields(t *testing.T) {
	err := New(KindUniquenessExhausted, "")
	assert.Equal(t, "MEDIUM", err.Severity())
	assert.NotEmpty(t, err.UserMessage())
	assert.NotEmpty(t, err.Resolution())

	// Unregistered kinds degrade to the unknown entry.
	weird := New(Kind(99), "")
	assert.Equal(t, "DF-SYS-001", weird.Code())
}
