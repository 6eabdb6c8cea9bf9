package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *StandardError
		code     ErrorCode
		category string
		contains string
	}{
		{
			name:     "malformed input",
			err:      NewMalformedInputError("response", stderrors.New("unexpected end of JSON input")),
			code:     ErrCodeMalformedInput,
			category: "INPUT_ERROR",
			contains: "field: response",
		},
		{
			name:     "invalid date",
			err:      NewInvalidDateError("WHEN", "next spring", "YYYY-MM-DD"),
			code:     ErrCodeMalformedInput,
			category: "INPUT_ERROR",
			contains: `"next spring"`,
		},
		{
			name:     "extra field",
			err:      NewExtraFieldError("salary_generator_request", []string{"bonus", "notes"}),
			code:     ErrCodeExtraField,
			category: "SHAPE_ERROR",
			contains: "bonus, notes",
		},
		{
			name:     "missing field",
			err:      NewMissingFieldError("salary_generator_request", []string{"positions"}),
			code:     ErrCodeMissingField,
			category: "SHAPE_ERROR",
			contains: "positions",
		},
		{
			name:     "unknown schema",
			err:      NewUnknownSchemaError("nope"),
			code:     ErrCodeUnknownSchema,
			category: "CONFIGURATION_ERROR",
			contains: "schema: nope",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.False(t, tt.err.Retryable)
			assert.False(t, tt.err.Timestamp.IsZero())
			assert.Contains(t, tt.err.Error(), tt.contains)
			assert.Equal(t, tt.category, GetErrorCategory(tt.err.Code))
		})
	}
}

func TestIsCode_ThroughWrapping(t *testing.T) {
	base := NewExtraFieldError("calculation", []string{"note"})
	wrapped := fmt.Errorf("decode payload: %w", base)

	assert.True(t, IsCode(wrapped, ErrCodeExtraField))
	assert.False(t, IsCode(wrapped, ErrCodeMalformedInput))
	assert.False(t, IsCode(stderrors.New("plain"), ErrCodeExtraField))
	assert.Equal(t, ErrCodeExtraField, CodeOf(wrapped))
}

func TestNormalize(t *testing.T) {
	assert.Nil(t, Normalize(nil))

	plain := stderrors.New("boom")
	normalized := Normalize(plain)
	require.NotNil(t, normalized)
	assert.Equal(t, ErrCodeInternal, normalized.Code)
	assert.ErrorIs(t, normalized, plain)

	std := NewMissingFieldError("x", []string{"y"})
	assert.Same(t, std, Normalize(std))
}

func TestMalformedInputError_Unwrap(t *testing.T) {
	cause := stderrors.New("invalid character")
	err := NewMalformedInputError("response", cause)
	assert.ErrorIs(t, err, cause)
}

func TestStandardError_JSON(t *testing.T) {
	err := NewExtraFieldError("calculation", []string{"note"}).WithMetadata("record", 2)

	data, marshalErr := json.Marshal(err)
	require.NoError(t, marshalErr)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "EXTRA_FIELD", decoded["code"])
	assert.Equal(t, false, decoded["retryable"])
	metadata := decoded["metadata"].(map[string]interface{})
	assert.Equal(t, float64(2), metadata["record"])
}
