package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassOf(t *testing.T) {
	cause := fmt.Errorf("connection refused")

	tests := []struct {
		name     string
		err      error
		expected Class
	}{
		{
			name:     "bad request",
			err:      BadRequest("missing topic"),
			expected: ClassBadRequest,
		},
		{
			name:     "store failure",
			err:      StoreFailure(cause),
			expected: ClassStoreFailure,
		},
		{
			name:     "wrapped classified error",
			err:      fmt.Errorf("review failed: %w", NewError(ClassQuotaExceeded, "rate limited", cause)),
			expected: ClassQuotaExceeded,
		},
		{
			name:     "unclassified error",
			err:      cause,
			expected: Class(""),
		},
		{
			name:     "nil error",
			err:      nil,
			expected: Class(""),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassOf(tt.err))
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("no rows")
	err := StoreFailure(cause)

	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "store_failure")
	assert.Contains(t, err.Error(), "no rows")
}

func TestIsClass(t *testing.T) {
	err := NewError(ClassServiceMisconfigured, "api key missing", nil)

	assert.True(t, IsClass(err, ClassServiceMisconfigured))
	assert.False(t, IsClass(err, ClassServiceUnavailable))
	assert.NotContains(t, err.Error(), "<nil>")
}
