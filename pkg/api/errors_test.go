package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeybotlabs/honeybot/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{
			name:       "validation error",
			err:        services.NewValidationError("threat_score", "must be between 0 and 100"),
			expectCode: http.StatusBadRequest,
			expectMsg:  "threat_score",
		},
		{
			name:       "wrapped not found",
			err:        fmt.Errorf("lookup bot: %w", services.ErrNotFound),
			expectCode: http.StatusNotFound,
			expectMsg:  "resource not found",
		},
		{
			name:       "invalid secret",
			err:        services.ErrInvalidSecret,
			expectCode: http.StatusUnauthorized,
			expectMsg:  "Invalid bot secret",
		},
		{
			name:       "wrapped already exists",
			err:        fmt.Errorf("insert event: %w", services.ErrAlreadyExists),
			expectCode: http.StatusConflict,
			expectMsg:  "resource already exists",
		},
		{
			name:       "unknown error",
			err:        errors.New("connection reset"),
			expectCode: http.StatusInternalServerError,
			expectMsg:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			he := mapServiceError(tt.err)
			require.NotNil(t, he)
			assert.Equal(t, tt.expectCode, he.Code)
			assert.Contains(t, fmt.Sprint(he.Message), tt.expectMsg)
		})
	}
}
