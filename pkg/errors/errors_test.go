// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package errors

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	cause := stderrors.New("connection refused")

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "validation without cause",
			err:      NewValidation("missing version"),
			expected: "missing version",
		},
		{
			name:     "not found with cause",
			err:      NewNotFound("roster key not found", cause),
			expected: "roster key not found: connection refused",
		},
		{
			name:     "unauthorized with cause",
			err:      NewUnauthorized("invalid token", cause),
			expected: "invalid token: connection refused",
		},
		{
			name:     "unexpected with cause",
			err:      NewUnexpected("request failed", cause),
			expected: "request failed: connection refused",
		},
		{
			name:     "service unavailable with multiple causes",
			err:      NewServiceUnavailable("roster data source unavailable", cause, stderrors.New("second")),
			expected: "roster data source unavailable: connection refused\nsecond",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.err.Error())
		})
	}
}

func TestErrorsUnwrapToCause(t *testing.T) {
	err := NewServiceUnavailable("roster data source unavailable", context.DeadlineExceeded)

	assert.True(t, stderrors.Is(err, context.DeadlineExceeded))

	var unavailable ServiceUnavailable
	assert.True(t, stderrors.As(err, &unavailable))
}
