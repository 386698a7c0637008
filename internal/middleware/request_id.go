// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/linuxfoundation/lfx-v2-roster-service/pkg/constants"
	"github.com/linuxfoundation/lfx-v2-roster-service/pkg/log"

	"github.com/google/uuid"
)

type requestIDKey struct{}

// RequestIDMiddleware creates a middleware that adds a request ID to the context
func RequestIDMiddleware() func(http.Handler) http.Handler {
	header := string(constants.RequestIDHeader)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Try to get request ID from header first
			requestID := r.Header.Get(header)

			// If no request ID in header, generate a new one
			if requestID == "" {
				requestID = generateRequestID()
			}

			w.Header().Set(header, requestID)

			ctx := context.WithValue(r.Context(), requestIDKey{}, requestID)

			// every log line written with this context carries the request ID
			ctx = log.AppendCtx(ctx, slog.String(header, requestID))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequestIDFromContext returns the request ID set by RequestIDMiddleware, or
// an empty string.
func RequestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(requestIDKey{}).(string)
	return requestID
}

// generateRequestID generates a new unique request ID
func generateRequestID() string {
	return uuid.New().String()
}
