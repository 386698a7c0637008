// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package httpclient

import (
	"time"
)

// Config holds the configuration for the HTTP client
type Config struct {
	// Timeout is the HTTP client timeout for requests
	Timeout time.Duration

	// UserAgent is sent with every request when set
	UserAgent string

	// MaxBodyBytes is the largest accepted response body, a longer one fails
	// with ErrBodyTooLarge; zero means DefaultMaxBodyBytes
	MaxBodyBytes int64
}

// DefaultMaxBodyBytes bounds roster documents read over HTTP.
const DefaultMaxBodyBytes = 4 << 20

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() Config {
	return Config{
		Timeout:      10 * time.Second,
		UserAgent:    "lfx-v2-roster-service",
		MaxBodyBytes: DefaultMaxBodyBytes,
	}
}
