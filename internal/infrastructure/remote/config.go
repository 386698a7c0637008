// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package remote

import (
	"fmt"
	"net/url"
	"time"
)

var defaultTimeout = "10s"

// Config holds the configuration for the remote roster document
type Config struct {
	// URL is the absolute address of the roster document
	URL string

	// Token is sent as a bearer token when set
	Token string

	// Timeout is the HTTP client timeout for the single request
	Timeout time.Duration
}

// NewConfig creates a new remote configuration with the provided parameters
func NewConfig(rawURL, token, timeout string) (Config, error) {
	// Validate required parameters
	if rawURL == "" {
		return Config{}, fmt.Errorf("URL is required for remote roster configuration")
	}
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return Config{}, fmt.Errorf("invalid roster URL %q", rawURL)
	}

	if timeout == "" {
		timeout = defaultTimeout
	}
	timeoutDuration, err := time.ParseDuration(timeout)
	if err != nil {
		return Config{}, fmt.Errorf("invalid timeout duration: %w", err)
	}

	return Config{
		URL:     rawURL,
		Token:   token,
		Timeout: timeoutDuration,
	}, nil
}
