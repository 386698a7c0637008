// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package remote fetches the roster document over HTTP.
package remote

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/linuxfoundation/lfx-v2-roster-service/internal/domain/model"
	"github.com/linuxfoundation/lfx-v2-roster-service/internal/domain/port"
	"github.com/linuxfoundation/lfx-v2-roster-service/internal/infrastructure/document"
	"github.com/linuxfoundation/lfx-v2-roster-service/pkg/errors"
	"github.com/linuxfoundation/lfx-v2-roster-service/pkg/httpclient"
)

// SourceName identifies this roster source in logs and responses
const SourceName = "http"

// Client fetches the roster document with a single GET request
type Client struct {
	config     Config
	httpClient *httpclient.Client
}

// Name implements port.RosterSource
func (c *Client) Name() string {
	return SourceName
}

// FetchRoster implements port.RosterSource
func (c *Client) FetchRoster(ctx context.Context) ([]model.Member, error) {
	body, err := c.makeRequest(ctx)
	if err != nil {
		return nil, err
	}

	members, err := document.Decode(body, c.format())
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "remote roster fetched",
		"url", c.config.URL,
		"members", len(members),
	)
	return members, nil
}

// format follows the extension of the URL path, ignoring query and fragment
func (c *Client) format() document.Format {
	u, err := url.Parse(c.config.URL)
	if err != nil {
		return document.FormatJSON
	}
	return document.FormatFromPath(u.Path)
}

// makeRequest performs the HTTP request using the generic HTTP client
func (c *Client) makeRequest(ctx context.Context) ([]byte, error) {
	var headers map[string]string
	if c.config.Token != "" {
		headers = map[string]string{
			"Authorization": fmt.Sprintf("Bearer %s", c.config.Token),
		}
	}

	resp, err := c.httpClient.Request(ctx, http.MethodGet, c.config.URL, nil, headers)
	if err != nil {
		var httpErr *httpclient.StatusError
		if stderrors.As(err, &httpErr) {
			switch httpErr.StatusCode {
			case http.StatusNotFound:
				return nil, errors.NewNotFound("roster document not found", err)
			case http.StatusUnauthorized, http.StatusForbidden:
				return nil, errors.NewUnauthorized("roster document access denied", err)
			default:
				return nil, errors.NewServiceUnavailable("roster host returned an error", err)
			}
		}
		if stderrors.Is(err, httpclient.ErrBodyTooLarge) {
			return nil, errors.NewValidation("roster document is too large", err)
		}
		return nil, errors.NewServiceUnavailable("roster request failed", err)
	}

	return resp.Body, nil
}

// Close implements port.RosterSource
func (c *Client) Close() error {
	return nil
}

// NewClient creates a new remote roster client
func NewClient(config Config) *Client {
	httpConfig := httpclient.DefaultConfig()
	if config.Timeout > 0 {
		httpConfig.Timeout = config.Timeout
	}

	return &Client{
		config:     config,
		httpClient: httpclient.NewClient(httpConfig),
	}
}

var _ port.RosterSource = (*Client)(nil)
