// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package valkey reads the roster document stored under a Valkey key.
package valkey

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/linuxfoundation/lfx-v2-roster-service/internal/domain/model"
	"github.com/linuxfoundation/lfx-v2-roster-service/internal/domain/port"
	"github.com/linuxfoundation/lfx-v2-roster-service/internal/infrastructure/document"
	"github.com/linuxfoundation/lfx-v2-roster-service/pkg/constants"
	"github.com/linuxfoundation/lfx-v2-roster-service/pkg/errors"
	"github.com/valkey-io/valkey-go"
)

// SourceName identifies this roster source in logs and responses
const SourceName = "valkey"

// Config represents Valkey configuration
type Config struct {
	// Addr is the host:port of the Valkey server
	Addr     string
	Username string
	Password string
	DB       int
	// Key holds the roster document
	Key string
	// DisableCache turns off client side caching, required by servers
	// without RESP3 tracking support
	DisableCache bool
}

// RosterSource reads a JSON roster document with a single GET
type RosterSource struct {
	client valkey.Client
	key    string
}

// Name implements port.RosterSource
func (s *RosterSource) Name() string {
	return SourceName
}

// FetchRoster implements port.RosterSource
func (s *RosterSource) FetchRoster(ctx context.Context) ([]model.Member, error) {
	raw, err := s.client.Do(ctx, s.client.B().Get().Key(s.key).Build()).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return nil, errors.NewNotFound(fmt.Sprintf("roster key %s not found", s.key))
		}
		return nil, errors.NewServiceUnavailable("valkey get failed", err)
	}

	members, err := document.Decode([]byte(raw), document.FormatJSON)
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "valkey roster read",
		"key", s.key,
		"members", len(members),
	)
	return members, nil
}

// Close implements port.RosterSource
func (s *RosterSource) Close() error {
	s.client.Close()
	return nil
}

// NewRosterSource connects to Valkey and returns a roster source
func NewRosterSource(ctx context.Context, config Config) (*RosterSource, error) {
	if config.Addr == "" {
		slog.ErrorContext(ctx, "valkey address is required")
		return nil, fmt.Errorf("valkey address is required")
	}

	key := config.Key
	if key == "" {
		key = constants.DefaultRosterKey
	}

	client, err := valkey.NewClient(valkey.ClientOption{
		InitAddress:  []string{config.Addr},
		Username:     config.Username,
		Password:     config.Password,
		SelectDB:     config.DB,
		DisableCache: config.DisableCache,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to connect to valkey", "error", err)
		return nil, fmt.Errorf("connect to valkey: %w", err)
	}

	slog.InfoContext(ctx, "valkey roster source created",
		"addr", config.Addr,
		"key", key,
	)

	return &RosterSource{
		client: client,
		key:    key,
	}, nil
}

var _ port.RosterSource = (*RosterSource)(nil)
