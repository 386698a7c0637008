// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package nats

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/linuxfoundation/lfx-v2-roster-service/internal/domain/model"
	"github.com/linuxfoundation/lfx-v2-roster-service/internal/domain/port"
	"github.com/linuxfoundation/lfx-v2-roster-service/internal/infrastructure/document"
	"github.com/linuxfoundation/lfx-v2-roster-service/pkg/constants"
	"github.com/linuxfoundation/lfx-v2-roster-service/pkg/errors"
)

// SourceName identifies this roster source in logs and responses
const SourceName = "nats"

// NATSRosterSource requests the roster document over NATS request/reply
type NATSRosterSource struct {
	client  NATSClientInterface
	subject string
	config  Config
}

// Name implements port.RosterSource
func (n *NATSRosterSource) Name() string {
	return SourceName
}

// FetchRoster implements port.RosterSource
func (n *NATSRosterSource) FetchRoster(ctx context.Context) ([]model.Member, error) {
	slog.DebugContext(ctx, "requesting roster over NATS",
		"subject", n.subject,
	)

	data, err := n.client.Request(ctx, &RosterNATSRequest{
		Subject: n.subject,
		Message: rosterRequestMessage,
		Timeout: n.config.Timeout,
	})
	if err != nil {
		return nil, errors.NewServiceUnavailable("NATS roster request failed", err)
	}

	members, err := document.Decode(data, document.FormatJSON)
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "NATS roster received",
		"subject", n.subject,
		"members", len(members),
	)
	return members, nil
}

// Close gracefully closes the NATS connection
func (n *NATSRosterSource) Close() error {
	return n.client.Close()
}

// NewRosterSource connects to NATS and returns a roster source
func NewRosterSource(ctx context.Context, config Config) (*NATSRosterSource, error) {
	slog.InfoContext(ctx, "creating NATS roster source",
		"url", config.URL,
		"subject", config.Subject,
	)

	client, err := NewClient(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create NATS client: %w", err)
	}

	return newRosterSource(client, config), nil
}

func newRosterSource(client NATSClientInterface, config Config) *NATSRosterSource {
	subject := config.Subject
	if subject == "" {
		subject = constants.DefaultRosterSubject
	}
	return &NATSRosterSource{
		client:  client,
		subject: subject,
		config:  config,
	}
}

var _ port.RosterSource = (*NATSRosterSource)(nil)
