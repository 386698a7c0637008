// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package port

import (
	"context"

	"github.com/linuxfoundation/lfx-v2-roster-service/internal/domain/model"
)

// RosterSource defines the behavior of an external roster data source
// This abstraction allows different storage implementations (file, HTTP,
// OpenSearch, NATS, Valkey) without the domain layer knowing about them
type RosterSource interface {
	// Name identifies the source in logs and in the loaded roster
	Name() string

	// FetchRoster reads the full roster document once. A missing or malformed
	// document is an error.
	FetchRoster(ctx context.Context) ([]model.Member, error)

	// Close releases any connection held by the source
	Close() error
}
