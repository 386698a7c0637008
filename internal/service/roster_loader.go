// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/linuxfoundation/lfx-v2-roster-service/internal/domain/model"
	"github.com/linuxfoundation/lfx-v2-roster-service/internal/domain/port"
	"github.com/linuxfoundation/lfx-v2-roster-service/pkg/errors"
)

// RosterLoader defines the interface for roster load operations
type RosterLoader interface {
	// Fetch reads the roster from the data source exactly once
	Fetch(ctx context.Context) model.LoadResult

	// Load returns the fetched roster, or the default roster if the fetch failed
	Load(ctx context.Context) model.Roster
}

// RosterLoad handles the one-time population of the roster
// It depends on abstractions (interfaces) rather than concrete implementations
type RosterLoad struct {
	source  port.RosterSource
	timeout time.Duration
}

// Fetch performs the single fetch against the data source. Every failure,
// including a panic inside the source, becomes a failed LoadResult.
func (l *RosterLoad) Fetch(ctx context.Context) (result model.LoadResult) {
	if l.source == nil {
		return model.LoadFailed(errors.NewServiceUnavailable("roster data source unavailable",
			fmt.Errorf("no roster source configured"),
		))
	}

	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	defer func() {
		if r := recover(); r != nil {
			result = model.LoadFailed(errors.NewServiceUnavailable("roster data source unavailable",
				fmt.Errorf("roster source %s panicked: %v", l.source.Name(), r),
			))
		}
	}()

	slog.DebugContext(ctx, "fetching roster",
		"source", l.source.Name(),
		"timeout", l.timeout,
	)

	members, err := l.source.FetchRoster(ctx)
	if err != nil {
		return model.LoadFailed(errors.NewServiceUnavailable("roster data source unavailable", err))
	}
	if members == nil {
		return model.LoadFailed(errors.NewServiceUnavailable("roster data source unavailable",
			fmt.Errorf("roster document from %s is not a list", l.source.Name()),
		))
	}

	return model.LoadSucceeded(model.NewRoster(l.source.Name(), members))
}

// Load fetches the roster and falls back to the default roster on failure.
// It never returns an error.
func (l *RosterLoad) Load(ctx context.Context) model.Roster {
	roster := l.Fetch(ctx).OrElse(func(err error) model.Roster {
		slog.WarnContext(ctx, "using placeholder members, roster data source unavailable",
			"source", l.sourceName(),
			"error", err,
		)
		return model.DefaultRoster()
	})

	slog.InfoContext(ctx, "roster loaded",
		"source", roster.Source(),
		"members", roster.Len(),
	)
	return roster
}

func (l *RosterLoad) sourceName() string {
	if l.source == nil {
		return ""
	}
	return l.source.Name()
}

// NewRosterLoader creates a new RosterLoader reading from source. A zero
// timeout leaves the fetch bounded only by ctx.
func NewRosterLoader(source port.RosterSource, timeout time.Duration) RosterLoader {
	return &RosterLoad{
		source:  source,
		timeout: timeout,
	}
}
