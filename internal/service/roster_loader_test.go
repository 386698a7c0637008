// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/linuxfoundation/lfx-v2-roster-service/internal/domain/model"
	"github.com/linuxfoundation/lfx-v2-roster-service/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSource is a RosterSource whose behavior is set per test
type stubSource struct {
	name    string
	fetch   func(ctx context.Context) ([]model.Member, error)
	calls   int
	closed  bool
	lastCtx context.Context
}

func (s *stubSource) Name() string {
	return s.name
}

func (s *stubSource) FetchRoster(ctx context.Context) ([]model.Member, error) {
	s.calls++
	s.lastCtx = ctx
	return s.fetch(ctx)
}

func (s *stubSource) Close() error {
	s.closed = true
	return nil
}

func externalMembers() []model.Member {
	return []model.Member{
		{Name: "Agent Gamma", Codename: "NightOwl", Role: "Scout"},
		{Name: "Agent Delta", Codename: "Mirage", Role: "Lead"},
		{Name: "Agent Epsilon", Codename: "Quicksilver", Role: "Member"},
	}
}

func TestRosterLoadFallbackTotality(t *testing.T) {
	tests := []struct {
		name  string
		fetch func(ctx context.Context) ([]model.Member, error)
	}{
		{
			name: "network error",
			fetch: func(ctx context.Context) ([]model.Member, error) {
				return nil, stderrors.New("dial tcp 127.0.0.1:80: connection refused")
			},
		},
		{
			name: "non-success status",
			fetch: func(ctx context.Context) ([]model.Member, error) {
				return nil, errors.NewNotFound("roster document not found")
			},
		},
		{
			name: "malformed payload",
			fetch: func(ctx context.Context) ([]model.Member, error) {
				return nil, stderrors.New("invalid character '}' looking for beginning of value")
			},
		},
		{
			name: "partial data returned alongside an error",
			fetch: func(ctx context.Context) ([]model.Member, error) {
				return externalMembers()[:1], stderrors.New("stream truncated")
			},
		},
		{
			name: "document is null",
			fetch: func(ctx context.Context) ([]model.Member, error) {
				return nil, nil
			},
		},
		{
			name: "source panics",
			fetch: func(ctx context.Context) ([]model.Member, error) {
				panic("unexpected payload shape")
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			source := &stubSource{name: "http", fetch: tc.fetch}
			loader := NewRosterLoader(source, time.Second)

			roster := loader.Load(context.Background())

			assert.Equal(t, model.DefaultRoster(), roster)
			assert.Equal(t, 2, roster.Len())
			assert.Equal(t, 1, source.calls, "the data source is attempted exactly once")
		})
	}
}

func TestRosterLoadUsesExternalData(t *testing.T) {
	source := &stubSource{
		name: "file",
		fetch: func(ctx context.Context) ([]model.Member, error) {
			return externalMembers(), nil
		},
	}
	loader := NewRosterLoader(source, time.Second)

	roster := loader.Load(context.Background())

	assert.Equal(t, "file", roster.Source())
	assert.Equal(t, externalMembers(), roster.Members())
	assert.Equal(t, 1, source.calls)
}

func TestRosterLoadAcceptsEmptyList(t *testing.T) {
	source := &stubSource{
		name: "file",
		fetch: func(ctx context.Context) ([]model.Member, error) {
			return []model.Member{}, nil
		},
	}

	roster := NewRosterLoader(source, 0).Load(context.Background())

	assert.Equal(t, "file", roster.Source())
	assert.Equal(t, 0, roster.Len())
}

func TestRosterFetchReportsServiceUnavailable(t *testing.T) {
	cause := stderrors.New("connection refused")
	source := &stubSource{
		name: "nats",
		fetch: func(ctx context.Context) ([]model.Member, error) {
			return nil, cause
		},
	}

	result := NewRosterLoader(source, time.Second).Fetch(context.Background())

	require.Error(t, result.Err())
	var unavailable errors.ServiceUnavailable
	assert.True(t, stderrors.As(result.Err(), &unavailable))
	assert.True(t, stderrors.Is(result.Err(), cause))
}

func TestRosterFetchAppliesTimeout(t *testing.T) {
	source := &stubSource{
		name: "http",
		fetch: func(ctx context.Context) ([]model.Member, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}

	start := time.Now()
	result := NewRosterLoader(source, 20*time.Millisecond).Fetch(context.Background())

	require.Error(t, result.Err())
	assert.True(t, stderrors.Is(result.Err(), context.DeadlineExceeded))
	assert.Less(t, time.Since(start), 5*time.Second)

	_, hasDeadline := source.lastCtx.Deadline()
	assert.True(t, hasDeadline)
}

func TestRosterFetchWithoutSource(t *testing.T) {
	loader := NewRosterLoader(nil, time.Second)

	assert.Error(t, loader.Fetch(context.Background()).Err())
	assert.Equal(t, model.DefaultRoster(), loader.Load(context.Background()))
}
