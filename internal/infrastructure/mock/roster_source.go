// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package mock

import (
	"context"
	"log/slog"
	"sync"

	"github.com/linuxfoundation/lfx-v2-roster-service/internal/domain/model"
	"github.com/linuxfoundation/lfx-v2-roster-service/internal/domain/port"
)

// SourceName identifies this roster source in logs and responses
const SourceName = "mock"

// MockRosterSource is an in-memory roster source for local development and tests
type MockRosterSource struct {
	mu      sync.Mutex
	members []model.Member
	err     error
	calls   int
	closed  bool
}

// NewMockRosterSource creates a mock source with some sample members
func NewMockRosterSource() *MockRosterSource {
	return &MockRosterSource{
		members: []model.Member{
			{Name: "Agent Gamma", Codename: "NightOwl", Role: "Scout"},
			{Name: "Agent Delta", Codename: "Mirage", Role: "Team Lead"},
			{Name: "Agent Epsilon", Codename: "Quicksilver", Role: "Member"},
			{Name: "Agent Zeta", Codename: "Granite", Role: "Member"},
		},
	}
}

// Name implements port.RosterSource
func (m *MockRosterSource) Name() string {
	return SourceName
}

// FetchRoster returns a copy of the configured members, or the configured error
func (m *MockRosterSource) FetchRoster(ctx context.Context) ([]model.Member, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++

	slog.DebugContext(ctx, "mock roster fetched",
		"members", len(m.members),
		"error", m.err,
	)

	if m.err != nil {
		return nil, m.err
	}
	if m.members == nil {
		return nil, nil
	}
	members := make([]model.Member, len(m.members))
	copy(members, m.members)
	return members, nil
}

// Close implements port.RosterSource
func (m *MockRosterSource) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// SetMembers replaces the members returned by FetchRoster
func (m *MockRosterSource) SetMembers(members []model.Member) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.members = members
}

// SetError makes FetchRoster fail with err
func (m *MockRosterSource) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Calls returns how many times FetchRoster ran
func (m *MockRosterSource) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// Closed reports whether Close was called
func (m *MockRosterSource) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

var _ port.RosterSource = (*MockRosterSource)(nil)
