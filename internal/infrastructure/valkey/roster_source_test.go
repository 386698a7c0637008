// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package valkey

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/linuxfoundation/lfx-v2-roster-service/internal/domain/model"
	"github.com/linuxfoundation/lfx-v2-roster-service/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSource(t *testing.T, key string) (*RosterSource, *miniredis.Miniredis) {
	t.Helper()
	mini := miniredis.RunT(t)
	source, err := NewRosterSource(context.Background(), Config{
		Addr:         mini.Addr(),
		Key:          key,
		DisableCache: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = source.Close()
	})
	return source, mini
}

func TestRosterSourceFetchRoster(t *testing.T) {
	source, mini := newTestSource(t, "")
	require.NoError(t, mini.Set("roster:members",
		`[{"name":"Agent Gamma","codename":"NightOwl","role":"Scout"},{"name":"Agent Delta","codename":"Mirage","role":"Lead"}]`))

	members, err := source.FetchRoster(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []model.Member{
		{Name: "Agent Gamma", Codename: "NightOwl", Role: "Scout"},
		{Name: "Agent Delta", Codename: "Mirage", Role: "Lead"},
	}, members)
	assert.Equal(t, SourceName, source.Name())
}

func TestRosterSourceMissingKey(t *testing.T) {
	source, _ := newTestSource(t, "roster:custom")

	_, err := source.FetchRoster(context.Background())

	var notFound errors.NotFound
	assert.True(t, stderrors.As(err, &notFound))
}

func TestRosterSourceMalformedValue(t *testing.T) {
	source, mini := newTestSource(t, "roster:custom")
	require.NoError(t, mini.Set("roster:custom", `{"members":`))

	_, err := source.FetchRoster(context.Background())

	var validation errors.Validation
	assert.True(t, stderrors.As(err, &validation))
}

func TestRosterSourceWrongType(t *testing.T) {
	source, mini := newTestSource(t, "roster:custom")
	_, err := mini.Lpush("roster:custom", "Agent Gamma")
	require.NoError(t, err)

	_, err = source.FetchRoster(context.Background())

	var unavailable errors.ServiceUnavailable
	assert.True(t, stderrors.As(err, &unavailable))
}

func TestNewRosterSourceRequiresAddr(t *testing.T) {
	_, err := NewRosterSource(context.Background(), Config{})
	assert.Error(t, err)
}
