// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRosterIsImmutable(t *testing.T) {
	members := []Member{
		{Name: "Agent Gamma", Codename: "NightOwl", Role: "Scout"},
	}
	roster := NewRoster("file", members)

	members[0].Name = "changed by caller"
	assert.Equal(t, "Agent Gamma", roster.At(0).Name)

	copied := roster.Members()
	copied[0].Codename = "changed by reader"
	assert.Equal(t, "NightOwl", roster.At(0).Codename)

	assert.Equal(t, 1, roster.Len())
	assert.Equal(t, "file", roster.Source())
}

func TestDefaultRoster(t *testing.T) {
	roster := DefaultRoster()

	assert.Equal(t, DefaultSourceName, roster.Source())
	assert.Equal(t, []Member{
		{Name: "Agent Alpha", Codename: "EagleEye", Role: "Member"},
		{Name: "Agent Beta", Codename: "IronWall", Role: "Member"},
	}, roster.Members())
}

func TestQueryOutcome(t *testing.T) {
	member := Member{Name: "Agent Alpha", Codename: "EagleEye", Role: "Member"}

	found := Found(member, "EagleEye")
	assert.True(t, found.IsFound())
	got, ok := found.Member()
	require.True(t, ok)
	assert.Equal(t, member, got)
	assert.Equal(t, "EagleEye", found.Query())

	missing := NotFound("Nobody")
	assert.False(t, missing.IsFound())
	_, ok = missing.Member()
	assert.False(t, ok)
	assert.Equal(t, "Nobody", missing.Query())
}

func TestLoadResultOrElse(t *testing.T) {
	external := NewRoster("http", []Member{{Name: "Agent Delta", Codename: "Mirage"}})
	fallbackCalls := 0
	fallback := func(err error) Roster {
		fallbackCalls++
		return DefaultRoster()
	}

	ok := LoadSucceeded(external)
	assert.NoError(t, ok.Err())
	assert.Equal(t, external, ok.OrElse(fallback))
	assert.Equal(t, 0, fallbackCalls)

	failed := LoadFailed(errors.New("boom"))
	assert.EqualError(t, failed.Err(), "boom")
	_, succeeded := failed.Roster()
	assert.False(t, succeeded)
	assert.Equal(t, DefaultRoster(), failed.OrElse(fallback))
	assert.Equal(t, 1, fallbackCalls)
}
