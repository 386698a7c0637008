// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package file

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/linuxfoundation/lfx-v2-roster-service/internal/domain/model"
	"github.com/linuxfoundation/lfx-v2-roster-service/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRosterSourceFetchRoster(t *testing.T) {
	expected := []model.Member{
		{Name: "Agent Gamma", Codename: "NightOwl", Role: "Scout"},
	}

	tests := []struct {
		name          string
		file          string
		content       string
		expectedError bool
	}{
		{
			name:    "json document",
			file:    "members.json",
			content: `[{"name":"Agent Gamma","codename":"NightOwl","role":"Scout"}]`,
		},
		{
			name:    "yaml document",
			file:    "members.yaml",
			content: "- name: Agent Gamma\n  codename: NightOwl\n  role: Scout\n",
		},
		{
			name:    "yml document",
			file:    "members.yml",
			content: "- {name: Agent Gamma, codename: NightOwl, role: Scout}\n",
		},
		{
			name:          "null json",
			file:          "members.json",
			content:       "null",
			expectedError: true,
		},
		{
			name:          "yaml in a json file",
			file:          "members.json",
			content:       "- name: Agent Gamma\n",
			expectedError: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			source, err := NewRosterSource(writeFile(t, tc.file, tc.content))
			require.NoError(t, err)

			members, err := source.FetchRoster(context.Background())
			if tc.expectedError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, expected, members)
		})
	}
}

func TestRosterSourceMissingFile(t *testing.T) {
	source, err := NewRosterSource(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)

	_, err = source.FetchRoster(context.Background())

	var notFound errors.NotFound
	assert.True(t, stderrors.As(err, &notFound))
}

func TestRosterSourceCanceledContext(t *testing.T) {
	source, err := NewRosterSource(writeFile(t, "members.json", `[]`))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = source.FetchRoster(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewRosterSourceRequiresPath(t *testing.T) {
	_, err := NewRosterSource("")
	assert.Error(t, err)

	source, err := NewRosterSource("members.json")
	require.NoError(t, err)
	assert.Equal(t, SourceName, source.Name())
	assert.NoError(t, source.Close())
}
