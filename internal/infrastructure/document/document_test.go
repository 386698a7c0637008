// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package document

import (
	stderrors "errors"
	"testing"

	"github.com/linuxfoundation/lfx-v2-roster-service/internal/domain/model"
	"github.com/linuxfoundation/lfx-v2-roster-service/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatFromPath("data/members.yaml"))
	assert.Equal(t, FormatYAML, FormatFromPath("MEMBERS.YML"))
	assert.Equal(t, FormatJSON, FormatFromPath("data/members.json"))
	assert.Equal(t, FormatJSON, FormatFromPath("members"))
}

func TestDecode(t *testing.T) {
	expected := []model.Member{
		{Name: "Agent Gamma", Codename: "NightOwl", Role: "Scout"},
		{Name: "Agent Delta", Codename: "Mirage", Role: "Lead"},
	}

	tests := []struct {
		name        string
		data        string
		format      Format
		expected    []model.Member
		expectError bool
	}{
		{
			name:     "json list",
			data:     `[{"name":"Agent Gamma","codename":"NightOwl","role":"Scout"},{"name":"Agent Delta","codename":"Mirage","role":"Lead"}]`,
			format:   FormatJSON,
			expected: expected,
		},
		{
			name:     "json ignores unknown fields",
			data:     `[{"name":"Agent Gamma","codename":"NightOwl","role":"Scout","clearance":5},{"name":"Agent Delta","codename":"Mirage","role":"Lead"}]`,
			format:   FormatJSON,
			expected: expected,
		},
		{
			name:     "json empty list",
			data:     `[]`,
			format:   FormatJSON,
			expected: []model.Member{},
		},
		{
			name: "yaml list",
			data: `
- name: Agent Gamma
  codename: NightOwl
  role: Scout
- name: Agent Delta
  codename: Mirage
  role: Lead
`,
			format:   FormatYAML,
			expected: expected,
		},
		{
			name:        "json null",
			data:        `null`,
			format:      FormatJSON,
			expectError: true,
		},
		{
			name:        "json object instead of list",
			data:        `{"name":"Agent Gamma"}`,
			format:      FormatJSON,
			expectError: true,
		},
		{
			name:        "truncated json",
			data:        `[{"name":"Agent Gamma"`,
			format:      FormatJSON,
			expectError: true,
		},
		{
			name:        "yaml mapping instead of list",
			data:        "name: Agent Gamma\n",
			format:      FormatYAML,
			expectError: true,
		},
		{
			name:        "blank document",
			data:        "  \n",
			format:      FormatJSON,
			expectError: true,
		},
		{
			name:        "unknown format",
			data:        `[]`,
			format:      Format("toml"),
			expectError: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			members, err := Decode([]byte(tc.data), tc.format)
			if tc.expectError {
				require.Error(t, err)
				var validation errors.Validation
				assert.True(t, stderrors.As(err, &validation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, members)
		})
	}
}
