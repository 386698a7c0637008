// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"strings"
	"testing"

	"github.com/linuxfoundation/lfx-v2-roster-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRoster() model.Roster {
	return model.NewRoster("file", []model.Member{
		{Name: "Agent Alpha", Codename: "EagleEye", Role: "Member"},
		{Name: "Agent Beta", Codename: "IronWall", Role: "Member"},
		{Name: "Agent Gamma", Codename: "NightOwl", Role: "Scout"},
	})
}

func TestResolve(t *testing.T) {
	roster := testRoster()

	tests := []struct {
		name          string
		query         string
		expectFound   bool
		expectedCode  string
		expectedQuery string
	}{
		{
			name:          "codename exact",
			query:         "EagleEye",
			expectFound:   true,
			expectedCode:  "EagleEye",
			expectedQuery: "EagleEye",
		},
		{
			name:          "codename lower case",
			query:         "eagleeye",
			expectFound:   true,
			expectedCode:  "EagleEye",
			expectedQuery: "eagleeye",
		},
		{
			name:          "codename upper case",
			query:         "EAGLEEYE",
			expectFound:   true,
			expectedCode:  "EagleEye",
			expectedQuery: "EAGLEEYE",
		},
		{
			name:          "name with surrounding whitespace",
			query:         "  agent beta \t",
			expectFound:   true,
			expectedCode:  "IronWall",
			expectedQuery: "agent beta",
		},
		{
			name:          "substring of codename is not a match",
			query:         "Eagle",
			expectFound:   false,
			expectedQuery: "Eagle",
		},
		{
			name:          "substring of name is not a match",
			query:         "Agent",
			expectFound:   false,
			expectedQuery: "Agent",
		},
		{
			name:          "not found keeps original case trimmed",
			query:         "  Nobody  ",
			expectFound:   false,
			expectedQuery: "Nobody",
		},
		{
			name:          "empty query does not match populated records",
			query:         "   ",
			expectFound:   false,
			expectedQuery: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			outcome := Resolve(roster, tc.query)

			assert.Equal(t, tc.expectFound, outcome.IsFound())
			assert.Equal(t, tc.expectedQuery, outcome.Query())
			if tc.expectFound {
				member, ok := outcome.Member()
				require.True(t, ok)
				assert.Equal(t, tc.expectedCode, member.Codename)
			}
		})
	}
}

func TestResolveEveryMemberAnyCase(t *testing.T) {
	roster := testRoster()
	variants := []func(string) string{
		strings.ToLower,
		strings.ToUpper,
		func(s string) string { return "  " + s + "\n" },
		func(s string) string {
			var b strings.Builder
			for i, r := range s {
				if i%2 == 0 {
					b.WriteString(strings.ToUpper(string(r)))
				} else {
					b.WriteString(strings.ToLower(string(r)))
				}
			}
			return b.String()
		},
	}

	for _, member := range roster.Members() {
		for _, field := range []string{member.Name, member.Codename} {
			for _, variant := range variants {
				outcome := Resolve(roster, variant(field))
				got, ok := outcome.Member()
				require.True(t, ok, "query %q should match", variant(field))
				assert.Equal(t, member, got)
			}
		}
	}
}

func TestResolveFirstMatchWins(t *testing.T) {
	roster := model.NewRoster("file", []model.Member{
		{Name: "Agent Alpha", Codename: "Echo", Role: "First"},
		{Name: "Echo", Codename: "Shadow", Role: "Second"},
		{Name: "Agent Omega", Codename: "echo", Role: "Third"},
	})

	member, ok := Resolve(roster, "ECHO").Member()
	require.True(t, ok)
	assert.Equal(t, "First", member.Role)
}

func TestResolveEmptyQueryMatchesEmptyField(t *testing.T) {
	roster := model.NewRoster("file", []model.Member{
		{Name: "Agent Alpha", Codename: "EagleEye"},
		{Name: "Unnamed", Codename: ""},
	})

	member, ok := Resolve(roster, "").Member()
	require.True(t, ok)
	assert.Equal(t, "Unnamed", member.Name)
}

func TestResolveEmptyRoster(t *testing.T) {
	outcome := Resolve(model.Roster{}, "EagleEye")
	assert.False(t, outcome.IsFound())
	assert.Equal(t, "EagleEye", outcome.Query())
}

func TestMemberSearchIsIdempotent(t *testing.T) {
	roster := testRoster()
	searcher := NewMemberSearch(roster)
	ctx := context.Background()

	for _, query := range []string{"ironwall", "Nobody", "", "Agent Gamma"} {
		first := searcher.SearchMember(ctx, query)
		second := searcher.SearchMember(ctx, query)
		assert.Equal(t, first, second)
	}

	assert.Equal(t, roster, searcher.Roster())
}
