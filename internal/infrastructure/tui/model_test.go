// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linuxfoundation/lfx-v2-roster-service/internal/domain/model"
	"github.com/linuxfoundation/lfx-v2-roster-service/internal/render"
	"github.com/linuxfoundation/lfx-v2-roster-service/internal/ui"
)

type fixedLoader struct {
	roster model.Roster
	calls  int
}

func (l *fixedLoader) Fetch(ctx context.Context) model.LoadResult {
	return model.LoadSucceeded(l.roster)
}

func (l *fixedLoader) Load(ctx context.Context) model.Roster {
	l.calls++
	return l.roster
}

func newTestModel(t *testing.T) (*Model, *ui.Page, *fixedLoader) {
	t.Helper()

	r := lipgloss.NewRenderer(nil)
	r.SetColorProfile(termenv.Ascii)

	loader := &fixedLoader{roster: model.DefaultRoster()}
	page := ui.NewPage(loader, render.NewTerminal(r))
	m := New(context.Background(), page.Panel())
	page.Bind(m)
	return m, page, loader
}

func typeText(m *Model, text string) {
	for _, r := range text {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func loadPage(t *testing.T, m *Model) {
	t.Helper()
	msg := m.firePageLoad()
	loaded, ok := msg.(PageLoadedMsg)
	require.True(t, ok)
	assert.Equal(t, 1, loaded.Handlers)
	m.Update(msg)
}

func TestModelLoadsRosterOnPageLoad(t *testing.T) {
	m, page, loader := newTestModel(t)

	assert.False(t, m.Loaded())
	assert.Contains(t, m.View(), "Loading roster...")

	loadPage(t, m)

	assert.True(t, m.Loaded())
	assert.Equal(t, 1, loader.calls)
	roster, ok := page.Roster()
	require.True(t, ok)
	assert.Equal(t, 2, roster.Len())
	assert.NotContains(t, m.View(), "Loading roster...")
}

func TestModelEnterBeforeLoadDoesNothing(t *testing.T) {
	m, page, _ := newTestModel(t)

	typeText(m, "EagleEye")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, page.Panel().Visible())
}

func TestModelEnterSearches(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantState ui.PanelState
		contains  []string
	}{
		{
			name:      "codename match",
			query:     "eagleeye",
			wantState: ui.PanelMember,
			contains:  []string{"Agent Alpha", "EagleEye", "Role: Member"},
		},
		{
			name:      "name match with padding",
			query:     "  agent beta ",
			wantState: ui.PanelMember,
			contains:  []string{"Agent Beta", "IronWall"},
		},
		{
			name:      "unknown member",
			query:     "Ghost",
			wantState: ui.PanelError,
			contains:  []string{"Member Not Found", `"Ghost" does not match any registered member.`},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, page, _ := newTestModel(t)
			loadPage(t, m)

			typeText(m, tc.query)
			m.Update(tea.KeyMsg{Type: tea.KeyEnter})

			state, content := page.Panel().Snapshot()
			assert.Equal(t, tc.wantState, state)
			view := m.View()
			for _, want := range tc.contains {
				assert.Contains(t, content, want)
				assert.Contains(t, view, want)
			}
		})
	}
}

func TestModelTypingDoesNotSearch(t *testing.T) {
	m, page, _ := newTestModel(t)
	loadPage(t, m)

	typeText(m, "EagleEye")

	assert.False(t, page.Panel().Visible())
}

func TestModelQuit(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyType
	}{
		{name: "escape", key: tea.KeyEsc},
		{name: "ctrl+c", key: tea.KeyCtrlC},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, _, _ := newTestModel(t)

			_, cmd := m.Update(tea.KeyMsg{Type: tc.key})

			require.NotNil(t, cmd)
			assert.Equal(t, tea.Quit(), cmd())
			assert.Empty(t, m.View())
		})
	}
}
