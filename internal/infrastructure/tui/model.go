// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package tui is the interactive terminal page: a search box, the Enter key
// trigger and a result panel, delivered as ui events.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/linuxfoundation/lfx-v2-roster-service/internal/ui"
)

// PageLoadedMsg is sent once the page-load handlers have returned.
type PageLoadedMsg struct {
	// Handlers is the number of page-load handlers that ran
	Handlers int
}

// Model is the bubbletea model of the roster search page. It implements
// ui.EventSource so a ui.Page can be bound to it.
type Model struct {
	ctx        context.Context
	dispatcher *ui.Dispatcher
	panel      *ui.Panel
	input      textinput.Model

	loaded   bool
	quitting bool
	width    int
}

// New creates the page model. panel is the result panel shown under the
// search box, usually ui.Page.Panel().
func New(ctx context.Context, panel *ui.Panel) *Model {
	ti := textinput.New()
	ti.Placeholder = "Search by name or codename"
	ti.Prompt = "> "
	ti.CharLimit = 256
	ti.Focus()

	if ctx == nil {
		ctx = context.Background()
	}
	if panel == nil {
		panel = &ui.Panel{}
	}

	return &Model{
		ctx:        ctx,
		dispatcher: ui.NewDispatcher(),
		panel:      panel,
		input:      ti,
	}
}

// On implements ui.EventSource.
func (m *Model) On(event ui.Event, handler ui.Handler) {
	m.dispatcher.On(event, handler)
}

// Loaded reports whether page load has completed.
func (m *Model) Loaded() bool {
	return m.loaded
}

// Init fires the page-load event outside the update loop, so a slow roster
// source does not block rendering.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.firePageLoad)
}

func (m *Model) firePageLoad() tea.Msg {
	return PageLoadedMsg{Handlers: m.dispatcher.Fire(m.ctx, ui.EventPageLoad, ui.Payload{})}
}

// Update handles key presses and the page-load completion.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case PageLoadedMsg:
		m.loaded = true
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(msg.Width-4, 10)
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			m.dispatcher.Fire(m.ctx, ui.EventKeyPress, ui.Payload{
				Key:   ui.KeyEnter,
				Query: m.input.Value(),
			})
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if key, ok := msg.(tea.KeyMsg); ok {
		m.dispatcher.Fire(m.ctx, ui.EventKeyPress, ui.Payload{
			Key:   key.String(),
			Query: m.input.Value(),
		})
	}
	return m, cmd
}

// View renders the title, the search box and the result panel.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Roster Search"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if !m.loaded {
		b.WriteString(statusStyle.Render("Loading roster..."))
		b.WriteString("\n")
		return b.String()
	}

	switch state, content := m.panel.Snapshot(); state {
	case ui.PanelMember:
		b.WriteString(panelStyle.Render(content))
		b.WriteString("\n")
	case ui.PanelError:
		b.WriteString(errorPanelStyle.Render(content))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("enter: search • esc: quit"))
	b.WriteString("\n")
	return b.String()
}

var _ ui.EventSource = (*Model)(nil)
