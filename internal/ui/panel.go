// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package ui

import "sync"

// PanelState is the visible state of the result panel.
type PanelState int

const (
	// PanelHidden means no search has been rendered yet
	PanelHidden PanelState = iota
	// PanelMember shows a member card
	PanelMember
	// PanelError shows the not-found card
	PanelError
)

func (s PanelState) String() string {
	switch s {
	case PanelMember:
		return "member"
	case PanelError:
		return "error"
	default:
		return "hidden"
	}
}

// Panel holds the rendered result of the last search.
type Panel struct {
	mu      sync.RWMutex
	state   PanelState
	content string
}

// Reset hides the panel and clears its content.
func (p *Panel) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = PanelHidden
	p.content = ""
}

// ShowMember displays a rendered member card.
func (p *Panel) ShowMember(content string) {
	p.show(PanelMember, content)
}

// ShowError displays a rendered not-found card.
func (p *Panel) ShowError(content string) {
	p.show(PanelError, content)
}

func (p *Panel) show(state PanelState, content string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = state
	p.content = content
}

// Snapshot returns the current state and content together.
func (p *Panel) Snapshot() (PanelState, string) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state, p.content
}

// Visible reports whether the panel shows a result.
func (p *Panel) Visible() bool {
	state, _ := p.Snapshot()
	return state != PanelHidden
}
