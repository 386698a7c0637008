// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package ui

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/linuxfoundation/lfx-v2-roster-service/internal/domain/model"
	"github.com/linuxfoundation/lfx-v2-roster-service/internal/domain/port"
	"github.com/linuxfoundation/lfx-v2-roster-service/internal/service"
)

// Page is the roster search page: a search box, a search button and a
// result panel. Search triggers are wired only after the roster is loaded.
type Page struct {
	loader   service.RosterLoader
	renderer port.ResultRenderer
	panel    *Panel

	once     sync.Once
	mu       sync.RWMutex
	searcher service.MemberSearcher
	loaded   chan struct{}
}

// NewPage creates a page that loads its roster with loader and renders
// results with renderer.
func NewPage(loader service.RosterLoader, renderer port.ResultRenderer) *Page {
	return &Page{
		loader:   loader,
		renderer: renderer,
		panel:    &Panel{},
		loaded:   make(chan struct{}),
	}
}

// Bind registers the page-load handler on source. Key and click handlers
// are registered by the page-load handler once the roster is in place.
func (p *Page) Bind(source EventSource) {
	source.On(EventPageLoad, func(ctx context.Context, _ Payload) {
		p.once.Do(func() {
			p.onPageLoad(ctx, source)
		})
	})
}

func (p *Page) onPageLoad(ctx context.Context, source EventSource) {
	roster := p.loader.Load(ctx)

	p.mu.Lock()
	p.searcher = service.NewMemberSearch(roster)
	p.mu.Unlock()
	close(p.loaded)

	source.On(EventKeyPress, p.onKeyPress)
	source.On(EventSearchClick, p.onSearchClick)

	slog.DebugContext(ctx, "search handlers registered",
		"source", roster.Source(),
		"members", roster.Len(),
	)
}

func (p *Page) onKeyPress(ctx context.Context, payload Payload) {
	if payload.Key != KeyEnter {
		return
	}
	p.Search(ctx, payload.Query)
}

func (p *Page) onSearchClick(ctx context.Context, payload Payload) {
	p.Search(ctx, payload.Query)
}

// Search resolves query against the loaded roster, resets the panel and
// shows exactly one of the member or not-found cards. Before the roster is
// loaded it leaves the panel hidden and returns a NotFound outcome.
func (p *Page) Search(ctx context.Context, query string) model.QueryOutcome {
	p.mu.RLock()
	searcher := p.searcher
	p.mu.RUnlock()

	p.panel.Reset()

	if searcher == nil {
		slog.WarnContext(ctx, "search before roster load ignored")
		return model.NotFound(strings.TrimSpace(query))
	}

	outcome := searcher.SearchMember(ctx, query)
	if view, ok := service.View(outcome); ok {
		p.panel.ShowMember(p.renderer.RenderMember(view))
		return outcome
	}
	p.panel.ShowError(p.renderer.RenderNotFound(outcome.Query()))
	return outcome
}

// Loaded is closed once the roster is loaded and searches are wired.
func (p *Page) Loaded() <-chan struct{} {
	return p.loaded
}

// Roster returns the loaded roster and true, or false before page load.
func (p *Page) Roster() (model.Roster, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.searcher == nil {
		return model.Roster{}, false
	}
	return p.searcher.Roster(), true
}

// Panel returns the result panel.
func (p *Page) Panel() *Panel {
	return p.panel
}
