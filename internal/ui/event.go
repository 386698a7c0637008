// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package ui wires roster searches to user interface events without
// depending on any UI toolkit.
package ui

import (
	"context"
	"sync"
)

// Event names a user interface trigger.
type Event string

const (
	// EventPageLoad fires once when the page becomes ready
	EventPageLoad Event = "page-load"
	// EventKeyPress fires for each key typed in the search box
	EventKeyPress Event = "key-press"
	// EventSearchClick fires when the search button is clicked
	EventSearchClick Event = "search-click"

	// KeyEnter is the key name that triggers a search from the search box
	KeyEnter = "Enter"
)

// Payload is the data an event source passes to handlers.
type Payload struct {
	// Key is the pressed key, set for key-press events
	Key string
	// Query is the current content of the search box
	Query string
}

// Handler reacts to one event.
type Handler func(ctx context.Context, payload Payload)

// EventSource is anything that can deliver named events to handlers,
// such as a browser page or a terminal program.
type EventSource interface {
	On(event Event, handler Handler)
}

// Dispatcher is a synchronous in-memory EventSource.
type Dispatcher struct {
	mu       sync.Mutex
	handlers map[Event][]Handler
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[Event][]Handler)}
}

// On registers handler for event.
func (d *Dispatcher) On(event Event, handler Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[event] = append(d.handlers[event], handler)
}

// Fire calls every handler registered for event, in registration order,
// and returns how many ran. Handlers may register further handlers.
func (d *Dispatcher) Fire(ctx context.Context, event Event, payload Payload) int {
	d.mu.Lock()
	handlers := make([]Handler, len(d.handlers[event]))
	copy(handlers, d.handlers[event])
	d.mu.Unlock()

	for _, handler := range handlers {
		handler(ctx, payload)
	}
	return len(handlers)
}

// Registered reports how many handlers are registered for event.
func (d *Dispatcher) Registered(event Event) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.handlers[event])
}
