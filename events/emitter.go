// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package events

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type subscription struct {
	id      string
	handler Handler
	filter  Filter
	types   map[Type]bool // nil means "all types"
}

// Emitter is a simple synchronous pub/sub bus for graph events.
//
// Thread Safety: safe for concurrent Subscribe/Emit calls. Handlers run
// synchronously on the calling goroutine inside Emit, in subscription
// order; a slow handler delays the emitting call and every handler after
// it.
type Emitter struct {
	mu   sync.RWMutex
	subs []*subscription
}

// NewEmitter creates an empty Emitter.
func NewEmitter() *Emitter {
	return &Emitter{}
}

// Subscribe registers handler for the given event types. With no types
// given, handler receives every event. Returns a subscription ID that can
// later be passed to Unsubscribe.
func (e *Emitter) Subscribe(handler Handler, types ...Type) string {
	var typeSet map[Type]bool
	if len(types) > 0 {
		typeSet = make(map[Type]bool, len(types))
		for _, t := range types {
			typeSet[t] = true
		}
	}
	return e.subscribe(handler, nil, typeSet)
}

// SubscribeWithFilter registers handler, gated by filter in addition to
// any type restriction. The filter runs before the handler on every Emit.
func (e *Emitter) SubscribeWithFilter(handler Handler, filter Filter) string {
	return e.subscribe(handler, filter, nil)
}

func (e *Emitter) subscribe(handler Handler, filter Filter, types map[Type]bool) string {
	id := uuid.NewString()
	e.mu.Lock()
	e.subs = append(e.subs, &subscription{id: id, handler: handler, filter: filter, types: types})
	e.mu.Unlock()
	return id
}

// Unsubscribe removes a subscription by ID. It is a no-op if the ID is
// unknown (already unsubscribed, or never registered).
func (e *Emitter) Unsubscribe(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, s := range e.subs {
		if s.id == id {
			e.subs = append(e.subs[:i], e.subs[i+1:]...)
			return
		}
	}
}

// SubscriptionCount returns the number of active subscriptions.
func (e *Emitter) SubscriptionCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.subs)
}

// Emit builds an Event from typ and data and delivers it to every
// matching subscriber, in subscription order.
func (e *Emitter) Emit(typ Type, data any) {
	event := &Event{
		ID:        uuid.NewString(),
		Type:      typ,
		Timestamp: time.Now(),
		Data:      data,
	}

	e.mu.RLock()
	subs := make([]*subscription, len(e.subs))
	copy(subs, e.subs)
	e.mu.RUnlock()

	for _, s := range subs {
		if s.types != nil && !s.types[typ] {
			continue
		}
		if s.filter != nil && !s.filter(event) {
			continue
		}
		s.handler(event)
	}
}
