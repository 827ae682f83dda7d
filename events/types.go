// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package events provides the event surface for the memory graph core.
//
// Events let external systems (CLIs, status lines, metrics scrapers)
// observe graph mutations and computations without coupling to the graph
// package itself. The shape follows Aleutian's agent event bus: a Type, an
// Event envelope, and Handler/Filter function types subscribers register
// against.
package events

import "time"

// Type identifies the kind of event.
type Type string

const (
	// TypeGraphBuilt is emitted after BuildFromEntries commits its nodes
	// and edges.
	TypeGraphBuilt Type = "graph:built"

	// TypePageRankComputed is emitted after a PageRank computation
	// completes (including the zero-node case).
	TypePageRankComputed Type = "pagerank:computed"

	// TypeCommunitiesDetected is emitted after label propagation halts.
	TypeCommunitiesDetected Type = "communities:detected"
)

// Event is the envelope delivered to subscribers.
type Event struct {
	// ID uniquely identifies this event instance.
	ID string `json:"id"`

	// Type identifies the kind of event.
	Type Type `json:"type"`

	// Timestamp is when the event was emitted.
	Timestamp time.Time `json:"timestamp"`

	// Data carries event-specific fields; see GraphBuiltData,
	// PageRankComputedData, CommunitiesDetectedData.
	Data any `json:"data,omitempty"`
}

// GraphBuiltData is the payload for TypeGraphBuilt.
type GraphBuiltData struct {
	// NodeCount is the number of nodes in the graph after the build.
	NodeCount int `json:"node_count"`
}

// PageRankComputedData is the payload for TypePageRankComputed.
type PageRankComputedData struct {
	// Iterations is the number of power-iteration sweeps performed.
	Iterations int `json:"iterations"`
}

// CommunitiesDetectedData is the payload for TypeCommunitiesDetected.
type CommunitiesDetectedData struct {
	// CommunityCount is the number of distinct labels found.
	CommunityCount int `json:"community_count"`
}

// Handler processes a single event. Handlers must not block for long;
// the emitter calls handlers synchronously on the emitting goroutine.
type Handler func(*Event)

// Filter decides whether a Handler should receive an event.
type Filter func(*Event) bool
