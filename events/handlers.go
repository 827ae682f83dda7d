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

	"github.com/AleutianAI/memgraph/logging"
)

// LoggingHandler returns a Handler that logs every event at Info level.
func LoggingHandler(logger *logging.Logger) Handler {
	return func(event *Event) {
		args := []any{"event_type", string(event.Type), "event_id", event.ID}

		switch data := event.Data.(type) {
		case *GraphBuiltData:
			args = append(args, "node_count", data.NodeCount)
		case *PageRankComputedData:
			args = append(args, "iterations", data.Iterations)
		case *CommunitiesDetectedData:
			args = append(args, "community_count", data.CommunityCount)
		}

		logger.Info("graph event", args...)
	}
}

// MetricsCollector accumulates simple counters from the event stream,
// independent of the prometheus metrics registered directly by the graph
// package (see graph/metrics.go) — this is for callers that only have the
// event channel, not a direct reference to the graph.
//
// Thread Safety: safe for concurrent use.
type MetricsCollector struct {
	mu sync.Mutex

	buildCount     int64
	pageRankCount  int64
	communityCount int64
	lastIterations int
	lastCommunities int
}

// NewMetricsCollector creates an empty collector.
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{}
}

// Handler returns the Handler to register with an Emitter.
func (c *MetricsCollector) Handler() Handler {
	return func(event *Event) {
		c.mu.Lock()
		defer c.mu.Unlock()

		switch data := event.Data.(type) {
		case *GraphBuiltData:
			c.buildCount++
			_ = data
		case *PageRankComputedData:
			c.pageRankCount++
			c.lastIterations = data.Iterations
		case *CommunitiesDetectedData:
			c.communityCount++
			c.lastCommunities = data.CommunityCount
		}
	}
}

// Metrics is a point-in-time snapshot of collected counters.
type Metrics struct {
	BuildCount      int64 `json:"build_count"`
	PageRankCount   int64 `json:"pagerank_count"`
	CommunityCount  int64 `json:"community_count"`
	LastIterations  int   `json:"last_iterations"`
	LastCommunities int   `json:"last_communities"`
}

// Metrics returns a snapshot of the collector's current counters.
func (c *MetricsCollector) Metrics() Metrics {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Metrics{
		BuildCount:      c.buildCount,
		PageRankCount:   c.pageRankCount,
		CommunityCount:  c.communityCount,
		LastIterations:  c.lastIterations,
		LastCommunities: c.lastCommunities,
	}
}

// ChannelHandler returns a Handler that forwards events to ch. If
// dropOnFull is true, events are dropped rather than blocking the
// emitting goroutine when ch's buffer is full.
func ChannelHandler(ch chan<- Event, dropOnFull bool) Handler {
	return func(event *Event) {
		if dropOnFull {
			select {
			case ch <- *event:
			default:
			}
			return
		}
		ch <- *event
	}
}

// MultiHandler returns a Handler that calls every handler in order.
func MultiHandler(handlers ...Handler) Handler {
	return func(event *Event) {
		for _, h := range handlers {
			h(event)
		}
	}
}

// FilteredHandler wraps handler so it only runs when filter(event) is true.
func FilteredHandler(handler Handler, filter Filter) Handler {
	return func(event *Event) {
		if filter(event) {
			handler(event)
		}
	}
}

// TypeFilter returns a Filter matching any of the given types.
func TypeFilter(types ...Type) Filter {
	set := make(map[Type]bool, len(types))
	for _, t := range types {
		set[t] = true
	}
	return func(event *Event) bool {
		return set[event.Type]
	}
}
