// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package graph maintains an in-memory directed multi-type graph projected
// over a vector-embedded memory store, and computes PageRank, communities,
// and similarity/structural rank blends over it.
//
// # Ownership Model
//
// The graph owns its Node and Edge state once built; it never writes back to
// the memory.BackingStore it was built from.
//
// # Thread Safety
//
// Graph is designed for single-task access: one caller drives add/remove,
// ranking, and querying at a time. See Graph's doc comment for the full
// concurrency contract.
//
// # Lifecycle
//
// A Graph is created with New, populated via AddNode/AddEdge or
// BuildFromEntries, and lives until the caller discards it. It is never
// frozen: nodes and edges can be added or removed for its entire life.
package graph

import "errors"

// Sentinel errors for graph operations. Capacity-exceeded and
// missing-referent conditions are NOT represented here: per contract they
// are silent no-ops, never returned to the caller.
var (
	// ErrBackingStoreFailure wraps whatever error the backing store raises
	// during AddSimilarityEdges. It is the only failure mode the graph
	// surfaces to callers.
	ErrBackingStoreFailure = errors.New("graph: backing store failure")
)
