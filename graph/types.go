// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package graph

import "time"

// EdgeType identifies the relationship a GraphEdge represents.
type EdgeType int

const (
	// EdgeReference marks an edge derived from an entry's declared
	// cross-references.
	EdgeReference EdgeType = iota

	// EdgeSimilar marks an edge added from a vector-search neighbourhood.
	EdgeSimilar

	// EdgeTemporal marks an edge between entries related by time.
	EdgeTemporal

	// EdgeCoAccessed marks an edge between entries frequently retrieved
	// together.
	EdgeCoAccessed

	// EdgeCausal marks an edge expressing a causal relationship.
	EdgeCausal
)

var edgeTypeNames = map[EdgeType]string{
	EdgeReference:  "reference",
	EdgeSimilar:    "similar",
	EdgeTemporal:   "temporal",
	EdgeCoAccessed: "co-accessed",
	EdgeCausal:     "causal",
}

// String returns the configuration name for t.
func (t EdgeType) String() string {
	if name, ok := edgeTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// Node is the graph's owned projection of a memory.Entry: identity and the
// small set of fields the ranking and clustering algorithms consume. It is
// never mutated in place after insertion; re-adding an entry replaces it.
type Node struct {
	ID          string
	Category    string
	Confidence  float64
	AccessCount int
	CreatedAt   time.Time
}

// Edge is a directed relationship from the node holding it to Target.
type Edge struct {
	Target string
	Type   EdgeType
	Weight float64
}
