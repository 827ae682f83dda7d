// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/memgraph/graph"
)

func TestAddNode_Idempotent(t *testing.T) {
	g := graph.New()
	g.AddNode(graph.Node{ID: "a"})
	g.AddNode(graph.Node{ID: "a"})

	assert.Equal(t, 1, g.NodeCount())
}

func TestAddNode_DefaultsCategoryAndConfidence(t *testing.T) {
	g := graph.New()
	g.AddNode(graph.Node{ID: "a"})

	node, ok := g.GetNode("a")
	require.True(t, ok)
	assert.Equal(t, "general", node.Category)
	assert.Equal(t, 0.5, node.Confidence)
}

func TestAddNode_Capacity(t *testing.T) {
	g := graph.New(graph.WithMaxNodes(3))
	for _, id := range []string{"e1", "e2", "e3", "e4", "e5"} {
		g.AddNode(graph.Node{ID: id})
	}

	assert.Equal(t, 3, g.NodeCount())
	_, ok := g.GetNode("e4")
	assert.False(t, ok)

	// Re-adding e1 is still accepted; it replaces rather than inserts.
	g.AddNode(graph.Node{ID: "e1", Category: "updated"})
	node, ok := g.GetNode("e1")
	require.True(t, ok)
	assert.Equal(t, "updated", node.Category)
	assert.Equal(t, 3, g.NodeCount())
}

func TestAddEdge_MissingEndpointIsNoOp(t *testing.T) {
	g := graph.New()
	g.AddNode(graph.Node{ID: "a"})

	g.AddEdge("a", "missing", graph.EdgeReference, 1.0)
	g.AddEdge("missing", "a", graph.EdgeReference, 1.0)

	assert.False(t, g.HasEdge("a", "missing"))
	assert.Equal(t, 0, g.EdgeCount())
}

func TestAddEdge_ReAddKeepsSingleEdge(t *testing.T) {
	g := graph.New()
	g.AddNode(graph.Node{ID: "a"})
	g.AddNode(graph.Node{ID: "b"})

	g.AddEdge("a", "b", graph.EdgeReference, 0.5)
	g.AddEdge("a", "b", graph.EdgeSimilar, 0.9)

	assert.Equal(t, 1, g.EdgeCount())
	assert.True(t, g.HasEdge("a", "b"))
}

func TestRemoveNode_ErasesIncidentEdges(t *testing.T) {
	g := graph.New()
	g.AddNode(graph.Node{ID: "a"})
	g.AddNode(graph.Node{ID: "b"})
	g.AddNode(graph.Node{ID: "c"})
	g.AddEdge("a", "b", graph.EdgeReference, 1.0)
	g.AddEdge("b", "c", graph.EdgeReference, 1.0)
	g.AddEdge("c", "a", graph.EdgeReference, 1.0)

	g.RemoveNode("b")

	_, ok := g.GetNode("b")
	assert.False(t, ok)
	assert.False(t, g.HasEdge("a", "b"))
	assert.False(t, g.HasEdge("b", "c"))
	assert.Equal(t, 1, g.EdgeCount()) // only c->a remains
}

func TestRemoveNode_MissingIsNoOp(t *testing.T) {
	g := graph.New()
	g.AddNode(graph.Node{ID: "a"})

	assert.NotPanics(t, func() { g.RemoveNode("missing") })
	assert.Equal(t, 1, g.NodeCount())
}

func TestAddThenRemoveNode_MatchesEmptyGraphStats(t *testing.T) {
	g := graph.New()
	g.AddNode(graph.Node{ID: "a"})
	g.RemoveNode("a")

	empty := graph.New()

	assert.Equal(t, empty.GetStats(), g.GetStats())
}
