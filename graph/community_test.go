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
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/memgraph/events"
	"github.com/AleutianAI/memgraph/graph"
)

func buildTwoCliqueGraph() *graph.Graph {
	g := graph.New()
	for _, id := range []string{"a1", "a2", "a3", "b1", "b2", "b3"} {
		g.AddNode(graph.Node{ID: id})
	}
	clique := func(ids ...string) {
		for _, u := range ids {
			for _, v := range ids {
				if u != v {
					g.AddEdge(u, v, graph.EdgeReference, 1.0)
				}
			}
		}
	}
	clique("a1", "a2", "a3")
	clique("b1", "b2", "b3")
	return g
}

func TestDetectCommunities_CoversEveryNode(t *testing.T) {
	g := buildTwoCliqueGraph()
	labels := g.DetectCommunities(context.Background(), rand.New(rand.NewSource(1)))

	assert.Len(t, labels, 6)
	for _, id := range []string{"a1", "a2", "a3", "b1", "b2", "b3"} {
		_, ok := labels[id]
		assert.True(t, ok, "expected label for %s", id)
	}
}

func TestDetectCommunities_CliquesShareLabel(t *testing.T) {
	g := buildTwoCliqueGraph()
	labels := g.DetectCommunities(context.Background(), rand.New(rand.NewSource(7)))

	assert.Equal(t, labels["a1"], labels["a2"])
	assert.Equal(t, labels["a2"], labels["a3"])
	assert.Equal(t, labels["b1"], labels["b2"])
	assert.Equal(t, labels["b2"], labels["b3"])
}

func TestDetectCommunities_EmitsCount(t *testing.T) {
	g := buildTwoCliqueGraph()

	var count int
	g.Events().Subscribe(func(e *events.Event) {
		data, ok := e.Data.(*events.CommunitiesDetectedData)
		require.True(t, ok)
		count = data.CommunityCount
	}, events.TypeCommunitiesDetected)

	g.DetectCommunities(context.Background(), rand.New(rand.NewSource(3)))

	assert.Greater(t, count, 0)
}

func TestDetectCommunities_RemovedNodeHasNoLabel(t *testing.T) {
	g := buildTwoCliqueGraph()
	g.DetectCommunities(context.Background(), rand.New(rand.NewSource(1)))

	g.RemoveNode("a1")

	top := g.GetTopNodes(context.Background(), 10)
	for _, node := range top {
		assert.NotEqual(t, "a1", node.ID)
	}

	ranked := g.RankWithGraph(context.Background(), []graph.SearchInput{{EntryID: "a1", Score: 1.0}}, 0.5)
	require.Len(t, ranked, 1)
	assert.False(t, ranked[0].HasLabel)
}

func TestDetectCommunities_EmptyGraph(t *testing.T) {
	g := graph.New()
	labels := g.DetectCommunities(context.Background(), rand.New(rand.NewSource(1)))
	assert.Empty(t, labels)
}
