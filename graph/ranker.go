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

import (
	"context"
	"sort"
	"strconv"

	"go.opentelemetry.io/otel"
)

var rankTracer = otel.Tracer("graph.rank")

// SearchInput is one (entry id, similarity score) pair produced by a
// backing-store search, as fed into RankWithGraph.
type SearchInput struct {
	EntryID string
	Score   float64
}

// RankedResult is one similarity-search result blended with structural
// importance.
type RankedResult struct {
	EntryID   string
	Score     float64
	Combined  float64
	Community int
	HasLabel  bool
}

// RankWithGraph blends similarity-search scores with PageRank importance.
// If the graph is dirty, it recomputes PageRank first. For each result,
// combined = alpha*score + (1-alpha)*(pagerank[id]*N), where N =
// max(node_count, 1); an entry unknown to the graph contributes 0 PageRank.
// Results are sorted by combined descending, stable with respect to input
// order for equal keys.
func (g *Graph) RankWithGraph(ctx context.Context, results []SearchInput, alpha float64) []RankedResult {
	_, span := rankTracer.Start(ctx, "Graph.RankWithGraph")
	defer span.End()

	if g.dirty {
		g.ComputePageRank(ctx)
	}

	n := len(g.nodes)
	if n == 0 {
		n = 1
	}
	N := float64(n)

	ranked := make([]RankedResult, len(results))
	for i, r := range results {
		pr := g.ranks[r.EntryID]
		combined := alpha*r.Score + (1-alpha)*(pr*N)

		label, ok := g.communities[r.EntryID]
		ranked[i] = RankedResult{
			EntryID:   r.EntryID,
			Score:     r.Score,
			Combined:  combined,
			Community: label,
			HasLabel:  ok,
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Combined > ranked[j].Combined
	})

	return ranked
}

// TopNode is one entry in a get_top_nodes result.
type TopNode struct {
	ID        string
	Rank      float64
	Community string
}

// GetTopNodes computes PageRank if dirty and returns the top n node ids by
// rank descending. Each result carries its community label, falling back
// to the node id when no label exists.
func (g *Graph) GetTopNodes(ctx context.Context, n int) []TopNode {
	if n <= 0 {
		return nil
	}
	if g.dirty {
		g.ComputePageRank(ctx)
	}

	ids := make([]string, 0, len(g.ranks))
	for id := range g.ranks {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if g.ranks[ids[i]] != g.ranks[ids[j]] {
			return g.ranks[ids[i]] > g.ranks[ids[j]]
		}
		return ids[i] < ids[j]
	})

	if n > len(ids) {
		n = len(ids)
	}

	top := make([]TopNode, n)
	for i := 0; i < n; i++ {
		id := ids[i]
		community := id
		if label, ok := g.communities[id]; ok {
			community = communityLabelString(label)
		}
		top[i] = TopNode{ID: id, Rank: g.ranks[id], Community: community}
	}
	return top
}

// GetNeighbors performs a breadth-first forward traversal from id over
// outgoing edges, returning every id reachable within depth hops,
// excluding id itself. Visited bookkeeping is global across depths, so a
// node reachable via multiple paths is returned once.
func (g *Graph) GetNeighbors(id string, depth int) []string {
	if depth <= 0 {
		return nil
	}
	if _, ok := g.nodes[id]; !ok {
		return nil
	}

	visited := map[string]bool{id: true}
	frontier := []string{id}
	var result []string

	for d := 0; d < depth && len(frontier) > 0; d++ {
		next := make([]string, 0)
		for _, u := range frontier {
			for _, edge := range g.out[u] {
				if visited[edge.Target] {
					continue
				}
				visited[edge.Target] = true
				result = append(result, edge.Target)
				next = append(next, edge.Target)
			}
		}
		frontier = next
	}

	return result
}

// Stats summarises the graph's current size and computation state.
type Stats struct {
	NodeCount        int
	EdgeCount        int
	AvgDegree        float64
	CommunityCount   int
	PageRankComputed bool
	MaxPageRank      float64
	MinPageRank      float64
}

// GetStats reports the current graph size, average degree, distinct
// community count, and pagerank extrema. When no ranks are present, both
// extrema are 0.
func (g *Graph) GetStats() Stats {
	nodeCount := g.NodeCount()
	edgeCount := g.EdgeCount()

	avgDegree := 0.0
	if nodeCount > 0 {
		avgDegree = float64(edgeCount) / float64(nodeCount)
	}

	distinct := make(map[int]bool)
	for _, label := range g.communities {
		distinct[label] = true
	}

	var maxRank, minRank float64
	first := true
	for _, rank := range g.ranks {
		if first {
			maxRank, minRank = rank, rank
			first = false
			continue
		}
		if rank > maxRank {
			maxRank = rank
		}
		if rank < minRank {
			minRank = rank
		}
	}

	return Stats{
		NodeCount:        nodeCount,
		EdgeCount:        edgeCount,
		AvgDegree:        avgDegree,
		CommunityCount:   len(distinct),
		PageRankComputed: !g.dirty,
		MaxPageRank:      maxRank,
		MinPageRank:      minRank,
	}
}

func communityLabelString(label int) string {
	return strconv.Itoa(label)
}
