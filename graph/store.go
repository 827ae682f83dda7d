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
	"github.com/AleutianAI/memgraph/events"
)

// Graph is an in-memory directed multi-type graph projected over a memory
// store: nodes, per-node ordered outgoing edges, and a reverse-edge index.
//
// Thread Safety:
//
//	Graph takes no internal locks and is meant for single-task access: one
//	caller drives add/remove, ranking, and querying at a time. Callers
//	sharing a Graph across goroutines must serialise externally.
//
// Lifecycle:
//
//	Unlike a build-then-freeze graph, a Graph here stays mutable for its
//	entire life: nodes and edges may be added or removed at any time.
type Graph struct {
	config Config

	nodes map[string]Node
	out   map[string][]Edge
	in    map[string]map[string]bool

	// dirty is true iff structural mutations occurred since the last
	// PageRank computation.
	dirty bool

	ranks       map[string]float64
	communities map[string]int

	emitter *events.Emitter
}

// New creates an empty Graph. Options override DefaultConfig() fields.
func New(opts ...Option) *Graph {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph{
		config: cfg,
		nodes:  make(map[string]Node),
		out:    make(map[string][]Edge),
		in:     make(map[string]map[string]bool),
		// dirty starts true: no PageRank has been computed yet.
		dirty:   true,
		emitter: events.NewEmitter(),
	}
}

// Events returns the emitter callers can subscribe to for graph:built,
// pagerank:computed, and communities:detected notifications.
func (g *Graph) Events() *events.Emitter {
	return g.emitter
}

// NodeCount returns the number of nodes currently in the graph.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the total number of edges currently in the graph.
func (g *Graph) EdgeCount() int {
	total := 0
	for _, edges := range g.out {
		total += len(edges)
	}
	return total
}

// GetNode returns the node with the given id, if present.
func (g *Graph) GetNode(id string) (Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// AddNode inserts or replaces node. If the graph is already at MaxNodes
// capacity and node.ID is not already present, the call is a silent no-op.
// Re-adding an existing id always succeeds (it replaces the node)
// regardless of capacity.
func (g *Graph) AddNode(node Node) {
	_, exists := g.nodes[node.ID]
	if !exists && len(g.nodes) >= g.config.MaxNodes {
		g.config.Logger.Debug("add_node: capacity exceeded, dropping",
			"id", node.ID, "max_nodes", g.config.MaxNodes)
		return
	}

	if node.Category == "" {
		node.Category = "general"
	}
	if node.Confidence == 0 {
		node.Confidence = 0.5
	}

	g.nodes[node.ID] = node
	if _, ok := g.out[node.ID]; !ok {
		g.out[node.ID] = nil
	}
	if _, ok := g.in[node.ID]; !ok {
		g.in[node.ID] = make(map[string]bool)
	}
	g.dirty = true
}

// AddEdge adds a directed edge source -> target of the given type and
// weight. If either endpoint is missing, the call is a silent no-op. If an
// edge to target already exists in source's outgoing set, its weight is
// updated to max(existing, weight) and its type is left unchanged;
// otherwise a new edge is appended.
func (g *Graph) AddEdge(source, target string, edgeType EdgeType, weight float64) {
	if _, ok := g.nodes[source]; !ok {
		g.config.Logger.Debug("add_edge: missing source", "source", source, "target", target)
		return
	}
	if _, ok := g.nodes[target]; !ok {
		g.config.Logger.Debug("add_edge: missing target", "source", source, "target", target)
		return
	}

	edges := g.out[source]
	for i, e := range edges {
		if e.Target == target {
			if weight > e.Weight {
				edges[i].Weight = weight
			}
			g.dirty = true
			return
		}
	}

	g.out[source] = append(edges, Edge{Target: target, Type: edgeType, Weight: weight})
	g.in[target][source] = true
	g.dirty = true
}

// HasEdge reports whether a source -> target edge exists.
func (g *Graph) HasEdge(source, target string) bool {
	for _, e := range g.out[source] {
		if e.Target == target {
			return true
		}
	}
	return false
}

// RemoveNode deletes id and every edge incident to it (both directions),
// along with any cached rank or community label. Removing a missing id is
// a silent no-op.
func (g *Graph) RemoveNode(id string) {
	if _, ok := g.nodes[id]; !ok {
		return
	}

	for _, edge := range g.out[id] {
		delete(g.in[edge.Target], id)
	}
	for source := range g.in[id] {
		g.out[source] = filterEdges(g.out[source], id)
	}

	delete(g.nodes, id)
	delete(g.out, id)
	delete(g.in, id)
	delete(g.ranks, id)
	delete(g.communities, id)
	g.dirty = true
}

func filterEdges(edges []Edge, target string) []Edge {
	filtered := edges[:0]
	for _, e := range edges {
		if e.Target != target {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
