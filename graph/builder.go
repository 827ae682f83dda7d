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
	"fmt"

	"github.com/AleutianAI/memgraph/events"
	"github.com/AleutianAI/memgraph/memory"
)

// BuildFromEntries adds every entry as a node, then for every entry and
// every reference id it declares, adds a "reference" edge. Missing
// reference targets silently drop (AddEdge's no-op contract). If
// Config.EnableAutoEdges is true, it also calls AddSimilarityEdges for
// every entry that carries an embedding.
//
// Emits a graph:built event carrying the resulting node count.
func (g *Graph) BuildFromEntries(ctx context.Context, entries []memory.Entry, store memory.BackingStore) error {
	for _, entry := range entries {
		g.AddNode(nodeFromEntry(entry))
	}

	for _, entry := range entries {
		for _, refID := range entry.References {
			g.AddEdge(entry.ID, refID, EdgeReference, 1.0)
		}
	}

	if g.config.EnableAutoEdges {
		for _, entry := range entries {
			if len(entry.Embedding) == 0 {
				continue
			}
			if _, err := g.AddSimilarityEdges(ctx, entry.ID, store); err != nil {
				return err
			}
		}
	}

	g.emitter.Emit(events.TypeGraphBuilt, &events.GraphBuiltData{NodeCount: g.NodeCount()})
	return nil
}

// AddSimilarityEdges fetches entryID from store; if absent or it has no
// embedding, it returns 0 with no error. Otherwise it issues a
// k-nearest-neighbour search (k=20) with a similarity cutoff equal to
// Config.SimilarityThreshold and adds a "similar" edge entryID -> result.ID
// for every result with result.ID != entryID and score >= threshold. A
// result whose ID is not already a graph node is silently dropped, per
// AddEdge's no-op-on-missing-endpoint contract. It returns the count of
// newly added (not weight-updated) edges.
//
// The graph never writes back to store; this is graph-local enrichment
// only. Backing-store failures are wrapped in ErrBackingStoreFailure.
func (g *Graph) AddSimilarityEdges(ctx context.Context, entryID string, store memory.BackingStore) (int, error) {
	entry, ok, err := store.Get(ctx, entryID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBackingStoreFailure, err)
	}
	if !ok || len(entry.Embedding) == 0 {
		return 0, nil
	}

	results, err := store.Search(ctx, entry.Embedding, memory.SearchOptions{
		K:         DefaultSimilarityK,
		Threshold: g.config.SimilarityThreshold,
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBackingStoreFailure, err)
	}

	added := 0
	for _, result := range results {
		if result.Entry.ID == entryID || result.Score < g.config.SimilarityThreshold {
			continue
		}
		wasNew := !g.HasEdge(entryID, result.Entry.ID)
		g.AddEdge(entryID, result.Entry.ID, EdgeSimilar, result.Score)
		if wasNew && g.HasEdge(entryID, result.Entry.ID) {
			added++
		}
	}
	return added, nil
}

func nodeFromEntry(entry memory.Entry) Node {
	category := entry.Category
	if category == "" {
		category = "general"
	}
	confidence := entry.Confidence
	if confidence == 0 {
		confidence = 0.5
	}
	return Node{
		ID:          entry.ID,
		Category:    category,
		Confidence:  confidence,
		AccessCount: entry.AccessCount,
		CreatedAt:   entry.CreatedAt,
	}
}
