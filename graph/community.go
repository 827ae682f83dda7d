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
	"math/rand"
	"sort"
	"time"

	"github.com/AleutianAI/memgraph/events"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var communityTracer = otel.Tracer("graph.community")

// DetectCommunities partitions the node set by weighted asynchronous label
// propagation and caches the resulting labelling. rng supplies the
// shuffle's randomness; pass nil in production to use an ambient
// time-seeded generator, and a seeded *rand.Rand in tests for determinism.
//
// Config.CommunityAlgorithm selects the strategy. AlgorithmLouvain is
// accepted but this method always runs label propagation.
//
// Emits communities:detected with the distinct-label count. The procedure
// is intentionally non-deterministic across runs with an ambient rng;
// callers should assert partition properties, not label identity.
func (g *Graph) DetectCommunities(ctx context.Context, rng *rand.Rand) map[string]int {
	_, span := communityTracer.Start(ctx, "Graph.DetectCommunities")
	defer span.End()
	start := time.Now()

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	labels := make(map[string]int, len(g.nodes))
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for i, id := range ids {
		labels[id] = i
	}

	for round := 0; round < maxLabelPropagationRounds; round++ {
		order := make([]string, len(ids))
		copy(order, ids)
		rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

		changed := false
		for _, u := range order {
			scores := make(map[int]float64)
			seenOrder := make([]int, 0)

			for _, edge := range g.out[u] {
				label := labels[edge.Target]
				if _, seen := scores[label]; !seen {
					seenOrder = append(seenOrder, label)
				}
				scores[label] += edge.Weight
			}
			sources := make([]string, 0, len(g.in[u]))
			for source := range g.in[u] {
				sources = append(sources, source)
			}
			sort.Strings(sources)
			for _, source := range sources {
				label := labels[source]
				if _, seen := scores[label]; !seen {
					seenOrder = append(seenOrder, label)
				}
				scores[label] += 1.0
			}

			if len(scores) == 0 {
				continue
			}

			best := seenOrder[0]
			bestScore := scores[best]
			for _, label := range seenOrder[1:] {
				if scores[label] > bestScore {
					best = label
					bestScore = scores[label]
				}
			}

			if best != labels[u] {
				labels[u] = best
				changed = true
			}
		}

		if !changed {
			break
		}
	}

	g.communities = labels

	distinct := make(map[int]bool, len(labels))
	for _, label := range labels {
		distinct[label] = true
	}

	g.config.Logger.Info("communities detected", "community_count", len(distinct), "node_count", len(labels))
	g.emitter.Emit(events.TypeCommunitiesDetected, &events.CommunitiesDetectedData{CommunityCount: len(distinct)})
	recordCommunityRun(len(distinct), len(labels), time.Since(start))

	span.SetAttributes(attribute.Int("community_count", len(distinct)))

	result := make(map[string]int, len(labels))
	for id, label := range labels {
		result[id] = label
	}
	return result
}
