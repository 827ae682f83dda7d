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
	"math"
	"time"

	"github.com/AleutianAI/memgraph/events"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var pageRankTracer = otel.Tracer("graph.pagerank")

// ComputePageRank runs power iteration with dangling-mass redistribution
// over the current graph and caches the result. Scores are returned as a
// copy; the cache itself is cleared of "dirty" status until the next
// structural mutation.
//
// Per iteration: dangling_sum = sum of rank[v] over nodes with no outgoing
// edges; rank'[u] = (1-d)/N + d*(sum_{v in in[u]} rank[v]/|out[v]| +
// dangling_sum/N), using |out[v]|=1 as a defensive divisor.
//
// Halts when max_u |rank'[u] - rank[u]| < convergence, or after
// PageRankIterations iterations. Emits pagerank:computed with the
// iteration count actually performed.
func (g *Graph) ComputePageRank(ctx context.Context) map[string]float64 {
	ctx, span := pageRankTracer.Start(ctx, "Graph.ComputePageRank",
		trace.WithAttributes(
			attribute.Int("node_count", g.NodeCount()),
			attribute.Int("edge_count", g.EdgeCount()),
		),
	)
	defer span.End()
	start := time.Now()

	n := len(g.nodes)
	if n == 0 {
		g.ranks = make(map[string]float64)
		g.dirty = false
		g.emitter.Emit(events.TypePageRankComputed, &events.PageRankComputedData{Iterations: 0})
		recordPageRankRun(0, 0, time.Since(start))
		return map[string]float64{}
	}

	d := g.config.PageRankDamping
	tau := g.config.PageRankConvergence
	maxIter := g.config.PageRankIterations
	N := float64(n)

	scores := make(map[string]float64, n)
	newScores := make(map[string]float64, n)
	initial := 1.0 / N
	for id := range g.nodes {
		scores[id] = initial
	}

	outDegree := make(map[string]int, n)
	for id, edges := range g.out {
		outDegree[id] = len(edges)
	}

	iterations := 0
	for iter := 0; iter < maxIter; iter++ {
		if ctx.Err() != nil {
			break
		}

		danglingSum := 0.0
		for id := range g.nodes {
			if outDegree[id] == 0 {
				danglingSum += scores[id]
			}
		}
		danglingTerm := d * danglingSum / N

		maxDiff := 0.0
		for id := range g.nodes {
			newScore := (1-d)/N + danglingTerm
			for source := range g.in[id] {
				divisor := outDegree[source]
				if divisor == 0 {
					divisor = 1
				}
				newScore += d * scores[source] / float64(divisor)
			}
			newScores[id] = newScore
			if diff := math.Abs(newScore - scores[id]); diff > maxDiff {
				maxDiff = diff
			}
		}

		scores, newScores = newScores, scores
		iterations = iter + 1

		if maxDiff < tau {
			break
		}
	}

	g.ranks = scores
	g.dirty = false

	g.config.Logger.Info("pagerank computed", "iterations", iterations, "node_count", n)
	g.emitter.Emit(events.TypePageRankComputed, &events.PageRankComputedData{Iterations: iterations})
	recordPageRankRun(iterations, n, time.Since(start))

	span.SetAttributes(attribute.Int("iterations", iterations))

	result := make(map[string]float64, n)
	for id, score := range scores {
		result[id] = score
	}
	return result
}
