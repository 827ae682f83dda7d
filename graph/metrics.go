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
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pageRankRunsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "memgraph_pagerank_runs_total",
		Help: "Total number of PageRank computations performed.",
	})

	pageRankIterations = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "memgraph_pagerank_iterations",
		Help:    "Number of power-iteration rounds per PageRank computation.",
		Buckets: prometheus.LinearBuckets(1, 5, 10),
	})

	pageRankDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name: "memgraph_pagerank_duration_seconds",
		Help: "Duration of PageRank computations.",
	})

	pageRankNodeCount = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "memgraph_pagerank_node_count",
		Help:    "Node count at the time of each PageRank computation.",
		Buckets: prometheus.ExponentialBuckets(1, 4, 8),
	})

	communityRunsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "memgraph_community_runs_total",
		Help: "Total number of community-detection computations performed.",
	})

	communityCountHist = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "memgraph_community_count",
		Help:    "Distinct community count per detection run.",
		Buckets: prometheus.LinearBuckets(1, 2, 10),
	})

	communityDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name: "memgraph_community_duration_seconds",
		Help: "Duration of community-detection computations.",
	})
)

func recordPageRankRun(iterations, nodeCount int, d time.Duration) {
	pageRankRunsTotal.Inc()
	pageRankIterations.Observe(float64(iterations))
	pageRankNodeCount.Observe(float64(nodeCount))
	pageRankDuration.Observe(d.Seconds())
}

func recordCommunityRun(communityCount, nodeCount int, d time.Duration) {
	_ = nodeCount
	communityRunsTotal.Inc()
	communityCountHist.Observe(float64(communityCount))
	communityDuration.Observe(d.Seconds())
}
