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

import "github.com/AleutianAI/memgraph/logging"

// CommunityAlgorithm selects the community-detection strategy.
type CommunityAlgorithm int

const (
	// AlgorithmLabelPropagation is the only fully implemented algorithm:
	// weighted asynchronous label propagation with randomised tie-breaking.
	AlgorithmLabelPropagation CommunityAlgorithm = iota

	// AlgorithmLouvain is accepted for configuration compatibility but
	// DetectCommunities runs label propagation regardless of the selected
	// algorithm.
	AlgorithmLouvain
)

// String returns the configuration name for a.
func (a CommunityAlgorithm) String() string {
	switch a {
	case AlgorithmLouvain:
		return "louvain"
	default:
		return "label-propagation"
	}
}

// Default configuration values.
const (
	DefaultSimilarityThreshold = 0.8
	DefaultPageRankDamping     = 0.85
	DefaultPageRankIterations  = 50
	DefaultPageRankConvergence = 1e-6
	DefaultMaxNodes            = 5000
	DefaultEnableAutoEdges     = true
	DefaultSimilarityK         = 20
	DefaultBlendAlpha          = 0.7
	maxLabelPropagationRounds  = 20
)

// Config configures a Graph's capacity, algorithm parameters, and edge
// builder behaviour.
type Config struct {
	// SimilarityThreshold is the minimum score a similarity search result
	// must meet to become a "similar" edge. Default: 0.8
	SimilarityThreshold float64

	// PageRankDamping is the probability of following an edge rather than
	// jumping uniformly at random. Default: 0.85
	PageRankDamping float64

	// PageRankIterations bounds the power-iteration loop. Default: 50
	PageRankIterations int

	// PageRankConvergence is the max-delta threshold that stops iteration
	// early. Default: 1e-6
	PageRankConvergence float64

	// MaxNodes caps the number of nodes the graph will hold. Default: 5000
	MaxNodes int

	// EnableAutoEdges gates whether BuildFromEntries also issues
	// similarity-search edges per entry, in addition to reference edges.
	// Default: true
	EnableAutoEdges bool

	// CommunityAlgorithm selects the clustering strategy. Default:
	// AlgorithmLabelPropagation
	CommunityAlgorithm CommunityAlgorithm

	// Logger receives debug/info logging for soft no-ops and completed
	// operations. Default: logging.Default()
	Logger *logging.Logger
}

// DefaultConfig returns sensible defaults matching the values named above.
func DefaultConfig() Config {
	return Config{
		SimilarityThreshold: DefaultSimilarityThreshold,
		PageRankDamping:     DefaultPageRankDamping,
		PageRankIterations:  DefaultPageRankIterations,
		PageRankConvergence: DefaultPageRankConvergence,
		MaxNodes:            DefaultMaxNodes,
		EnableAutoEdges:     DefaultEnableAutoEdges,
		CommunityAlgorithm:  AlgorithmLabelPropagation,
		Logger:              logging.Default(),
	}
}

// Option is a functional option for configuring a Graph at construction.
type Option func(*Config)

// WithSimilarityThreshold sets the minimum similarity score for auto-edges.
func WithSimilarityThreshold(threshold float64) Option {
	return func(c *Config) { c.SimilarityThreshold = threshold }
}

// WithPageRankDamping sets the PageRank damping factor.
func WithPageRankDamping(d float64) Option {
	return func(c *Config) { c.PageRankDamping = d }
}

// WithPageRankIterations sets the maximum PageRank iteration count.
func WithPageRankIterations(n int) Option {
	return func(c *Config) { c.PageRankIterations = n }
}

// WithPageRankConvergence sets the PageRank convergence tolerance.
func WithPageRankConvergence(tau float64) Option {
	return func(c *Config) { c.PageRankConvergence = tau }
}

// WithMaxNodes sets the maximum number of nodes the graph can hold.
func WithMaxNodes(n int) Option {
	return func(c *Config) { c.MaxNodes = n }
}

// WithEnableAutoEdges toggles whether BuildFromEntries also adds
// similarity edges.
func WithEnableAutoEdges(enabled bool) Option {
	return func(c *Config) { c.EnableAutoEdges = enabled }
}

// WithCommunityAlgorithm selects the community-detection algorithm.
func WithCommunityAlgorithm(alg CommunityAlgorithm) Option {
	return func(c *Config) { c.CommunityAlgorithm = alg }
}

// WithLogger sets the logger used for soft no-ops and completed operations.
func WithLogger(logger *logging.Logger) Option {
	return func(c *Config) { c.Logger = logger }
}
