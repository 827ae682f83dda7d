// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package memory

import (
	"context"
	"testing"
)

func TestInMemoryStore_GetMissing(t *testing.T) {
	s := NewInMemoryStore()
	_, ok, err := s.Get(context.Background(), "missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected ok=false for missing entry")
	}
}

func TestInMemoryStore_PutThenGet(t *testing.T) {
	s := NewInMemoryStore()
	s.Put(Entry{ID: "a", Category: "pattern"})

	e, ok, err := s.Get(context.Background(), "a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected ok=true")
	}
	if e.Category != "pattern" {
		t.Fatalf("got category %q, want %q", e.Category, "pattern")
	}
}

func TestInMemoryStore_QueryFiltersByNamespace(t *testing.T) {
	s := NewInMemoryStore()
	s.Put(Entry{ID: "a", Category: "bug_fix"})
	s.Put(Entry{ID: "b", Category: "pattern"})
	s.Put(Entry{ID: "c", Category: "bug_fix"})

	results, err := s.Query(context.Background(), QueryOptions{Namespace: "bug_fix"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	for _, e := range results {
		if e.Category != "bug_fix" {
			t.Fatalf("got category %q, want %q", e.Category, "bug_fix")
		}
	}
}

func TestInMemoryStore_QueryRespectsLimit(t *testing.T) {
	s := NewInMemoryStore()
	s.Put(Entry{ID: "a"})
	s.Put(Entry{ID: "b"})
	s.Put(Entry{ID: "c"})

	results, err := s.Query(context.Background(), QueryOptions{Limit: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
}

func TestInMemoryStore_SearchSkipsEntriesWithoutEmbedding(t *testing.T) {
	s := NewInMemoryStore()
	s.Put(Entry{ID: "a"})
	s.Put(Entry{ID: "b", Embedding: []float32{1, 0}})

	results, err := s.Search(context.Background(), []float32{1, 0}, SearchOptions{K: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 || results[0].Entry.ID != "b" {
		t.Fatalf("got %v, want only entry b", results)
	}
}

func TestInMemoryStore_SearchAppliesThresholdAndK(t *testing.T) {
	s := NewInMemoryStore()
	s.Put(Entry{ID: "identical", Embedding: []float32{1, 0}})
	s.Put(Entry{ID: "orthogonal", Embedding: []float32{0, 1}})

	results, err := s.Search(context.Background(), []float32{1, 0}, SearchOptions{K: 10, Threshold: 0.5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 || results[0].Entry.ID != "identical" {
		t.Fatalf("got %v, want only the identical vector above threshold", results)
	}

	limited, err := s.Search(context.Background(), []float32{1, 0}, SearchOptions{K: 1, Threshold: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("got %d results, want K=1 to cap the result set", len(limited))
	}
}

func TestCosineSimilarity_IdenticalVectors(t *testing.T) {
	got := cosineSimilarity([]float32{1, 2, 3}, []float32{1, 2, 3})
	if got < 0.999999 {
		t.Fatalf("got %v, want ~1.0 for identical vectors", got)
	}
}

func TestCosineSimilarity_OrthogonalVectors(t *testing.T) {
	got := cosineSimilarity([]float32{1, 0}, []float32{0, 1})
	if got != 0 {
		t.Fatalf("got %v, want 0 for orthogonal vectors", got)
	}
}

func TestCosineSimilarity_ZeroVectorIsZero(t *testing.T) {
	if got := cosineSimilarity([]float32{0, 0}, []float32{1, 2}); got != 0 {
		t.Fatalf("got %v, want 0 when one operand is a zero vector", got)
	}
	if got := cosineSimilarity([]float32{1, 2}, []float32{0, 0}); got != 0 {
		t.Fatalf("got %v, want 0 when the other operand is a zero vector", got)
	}
}

func TestCosineSimilarity_EmptyVectorIsZero(t *testing.T) {
	if got := cosineSimilarity(nil, []float32{1, 2}); got != 0 {
		t.Fatalf("got %v, want 0 for an empty operand", got)
	}
}

func TestCosineSimilarity_MismatchedDimensionsIsZero(t *testing.T) {
	got := cosineSimilarity([]float32{1, 2}, []float32{1, 2, 3})
	if got != 0 {
		t.Fatalf("got %v, want 0 for mismatched dimensions", got)
	}
}
