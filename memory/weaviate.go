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
	"errors"
	"fmt"
	"time"

	"github.com/weaviate/weaviate-go-client/v5/weaviate"
	"github.com/weaviate/weaviate-go-client/v5/weaviate/filters"
	"github.com/weaviate/weaviate-go-client/v5/weaviate/graphql"
	"github.com/weaviate/weaviate/entities/models"
)

// EntryClassName is the Weaviate class name entries are stored under.
const EntryClassName = "MemgraphEntry"

// ErrEntryNotFound reports that no object matches a requested ID.
// WeaviateStore.Get does not return it: a missing entry comes back as
// ok=false with a nil error, as BackingStore.Get documents.
var ErrEntryNotFound = errors.New("memory: entry not found")

// WeaviateStore is a BackingStore backed by a Weaviate vector database. It
// only reads; nothing in this package ever writes to it.
type WeaviateStore struct {
	client *weaviate.Client
}

// NewWeaviateStore wraps an already-configured Weaviate client.
func NewWeaviateStore(client *weaviate.Client) (*WeaviateStore, error) {
	if client == nil {
		return nil, errors.New("memory: client must not be nil")
	}
	return &WeaviateStore{client: client}, nil
}

// EntrySchema returns the Weaviate class definition entries are stored
// under. Callers are responsible for creating it once against their
// cluster (e.g. during deployment setup); this package never creates or
// mutates schema itself.
func EntrySchema() *models.Class {
	skipVectorization := true
	return &models.Class{
		Class:       EntryClassName,
		Description: "Memory entries ranked and clustered by the graph core",
		Vectorizer:  "none",
		Properties: []*models.Property{
			{Name: "category", DataType: []string{"text"}, ModuleConfig: map[string]interface{}{
				"text2vec-transformers": map[string]interface{}{"skip": skipVectorization},
			}},
			{Name: "confidence", DataType: []string{"number"}},
			{Name: "accessCount", DataType: []string{"int"}},
			{Name: "createdAt", DataType: []string{"date"}},
			{Name: "references", DataType: []string{"text[]"}},
		},
	}
}

func (s *WeaviateStore) queryFields() []graphql.Field {
	return []graphql.Field{
		{Name: "category"},
		{Name: "confidence"},
		{Name: "accessCount"},
		{Name: "createdAt"},
		{Name: "references"},
		{Name: "_additional", Fields: []graphql.Field{
			{Name: "id"},
			{Name: "vector"},
		}},
	}
}

// Get implements BackingStore.
func (s *WeaviateStore) Get(ctx context.Context, id string) (Entry, bool, error) {
	whereFilter := filters.Where().
		WithPath([]string{"id"}).
		WithOperator(filters.Equal).
		WithValueString(id)

	result, err := s.client.GraphQL().Get().
		WithClassName(EntryClassName).
		WithFields(s.queryFields()...).
		WithWhere(whereFilter).
		WithLimit(1).
		Do(ctx)
	if err != nil {
		return Entry{}, false, fmt.Errorf("memory: querying entry: %w", err)
	}
	if len(result.Errors) > 0 {
		return Entry{}, false, fmt.Errorf("memory: query error: %s", result.Errors[0].Message)
	}

	entries, err := s.parseEntries(result)
	if err != nil {
		return Entry{}, false, err
	}
	if len(entries) == 0 {
		return Entry{}, false, nil
	}
	return entries[0], true, nil
}

// Query implements BackingStore.
func (s *WeaviateStore) Query(ctx context.Context, opts QueryOptions) ([]Entry, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 100
	}

	getter := s.client.GraphQL().Get().
		WithClassName(EntryClassName).
		WithFields(s.queryFields()...).
		WithLimit(limit)

	if opts.Namespace != "" {
		getter = getter.WithWhere(filters.Where().
			WithPath([]string{"category"}).
			WithOperator(filters.Equal).
			WithValueString(opts.Namespace))
	}

	result, err := getter.Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("memory: listing entries: %w", err)
	}
	if len(result.Errors) > 0 {
		return nil, fmt.Errorf("memory: query error: %s", result.Errors[0].Message)
	}
	return s.parseEntries(result)
}

// Search implements BackingStore using Weaviate's nearVector search.
func (s *WeaviateStore) Search(ctx context.Context, embedding []float32, opts SearchOptions) ([]SearchResult, error) {
	k := opts.K
	if k <= 0 {
		k = 20
	}

	nearVector := s.client.GraphQL().NearVectorArgBuilder().
		WithVector(embedding).
		WithCertainty(float32(opts.Threshold))

	fields := []graphql.Field{
		{Name: "category"},
		{Name: "confidence"},
		{Name: "accessCount"},
		{Name: "createdAt"},
		{Name: "references"},
		{Name: "_additional", Fields: []graphql.Field{
			{Name: "id"},
			{Name: "vector"},
			{Name: "certainty"},
		}},
	}

	result, err := s.client.GraphQL().Get().
		WithClassName(EntryClassName).
		WithFields(fields...).
		WithNearVector(nearVector).
		WithLimit(k).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("memory: similarity search: %w", err)
	}
	if len(result.Errors) > 0 {
		return nil, fmt.Errorf("memory: query error: %s", result.Errors[0].Message)
	}

	data, ok := result.Data["Get"].(map[string]interface{})
	if !ok {
		return nil, nil
	}
	objects, ok := data[EntryClassName].([]interface{})
	if !ok {
		return nil, nil
	}

	results := make([]SearchResult, 0, len(objects))
	for _, obj := range objects {
		m, ok := obj.(map[string]interface{})
		if !ok {
			continue
		}
		entry := entryFromMap(m)
		score := 0.0
		if additional, ok := m["_additional"].(map[string]interface{}); ok {
			score = getFloat64(additional, "certainty")
		}
		if score < opts.Threshold {
			continue
		}
		results = append(results, SearchResult{Entry: entry, Score: score})
	}
	return results, nil
}

func (s *WeaviateStore) parseEntries(result *models.GraphQLResponse) ([]Entry, error) {
	data, ok := result.Data["Get"].(map[string]interface{})
	if !ok {
		return nil, nil
	}
	objects, ok := data[EntryClassName].([]interface{})
	if !ok {
		return nil, nil
	}

	entries := make([]Entry, 0, len(objects))
	for _, obj := range objects {
		m, ok := obj.(map[string]interface{})
		if !ok {
			continue // skip malformed objects
		}
		entries = append(entries, entryFromMap(m))
	}
	return entries, nil
}

func entryFromMap(m map[string]interface{}) Entry {
	e := Entry{
		Category:    getString(m, "category"),
		Confidence:  getFloat64(m, "confidence"),
		AccessCount: getInt(m, "accessCount"),
		References:  getStringSlice(m, "references"),
	}

	if additional, ok := m["_additional"].(map[string]interface{}); ok {
		e.ID = getString(additional, "id")
		e.Embedding = getFloat32Slice(additional, "vector")
	}

	if createdStr := getString(m, "createdAt"); createdStr != "" {
		if t, err := time.Parse(time.RFC3339, createdStr); err == nil {
			e.CreatedAt = t
		}
	}
	return e
}

// getString safely extracts a string from a decoded GraphQL object.
func getString(m map[string]interface{}, key string) string {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// getFloat64 safely extracts a float64 from a decoded GraphQL object.
func getFloat64(m map[string]interface{}, key string) float64 {
	if v, ok := m[key]; ok {
		switch n := v.(type) {
		case float64:
			return n
		case float32:
			return float64(n)
		case int:
			return float64(n)
		}
	}
	return 0
}

// getInt safely extracts an int from a decoded GraphQL object.
func getInt(m map[string]interface{}, key string) int {
	if v, ok := m[key]; ok {
		switch n := v.(type) {
		case int:
			return n
		case int64:
			return int(n)
		case float64:
			return int(n)
		}
	}
	return 0
}

// getStringSlice safely extracts a []string from a decoded GraphQL object.
func getStringSlice(m map[string]interface{}, key string) []string {
	v, ok := m[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(v))
	for _, item := range v {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// getFloat32Slice safely extracts a []float32 from a decoded GraphQL object.
func getFloat32Slice(m map[string]interface{}, key string) []float32 {
	v, ok := m[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]float32, 0, len(v))
	for _, item := range v {
		switch n := item.(type) {
		case float64:
			out = append(out, float32(n))
		case float32:
			out = append(out, n)
		}
	}
	return out
}
