package core

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

var (
	registry   = make(map[Category]CategorySchema)
	registryMu sync.RWMutex
)

// Register adds a category schema to the registry.
// Panics if the category is already registered or has no markers.
func Register(schema CategorySchema) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if schema.Category == "" || schema.Category == CategoryUnknown {
		panic(fmt.Sprintf("invalid category: %q", schema.Category))
	}
	if _, exists := registry[schema.Category]; exists {
		panic(fmt.Sprintf("category already registered: %s", schema.Category))
	}
	if len(schema.Markers) == 0 {
		panic(fmt.Sprintf("category %s has no markers", schema.Category))
	}

	// Markers are compared against lowercased headers
	markers := make([]Marker, len(schema.Markers))
	for i, m := range schema.Markers {
		markers[i] = Marker{Kind: m.Kind, Token: strings.ToLower(m.Token)}
	}
	schema.Markers = markers

	registry[schema.Category] = schema
}

// Get returns a category schema by category.
// Returns false if not found.
func Get(cat Category) (CategorySchema, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	schema, ok := registry[cat]
	return schema, ok
}

// All returns all registered category schemas.
// Sorted by priority then by category for consistent detection order.
func All() []CategorySchema {
	registryMu.RLock()
	defer registryMu.RUnlock()

	result := make([]CategorySchema, 0, len(registry))
	for _, schema := range registry {
		result = append(result, schema)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Priority != result[j].Priority {
			return result[i].Priority < result[j].Priority
		}
		return result[i].Category < result[j].Category
	})

	return result
}

// SchemaCount returns the number of registered categories.
func SchemaCount() int {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return len(registry)
}

// Clear removes all registered schemas.
// Primarily useful for testing.
func Clear() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[Category]CategorySchema)
}
