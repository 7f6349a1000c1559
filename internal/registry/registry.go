// Package registry provides a global registry for brick layouts.
// Layouts register themselves in init() functions, allowing the CLI and the
// hosts to discover and build them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/pong-bricks/internal/arena"
)

// Layout is a named, fixed set of bricks an arena session starts with.
type Layout interface {
	// ID returns a unique identifier (e.g., "classic", "wall").
	// Used for CLI flags, config files and session history.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Bricks returns a fresh copy of the layout's bricks in declaration
	// order. Declaration order is collision order.
	Bricks() []arena.Brick
}

// LayoutInfo contains metadata about a registered layout.
type LayoutInfo struct {
	ID     string
	Title  string
	Bricks int
}

// Factory is a function that creates a layout.
type Factory func() Layout

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]LayoutInfo)
	mu        sync.RWMutex
)

// Register adds a layout factory to the registry.
// Typically called from a layout's init() function.
// Panics if a layout with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: layout %q already registered", id))
	}

	factories[id] = f

	l := f()
	infos[id] = LayoutInfo{
		ID:     id,
		Title:  l.Title(),
		Bricks: len(l.Bricks()),
	}
}

// List returns information about all registered layouts, sorted by ID.
func List() []LayoutInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]LayoutInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create builds a layout by its ID.
// Returns an error if the ID is not registered.
func Create(id string) (Layout, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown layout %q", id)
	}

	return f(), nil
}

// Exists checks if a layout with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
