// Package registry provides a global registry for course factories.
// Courses register themselves in init() functions, allowing front-ends
// to discover and build courses without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// ErrUnknownCourse is returned when a course ID is not registered.
var ErrUnknownCourse = errors.New("unknown course")

// Factory builds the ordered obstacle pairs of a course.
// The same configuration and seed must always produce the same pairs.
type Factory func(cfg config.FlappyConfig, seed int64) ([]config.PairConfig, error)

// CourseInfo contains metadata about a registered course.
type CourseInfo struct {
	ID    string
	Title string
}

type entry struct {
	title   string
	factory Factory
}

var (
	courses = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a course factory to the registry.
// Typically called from an init() function.
// Panics if a course with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := courses[id]; exists {
		panic(fmt.Sprintf("registry: course %q already registered", id))
	}

	courses[id] = entry{title: title, factory: f}
}

// List returns information about all registered courses, sorted by ID.
func List() []CourseInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]CourseInfo, 0, len(courses))
	for id, e := range courses {
		result = append(result, CourseInfo{
			ID:    id,
			Title: e.title,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Build runs the factory registered under id.
func Build(id string, cfg config.FlappyConfig, seed int64) ([]config.PairConfig, error) {
	mu.RLock()
	e, ok := courses[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: %w %q", ErrUnknownCourse, id)
	}

	pairs, err := e.factory(cfg, seed)
	if err != nil {
		return nil, fmt.Errorf("registry: build course %q: %w", id, err)
	}
	return pairs, nil
}

// Exists checks if a course with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := courses[id]
	return ok
}
