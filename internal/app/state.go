// Package app provides application state, events, and lifecycle helpers.
package app

import (
	"fmt"
	"image"
	"sync"

	"pattern-compare/internal/analysis"
	"pattern-compare/internal/imageio"
)

// State holds the host application's state: the loaded comparison subject
// images and the derived analysis artifacts.
type State struct {
	mu sync.RWMutex

	// Loaded subject images
	Original  *imageio.Layer
	Generated *imageio.Layer

	// Additional generated variants for multi-image pattern sets, in load
	// order. Paths key the variant images.
	VariantPaths []string
	Variants     map[string]image.Image

	// Pattern metadata chosen by the user
	PatternType string
	Seamless    bool

	// Difference heatmap, computed on demand
	Heatmap image.Image

	Modified bool

	listeners map[EventType][]EventListener
}

// EventType identifies different application events.
type EventType int

const (
	EventSubjectLoaded EventType = iota
	EventVariantAdded
	EventHeatmapComputed
	EventViewerOpened
	EventViewerClosed
	EventModified
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// NewState creates a new application state.
func NewState() *State {
	return &State{
		Variants:  make(map[string]image.Image),
		listeners: make(map[EventType][]EventListener),
	}
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// SetModified marks the session as modified and emits an event.
func (s *State) SetModified(modified bool) {
	s.mu.Lock()
	s.Modified = modified
	s.mu.Unlock()
	s.Emit(EventModified, modified)
}

// LoadOriginal loads the original image from the specified path.
func (s *State) LoadOriginal(path string) error {
	layer, err := imageio.Load(path)
	if err != nil {
		return fmt.Errorf("load original: %w", err)
	}
	s.mu.Lock()
	s.Original = layer
	s.Heatmap = nil
	s.mu.Unlock()
	s.Emit(EventSubjectLoaded, path)
	return nil
}

// LoadGenerated loads the generated result image from the specified path.
func (s *State) LoadGenerated(path string) error {
	layer, err := imageio.Load(path)
	if err != nil {
		return fmt.Errorf("load generated: %w", err)
	}
	s.mu.Lock()
	s.Generated = layer
	s.Heatmap = nil
	s.mu.Unlock()
	s.Emit(EventSubjectLoaded, path)
	return nil
}

// AddVariant loads an additional generated variant for two-way pattern sets.
func (s *State) AddVariant(path string) error {
	img, err := imageio.LoadImage(path)
	if err != nil {
		return fmt.Errorf("load variant: %w", err)
	}
	s.mu.Lock()
	if _, ok := s.Variants[path]; !ok {
		s.VariantPaths = append(s.VariantPaths, path)
	}
	s.Variants[path] = img
	s.mu.Unlock()
	s.Emit(EventVariantAdded, path)
	return nil
}

// SetPattern records the pattern metadata for the loaded subject.
func (s *State) SetPattern(patternType string, seamless bool) {
	s.mu.Lock()
	s.PatternType = patternType
	s.Seamless = seamless
	s.mu.Unlock()
}

// HasSubject reports whether both comparison images are loaded.
func (s *State) HasSubject() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Original != nil && s.Original.Image != nil &&
		s.Generated != nil && s.Generated.Image != nil
}

// ComputeHeatmap builds the difference heatmap for the loaded subject. The
// result is cached until either image changes.
func (s *State) ComputeHeatmap() (image.Image, error) {
	s.mu.RLock()
	cached := s.Heatmap
	s.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	if !s.HasSubject() {
		return nil, fmt.Errorf("compute heatmap: subject not loaded")
	}

	heatmap, err := analysis.DiffHeatmap(s.Original.Image, s.Generated.Image)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.Heatmap = heatmap
	s.mu.Unlock()
	s.Emit(EventHeatmapComputed, nil)
	return heatmap, nil
}
