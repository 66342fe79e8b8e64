// Package registry keeps the catalogue of showcased widgets: their names,
// categories, documented props and demo notes. The server builds its index
// and per-component pages from it.
package registry

import (
	"sort"
	"sync"
	"time"

	"github.com/mayura-ui/mayura/internal/errors"
)

// watcherBuffer is the capacity of each Watch channel. Events beyond it are
// dropped for that watcher.
const watcherBuffer = 100

// ComponentRegistry manages all showcased components
type ComponentRegistry struct {
	components map[string]*ComponentInfo
	mutex      sync.RWMutex
	watchers   []chan ComponentEvent
}

// ComponentInfo holds metadata about a widget
type ComponentInfo struct {
	Name        string     `json:"name" yaml:"name"`
	Category    string     `json:"category" yaml:"category"`
	Description string     `json:"description" yaml:"description"`
	Props       []PropInfo `json:"props,omitempty" yaml:"props,omitempty"`
	Examples    []string   `json:"examples,omitempty" yaml:"examples,omitempty"`
}

// PropInfo describes a widget prop
type PropInfo struct {
	Name        string `json:"name" yaml:"name"`
	Type        string `json:"type" yaml:"type"`
	Default     string `json:"default,omitempty" yaml:"default,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// ComponentEvent represents a change in the component registry
type ComponentEvent struct {
	Type      EventType
	Component *ComponentInfo
	Timestamp time.Time
}

// EventType represents the type of component event
type EventType int

const (
	EventTypeAdded EventType = iota
	EventTypeUpdated
	EventTypeRemoved
)

func (t EventType) String() string {
	switch t {
	case EventTypeAdded:
		return "added"
	case EventTypeUpdated:
		return "updated"
	case EventTypeRemoved:
		return "removed"
	}
	return "unknown"
}

// NewComponentRegistry creates a new component registry
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		components: make(map[string]*ComponentInfo),
		watchers:   make([]chan ComponentEvent, 0),
	}
}

// Register adds or updates a component in the registry
func (r *ComponentRegistry) Register(component *ComponentInfo) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	eventType := EventTypeAdded
	if _, exists := r.components[component.Name]; exists {
		eventType = EventTypeUpdated
	}

	r.components[component.Name] = component
	r.notify(ComponentEvent{Type: eventType, Component: component, Timestamp: time.Now()})
}

// notify fans out without blocking; the caller holds the lock.
func (r *ComponentRegistry) notify(event ComponentEvent) {
	for _, watcher := range r.watchers {
		select {
		case watcher <- event:
		default:
		}
	}
}

// Get retrieves a component by name
func (r *ComponentRegistry) Get(name string) (*ComponentInfo, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	component, exists := r.components[name]
	return component, exists
}

// Lookup is Get with a not-found error that suggests similar names.
func (r *ComponentRegistry) Lookup(name string) (*ComponentInfo, error) {
	if c, ok := r.Get(name); ok {
		return c, nil
	}
	return nil, errors.ErrComponentNotFound(name, r.Names())
}

// GetAll returns all registered components sorted by name
func (r *ComponentRegistry) GetAll() []*ComponentInfo {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	result := make([]*ComponentInfo, 0, len(r.components))
	for _, component := range r.components {
		result = append(result, component)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

// Names returns the sorted component names.
func (r *ComponentRegistry) Names() []string {
	all := r.GetAll()
	names := make([]string, len(all))
	for i, c := range all {
		names[i] = c.Name
	}
	return names
}

// ByCategory groups components by category, each group sorted by name.
func (r *ComponentRegistry) ByCategory() map[string][]*ComponentInfo {
	out := make(map[string][]*ComponentInfo)
	for _, c := range r.GetAll() {
		out[c.Category] = append(out[c.Category], c)
	}
	return out
}

// Suggest returns up to three registered names close to name.
func (r *ComponentRegistry) Suggest(name string) []string {
	return errors.Suggest(name, r.Names(), 3)
}

// Remove removes a component from the registry
func (r *ComponentRegistry) Remove(name string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	component, exists := r.components[name]
	if !exists {
		return
	}

	delete(r.components, name)
	r.notify(ComponentEvent{Type: EventTypeRemoved, Component: component, Timestamp: time.Now()})
}

// Watch returns a channel that receives component events
func (r *ComponentRegistry) Watch() <-chan ComponentEvent {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	ch := make(chan ComponentEvent, watcherBuffer)
	r.watchers = append(r.watchers, ch)
	return ch
}

// UnWatch removes a watcher channel and closes it
func (r *ComponentRegistry) UnWatch(ch <-chan ComponentEvent) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for i, watcher := range r.watchers {
		if watcher == ch {
			close(watcher)
			r.watchers = append(r.watchers[:i], r.watchers[i+1:]...)
			break
		}
	}
}

// Count returns the number of registered components
func (r *ComponentRegistry) Count() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return len(r.components)
}
