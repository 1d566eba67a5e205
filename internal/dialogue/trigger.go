package dialogue

import (
	"log/slog"
	"sort"
	"sync"
)

// Trigger receives the named side effects embedded in dialogue lines.
type Trigger interface {
	Fire(name string, line *Line)
}

// TriggerFunc adapts a function to Trigger.
type TriggerFunc func(name string, line *Line)

// Fire calls f.
func (f TriggerFunc) Fire(name string, line *Line) { f(name, line) }

// Registry dispatches triggers by name. Unknown names are logged and dropped.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]TriggerFunc
	logger   *slog.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		handlers: make(map[string]TriggerFunc),
		logger:   logger,
	}
}

// Register installs fn for name, replacing any previous handler.
func (r *Registry) Register(name string, fn TriggerFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[name] = fn
}

// Names returns the registered trigger names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Fire runs the handler registered for name.
func (r *Registry) Fire(name string, line *Line) {
	r.mu.RLock()
	fn, ok := r.handlers[name]
	r.mu.RUnlock()
	if !ok {
		r.logger.Warn("unknown dialogue trigger", "trigger", name)
		return
	}
	fn(name, line)
}
