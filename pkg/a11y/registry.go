package a11y

import "sync"

// Registry holds the registered rules in execution order.
//
// Unlike a sorted catalogue, order matters here: findings are emitted in the
// order rules were registered, so Rules returns them in that order.
type Registry struct {
	mu     sync.RWMutex
	order  []string
	byID   map[string]Rule
	byName map[string]Rule
}

// NewRegistry creates an empty rule registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:   make(map[string]Rule),
		byName: make(map[string]Rule),
	}
}

// Register adds a rule to the registry.
// If a rule with the same ID already exists, it is replaced in place and
// keeps its original position.
func (r *Registry) Register(rule Rule) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byID[rule.ID()]; ok {
		delete(r.byName, existing.Name())
	} else {
		r.order = append(r.order, rule.ID())
	}
	r.byID[rule.ID()] = rule
	r.byName[rule.Name()] = rule
}

// Get retrieves a rule by ID or name.
// It tries ID first, then falls back to name lookup.
func (r *Registry) Get(key string) (Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if rule, ok := r.byID[key]; ok {
		return rule, true
	}
	if rule, ok := r.byName[key]; ok {
		return rule, true
	}
	return nil, false
}

// Rules returns all registered rules in execution order.
func (r *Registry) Rules() []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Rule, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.byID[id])
	}
	return result
}

// IDs returns all registered rule IDs in execution order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string(nil), r.order...)
}

// Len returns the number of registered rules.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// DefaultRegistry is the global registry for built-in rules.
// Rules register themselves during init().
//
//nolint:gochecknoglobals // Global registry is intentional for rule registration
var DefaultRegistry = NewRegistry()
