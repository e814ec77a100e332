// Package command holds command descriptors and the registry that binds
// them to handlers.
package command

import "sync"

type entry[H any] struct {
	descriptor Descriptor
	handler    H
	visible    bool
}

// Registry maps command names to descriptors and handlers.
// Registration order is kept and drives menu order.
type Registry[H any] struct {
	mu      sync.RWMutex
	entries map[string]*entry[H]
	order   []string
}

func NewRegistry[H any]() *Registry[H] {
	return &Registry[H]{
		entries: make(map[string]*entry[H]),
	}
}

// Register binds handler to d. Names are never overwritten, and a descriptor
// not built by NewDescriptor fails with *InvalidNameError.
func (r *Registry[H]) Register(d Descriptor, handler H, visible bool) error {
	if !nameRe.MatchString(d.Name()) {
		return &InvalidNameError{Name: d.Name()}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[d.Name()]; exists {
		return &DuplicateNameError{Name: d.Name()}
	}
	r.entries[d.Name()] = &entry[H]{descriptor: d, handler: handler, visible: visible}
	r.order = append(r.order, d.Name())
	return nil
}

func (r *Registry[H]) Resolve(name string) (H, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[name]
	if !ok {
		var zero H
		return zero, &NotFoundError{Name: name}
	}
	return e.handler, nil
}

// VisibleDescriptors returns the descriptors flagged visible, in registration order.
// Every call returns a new slice.
func (r *Registry[H]) VisibleDescriptors() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Descriptor, 0, len(r.order))
	for _, name := range r.order {
		if e := r.entries[name]; e.visible {
			out = append(out, e.descriptor)
		}
	}
	return out
}

// Descriptors returns every registered descriptor in registration order.
func (r *Registry[H]) Descriptors() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Descriptor, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.entries[name].descriptor)
	}
	return out
}

func (r *Registry[H]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
