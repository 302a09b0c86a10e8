package addon

import (
	"fmt"
	"sort"

	"github.com/Aspecky/better-parenting/internal/ops"
)

// Registry holds operators by their namespaced id. The host would own this;
// the addon only adds and removes its own operators through Install.
type Registry struct {
	byID map[string]ops.Operator
}

// NewRegistry returns an empty operator registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]ops.Operator)}
}

// Register adds an operator under its id. Registering an id twice is an
// error; unregistration must happen first.
func (r *Registry) Register(op ops.Operator) error {
	id := op.ID()
	if _, ok := r.byID[id]; ok {
		return fmt.Errorf("register: operator %q already registered", id)
	}
	r.byID[id] = op
	return nil
}

// Unregister removes the operator with the given id. Unknown ids are a
// no-op, so teardown is safe to run after a partial setup.
func (r *Registry) Unregister(id string) {
	delete(r.byID, id)
}

// Lookup returns the operator registered under id.
func (r *Registry) Lookup(id string) (ops.Operator, bool) {
	op, ok := r.byID[id]
	return op, ok
}

// Operators returns all registered operators in id order.
func (r *Registry) Operators() []ops.Operator {
	ids := make([]string, 0, len(r.byID))
	for id := range r.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]ops.Operator, len(ids))
	for i, id := range ids {
		out[i] = r.byID[id]
	}
	return out
}
