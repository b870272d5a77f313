package graph

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Factory builds an operator instance from its serialised parameters.
type Factory func(name string, params json.RawMessage) (Operator, error)

// Registry maps operator type tags to their factories. Persistence
// consults it to reinstantiate nodes from serialised graphs; the shipped
// operator set registers once at construction, not via package side
// effects.
type Registry struct {
	factories map[string]Factory
}

var errDuplicateType = errors.New("graph: duplicate operator type")

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory for the given operator type.
func (r *Registry) Register(opType string, factory Factory) error {
	if opType == "" {
		return errors.New("graph: empty operator type")
	}

	if factory == nil {
		return errors.New("graph: nil factory")
	}

	if _, exists := r.factories[opType]; exists {
		return fmt.Errorf("%w: %s", errDuplicateType, opType)
	}

	r.factories[opType] = factory

	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(opType string, factory Factory) {
	err := r.Register(opType, factory)
	if err != nil {
		panic("graph registry: " + err.Error())
	}
}

// Lookup returns the factory for the given operator type, or nil.
func (r *Registry) Lookup(opType string) Factory {
	return r.factories[opType]
}
