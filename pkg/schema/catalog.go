package schema

import (
	"fmt"
	"sort"
	"sync"

	"lucid-schemas/internal/common/errors"
	"lucid-schemas/internal/common/validation"
)

// Factory returns a new, empty record.
type Factory func() Record

var (
	catalogMu sync.RWMutex
	catalog   = map[string]Factory{}
)

// Register makes a record type available by name. The definition must have a
// name and a schema that compiles.
func Register(factory Factory) error {
	def := factory().Definition()
	if def.Name == "" {
		return errors.NewSchemaDefinitionError("", fmt.Errorf("definition has no name"))
	}
	if _, err := validation.Compile(def.JSONSchema()); err != nil {
		return errors.NewSchemaDefinitionError(def.Name, err)
	}

	catalogMu.Lock()
	defer catalogMu.Unlock()
	if _, exists := catalog[def.Name]; exists {
		return errors.NewSchemaDefinitionError(def.Name, fmt.Errorf("already registered"))
	}
	catalog[def.Name] = factory
	return nil
}

// MustRegister is Register for package init; it panics on error.
func MustRegister(factories ...Factory) {
	for _, f := range factories {
		if err := Register(f); err != nil {
			panic(err)
		}
	}
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, bool) {
	catalogMu.RLock()
	defer catalogMu.RUnlock()
	f, ok := catalog[name]
	return f, ok
}

// Definitions returns every registered definition ordered by category, then name.
func Definitions() []Definition {
	catalogMu.RLock()
	defs := make([]Definition, 0, len(catalog))
	for _, f := range catalog {
		defs = append(defs, f().Definition())
	}
	catalogMu.RUnlock()

	sort.Slice(defs, func(i, j int) bool {
		if defs[i].Category != defs[j].Category {
			return defs[i].Category < defs[j].Category
		}
		return defs[i].Name < defs[j].Name
	})
	return defs
}
