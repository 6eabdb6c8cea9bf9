// pkg/registry/registry.go
package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"lucid-schemas/pkg/schema"
)

// Build renders defs as a registry document stamped with version and now.
func Build(defs []schema.Definition, version string, now time.Time) *ContractRegistry {
	reg := &ContractRegistry{
		Version:     version,
		LastUpdated: now.Format(time.RFC3339),
		Contracts:   make([]Contract, 0, len(defs)),
	}
	for _, def := range defs {
		reg.Contracts = append(reg.Contracts, Contract{
			ID:             def.Name,
			DisplayName:    displayName(def.Name),
			Description:    def.Description,
			Category:       def.Category,
			Mode:           def.Mode.String(),
			Schema:         def.JSONSchema().Document(),
			EmbeddedFields: nonNil(def.Embedded),
			Tags:           nonNil(def.Tags),
		})
	}
	return reg
}

func displayName(id string) string {
	words := strings.Split(id, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

func LoadRegistry(path string) (*ContractRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var reg ContractRegistry
	err = json.Unmarshal(data, &reg)
	return &reg, err
}

// Save writes reg as indented JSON, creating the directory if needed.
func Save(reg *ContractRegistry, path string) error {
	data, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal registry: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write registry file: %w", err)
	}
	return nil
}

// Validate checks that every contract is named, categorized, moded and unique.
func (r *ContractRegistry) Validate() error {
	if len(r.Contracts) == 0 {
		return fmt.Errorf("registry contains no contracts")
	}
	ids := make(map[string]bool)
	for _, c := range r.Contracts {
		if c.ID == "" {
			return fmt.Errorf("contract missing required field: ID")
		}
		if ids[c.ID] {
			return fmt.Errorf("duplicate contract ID: %s", c.ID)
		}
		ids[c.ID] = true

		if c.Category == "" {
			return fmt.Errorf("contract %s missing required field: Category", c.ID)
		}
		if _, err := schema.ParseMode(c.Mode); err != nil || c.Mode == "" {
			return fmt.Errorf("contract %s has invalid mode %q", c.ID, c.Mode)
		}
		if c.Schema == nil {
			return fmt.Errorf("contract %s missing required field: Schema", c.ID)
		}
	}
	return nil
}

// Diff lists the contracts that were added, removed or changed going from
// stored to current. Version and timestamp are ignored.
func Diff(stored, current *ContractRegistry) ([]string, error) {
	before, err := fingerprints(stored)
	if err != nil {
		return nil, err
	}
	after, err := fingerprints(current)
	if err != nil {
		return nil, err
	}

	var changes []string
	for id, fp := range after {
		old, ok := before[id]
		switch {
		case !ok:
			changes = append(changes, "added: "+id)
		case old != fp:
			changes = append(changes, "changed: "+id)
		}
	}
	for id := range before {
		if _, ok := after[id]; !ok {
			changes = append(changes, "removed: "+id)
		}
	}
	sort.Strings(changes)
	return changes, nil
}

// fingerprints encodes each contract through a generic map so that values
// read back from disk compare equal to freshly built ones.
func fingerprints(reg *ContractRegistry) (map[string]string, error) {
	out := make(map[string]string, len(reg.Contracts))
	for _, c := range reg.Contracts {
		data, err := json.Marshal(c)
		if err != nil {
			return nil, fmt.Errorf("contract %s: %w", c.ID, err)
		}
		var generic map[string]interface{}
		if err := json.Unmarshal(data, &generic); err != nil {
			return nil, fmt.Errorf("contract %s: %w", c.ID, err)
		}
		canonical, err := json.Marshal(generic)
		if err != nil {
			return nil, fmt.Errorf("contract %s: %w", c.ID, err)
		}
		out[c.ID] = string(canonical)
	}
	return out, nil
}
