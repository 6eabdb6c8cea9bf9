package schema

import (
	"lucid-schemas/internal/common/validation"
)

// Definition describes one record type: its wire name, construction mode and
// the structural JSON Schema its payloads are checked against.
type Definition struct {
	Name        string
	Category    string
	Description string
	Mode        Mode
	Schema      validation.JSONSchema
	// Embedded lists top-level members whose string value holds JSON text that
	// is parsed before any other check runs. Only objects and arrays replace
	// the string; JSON text of a scalar is kept as written.
	Embedded []string
	Tags     []string
}

// Record is implemented by every contract type.
type Record interface {
	Definition() Definition
	Normalize(n *Normalizer) error
}

// JSONSchema returns the structural schema with additionalProperties filled in
// from the mode. Nested objects that set it explicitly keep their value.
func (d Definition) JSONSchema() validation.JSONSchema {
	allow := d.Mode != ModeStrict
	out := d.Schema
	out.Type = "object"
	out.AdditionalProperties = allow
	out.Properties = applyMode(d.Schema.Properties, allow)
	return out
}

func applyMode(props map[string]validation.Property, allow bool) map[string]validation.Property {
	if props == nil {
		return nil
	}
	out := make(map[string]validation.Property, len(props))
	for name, p := range props {
		out[name] = applyModeProperty(p, allow)
	}
	return out
}

func applyModeProperty(p validation.Property, allow bool) validation.Property {
	if p.Items != nil {
		items := applyModeProperty(*p.Items, allow)
		p.Items = &items
	}
	if p.Type == "object" && p.Properties != nil {
		p.Properties = applyMode(p.Properties, allow)
		if p.AdditionalProperties == nil {
			p.AdditionalProperties = validation.Bool(allow)
		}
	}
	return p
}
