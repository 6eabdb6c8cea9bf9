package validation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// JSONSchema defines the structure of a record payload.
type JSONSchema struct {
	Type                 string              `json:"type"`
	Properties           map[string]Property `json:"properties"`
	Required             []string            `json:"required,omitempty"`
	AdditionalProperties bool                `json:"additionalProperties"`
}

// Property describes one member. An empty Type accepts any JSON value; the
// typed decode that follows is responsible for scalar conversion.
type Property struct {
	Type                 string              `json:"type,omitempty"`
	Description          string              `json:"description,omitempty"`
	Default              interface{}         `json:"default,omitempty"`
	Nullable             bool                `json:"nullable,omitempty"`
	Items                *Property           `json:"items,omitempty"`      // For array validation
	Properties           map[string]Property `json:"properties,omitempty"` // For nested objects
	Required             []string            `json:"required,omitempty"`   // For nested objects
	AdditionalProperties *bool               `json:"additionalProperties,omitempty"`
}

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

const (
	CodeRequiredFieldMissing = "REQUIRED_FIELD_MISSING"
	CodeExtraField           = "EXTRA_FIELD"
	CodeInvalidType          = "INVALID_TYPE"
)

// Bool returns a pointer to b, for Property.AdditionalProperties.
func Bool(b bool) *bool {
	return &b
}

// Document renders the schema as a JSON Schema (draft 7) document.
func (s JSONSchema) Document() map[string]interface{} {
	doc := map[string]interface{}{
		"$schema":              "http://json-schema.org/draft-07/schema#",
		"type":                 "object",
		"properties":           propertiesDocument(s.Properties),
		"additionalProperties": s.AdditionalProperties,
	}
	if len(s.Required) > 0 {
		doc["required"] = stringsToInterfaces(s.Required)
	}
	return doc
}

func (p Property) document() map[string]interface{} {
	doc := map[string]interface{}{}
	if p.Type != "" {
		if p.Nullable {
			doc["type"] = []interface{}{p.Type, "null"}
		} else {
			doc["type"] = p.Type
		}
	}
	if p.Description != "" {
		doc["description"] = p.Description
	}
	if p.Default != nil {
		doc["default"] = p.Default
	}
	if p.Items != nil {
		doc["items"] = p.Items.document()
	}
	if p.Properties != nil {
		doc["properties"] = propertiesDocument(p.Properties)
	}
	if len(p.Required) > 0 {
		doc["required"] = stringsToInterfaces(p.Required)
	}
	if p.AdditionalProperties != nil {
		doc["additionalProperties"] = *p.AdditionalProperties
	}
	return doc
}

func propertiesDocument(props map[string]Property) map[string]interface{} {
	out := make(map[string]interface{}, len(props))
	for name, prop := range props {
		out[name] = prop.document()
	}
	return out
}

func stringsToInterfaces(in []string) []interface{} {
	out := make([]interface{}, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}

// CompiledSchema is a JSONSchema compiled once and reused across documents.
type CompiledSchema struct {
	schema *gojsonschema.Schema
}

// Compile compiles the schema document with gojsonschema.
func Compile(s JSONSchema) (*CompiledSchema, error) {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(s.Document()))
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return &CompiledSchema{schema: compiled}, nil
}

// Validate checks a decoded JSON document (maps, slices, scalars).
func (c *CompiledSchema) Validate(document interface{}) (*ValidationResult, error) {
	result, err := c.schema.Validate(gojsonschema.NewGoLoader(document))
	if err != nil {
		return nil, fmt.Errorf("validate document: %w", err)
	}

	out := &ValidationResult{Valid: result.Valid()}
	for _, desc := range result.Errors() {
		out.Errors = append(out.Errors, ValidationError{
			Field:   fieldPath(desc),
			Message: desc.Description(),
			Code:    errorCode(desc.Type()),
		})
	}
	return out, nil
}

func errorCode(resultType string) string {
	switch resultType {
	case "required":
		return CodeRequiredFieldMissing
	case "additional_property_not_allowed":
		return CodeExtraField
	case "invalid_type":
		return CodeInvalidType
	default:
		return strings.ToUpper(resultType)
	}
}

// fieldPath joins the error context with the offending property so required
// and additional-property errors name the member itself.
func fieldPath(desc gojsonschema.ResultError) string {
	field := ""
	if ctx := desc.Context(); ctx != nil {
		field = strings.TrimPrefix(strings.TrimPrefix(ctx.String(), "(root)"), ".")
	}
	prop, _ := desc.Details()["property"].(string)
	switch {
	case prop == "":
		return field
	case field == "":
		return prop
	case field == prop || strings.HasSuffix(field, "."+prop):
		return field
	default:
		return field + "." + prop
	}
}

// GetErrorMessages returns a simple list of error messages
func (vr *ValidationResult) GetErrorMessages() []string {
	messages := make([]string, len(vr.Errors))
	for i, err := range vr.Errors {
		messages[i] = fmt.Sprintf("%s: %s", err.Field, err.Message)
	}
	return messages
}

// FieldsWithCode returns the sorted, de-duplicated fields carrying code.
func (vr *ValidationResult) FieldsWithCode(code string) []string {
	seen := map[string]bool{}
	var fields []string
	for _, err := range vr.Errors {
		if err.Code == code && !seen[err.Field] {
			seen[err.Field] = true
			fields = append(fields, err.Field)
		}
	}
	sort.Strings(fields)
	return fields
}
