package salary

import (
	"lucid-schemas/internal/common/validation"
	"lucid-schemas/pkg/schema"
)

func init() {
	schema.MustRegister(
		func() schema.Record { return &GeneratorRequest{} },
		func() schema.Record { return &GeneratorResponse{} },
	)
}

func (GeneratorRequest) Definition() schema.Definition {
	return schema.Definition{
		Name:        "salary_generator_request",
		Category:    "salary",
		Description: "Positions that need to be filled with salaries.",
		Mode:        schema.ModeStrict,
		Schema: validation.JSONSchema{
			Required: []string{"positions"},
			Properties: map[string]validation.Property{
				"positions": {
					Type:        "array",
					Description: "The positions that need to be filled with salaries.",
					Items: &validation.Property{
						Type:     "object",
						Required: []string{"id", "role", "department", "geo_location"},
						Properties: map[string]validation.Property{
							"id":           {Description: "The ID of the employee."},
							"role":         {Type: "string", Nullable: true, Description: "The role of the employee."},
							"department":   {Description: "The department of the employee."},
							"geo_location": {Description: "The geo location of the employee."},
						},
					},
				},
			},
		},
		Tags: []string{"input", "strict"},
	}
}

func (GeneratorResponse) Definition() schema.Definition {
	return schema.Definition{
		Name:        "salary_generator_response",
		Category:    "salary",
		Description: "Salaries assigned to positions.",
		Mode:        schema.ModeStrict,
		Schema: validation.JSONSchema{
			Required: []string{"positions"},
			Properties: map[string]validation.Property{
				"positions": {
					Type:        "array",
					Description: "The positions that are being filled with salaries.",
					Items: &validation.Property{
						Type: "object",
						Properties: map[string]validation.Property{
							"id":            {Description: "The ID of the employee.", Default: 0},
							"yearly_salary": {Description: "The yearly salary of the employee.", Default: 0},
						},
					},
				},
			},
		},
		Tags: []string{"response", "strict"},
	}
}
