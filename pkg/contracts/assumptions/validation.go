package assumptions

import (
	"lucid-schemas/internal/common/validation"
	"lucid-schemas/pkg/schema"
)

const category = "assumptions"

func init() {
	schema.MustRegister(
		func() schema.Record { return &Input{} },
		func() schema.Record { return &Generator{} },
		func() schema.Record { return &GeneratorResponse{} },
	)
}

func optionalString(description string) validation.Property {
	return validation.Property{Type: "string", Nullable: true, Description: description}
}

func (Input) Definition() schema.Definition {
	return schema.Definition{
		Name:        "assumptions_input",
		Category:    category,
		Description: "Company context for the assumption prompts.",
		Mode:        schema.ModeIgnore,
		Schema: validation.JSONSchema{Properties: map[string]validation.Property{
			"date":                         optionalString("The date of the assumptions."),
			"formulas":                     {Description: "The formulas to be used in the assumptions."},
			"sectors":                      {Description: "The sectors the business is involved in, as a string or a list of strings."},
			"freetext":                     optionalString("A conversational description of the business by the client."),
			"location":                     optionalString("The location where the business is located."),
			"products":                     {Description: "Potential products that the company is known to have."},
			"company_stage":                optionalString("The funding stage the company is currently in."),
			"funding_raise":                optionalString("The amount of funding the business has raised."),
			"target_round_funding":         optionalString("The amount of funding the business plans to raise in the future."),
			"raise_next_round_date":        optionalString("The date when the business plans to get funding, as a string."),
			"target_revenue_in_one_year":   optionalString("The revenue the business expects to have in a year."),
			"target_employees_in_one_year": {Description: "The number of employees the business expects to have in a year."},
		}},
		Tags: []string{"input"},
	}
}

func (Generator) Definition() schema.Definition {
	return schema.Definition{
		Name:        "assumptions_generator",
		Category:    category,
		Description: "Formulas, grouped by model name, to generate assumptions for.",
		Mode:        schema.ModeIgnore,
		Schema: validation.JSONSchema{Properties: map[string]validation.Property{
			"date": optionalString("The date of the assumptions."),
			"formulas": {
				Type:        "object",
				Nullable:    true,
				Description: "Formula names keyed by model name.",
			},
		}},
		Tags: []string{"input"},
	}
}

func (GeneratorResponse) Definition() schema.Definition {
	return schema.Definition{
		Name:        "assumptions_generator_response",
		Category:    category,
		Description: "Calculations assumed by the model.",
		Mode:        schema.ModeStrict,
		Schema: validation.JSONSchema{Properties: map[string]validation.Property{
			"calculations": {
				Type:        "array",
				Nullable:    true,
				Description: "The calculations that are assumed by the model.",
				Items: &validation.Property{
					Type: "object",
					Properties: map[string]validation.Property{
						"key":   optionalString("The key of the calculation."),
						"value": optionalString("The value of the calculation."),
					},
				},
			},
		}},
		Tags: []string{"response", "strict"},
	}
}
