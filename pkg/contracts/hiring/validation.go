package hiring

import (
	"lucid-schemas/internal/common/validation"
	"lucid-schemas/pkg/schema"
)

const category = "hiring"

func init() {
	schema.MustRegister(
		func() schema.Record { return &Position{} },
		func() schema.Record { return &PositionList{} },
		func() schema.Record { return &HiringGenerate{} },
		func() schema.Record { return &HiringUpdate{} },
		func() schema.Record { return &HiringIncreaseUpdate{} },
		func() schema.Record { return &MultiCurrencyModifyEmployees{} },
		func() schema.Record { return &GenerateOutput{} },
		func() schema.Record { return &HiringDecreaseResponse{} },
		func() schema.Record { return &PromptType{} },
		func() schema.Record { return &PromptTypeResponse{} },
	)
}

func optionalString(description string) validation.Property {
	return validation.Property{Type: "string", Nullable: true, Description: description}
}

// PositionProperties describes a Position. Scalars are left untyped so the
// typed decode can coerce numeric strings.
func PositionProperties() map[string]validation.Property {
	return map[string]validation.Property{
		"id":            {Description: "The ID of the employee."},
		"role":          optionalString("The role of the employee."),
		"bonus":         {Description: "The yearly bonus of the employee."},
		"full_name":     optionalString("The full name of the employee."),
		"department":    {Description: "The department of the employee: G&A, R&D, S&M or COGS."},
		"start_date":    optionalString("The start date of the employee."),
		"geo_location":  {Description: "The geo location of the employee."},
		"yearly_salary": {Description: "The yearly salary of the employee."},
	}
}

func positionsProperty(description string) validation.Property {
	return validation.Property{
		Type:        "array",
		Nullable:    true,
		Description: description,
		Items:       &validation.Property{Type: "object", Properties: PositionProperties()},
	}
}

func hiringGenerateProperties() map[string]validation.Property {
	return map[string]validation.Property{
		"sectors":  optionalString("The sector of the company."),
		"balance":  {Description: "The balance of the company, as a number or a string."},
		"location": optionalString("The country of the company."),
		"stage":    optionalString("The stage that the company is in."),
		"freetext": optionalString("The user input regarding the request."),
	}
}

func (Position) Definition() schema.Definition {
	return schema.Definition{
		Name:        "position",
		Category:    category,
		Description: "One role in a hiring plan.",
		Mode:        schema.ModeOpen,
		Schema:      validation.JSONSchema{Properties: PositionProperties()},
		Tags:        []string{"response"},
	}
}

func (PositionList) Definition() schema.Definition {
	return schema.Definition{
		Name:        "position_list",
		Category:    category,
		Description: "Positions that should be added to the hiring plan.",
		Mode:        schema.ModeOpen,
		Schema: validation.JSONSchema{Properties: map[string]validation.Property{
			"positions": positionsProperty("The positions that should be added to the hiring plan."),
		}},
		Tags: []string{"response"},
	}
}

func (HiringGenerate) Definition() schema.Definition {
	return schema.Definition{
		Name:        "hiring_generate",
		Category:    category,
		Description: "Input of the hiring plan generator.",
		Mode:        schema.ModeIgnore,
		Schema:      validation.JSONSchema{Properties: hiringGenerateProperties()},
		Tags:        []string{"input"},
	}
}

func (HiringUpdate) Definition() schema.Definition {
	props := hiringGenerateProperties()
	props["positions"] = positionsProperty("The positions to be updated.")
	return schema.Definition{
		Name:        "hiring_update",
		Category:    category,
		Description: "Input of the hiring plan updater.",
		Mode:        schema.ModeIgnore,
		Schema:      validation.JSONSchema{Properties: props},
		Tags:        []string{"input"},
	}
}

func (HiringIncreaseUpdate) Definition() schema.Definition {
	props := hiringGenerateProperties()
	props["positions"] = positionsProperty("The positions to be added.")
	return schema.Definition{
		Name:        "hiring_increase_update",
		Category:    category,
		Description: "Input of the hiring plan increaser.",
		Mode:        schema.ModeIgnore,
		Schema:      validation.JSONSchema{Properties: props},
		Tags:        []string{"input"},
	}
}

func (MultiCurrencyModifyEmployees) Definition() schema.Definition {
	props := hiringGenerateProperties()
	props["positions"] = positionsProperty("The positions to be added.")
	props["country"] = optionalString("The country whose currency the positions are paid in.")
	return schema.Definition{
		Name:        "multi_currency_modify_employees",
		Category:    category,
		Description: "Hiring plan increase with salaries in a local currency.",
		Mode:        schema.ModeIgnore,
		Schema:      validation.JSONSchema{Properties: props},
		Tags:        []string{"input"},
	}
}

func (GenerateOutput) Definition() schema.Definition {
	positions := positionsProperty("The positions of the generated hiring plan.")
	positions.Nullable = false
	return schema.Definition{
		Name:        "hiring_generate_output",
		Category:    category,
		Description: "Hiring plan produced by the generator.",
		Mode:        schema.ModeIgnore,
		Schema: validation.JSONSchema{
			Required:   []string{"hiring_positions"},
			Properties: map[string]validation.Property{"hiring_positions": positions},
		},
		Tags: []string{"response"},
	}
}

func (HiringDecreaseResponse) Definition() schema.Definition {
	return schema.Definition{
		Name:        "hiring_decrease_response",
		Category:    category,
		Description: "Positions to remove from a hiring plan.",
		Mode:        schema.ModeIgnore,
		Schema: validation.JSONSchema{Properties: map[string]validation.Property{
			"positions": {
				Type:        "array",
				Nullable:    true,
				Description: "The positions to be removed.",
				Items: &validation.Property{
					Type:       "object",
					Properties: map[string]validation.Property{"id": {Description: "The ID of the employee to remove."}},
				},
			},
		}},
		Tags: []string{"response"},
	}
}

func (PromptType) Definition() schema.Definition {
	return schema.Definition{
		Name:        "prompt_type",
		Category:    category,
		Description: "Input of the hiring plan classifier.",
		Mode:        schema.ModeIgnore,
		Schema: validation.JSONSchema{Properties: map[string]validation.Property{
			"input": optionalString("The input of the prompt."),
		}},
		Tags: []string{"input", "classifier"},
	}
}

func (PromptTypeResponse) Definition() schema.Definition {
	return schema.Definition{
		Name:        "prompt_type_response",
		Category:    category,
		Description: "Answer of the hiring plan classifier.",
		Mode:        schema.ModeIgnore,
		Schema: validation.JSONSchema{Properties: map[string]validation.Property{
			"sector":   {Description: "Sectors, as one sector or a list of sectors."},
			"balance":  {Description: "The balance of the company. Negative values become 0."},
			"location": {Description: "The location from the list of countries and US states."},
			"category": {Description: "The hiring plan operation: generate, decrease, modify, expand or null."},
		}},
		Tags: []string{"response", "classifier"},
	}
}
