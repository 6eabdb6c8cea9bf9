package company

import (
	"sort"

	"lucid-schemas/internal/common/validation"
	"lucid-schemas/pkg/schema"
)

const category = "company"

func init() {
	schema.MustRegister(
		func() schema.Record { return &CompanyDetails{} },
		func() schema.Record { return &CompanyDetailsExpander{} },
		func() schema.Record { return &ExtractGoalsOrFieldsInput{} },
		func() schema.Record { return &ExtractFieldsFromCompanyDetails{} },
		func() schema.Record { return &TemplateAssignmentData{} },
		func() schema.Record { return &CompanySummaryRefiner{} },
		func() schema.Record { return &TemplateAssigner{} },
		func() schema.Record { return &TemplateAssignerResponse{} },
		func() schema.Record { return &ExtractionResult{} },
		func() schema.Record { return &GoalsResult{} },
	)
}

func optionalString(description string) validation.Property {
	return validation.Property{Type: "string", Nullable: true, Description: description}
}

func companyDetailsProperties() map[string]validation.Property {
	return map[string]validation.Property{
		"sectors": {
			Description: "The sectors the business is involved in, as a string or a list of strings.",
		},
		"freetext":      optionalString("A conversational description of the business by the client."),
		"location":      optionalString("The location where the business is located."),
		"products":      {Type: "array", Nullable: true, Description: "Potential products that the company is known to have."},
		"company_stage": optionalString("The funding stage the company is currently in."),
		"funding_raise": {
			Description: "The amount of funding the business has raised.",
		},
		"target_employees_in_one_year": {
			Description: "The number of employees the business expects to have in a year.",
		},
		"target_revenue_in_one_year": {
			Description: "The revenue the business expects to have in a year.",
		},
		"raise_next_round_date": optionalString("The date when the business plans to get funding, as a string."),
		"target_round_funding": {
			Description: "The amount of funding the business plans to raise in the future.",
		},
	}
}

func (CompanyDetails) Definition() schema.Definition {
	return schema.Definition{
		Name:        "company_details",
		Category:    category,
		Description: "Company profile used as input by onboarding prompts.",
		Mode:        schema.ModeIgnore,
		Schema:      validation.JSONSchema{Properties: companyDetailsProperties()},
		Tags:        []string{"input"},
	}
}

func (CompanyDetailsExpander) Definition() schema.Definition {
	return schema.Definition{
		Name:        "company_details_expander",
		Category:    category,
		Description: "Free text to expand into answers to the onboarding questions.",
		Mode:        schema.ModeIgnore,
		Schema: validation.JSONSchema{Properties: map[string]validation.Property{
			"freetext": optionalString("A conversational description of the business by the client."),
			"questions": {
				Type:        "array",
				Nullable:    true,
				Description: "A list of questions to expand the free text into.",
				Items:       &validation.Property{Type: "string"},
			},
		}},
		Tags: []string{"input", "onboarding"},
	}
}

func (ExtractGoalsOrFieldsInput) Definition() schema.Definition {
	return schema.Definition{
		Name:        "extract_goals_or_fields_input",
		Category:    category,
		Description: "Input of the goal and field extractors.",
		Mode:        schema.ModeIgnore,
		Schema: validation.JSONSchema{
			Required: []string{"freetext"},
			Properties: map[string]validation.Property{
				"freetext":        {Type: "string", Description: "Input free text provided by the user."},
				"additional_info": optionalString("Additional context or details to aid summarization."),
			},
		},
		Tags: []string{"input", "onboarding"},
	}
}

func (ExtractFieldsFromCompanyDetails) Definition() schema.Definition {
	return schema.Definition{
		Name:        "extract_fields_from_company_details",
		Category:    category,
		Description: "Input of the field extractor.",
		Mode:        schema.ModeIgnore,
		Schema: validation.JSONSchema{
			Required: []string{"freetext"},
			Properties: map[string]validation.Property{
				"freetext": {Type: "string", Description: "Input free text provided by the user."},
			},
		},
		Tags: []string{"input", "extractor"},
	}
}

func (TemplateAssignmentData) Definition() schema.Definition {
	props := map[string]validation.Property{
		"sectors":                      {Type: "array", Description: "The sectors the business is involved in.", Items: &validation.Property{Type: "string"}},
		"freetext":                     {Type: "string", Description: "A conversational description of the business by the client."},
		"location":                     {Type: "string", Description: "The location where the business is located."},
		"products":                     {Type: "array", Description: "The products the company is known to have."},
		"company_stage":                {Type: "string", Description: "The funding stage the company is currently in."},
		"funding_raise":                {Description: "The amount of funding the business has raised."},
		"target_employees_in_one_year": {Description: "The number of employees the business expects to have in a year."},
		"target_revenue_in_one_year":   {Description: "The revenue the business expects to have in a year."},
		"raise_next_round_date":        {Type: "string", Description: "The date when the business plans to get funding."},
		"target_round_funding":         {Description: "The amount of funding the business plans to raise in the future."},
		"template_list":                {Type: "array", Description: "The templates that the business can use."},
	}
	required := make([]string, 0, len(props))
	for name := range props {
		required = append(required, name)
	}
	sort.Strings(required)
	return schema.Definition{
		Name:        "template_assignment_data",
		Category:    category,
		Description: "Complete company profile handed to the template assigner.",
		Mode:        schema.ModeIgnore,
		Schema:      validation.JSONSchema{Required: required, Properties: props},
		Tags:        []string{"input"},
	}
}

func (CompanySummaryRefiner) Definition() schema.Definition {
	return schema.Definition{
		Name:        "company_summary_refiner",
		Category:    category,
		Description: "Descriptions a company summary is refined from.",
		Mode:        schema.ModeIgnore,
		Schema: validation.JSONSchema{Properties: map[string]validation.Property{
			"seo_description":      optionalString("The SEO description of the company."),
			"short_description":    optionalString("A short description of the company."),
			"scraped_website_data": optionalString("Data scraped from the company website."),
			"company_object":       optionalString("The serialized company object."),
		}},
		Tags: []string{"input", "onboarding"},
	}
}

func (TemplateAssigner) Definition() schema.Definition {
	props := companyDetailsProperties()
	props["template_list"] = optionalString("The templates that the business can use.")
	return schema.Definition{
		Name:        "template_assigner",
		Category:    category,
		Description: "Company profile plus the templates it can be assigned.",
		Mode:        schema.ModeIgnore,
		Schema:      validation.JSONSchema{Properties: props},
		Tags:        []string{"input"},
	}
}

func (TemplateAssignerResponse) Definition() schema.Definition {
	return schema.Definition{
		Name:        "template_assigner_response",
		Category:    category,
		Description: "Templates picked for a company.",
		Mode:        schema.ModeIgnore,
		Schema: validation.JSONSchema{Properties: map[string]validation.Property{
			"templates": optionalString("The templates that the business can use."),
		}},
		Tags: []string{"response"},
	}
}

func (ExtractionResult) Definition() schema.Definition {
	return schema.Definition{
		Name:        "extraction_result",
		Category:    category,
		Description: "Company facts extracted from free text.",
		Mode:        schema.ModeOpen,
		Embedded:    []string{"response"},
		Schema: validation.JSONSchema{Properties: map[string]validation.Property{
			"LOCATION": {Description: "The location from the list of countries and US states."},
			"SECTORS": {
				Type:        "array",
				Nullable:    true,
				Description: "Sectors, from the sector list or any other string.",
				Items:       &validation.Property{Type: "string"},
			},
			"FUNDING":          {Description: "Funding amount."},
			"STAGE":            {Description: "Stage of the company."},
			"ai_response_time": {Description: "Seconds the model took to answer."},
			"response":         {Description: "The raw model answer; JSON text is parsed."},
		}},
		Tags: []string{"response", "extractor"},
	}
}

func (GoalsResult) Definition() schema.Definition {
	return schema.Definition{
		Name:        "goals_result",
		Category:    category,
		Description: "Company goals extracted from free text.",
		Mode:        schema.ModeOpen,
		Schema: validation.JSONSchema{Properties: map[string]validation.Property{
			"WHEN":      {Type: "string", Nullable: true, Description: "When the company plans to raise funding, YYYY-MM-DD."},
			"FUNDING":   {Description: "How much additional capital the company plans to raise."},
			"REVENUE":   {Description: "The revenue the company plans to have in a year."},
			"EMPLOYEES": {Description: "The number of employees the company plans to have in a year."},
		}},
		Tags: []string{"response", "extractor"},
	}
}
