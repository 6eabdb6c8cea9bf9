package plot

import (
	"lucid-schemas/internal/common/validation"
	"lucid-schemas/pkg/schema"
)

func init() {
	schema.MustRegister(
		func() schema.Record { return &PlotOrFormula{} },
		func() schema.Record { return &CollectionResponse{} },
	)
}

func (PlotOrFormula) Definition() schema.Definition {
	return schema.Definition{
		Name:        "plot_or_formula",
		Category:    "plot",
		Description: "Formulas and free text the plot generator works from.",
		Mode:        schema.ModeIgnore,
		Schema: validation.JSONSchema{Properties: map[string]validation.Property{
			"formulas": {
				Type:        "array",
				Nullable:    true,
				Description: "List of formula objects.",
				Items: &validation.Property{
					Type: "object",
					Properties: map[string]validation.Property{
						"id":   {Description: "Unique identifier for the formula."},
						"name": {Type: "string", Nullable: true, Description: "Human-readable name of the formula."},
					},
				},
			},
			"freetext": {Type: "string", Nullable: true, Description: "The user's input for the plot generator."},
		}},
		Tags: []string{"input"},
	}
}

func (CollectionResponse) Definition() schema.Definition {
	return schema.Definition{
		Name:        "plot_collection_response",
		Category:    "plot",
		Description: "The plots that are offered by the plot generator.",
		Mode:        schema.ModeIgnore,
		Schema: validation.JSONSchema{Properties: map[string]validation.Property{
			"plots": {
				Type:        "array",
				Nullable:    true,
				Description: "The plots that are offered by the plot generator.",
				Items: &validation.Property{
					Type: "object",
					Properties: map[string]validation.Property{
						"name":        {Type: "string", Nullable: true, Description: "The name of the plot."},
						"type":        {Description: "The type of the plot.", Default: "Bar"},
						"time_period": {Type: "string", Nullable: true, Description: "The time period the plot represents."},
						"formulas": {
							Type:        "array",
							Nullable:    true,
							Description: "The formulas that are used in the plot.",
						},
					},
				},
			},
		}},
		Tags: []string{"response"},
	}
}
