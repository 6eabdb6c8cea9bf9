package product

import (
	"lucid-schemas/internal/common/validation"
	"lucid-schemas/pkg/schema"
	"lucid-schemas/pkg/vocab"
)

func init() {
	schema.MustRegister(func() schema.Record { return &GeneratorOutput{} })
}

func amount(description string) validation.Property {
	return validation.Property{Description: description}
}

func (GeneratorOutput) Definition() schema.Definition {
	return schema.Definition{
		Name:        "product_generator_output",
		Category:    "product",
		Description: "A list of products offered by the company.",
		Mode:        schema.ModeOpen,
		Schema: validation.JSONSchema{
			Required: []string{"products"},
			Properties: map[string]validation.Property{
				"products": {
					Type:        "array",
					Description: "A list of products offered by the company.",
					Items: &validation.Property{
						Type:     "object",
						Required: []string{"price", "amount_sold_last_m", "amount_sold_y_ago", "CAC"},
						Properties: map[string]validation.Property{
							"name":               {Type: "string", Nullable: true, Description: "The name of the product the company offers."},
							"price":              amount("The cost associated with the product."),
							"amount_sold_last_m": amount("The number of units/subscriptions sold last month."),
							"amount_sold_y_ago":  amount("Number of units sold in the same month a year ago."),
							"subscription_type": {
								Description: "The type of subscription the product entails.",
								Default:     string(vocab.SubscriptionMonthly),
							},
							"CAC": amount("Customer Acquisition Cost associated with the product."),
						},
					},
				},
			},
		},
		Tags: []string{"response"},
	}
}
