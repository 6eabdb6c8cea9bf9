// pkg/contracts/assumptions/models.go
package assumptions

import "lucid-schemas/pkg/schema"

// Input is the company context the assumption prompts start from.
type Input struct {
	Date                     *string              `json:"date,omitempty"`
	Formulas                 interface{}          `json:"formulas,omitempty"`
	Sectors                  *schema.StringOrList `json:"sectors,omitempty"`
	Freetext                 *string              `json:"freetext,omitempty"`
	Location                 *string              `json:"location,omitempty"`
	Products                 interface{}          `json:"products,omitempty"`
	CompanyStage             *string              `json:"company_stage,omitempty"`
	FundingRaise             *string              `json:"funding_raise,omitempty"`
	TargetRoundFunding       *string              `json:"target_round_funding,omitempty"`
	RaiseNextRoundDate       *string              `json:"raise_next_round_date,omitempty"`
	TargetRevenueInOneYear   *string              `json:"target_revenue_in_one_year,omitempty"`
	TargetEmployeesInOneYear *schema.Float        `json:"target_employees_in_one_year,omitempty"`
}

// Generator asks for assumptions covering the listed formulas, grouped by
// model name.
type Generator struct {
	Date     *string             `json:"date,omitempty"`
	Formulas map[string][]string `json:"formulas"`
}

// FormulaCount is the number of formulas across every model.
func (g Generator) FormulaCount() int {
	total := 0
	for _, formulas := range g.Formulas {
		total += len(formulas)
	}
	return total
}

// Calculation is one derived financial line item.
type Calculation struct {
	Key   *string `json:"key"`
	Value *string `json:"value"`
}

// GeneratorResponse holds the calculations the model assumed.
type GeneratorResponse struct {
	Calculations []Calculation `json:"calculations"`
}

// Lookup returns the value of the first calculation named key.
func (r GeneratorResponse) Lookup(key string) (string, bool) {
	for _, c := range r.Calculations {
		if c.Key != nil && *c.Key == key {
			if c.Value == nil {
				return "", true
			}
			return *c.Value, true
		}
	}
	return "", false
}

func (i *Input) Normalize(*schema.Normalizer) error { return nil }

func (g *Generator) Normalize(*schema.Normalizer) error { return nil }

func (r *GeneratorResponse) Normalize(*schema.Normalizer) error { return nil }
