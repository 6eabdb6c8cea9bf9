package company

import "lucid-schemas/pkg/schema"

func (c *CompanyDetails) Normalize(*schema.Normalizer) error { return nil }

func (c *CompanyDetailsExpander) Normalize(*schema.Normalizer) error {
	if c.Questions == nil {
		c.Questions = append([]string(nil), DefaultQuestions...)
	}
	return nil
}

func (e *ExtractGoalsOrFieldsInput) Normalize(*schema.Normalizer) error { return nil }

func (e *ExtractFieldsFromCompanyDetails) Normalize(*schema.Normalizer) error { return nil }

func (t *TemplateAssignmentData) Normalize(*schema.Normalizer) error { return nil }

func (c *CompanySummaryRefiner) Normalize(*schema.Normalizer) error { return nil }

func (t *TemplateAssigner) Normalize(n *schema.Normalizer) error {
	return t.CompanyDetails.Normalize(n)
}

func (t *TemplateAssignerResponse) Normalize(*schema.Normalizer) error { return nil }

func (r *ExtractionResult) Normalize(n *schema.Normalizer) error {
	n.Country("LOCATION", &r.Location)
	n.Stage("STAGE", &r.Stage)
	if r.Sectors == nil {
		r.Sectors = []string{}
	}
	return nil
}

func (g *GoalsResult) Normalize(n *schema.Normalizer) error {
	return n.GoalDate("WHEN", &g.When)
}
