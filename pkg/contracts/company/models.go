// pkg/contracts/company/models.go
package company

import (
	"fmt"

	"lucid-schemas/pkg/schema"
	"lucid-schemas/pkg/vocab"
)

// DefaultQuestions are the onboarding questions a free-text description is
// expanded into when the caller does not supply its own.
var DefaultQuestions = []string{
	"what_are_you_building",
	"who_are_you_building_it_for",
	"when_and_where_will_it_launch",
	"how_will_it_be_delivered",
}

// CompanyDetails is the company profile sent to onboarding prompts. Sectors
// are free-form here and are not checked against the sector vocabulary.
type CompanyDetails struct {
	Sectors                  *schema.StringOrList `json:"sectors,omitempty"`
	Freetext                 *string              `json:"freetext,omitempty"`
	Location                 *string              `json:"location,omitempty"`
	Products                 []interface{}        `json:"products"`
	CompanyStage             *string              `json:"company_stage,omitempty"`
	FundingRaise             *schema.IntOrString  `json:"funding_raise,omitempty"`
	TargetEmployeesInOneYear *schema.Float        `json:"target_employees_in_one_year,omitempty"`
	TargetRevenueInOneYear   *schema.IntOrString  `json:"target_revenue_in_one_year,omitempty"`
	RaiseNextRoundDate       *string              `json:"raise_next_round_date,omitempty"`
	TargetRoundFunding       *schema.IntOrString  `json:"target_round_funding,omitempty"`
}

// ToMap returns the populated members only.
func (c CompanyDetails) ToMap() (map[string]interface{}, error) {
	m, err := schema.ToMap(&c)
	if err != nil {
		return nil, err
	}
	dropNulls(m)
	return m, nil
}

// CompanyDetailsExpander asks for a free-text description to be expanded
// into answers to a fixed set of questions.
type CompanyDetailsExpander struct {
	Freetext  *string  `json:"freetext,omitempty"`
	Questions []string `json:"questions"`
}

// ExtractGoalsOrFieldsInput is the input of the goal and field extractors.
type ExtractGoalsOrFieldsInput struct {
	Freetext       string  `json:"freetext"`
	AdditionalInfo *string `json:"additional_info,omitempty"`
}

// ExtractFieldsFromCompanyDetails is the input of the field extractor.
type ExtractFieldsFromCompanyDetails struct {
	Freetext string `json:"freetext"`
}

// CompanySummaryRefiner carries the raw descriptions a company summary is
// refined from.
type CompanySummaryRefiner struct {
	SEODescription     *string `json:"seo_description,omitempty"`
	ShortDescription   *string `json:"short_description,omitempty"`
	ScrapedWebsiteData *string `json:"scraped_website_data,omitempty"`
	CompanyObject      *string `json:"company_object,omitempty"`
}

// Descriptions renders the bracketed block the refiner prompt expects.
func (c CompanySummaryRefiner) Descriptions() map[string]string {
	block := fmt.Sprintf("[[seo_description: %s]],\n[[short_description: %s]],\n[[scraped_website_data: %s]],\n[[company_object: %s]]",
		deref(c.SEODescription), deref(c.ShortDescription), deref(c.ScrapedWebsiteData), deref(c.CompanyObject))
	return map[string]string{"descriptions": block}
}

// TemplateAssigner is a company profile plus the templates to choose from.
type TemplateAssigner struct {
	CompanyDetails
	TemplateList *string `json:"template_list,omitempty"`
}

// TemplateAssignmentData is a complete company profile handed to the template
// assigner. Every member is required.
type TemplateAssignmentData struct {
	Sectors                  []string      `json:"sectors"`
	Freetext                 string        `json:"freetext"`
	Location                 string        `json:"location"`
	Products                 []interface{} `json:"products"`
	CompanyStage             string        `json:"company_stage"`
	FundingRaise             schema.Float  `json:"funding_raise"`
	TargetEmployeesInOneYear schema.Int    `json:"target_employees_in_one_year"`
	TargetRevenueInOneYear   schema.Float  `json:"target_revenue_in_one_year"`
	RaiseNextRoundDate       string        `json:"raise_next_round_date"`
	TargetRoundFunding       schema.Float  `json:"target_round_funding"`
	TemplateList             []interface{} `json:"template_list"`
}

// TemplateAssignerResponse holds the templates picked for a company.
type TemplateAssignerResponse struct {
	Templates *string `json:"templates,omitempty"`
}

// ExtractionResult holds the company facts extracted by the field extractor.
// Undeclared members are preserved.
type ExtractionResult struct {
	Location       vocab.Country `json:"LOCATION"`
	Sectors        []string      `json:"SECTORS"`
	Funding        schema.Int    `json:"FUNDING"`
	Stage          vocab.Stage   `json:"STAGE"`
	AIResponseTime *schema.Float `json:"ai_response_time,omitempty"`
	// Response is the raw model answer. A string payload is parsed as JSON.
	Response interface{}            `json:"response,omitempty"`
	Extra    map[string]interface{} `json:"-"`
}

func (r *ExtractionResult) UnmarshalJSON(data []byte) error {
	type plain ExtractionResult
	extra, err := schema.UnmarshalOpen(data, (*plain)(r))
	r.Extra = extra
	return err
}

func (r ExtractionResult) MarshalJSON() ([]byte, error) {
	type plain ExtractionResult
	return schema.MarshalOpen(plain(r), r.Extra)
}

// GoalsResult holds the goals extracted by the goal extractor. WHEN is never
// in the past. Undeclared members are preserved.
type GoalsResult struct {
	When      string                 `json:"WHEN"`
	Funding   schema.Int             `json:"FUNDING"`
	Revenue   schema.Int             `json:"REVENUE"`
	Employees schema.Int             `json:"EMPLOYEES"`
	Extra     map[string]interface{} `json:"-"`
}

func (g *GoalsResult) UnmarshalJSON(data []byte) error {
	type plain GoalsResult
	extra, err := schema.UnmarshalOpen(data, (*plain)(g))
	g.Extra = extra
	return err
}

func (g GoalsResult) MarshalJSON() ([]byte, error) {
	type plain GoalsResult
	return schema.MarshalOpen(plain(g), g.Extra)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func dropNulls(m map[string]interface{}) {
	for k, v := range m {
		if v == nil {
			delete(m, k)
		}
	}
}

// ToMap returns the populated members only.
func (t TemplateAssigner) ToMap() (map[string]interface{}, error) {
	m, err := schema.ToMap(&t)
	if err != nil {
		return nil, err
	}
	dropNulls(m)
	return m, nil
}
