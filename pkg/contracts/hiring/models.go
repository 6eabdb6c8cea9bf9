// pkg/contracts/hiring/models.go
package hiring

import (
	"lucid-schemas/pkg/schema"
	"lucid-schemas/pkg/vocab"
)

// Position is one role in a hiring plan. Department abbreviations are
// expanded and unknown departments or locations fall back. Undeclared members
// are preserved.
type Position struct {
	ID           *schema.Int            `json:"id,omitempty"`
	Role         *string                `json:"role,omitempty"`
	Bonus        *schema.Int            `json:"bonus,omitempty"`
	FullName     *string                `json:"full_name,omitempty"`
	Department   vocab.Department       `json:"department"`
	StartDate    *string                `json:"start_date,omitempty"`
	GeoLocation  vocab.Country          `json:"geo_location"`
	YearlySalary *schema.Int            `json:"yearly_salary,omitempty"`
	Extra        map[string]interface{} `json:"-"`
}

func (p *Position) UnmarshalJSON(data []byte) error {
	type plain Position
	extra, err := schema.UnmarshalOpen(data, (*plain)(p))
	p.Extra = extra
	return err
}

func (p Position) MarshalJSON() ([]byte, error) {
	type plain Position
	return schema.MarshalOpen(plain(p), p.Extra)
}

// PositionList is a set of positions to add to a hiring plan.
type PositionList struct {
	Positions []Position             `json:"positions"`
	Extra     map[string]interface{} `json:"-"`
}

func (l *PositionList) UnmarshalJSON(data []byte) error {
	type plain PositionList
	extra, err := schema.UnmarshalOpen(data, (*plain)(l))
	l.Extra = extra
	return err
}

func (l PositionList) MarshalJSON() ([]byte, error) {
	type plain PositionList
	return schema.MarshalOpen(plain(l), l.Extra)
}

// HiringGenerate is the input of the hiring plan generator.
type HiringGenerate struct {
	Sectors  *string             `json:"sectors,omitempty"`
	Balance  *schema.IntOrString `json:"balance,omitempty"`
	Location *string             `json:"location,omitempty"`
	Stage    *string             `json:"stage,omitempty"`
	Freetext *string             `json:"freetext,omitempty"`
}

// HiringUpdate is a generate request plus the positions to change.
type HiringUpdate struct {
	HiringGenerate
	Positions []Position `json:"positions"`
}

// HiringIncreaseUpdate is the input of the hiring plan increaser: a generate
// request plus the positions to add.
type HiringIncreaseUpdate struct {
	HiringGenerate
	Positions []Position `json:"positions"`
}

// MultiCurrencyModifyEmployees is an increase request whose positions are
// paid in the currency of Country.
type MultiCurrencyModifyEmployees struct {
	HiringIncreaseUpdate
	Country *string `json:"country,omitempty"`
}

// GenerateOutput is the plan produced by the hiring plan generator.
type GenerateOutput struct {
	HiringPositions []Position `json:"hiring_positions"`
}

// DecreasePosition names a position to remove.
type DecreasePosition struct {
	ID *schema.Int `json:"id,omitempty"`
}

// HiringDecreaseResponse lists the positions to remove from a plan.
type HiringDecreaseResponse struct {
	Positions []DecreasePosition `json:"positions"`
}

// PromptType is the input of the hiring plan classifier.
type PromptType struct {
	Input *string `json:"input,omitempty"`
}

// PromptTypeResponse is the classifier's answer: which operation to run and
// the company facts it picked up on the way.
type PromptTypeResponse struct {
	Sector   vocab.SectorList       `json:"sector"`
	Balance  *schema.Int            `json:"balance,omitempty"`
	Location vocab.Country          `json:"location"`
	Category vocab.ClassifierOption `json:"category"`
}
