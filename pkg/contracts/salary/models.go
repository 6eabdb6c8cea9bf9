// pkg/contracts/salary/models.go
package salary

import (
	"lucid-schemas/pkg/schema"
	"lucid-schemas/pkg/vocab"
)

// PositionRequest is a position waiting for a salary. Every member must be
// present, although any of them may be null.
type PositionRequest struct {
	ID          *schema.Int      `json:"id"`
	Role        *string          `json:"role"`
	Department  vocab.Department `json:"department"`
	GeoLocation vocab.Country    `json:"geo_location"`
}

// GeneratorRequest is the strict input of the salary generator.
type GeneratorRequest struct {
	Positions []PositionRequest `json:"positions"`
}

// PositionSalary is the salary assigned to one position.
type PositionSalary struct {
	ID           schema.Int `json:"id"`
	YearlySalary schema.Int `json:"yearly_salary"`
}

// GeneratorResponse is the strict output of the salary generator.
type GeneratorResponse struct {
	Positions []PositionSalary `json:"positions"`
}

func (r *GeneratorRequest) Normalize(n *schema.Normalizer) error {
	for i := range r.Positions {
		p := n.Index("positions", i)
		p.Department("department", &r.Positions[i].Department)
		p.Country("geo_location", &r.Positions[i].GeoLocation)
	}
	return nil
}

func (r *GeneratorResponse) Normalize(*schema.Normalizer) error { return nil }
