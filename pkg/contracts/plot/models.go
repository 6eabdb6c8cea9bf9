// pkg/contracts/plot/models.go
package plot

import (
	"lucid-schemas/pkg/schema"
	"lucid-schemas/pkg/vocab"
)

// Formula is a calculation the plot generator may chart, referenced by id.
type Formula struct {
	ID   *schema.Int `json:"id,omitempty"`
	Name *string     `json:"name,omitempty"`
}

// PlotOrFormula is the input of the plot generator.
type PlotOrFormula struct {
	Formulas []Formula `json:"formulas"`
	Freetext *string   `json:"freetext,omitempty"`
}

// FormulaNames maps formula ids to their names. Formulas without an id are
// skipped.
func (p PlotOrFormula) FormulaNames() map[int64]string {
	out := make(map[int64]string, len(p.Formulas))
	for _, f := range p.Formulas {
		if f.ID == nil {
			continue
		}
		name := ""
		if f.Name != nil {
			name = *f.Name
		}
		out[int64(*f.ID)] = name
	}
	return out
}

// Plot is one chart suggested by the plot generator.
type Plot struct {
	Name       *string         `json:"name,omitempty"`
	Type       vocab.GraphType `json:"type"`
	TimePeriod *string         `json:"time_period,omitempty"`
	Formulas   []schema.Int    `json:"formulas"`
}

// CollectionResponse holds the charts offered by the plot generator.
type CollectionResponse struct {
	Plots []Plot `json:"plots"`
}

// Unresolved returns the formula ids referenced by any plot that are missing
// from known, in first-seen order.
func (r CollectionResponse) Unresolved(known map[int64]string) []int64 {
	seen := map[int64]bool{}
	var missing []int64
	for _, p := range r.Plots {
		for _, id := range p.Formulas {
			key := int64(id)
			if _, ok := known[key]; ok || seen[key] {
				continue
			}
			seen[key] = true
			missing = append(missing, key)
		}
	}
	return missing
}

func (p *PlotOrFormula) Normalize(*schema.Normalizer) error { return nil }

func (r *CollectionResponse) Normalize(n *schema.Normalizer) error {
	for i := range r.Plots {
		n.Index("plots", i).GraphType("type", &r.Plots[i].Type)
	}
	return nil
}
