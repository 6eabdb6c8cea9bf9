package hiring

import "lucid-schemas/pkg/schema"

func (p *Position) Normalize(n *schema.Normalizer) error {
	n.Department("department", &p.Department)
	n.Country("geo_location", &p.GeoLocation)
	return nil
}

func normalizePositions(n *schema.Normalizer, positions []Position) error {
	for i := range positions {
		if err := positions[i].Normalize(n.Index("positions", i)); err != nil {
			return err
		}
	}
	return nil
}

func (l *PositionList) Normalize(n *schema.Normalizer) error {
	return normalizePositions(n, l.Positions)
}

func (h *HiringGenerate) Normalize(*schema.Normalizer) error { return nil }

func (h *HiringUpdate) Normalize(n *schema.Normalizer) error {
	if err := h.HiringGenerate.Normalize(n); err != nil {
		return err
	}
	return normalizePositions(n, h.Positions)
}

func (h *HiringIncreaseUpdate) Normalize(n *schema.Normalizer) error {
	if err := h.HiringGenerate.Normalize(n); err != nil {
		return err
	}
	return normalizePositions(n, h.Positions)
}

func (m *MultiCurrencyModifyEmployees) Normalize(n *schema.Normalizer) error {
	return m.HiringIncreaseUpdate.Normalize(n)
}

func (o *GenerateOutput) Normalize(n *schema.Normalizer) error {
	for i := range o.HiringPositions {
		if err := o.HiringPositions[i].Normalize(n.Index("hiring_positions", i)); err != nil {
			return err
		}
	}
	return nil
}

func (h *HiringDecreaseResponse) Normalize(*schema.Normalizer) error { return nil }

func (p *PromptType) Normalize(*schema.Normalizer) error { return nil }

func (r *PromptTypeResponse) Normalize(n *schema.Normalizer) error {
	n.Sectors("sector", &r.Sector)
	n.NonNegativeInt("balance", r.Balance)
	n.Country("location", &r.Location)
	n.Classifier("category", &r.Category)
	return nil
}
