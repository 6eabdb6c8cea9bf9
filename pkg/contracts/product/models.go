// pkg/contracts/product/models.go
package product

import (
	"lucid-schemas/pkg/schema"
	"lucid-schemas/pkg/vocab"
)

// MaxNameLength bounds Product.Name.
const MaxNameLength = 255

// Product is one offering extracted for a company. Amounts are clamped to
// zero and undeclared members are preserved.
type Product struct {
	Name             *string                `json:"name,omitempty" validate:"omitempty,max=255"`
	Price            *schema.Float          `json:"price"`
	AmountSoldLastM  *schema.Float          `json:"amount_sold_last_m"`
	AmountSoldYAgo   *schema.Float          `json:"amount_sold_y_ago"`
	SubscriptionType vocab.SubscriptionType `json:"subscription_type"`
	CAC              *schema.Float          `json:"CAC"`
	Extra            map[string]interface{} `json:"-"`
}

func (p *Product) UnmarshalJSON(data []byte) error {
	type plain Product
	extra, err := schema.UnmarshalOpen(data, (*plain)(p))
	p.Extra = extra
	return err
}

func (p Product) MarshalJSON() ([]byte, error) {
	type plain Product
	return schema.MarshalOpen(plain(p), p.Extra)
}

// MonthlyRevenue is price times units sold last month. Missing values count
// as zero.
func (p Product) MonthlyRevenue() float64 {
	return value(p.Price) * value(p.AmountSoldLastM)
}

func value(f *schema.Float) float64 {
	if f == nil {
		return 0
	}
	return float64(*f)
}

// GeneratorOutput is the product generator's answer.
type GeneratorOutput struct {
	Products []Product             `json:"products" validate:"dive"`
	Extra    map[string]interface{} `json:"-"`
}

func (o *GeneratorOutput) UnmarshalJSON(data []byte) error {
	type plain GeneratorOutput
	extra, err := schema.UnmarshalOpen(data, (*plain)(o))
	o.Extra = extra
	return err
}

func (o GeneratorOutput) MarshalJSON() ([]byte, error) {
	type plain GeneratorOutput
	return schema.MarshalOpen(plain(o), o.Extra)
}

func (p *Product) Normalize(n *schema.Normalizer) error {
	n.NonNegativeFloat("price", p.Price)
	n.NonNegativeFloat("amount_sold_last_m", p.AmountSoldLastM)
	n.NonNegativeFloat("amount_sold_y_ago", p.AmountSoldYAgo)
	n.NonNegativeFloat("CAC", p.CAC)
	n.Subscription("subscription_type", &p.SubscriptionType)
	return nil
}

func (o *GeneratorOutput) Normalize(n *schema.Normalizer) error {
	for i := range o.Products {
		if err := o.Products[i].Normalize(n.Index("products", i)); err != nil {
			return err
		}
	}
	return nil
}
