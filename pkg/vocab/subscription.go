package vocab

// SubscriptionType is a product billing model.
type SubscriptionType string

const (
	SubscriptionMonthlyAndYearly SubscriptionType = "Monthly & Yearly Subscription"
	SubscriptionOneTimePurchase  SubscriptionType = "One Time Purchase"
	SubscriptionMonthly          SubscriptionType = "Monthly Subscription"
	SubscriptionYearly           SubscriptionType = "Yearly Subscription"
)

var subscriptionTypes = lazy("subscription_types", SubscriptionMonthly,
	SubscriptionMonthlyAndYearly,
	SubscriptionOneTimePurchase,
	SubscriptionMonthly,
	SubscriptionYearly,
)

// SubscriptionTypes returns the billing model vocabulary.
// Fallback and default: Monthly Subscription.
func SubscriptionTypes() *Vocabulary[SubscriptionType] { return subscriptionTypes() }

func (s *SubscriptionType) UnmarshalJSON(data []byte) error {
	label, err := labelFromJSON(data)
	*s = SubscriptionType(label)
	return err
}
