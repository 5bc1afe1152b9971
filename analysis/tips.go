package analysis

import (
	"math"

	"smartpocket-ai/backend/models"
)

type Tip struct {
	Tip      string  `json:"tip"`
	Savings  float64 `json:"savings"`
	Category string  `json:"category"`
	Icon     string  `json:"icon"`
}

// ExpenseTips returns the six templated suggestions. Savings estimates are
// fixed fractions of single profile fields, rounded to the rupee. Icon
// names are opaque identifiers for the frontend icon set.
func ExpenseTips(p models.FinancialProfile) []Tip {
	return []Tip{
		{"Cook at home 3 days a week", math.Round(p.Food * 0.25), "Food", "UtensilsCrossed"},
		{"Use monthly bus/metro pass", math.Round(p.Travel * 0.3), "Travel", "Bus"},
		{"Shift to shared accommodation", math.Round(p.Rent * 0.3), "Rent", "Home"},
		{"Cancel unused subscriptions", math.Round(p.Others * 0.15), "Others", "Tv"},
		{"Use UPI cashback offers", 500, "Others", "Smartphone"},
		{"Meal prep on weekends", math.Round(p.Food * 0.15), "Food", "Salad"},
	}
}
