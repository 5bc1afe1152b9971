package analysis

import "smartpocket-ai/backend/models"

type BreakdownSlice struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

// ExpenseBreakdown slices the four expense categories for the dashboard
// pie chart. Colors are fixed HSL values matching the frontend palette.
func ExpenseBreakdown(p models.FinancialProfile) []BreakdownSlice {
	return []BreakdownSlice{
		{"Rent", p.Rent, "hsl(220, 70%, 45%)"},
		{"Food", p.Food, "hsl(160, 84%, 40%)"},
		{"Travel", p.Travel, "hsl(38, 92%, 50%)"},
		{"Others", p.Others, "hsl(280, 60%, 50%)"},
	}
}
