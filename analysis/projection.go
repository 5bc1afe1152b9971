package analysis

import (
	"fmt"

	"smartpocket-ai/backend/models"
)

type ProjectionPoint struct {
	Month   string  `json:"month"`
	Savings float64 `json:"savings"`
	Goal    float64 `json:"goal"`
}

// SavingsProjection extrapolates twelve months linearly from the current
// monthly savings and goal. No compounding, no variance.
func SavingsProjection(p models.FinancialProfile) []ProjectionPoint {
	monthly := p.MonthlySavings()
	out := make([]ProjectionPoint, 0, 12)
	for i := 1; i <= 12; i++ {
		out = append(out, ProjectionPoint{
			Month:   fmt.Sprintf("Month %d", i),
			Savings: monthly * float64(i),
			Goal:    p.SavingsGoal * float64(i),
		})
	}
	return out
}
