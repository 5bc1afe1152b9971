// Package analysis derives dashboard figures from a financial profile.
// Everything here is a pure function over one profile.
package analysis

import (
	"math"

	"smartpocket-ai/backend/models"
)

type HealthScore struct {
	Overall        int `json:"overall"`
	SavingsRatio   int `json:"savings_ratio"`
	ExpenseControl int `json:"expense_control"`
	DebtImpact     int `json:"debt_impact"`
}

// Score combines savings ratio (0-40), expense control (0-30) and goal
// progress (0-30) into a 0-100 heuristic. The reported sub-scores are
// rescaled to a 0-100 presentation range.
func Score(p models.FinancialProfile) HealthScore {
	salary := p.Salary
	totalExpenses := p.TotalExpenses()
	monthlySavings := p.MonthlySavings()

	savingsRatio := 0.0
	if salary > 0 {
		savingsRatio = monthlySavings / salary * 100
	}
	savingsRatioScore := math.Min(40, savingsRatio)

	expenseRatio := 100.0
	if salary > 0 {
		expenseRatio = totalExpenses / salary * 100
	}
	expenseControlScore := math.Max(0, 30-(expenseRatio-50)*0.6)

	goalAchievement := 100.0
	if p.SavingsGoal > 0 {
		goalAchievement = monthlySavings / p.SavingsGoal * 100
	}
	goalScore := math.Min(30, goalAchievement*0.3)

	overall := int(math.Round(savingsRatioScore + expenseControlScore + goalScore))
	if overall > 100 {
		overall = 100
	}

	return HealthScore{
		Overall:        overall,
		SavingsRatio:   int(math.Round(savingsRatioScore * 2.5)),
		ExpenseControl: int(math.Round(expenseControlScore * 3.33)),
		// Placeholder: no debt data is collected anywhere in the system.
		DebtImpact: 85,
	}
}
