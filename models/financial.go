package models

import (
	"encoding/json"
	"math"
	"time"
)

// FinancialProfile is a user's single financial-data record. Totals and
// rates are derived on read, never stored.
type FinancialProfile struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Salary      float64   `json:"salary"`
	Rent        float64   `json:"rent"`
	Food        float64   `json:"food"`
	Travel      float64   `json:"travel"`
	Others      float64   `json:"others"`
	SavingsGoal float64   `json:"savings_goal"`
	JobType     *string   `json:"job_type"`
	City        *string   `json:"city"`
	Area        *string   `json:"area"`
	RentBudget  float64   `json:"rent_budget"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (p FinancialProfile) TotalExpenses() float64 {
	return p.Rent + p.Food + p.Travel + p.Others
}

func (p FinancialProfile) MonthlySavings() float64 {
	return p.Salary - p.TotalExpenses()
}

// SavingsRate is the savings percentage of salary, rounded to 2 decimals.
// A non-positive salary yields 0, not an error.
func (p FinancialProfile) SavingsRate() float64 {
	if p.Salary <= 0 {
		return 0
	}
	return math.Round(p.MonthlySavings()/p.Salary*100*100) / 100
}

func (p FinancialProfile) MarshalJSON() ([]byte, error) {
	type alias FinancialProfile
	return json.Marshal(struct {
		alias
		TotalExpenses  float64 `json:"total_expenses"`
		MonthlySavings float64 `json:"monthly_savings"`
		SavingsRate    float64 `json:"savings_rate"`
	}{alias(p), p.TotalExpenses(), p.MonthlySavings(), p.SavingsRate()})
}

// FinancialDataRequest mirrors the frontend payload; monetary fields left
// out by the client default to 0, the free-text fields to absent.
type FinancialDataRequest struct {
	Salary      float64 `json:"salary"`
	Rent        float64 `json:"rent"`
	Food        float64 `json:"food"`
	Travel      float64 `json:"travel"`
	Others      float64 `json:"others"`
	SavingsGoal float64 `json:"savingsGoal"`
	JobType     *string `json:"jobType"`
	City        *string `json:"city"`
	Area        *string `json:"area"`
	RentBudget  float64 `json:"rentBudget"`
}

// Profile maps the request onto a profile owned by userID.
func (r FinancialDataRequest) Profile(userID int64) FinancialProfile {
	return FinancialProfile{
		UserID:      userID,
		Salary:      r.Salary,
		Rent:        r.Rent,
		Food:        r.Food,
		Travel:      r.Travel,
		Others:      r.Others,
		SavingsGoal: r.SavingsGoal,
		JobType:     r.JobType,
		City:        r.City,
		Area:        r.Area,
		RentBudget:  r.RentBudget,
	}
}
