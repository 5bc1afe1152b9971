package analysis

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"

	"smartpocket-ai/backend/models"
)

type Insight struct {
	Text string `json:"text"`
	Type string `json:"type"`
}

const (
	insightWarning = "warning"
	insightSuccess = "success"
)

// Insights applies the fixed-threshold budget rules to a profile. Order is
// stable: rent, food, travel, savings rate. A zero salary feeds 0% into
// every rule rather than erroring.
func Insights(p models.FinancialProfile) []Insight {
	out := make([]Insight, 0, 6)

	pct := func(v float64) float64 {
		if p.Salary > 0 {
			return v / p.Salary * 100
		}
		return 0
	}

	rentPct := pct(p.Rent)
	switch {
	case rentPct > 30:
		out = append(out, Insight{fmt.Sprintf("Rent consumes %.0f%% of your salary - consider cheaper options", rentPct), insightWarning})
	case rentPct > 20:
		out = append(out, Insight{fmt.Sprintf("Rent consumes %.0f%% of your salary", rentPct), insightWarning})
	default:
		out = append(out, Insight{fmt.Sprintf("Rent is well managed at %.0f%% of salary", rentPct), insightSuccess})
	}

	foodPct := pct(p.Food)
	if foodPct > 15 {
		out = append(out, Insight{fmt.Sprintf("Food expenses are %.0f%% — slightly above average", foodPct), insightWarning})
		out = append(out, Insight{fmt.Sprintf("You can save ₹%s/month by reducing food expenses", rupees(p.Food*0.2)), insightSuccess})
	} else {
		out = append(out, Insight{fmt.Sprintf("Food expenses are well controlled at %.0f%%", foodPct), insightSuccess})
	}

	travelPct := pct(p.Travel)
	if travelPct < 10 {
		out = append(out, Insight{fmt.Sprintf("Travel costs are well managed at %.0f%%", travelPct), insightSuccess})
	} else {
		out = append(out, Insight{fmt.Sprintf("Travel costs are %.0f%% — consider public transport", travelPct), insightWarning})
	}

	rate := p.SavingsRate()
	switch {
	case rate >= 30:
		out = append(out, Insight{fmt.Sprintf("Current savings rate: %.0f%% — excellent!", rate), insightSuccess})
	case rate >= 20:
		out = append(out, Insight{fmt.Sprintf("Current savings rate: %.0f%% — good progress", rate), insightSuccess})
	default:
		out = append(out, Insight{fmt.Sprintf("Current savings rate: %.0f%% — needs improvement", rate), insightWarning})
	}

	return out
}

// rupees renders an amount with thousands separators and no decimals.
func rupees(v float64) string {
	return humanize.Comma(int64(math.Round(v)))
}
