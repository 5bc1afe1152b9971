package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"smartpocket-ai/backend/analysis"
	"smartpocket-ai/backend/models"
	"smartpocket-ai/backend/store"
)

// profileOrAbort loads the caller's profile, writing the 404/500 response
// itself when there is nothing to analyze.
func profileOrAbort(c *gin.Context, st Store) (models.FinancialProfile, bool) {
	uid := c.GetInt64("user_id")
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()
	p, err := st.ProfileByUserID(ctx, uid)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "No financial data found"})
		return models.FinancialProfile{}, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return models.FinancialProfile{}, false
	}
	return p, true
}

func Dashboard(st Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := profileOrAbort(c, st)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"financial_data":    p,
			"expense_breakdown": analysis.ExpenseBreakdown(p),
			"health_score":      analysis.Score(p),
		})
	}
}

func BudgetInsights(st Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := profileOrAbort(c, st)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"insights": analysis.Insights(p)})
	}
}

func ExpenseTips(st Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := profileOrAbort(c, st)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"tips": analysis.ExpenseTips(p)})
	}
}

func SavingsProjection(st Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := profileOrAbort(c, st)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"projection": analysis.SavingsProjection(p)})
	}
}

func LocationRecommendations(st Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := profileOrAbort(c, st)
		if !ok {
			return
		}
		city := "Bangalore"
		if p.City != nil && *p.City != "" {
			city = *p.City
		}
		c.JSON(http.StatusOK, gin.H{
			"recommendations": analysis.LocationRecommendations(),
			"city":            city,
		})
	}
}

// AIInsights returns Gemini commentary alongside the raw profile. The
// bridge call is bounded; an unavailable result serializes as null and the
// endpoint still answers 200.
func AIInsights(st Store, gen InsightGenerator) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := profileOrAbort(c, st)
		if !ok {
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		res := gen.GenerateInsights(ctx, p)
		var text any
		if res.OK {
			text = res.Text
		}
		c.JSON(http.StatusOK, gin.H{
			"ai_insights":    text,
			"financial_data": p,
		})
	}
}
