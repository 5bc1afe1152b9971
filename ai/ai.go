// Package ai bridges financial profiles to the Gemini text-generation
// service. The bridge never fails past its own boundary: every error path
// collapses into an unavailable Result and the consuming endpoint degrades.
package ai

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"smartpocket-ai/backend/models"
)

// Result separates "the model said something" from "the bridge is down".
// Callers must not treat an unavailable result as an error.
type Result struct {
	OK   bool
	Text string
}

type Client struct {
	genai *genai.Client
	model string
}

// New builds the bridge client. An empty API key yields a disabled client
// whose results are always unavailable; construction still succeeds so the
// rest of the server can run without Gemini credentials.
func New(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return &Client{}, nil
	}
	c, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &Client{genai: c, model: model}, nil
}

func (c *Client) Close() {
	if c.genai != nil {
		c.genai.Close()
	}
}

// GenerateInsights asks Gemini for commentary on the profile. Timeouts come
// from ctx; the caller bounds the call.
func (c *Client) GenerateInsights(ctx context.Context, p models.FinancialProfile) Result {
	if c == nil || c.genai == nil {
		return Result{}
	}
	m := c.genai.GenerativeModel(c.model)
	resp, err := m.GenerateContent(ctx, genai.Text(Prompt(p)))
	if err != nil || resp == nil {
		return Result{}
	}
	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				b.WriteString(string(t))
			}
		}
	}
	text := strings.TrimSpace(b.String())
	if text == "" {
		return Result{}
	}
	return Result{OK: true, Text: text}
}

// Prompt renders the profile into the insight request sent to the model.
func Prompt(p models.FinancialProfile) string {
	var b strings.Builder
	b.WriteString("Analyze the following financial data and provide actionable insights:\n\n")
	fmt.Fprintf(&b, "Monthly Salary: ₹%s\n", amount(p.Salary))
	fmt.Fprintf(&b, "Rent: ₹%s\n", amount(p.Rent))
	fmt.Fprintf(&b, "Food: ₹%s\n", amount(p.Food))
	fmt.Fprintf(&b, "Travel: ₹%s\n", amount(p.Travel))
	fmt.Fprintf(&b, "Other Expenses: ₹%s\n", amount(p.Others))
	fmt.Fprintf(&b, "Savings Goal: ₹%s\n", amount(p.SavingsGoal))
	fmt.Fprintf(&b, "Job Type: %s\n", strOr(p.JobType))
	fmt.Fprintf(&b, "Location: %s, %s\n\n", strOr(p.City), strOr(p.Area))
	fmt.Fprintf(&b, "Total Expenses: ₹%s\n", amount(p.TotalExpenses()))
	fmt.Fprintf(&b, "Monthly Savings: ₹%s\n", amount(p.MonthlySavings()))
	fmt.Fprintf(&b, "Savings Rate: %s%%\n\n", amount(p.SavingsRate()))
	b.WriteString("Provide:\n")
	b.WriteString("1. 5 specific budget insights (mix of warnings and successes)\n")
	b.WriteString("2. 6 actionable expense reduction tips with estimated savings\n")
	b.WriteString("3. A financial health score (0-100) with breakdown\n")
	b.WriteString("4. 12-month savings projection\n\n")
	b.WriteString("Format as JSON with keys: insights, tips, health_score, projection")
	return b.String()
}

func amount(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func strOr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
