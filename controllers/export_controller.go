package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"smartpocket-ai/backend/analysis"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportFinancialData streams the caller's figures as a two-sheet XLSX
// workbook: a summary of stored and derived values plus the 12-month
// projection table.
func ExportFinancialData(st Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := profileOrAbort(c, st)
		if !ok {
			return
		}

		f := excelize.NewFile()
		defer f.Close()

		if err := f.SetSheetName("Sheet1", "Summary"); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build report"})
			return
		}
		score := analysis.Score(p)
		summary := [][]any{
			{"Field", "Value"},
			{"Salary", p.Salary},
			{"Rent", p.Rent},
			{"Food", p.Food},
			{"Travel", p.Travel},
			{"Others", p.Others},
			{"Savings Goal", p.SavingsGoal},
			{"Rent Budget", p.RentBudget},
			{"Total Expenses", p.TotalExpenses()},
			{"Monthly Savings", p.MonthlySavings()},
			{"Savings Rate (%)", p.SavingsRate()},
			{"Health Score", score.Overall},
		}
		for i, row := range summary {
			if err := f.SetSheetRow("Summary", fmt.Sprintf("A%d", i+1), &row); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build report"})
				return
			}
		}

		if _, err := f.NewSheet("Projection"); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build report"})
			return
		}
		header := []any{"Month", "Savings", "Goal"}
		if err := f.SetSheetRow("Projection", "A1", &header); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build report"})
			return
		}
		for i, pt := range analysis.SavingsProjection(p) {
			row := []any{pt.Month, pt.Savings, pt.Goal}
			if err := f.SetSheetRow("Projection", fmt.Sprintf("A%d", i+2), &row); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build report"})
				return
			}
		}

		buf, err := f.WriteToBuffer()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build report"})
			return
		}
		c.Header("Content-Disposition", `attachment; filename="financial-report.xlsx"`)
		c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
	}
}
