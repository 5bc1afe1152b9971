package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"smartpocket-ai/backend/models"
	"smartpocket-ai/backend/store"
)

// SaveFinancialData creates or overwrites the caller's single financial
// record. 201 on first write, 200 on every overwrite.
func SaveFinancialData(st Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.FinancialDataRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		uid := c.GetInt64("user_id")

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()
		profile, created, err := st.UpsertProfile(ctx, req.Profile(uid))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		if created {
			c.JSON(http.StatusCreated, gin.H{
				"message": "Financial data created successfully",
				"data":    profile,
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message": "Financial data updated successfully",
			"data":    profile,
		})
	}
}

func GetFinancialData(st Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetInt64("user_id")
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()
		profile, err := st.ProfileByUserID(ctx, uid)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No financial data found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": profile})
	}
}
