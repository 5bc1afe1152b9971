package controllers

import (
	"context"

	"smartpocket-ai/backend/ai"
	"smartpocket-ai/backend/models"
)

// Store is the persistence surface handlers depend on. *store.Store
// satisfies it; tests substitute a fake.
type Store interface {
	CreateUser(ctx context.Context, fullName, email, passwordHash string) (models.User, error)
	UserByEmail(ctx context.Context, email string) (models.User, error)
	UserByID(ctx context.Context, id int64) (models.User, error)
	UpsertProfile(ctx context.Context, p models.FinancialProfile) (models.FinancialProfile, bool, error)
	ProfileByUserID(ctx context.Context, userID int64) (models.FinancialProfile, error)
}

// InsightGenerator is the AI bridge surface the analysis handlers consume.
type InsightGenerator interface {
	GenerateInsights(ctx context.Context, p models.FinancialProfile) ai.Result
}
