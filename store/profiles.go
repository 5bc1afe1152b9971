package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"smartpocket-ai/backend/models"
)

const profileColumns = `id, user_id, salary::float8, rent::float8, food::float8, travel::float8,
        others::float8, savings_goal::float8, job_type, city, area, rent_budget::float8, created_at, updated_at`

// UpsertProfile writes the single financial record for p.UserID: overwrite
// in place when one exists, insert otherwise. The select-then-write runs in
// a transaction so concurrent calls serialize (last write wins). The second
// return reports whether a new row was created.
func (s *Store) UpsertProfile(ctx context.Context, p models.FinancialProfile) (models.FinancialProfile, bool, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return models.FinancialProfile{}, false, err
	}
	defer tx.Rollback(ctx)

	var existingID int64
	err = tx.QueryRow(ctx, `SELECT id FROM financial_data WHERE user_id=$1`, p.UserID).Scan(&existingID)

	created := false
	switch {
	case err == nil:
		err = tx.QueryRow(ctx, `UPDATE financial_data
            SET salary=$1, rent=$2, food=$3, travel=$4, others=$5, savings_goal=$6,
                job_type=$7, city=$8, area=$9, rent_budget=$10, updated_at=now()
            WHERE id=$11
            RETURNING id, created_at, updated_at`,
			p.Salary, p.Rent, p.Food, p.Travel, p.Others, p.SavingsGoal,
			p.JobType, p.City, p.Area, p.RentBudget, existingID,
		).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	case errors.Is(err, pgx.ErrNoRows):
		created = true
		err = tx.QueryRow(ctx, `INSERT INTO financial_data
            (user_id, salary, rent, food, travel, others, savings_goal, job_type, city, area, rent_budget)
            VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
            RETURNING id, created_at, updated_at`,
			p.UserID, p.Salary, p.Rent, p.Food, p.Travel, p.Others, p.SavingsGoal,
			p.JobType, p.City, p.Area, p.RentBudget,
		).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	default:
		return models.FinancialProfile{}, false, err
	}
	if err != nil {
		return models.FinancialProfile{}, false, err
	}
	if err := tx.Commit(ctx); err != nil {
		return models.FinancialProfile{}, false, err
	}
	return p, created, nil
}

func (s *Store) ProfileByUserID(ctx context.Context, userID int64) (models.FinancialProfile, error) {
	var p models.FinancialProfile
	err := s.db.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM financial_data WHERE user_id=$1`, userID,
	).Scan(&p.ID, &p.UserID, &p.Salary, &p.Rent, &p.Food, &p.Travel,
		&p.Others, &p.SavingsGoal, &p.JobType, &p.City, &p.Area, &p.RentBudget,
		&p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.FinancialProfile{}, ErrNotFound
	}
	if err != nil {
		return models.FinancialProfile{}, err
	}
	return p, nil
}
