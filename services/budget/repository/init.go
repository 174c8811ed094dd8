package repository

import (
	"github.com/jmoiron/sqlx"
)

// BudgetRepo implements budget persistence over PostgreSQL
type BudgetRepo struct {
	db *sqlx.DB
}

// NewBudgetRepo creates a new budget repository instance
func NewBudgetRepo(db *sqlx.DB) *BudgetRepo {
	return &BudgetRepo{
		db: db,
	}
}
