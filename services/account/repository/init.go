package repository

import (
	"github.com/jmoiron/sqlx"
)

// AccountRepo implements user persistence over PostgreSQL
type AccountRepo struct {
	db *sqlx.DB
}

// NewAccountRepo creates a new account repository instance
func NewAccountRepo(db *sqlx.DB) *AccountRepo {
	return &AccountRepo{
		db: db,
	}
}
