package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/RehanWaris/vbudget/internal/pkg/apperrors"
	"github.com/RehanWaris/vbudget/internal/pkg/models"
)

// CreateBudget inserts the budget, its line items and its initial activity
// entry in one transaction
func (r *BudgetRepo) CreateBudget(ctx context.Context, budget *models.Budget) error {
	if budget.ID == uuid.Nil {
		budget.ID = uuid.New()
	}
	now := time.Now()
	budget.CreatedAt = now
	budget.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO budgets (id, owner_id, client_name, event_name, event_type,
			event_location, event_dates, remarks, status, subtotal, tax,
			grand_total, created_at, updated_at
		) VALUES (:id, :owner_id, :client_name, :event_name, :event_type,
			:event_location, :event_dates, :remarks, :status, :subtotal, :tax,
			:grand_total, :created_at, :updated_at)
	`
	if _, err := tx.NamedExecContext(ctx, query, budget); err != nil {
		return fmt.Errorf("failed to insert budget: %w", err)
	}

	itemQuery := `
		INSERT INTO budget_items (id, budget_id, position, category, item_name,
			vendor_id, unit, rate, quantity, min_quantity, setup_charges,
			line_total, gst_rate
		) VALUES (:id, :budget_id, :position, :category, :item_name,
			:vendor_id, :unit, :rate, :quantity, :min_quantity, :setup_charges,
			:line_total, :gst_rate)
	`
	for i := range budget.Items {
		if _, err := tx.NamedExecContext(ctx, itemQuery, budget.Items[i]); err != nil {
			return fmt.Errorf("failed to insert budget item: %w", err)
		}
	}

	for i := range budget.Activity {
		if err := insertActivity(ctx, tx, &budget.Activity[i]); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func insertActivity(ctx context.Context, tx *sqlx.Tx, entry *models.ActivityEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO budget_activity (id, budget_id, actor_id, action, stage,
			from_status, to_status, comment, created_at
		) VALUES (:id, :budget_id, :actor_id, :action, :stage,
			:from_status, :to_status, :comment, :created_at)
	`
	if _, err := tx.NamedExecContext(ctx, query, entry); err != nil {
		return fmt.Errorf("failed to insert activity entry: %w", err)
	}
	return nil
}

const budgetColumns = `id, owner_id, client_name, event_name, event_type,
	event_location, event_dates, remarks, status, subtotal, tax, grand_total,
	created_at, updated_at`

// GetBudget loads a budget with its line items and activity log
func (r *BudgetRepo) GetBudget(ctx context.Context, id uuid.UUID) (*models.Budget, error) {
	query := `SELECT ` + budgetColumns + ` FROM budgets WHERE id = $1`

	var budget models.Budget
	err := r.db.GetContext(ctx, &budget, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("budget", id.String())
		}
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}

	itemQuery := `
		SELECT id, budget_id, position, category, item_name, vendor_id, unit,
			rate, quantity, min_quantity, setup_charges, line_total, gst_rate
		FROM budget_items
		WHERE budget_id = $1
		ORDER BY position
	`
	if err := r.db.SelectContext(ctx, &budget.Items, itemQuery, id); err != nil {
		return nil, fmt.Errorf("failed to get budget items: %w", err)
	}

	activityQuery := `
		SELECT id, budget_id, actor_id, action, stage, from_status, to_status,
			comment, created_at
		FROM budget_activity
		WHERE budget_id = $1
		ORDER BY created_at, id
	`
	if err := r.db.SelectContext(ctx, &budget.Activity, activityQuery, id); err != nil {
		return nil, fmt.Errorf("failed to get budget activity: %w", err)
	}

	return &budget, nil
}

// ListBudgets lists budgets without items or activity, newest first,
// optionally restricted to one owner
func (r *BudgetRepo) ListBudgets(ctx context.Context, ownerID *uuid.UUID) ([]*models.Budget, error) {
	query := `SELECT ` + budgetColumns + ` FROM budgets`
	args := []interface{}{}
	if ownerID != nil {
		query += ` WHERE owner_id = $1`
		args = append(args, *ownerID)
	}
	query += ` ORDER BY created_at DESC, id`

	var budgets []*models.Budget
	if err := r.db.SelectContext(ctx, &budgets, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	return budgets, nil
}

// TransitionStatus applies a conditional status transition and appends the
// activity entry in one transaction. The WHERE clause pins the expected
// current status so of two concurrent deciders exactly one commits.
func (r *BudgetRepo) TransitionStatus(ctx context.Context, id uuid.UUID, from, to models.BudgetStatus, entry *models.ActivityEntry) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		UPDATE budgets
		SET status = $1, updated_at = $2
		WHERE id = $3 AND status = $4
	`, to, time.Now(), id, from)
	if err != nil {
		return false, fmt.Errorf("failed to update budget status: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected != 1 {
		return false, nil
	}

	if err := insertActivity(ctx, tx, entry); err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return true, nil
}
