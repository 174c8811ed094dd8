package models

import (
	"time"

	"github.com/google/uuid"
)

// BudgetStatus is the approval pipeline state of a budget.
type BudgetStatus string

const (
	BudgetDraft          BudgetStatus = "draft"
	BudgetSubmitted      BudgetStatus = "submitted"
	BudgetApproverReview BudgetStatus = "approver_review"
	BudgetAccountsReview BudgetStatus = "accounts_review"
	BudgetApproved       BudgetStatus = "approved"
	BudgetReturned       BudgetStatus = "returned"
	BudgetRejected       BudgetStatus = "rejected"
)

// Terminal reports whether the status accepts no further approval actions.
func (s BudgetStatus) Terminal() bool {
	return s == BudgetApproved || s == BudgetRejected
}

// ReviewStage is one of the sequential reviewer stages of the pipeline.
type ReviewStage string

const (
	StageApprover ReviewStage = "approver_review"
	StageAccounts ReviewStage = "accounts_review"
)

// ApprovalDecision is a reviewer's action at a stage.
type ApprovalDecision string

const (
	DecisionApprove ApprovalDecision = "approve"
	DecisionReturn  ApprovalDecision = "return"
	DecisionReject  ApprovalDecision = "reject"
)

// BudgetEvent is an input to the budget approval state machine.
type BudgetEvent string

const (
	EventSubmitBudget  BudgetEvent = "submit"
	EventApproveBudget BudgetEvent = "approve"
	EventReturnBudget  BudgetEvent = "return"
	EventRejectBudget  BudgetEvent = "reject"
)

// budgetTransitions is the approval pipeline transition table. Submission
// auto-advances through "submitted" into the first review stage; a return
// loops the budget back to draft so both stages must re-approve.
var budgetTransitions = map[BudgetStatus]map[BudgetEvent]BudgetStatus{
	BudgetDraft: {
		EventSubmitBudget: BudgetApproverReview,
	},
	BudgetApproverReview: {
		EventApproveBudget: BudgetAccountsReview,
		EventReturnBudget:  BudgetDraft,
		EventRejectBudget:  BudgetRejected,
	},
	BudgetAccountsReview: {
		EventApproveBudget: BudgetApproved,
		EventReturnBudget:  BudgetDraft,
		EventRejectBudget:  BudgetRejected,
	},
}

// NextBudgetStatus returns the state the pipeline moves to for the given
// event, or false when the transition is not allowed from the current state.
func NextBudgetStatus(current BudgetStatus, event BudgetEvent) (BudgetStatus, bool) {
	next, ok := budgetTransitions[current][event]
	return next, ok
}

// StageForStatus maps a review status to its stage; ok is false outside review.
func StageForStatus(s BudgetStatus) (ReviewStage, bool) {
	switch s {
	case BudgetApproverReview:
		return StageApprover, true
	case BudgetAccountsReview:
		return StageAccounts, true
	}
	return "", false
}

// LineItem is a single priced row of a budget, produced by the resolver.
// Items are immutable once the budget leaves draft.
type LineItem struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	BudgetID     uuid.UUID  `json:"budget_id" db:"budget_id"`
	Position     int        `json:"position" db:"position"`
	Category     string     `json:"category" db:"category"`
	ItemName     string     `json:"item_name" db:"item_name"`
	VendorID     *uuid.UUID `json:"vendor_id,omitempty" db:"vendor_id"`
	Unit         string     `json:"unit" db:"unit"`
	Rate         float64    `json:"rate" db:"rate"`
	Quantity     float64    `json:"quantity" db:"quantity"`
	MinQuantity  float64    `json:"min_quantity" db:"min_quantity"`
	SetupCharges float64    `json:"setup_charges" db:"setup_charges"`
	LineTotal    float64    `json:"line_total" db:"line_total"`
	GSTRate      float64    `json:"gst_rate" db:"gst_rate"`
}

// BudgetTotals are the derived monetary totals of a budget.
type BudgetTotals struct {
	Subtotal   float64 `json:"subtotal" db:"subtotal"`
	Tax        float64 `json:"tax" db:"tax"`
	GrandTotal float64 `json:"grand_total" db:"grand_total"`
}

// ActivityEntry is one immutable audit record of a budget transition.
type ActivityEntry struct {
	ID         uuid.UUID    `json:"id" db:"id"`
	BudgetID   uuid.UUID    `json:"budget_id" db:"budget_id"`
	ActorID    uuid.UUID    `json:"actor_id" db:"actor_id"`
	Action     string       `json:"action" db:"action"`
	Stage      string       `json:"stage,omitempty" db:"stage"`
	FromStatus BudgetStatus `json:"from_status" db:"from_status"`
	ToStatus   BudgetStatus `json:"to_status" db:"to_status"`
	Comment    string       `json:"comment,omitempty" db:"comment"`
	CreatedAt  time.Time    `json:"created_at" db:"created_at"`
}

// Budget is an event budget moving through the approval pipeline.
type Budget struct {
	ID            uuid.UUID    `json:"id" db:"id"`
	OwnerID       uuid.UUID    `json:"owner_id" db:"owner_id"`
	ClientName    string       `json:"client_name" db:"client_name"`
	EventName     string       `json:"event_name" db:"event_name"`
	EventType     string       `json:"event_type,omitempty" db:"event_type"`
	EventLocation string       `json:"event_location,omitempty" db:"event_location"`
	EventDates    string       `json:"event_dates,omitempty" db:"event_dates"`
	Remarks       string       `json:"remarks,omitempty" db:"remarks"`
	Status        BudgetStatus `json:"status" db:"status"`
	BudgetTotals
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`
	Items     []LineItem      `json:"items" db:"-"`
	Activity  []ActivityEntry `json:"activity" db:"-"`
}

// ImportRow is one raw row of a tabular budget import, before resolution.
type ImportRow struct {
	Category   string  `json:"category"`
	ItemName   string  `json:"item_name" validate:"required"`
	VendorHint string  `json:"vendor_hint"`
	Unit       string  `json:"unit"`
	Rate       float64 `json:"rate"`
	HasRate    bool    `json:"has_rate"`
	Quantity   float64 `json:"quantity"`
}

// BudgetCreateRequest drafts a budget from raw rows; the resolver prices them
// against the approved vendor catalogue before anything is persisted.
type BudgetCreateRequest struct {
	ClientName    string      `json:"client_name" validate:"required"`
	EventName     string      `json:"event_name" validate:"required"`
	EventType     string      `json:"event_type"`
	EventLocation string      `json:"event_location"`
	EventDates    string      `json:"event_dates"`
	Remarks       string      `json:"remarks"`
	Rows          []ImportRow `json:"rows"`
}

// ApprovalRequest records a reviewer decision on a budget.
type ApprovalRequest struct {
	Stage    ReviewStage      `json:"stage" validate:"required"`
	Decision ApprovalDecision `json:"decision" validate:"required"`
	Comment  string           `json:"comment"`
}

// BudgetStatusEvent is published whenever a budget moves through the
// pipeline, for downstream consumers (notifications, reporting).
type BudgetStatusEvent struct {
	BudgetID   uuid.UUID    `json:"budget_id"`
	ActorID    uuid.UUID    `json:"actor_id"`
	Action     string       `json:"action"`
	Stage      string       `json:"stage,omitempty"`
	FromStatus BudgetStatus `json:"from_status"`
	ToStatus   BudgetStatus `json:"to_status"`
	Comment    string       `json:"comment,omitempty"`
	OccurredAt time.Time    `json:"occurred_at"`
}

// DashboardMetrics is the read-only rollup over workflow states.
type DashboardMetrics struct {
	PendingUsers     int `json:"pending_users" db:"pending_users"`
	PendingVendors   int `json:"pending_vendors" db:"pending_vendors"`
	PendingApprovals int `json:"pending_approvals" db:"pending_approvals"`
	ActiveBudgets    int `json:"active_budgets" db:"active_budgets"`
	ApprovedBudgets  int `json:"approved_budgets" db:"approved_budgets"`
}
