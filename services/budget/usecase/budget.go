package usecase

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/RehanWaris/vbudget/internal/pkg/apperrors"
	"github.com/RehanWaris/vbudget/internal/pkg/logger"
	"github.com/RehanWaris/vbudget/internal/pkg/models"
)

// CreateBudget resolves the raw rows against the approved vendor catalogue
// and drafts a budget. Resolution is all-or-nothing: one unresolvable row
// fails the whole request and nothing is persisted.
func (u *BudgetUC) CreateBudget(ctx context.Context, actor *models.Actor, req *models.BudgetCreateRequest) (*models.Budget, error) {
	if !actor.Role.Capabilities().CanSubmit {
		return nil, apperrors.Authorization("role %s cannot submit budgets", actor.Role)
	}
	if len(req.Rows) == 0 {
		return nil, apperrors.Validation(apperrors.CodeEmptyBudget, "budget has no line items")
	}

	vendors, err := u.vendorRepo.ListVendors(ctx, models.VendorApproved)
	if err != nil {
		return nil, err
	}

	items, totals, err := ResolveLineItems(req.Rows, vendors, u.cfg.Tax.GSTRate)
	if err != nil {
		return nil, err
	}

	b := &models.Budget{
		ID:            uuid.New(),
		OwnerID:       actor.ID,
		ClientName:    strings.TrimSpace(req.ClientName),
		EventName:     strings.TrimSpace(req.EventName),
		EventType:     req.EventType,
		EventLocation: req.EventLocation,
		EventDates:    req.EventDates,
		Remarks:       req.Remarks,
		Status:        models.BudgetDraft,
		BudgetTotals:  totals,
		Items:         items,
	}
	assignItemIDs(b.ID, b.Items)

	b.Activity = []models.ActivityEntry{{
		ID:       uuid.New(),
		BudgetID: b.ID,
		ActorID:  actor.ID,
		Action:   "created",
		ToStatus: models.BudgetDraft,
	}}

	if err := u.budgetRepo.CreateBudget(ctx, b); err != nil {
		return nil, err
	}

	logger.Info("Drafted budget",
		logger.String("budget_id", b.ID.String()),
		logger.String("owner_id", actor.ID.String()),
		logger.Int("items", len(b.Items)),
		logger.Float64("grand_total", b.GrandTotal))
	return b, nil
}

// ImportBudget parses an element sheet into rows and drafts a budget from
// them.
func (u *BudgetUC) ImportBudget(ctx context.Context, actor *models.Actor, req *models.BudgetCreateRequest, sheet io.Reader) (*models.Budget, error) {
	rows, err := ParseElementSheet(sheet)
	if err != nil {
		return nil, err
	}
	req.Rows = rows
	return u.CreateBudget(ctx, actor, req)
}

// SubmitBudget moves the owner's draft into the first review stage.
// Submission from a returned draft restarts the full review sequence.
func (u *BudgetUC) SubmitBudget(ctx context.Context, actor *models.Actor, budgetID uuid.UUID) (*models.Budget, error) {
	b, err := u.budgetRepo.GetBudget(ctx, budgetID)
	if err != nil {
		return nil, err
	}
	if b.OwnerID != actor.ID && !actor.Role.Capabilities().CanAdminister {
		return nil, apperrors.Authorization("only the budget owner can submit it")
	}

	next, ok := models.NextBudgetStatus(b.Status, models.EventSubmitBudget)
	if !ok {
		if b.Status.Terminal() {
			return nil, apperrors.State(apperrors.CodeTerminalState, b.ID.String(), string(b.Status), string(models.BudgetApproverReview))
		}
		return nil, apperrors.State(apperrors.CodeWrongStage, b.ID.String(), string(b.Status), string(models.BudgetApproverReview))
	}

	entry := &models.ActivityEntry{
		ID:         uuid.New(),
		BudgetID:   b.ID,
		ActorID:    actor.ID,
		Action:     "submitted",
		FromStatus: b.Status,
		ToStatus:   next,
	}
	applied, err := u.budgetRepo.TransitionStatus(ctx, b.ID, b.Status, next, entry)
	if err != nil {
		return nil, err
	}
	if !applied {
		return nil, apperrors.State(apperrors.CodeWrongStage, b.ID.String(), string(b.Status), string(next))
	}

	u.publishStatusChange(ctx, entry)
	u.notifyAdmin(ctx, "Budget submitted for review",
		fmt.Sprintf("Budget for %s (%s) is awaiting approver review", b.EventName, b.ClientName))
	logger.Info("Submitted budget for review",
		logger.String("budget_id", b.ID.String()),
		logger.String("owner_id", actor.ID.String()))

	return u.budgetRepo.GetBudget(ctx, budgetID)
}

// decisionEvents maps reviewer decisions onto state machine events.
var decisionEvents = map[models.ApprovalDecision]models.BudgetEvent{
	models.DecisionApprove: models.EventApproveBudget,
	models.DecisionReturn:  models.EventReturnBudget,
	models.DecisionReject:  models.EventRejectBudget,
}

func stageAllowed(stage models.ReviewStage, caps models.Capabilities) bool {
	switch stage {
	case models.StageApprover:
		return caps.CanApprove
	case models.StageAccounts:
		return caps.CanAccount
	}
	return false
}

// RecordApproval applies a reviewer decision at the budget's current stage.
// The repository transition is conditional on the status the decision was
// made against, so of two concurrent deciders exactly one wins.
func (u *BudgetUC) RecordApproval(ctx context.Context, actor *models.Actor, budgetID uuid.UUID, req *models.ApprovalRequest) (*models.Budget, error) {
	event, ok := decisionEvents[req.Decision]
	if !ok {
		return nil, apperrors.Validation(apperrors.CodeInvalidPayload, "unknown decision %q", req.Decision)
	}
	if (req.Decision == models.DecisionReturn || req.Decision == models.DecisionReject) && strings.TrimSpace(req.Comment) == "" {
		return nil, apperrors.Validation(apperrors.CodeMissingComment, "a %s decision requires a comment", req.Decision)
	}

	b, err := u.budgetRepo.GetBudget(ctx, budgetID)
	if err != nil {
		return nil, err
	}
	if b.Status.Terminal() {
		return nil, apperrors.State(apperrors.CodeTerminalState, b.ID.String(), string(b.Status), string(req.Decision))
	}

	currentStage, ok := models.StageForStatus(b.Status)
	if !ok {
		return nil, apperrors.State(apperrors.CodeWrongStage, b.ID.String(), string(b.Status), string(req.Stage))
	}
	if req.Stage != currentStage {
		return nil, apperrors.State(apperrors.CodeWrongStage, b.ID.String(), string(b.Status), string(req.Stage))
	}
	if !stageAllowed(currentStage, actor.Role.Capabilities()) {
		return nil, apperrors.Authorization("role %s cannot decide at stage %s", actor.Role, currentStage)
	}

	next, ok := models.NextBudgetStatus(b.Status, event)
	if !ok {
		return nil, apperrors.State(apperrors.CodeWrongStage, b.ID.String(), string(b.Status), string(event))
	}

	entry := &models.ActivityEntry{
		ID:         uuid.New(),
		BudgetID:   b.ID,
		ActorID:    actor.ID,
		Action:     string(req.Decision),
		Stage:      string(currentStage),
		FromStatus: b.Status,
		ToStatus:   next,
		Comment:    strings.TrimSpace(req.Comment),
	}
	applied, err := u.budgetRepo.TransitionStatus(ctx, b.ID, b.Status, next, entry)
	if err != nil {
		return nil, err
	}
	if !applied {
		// A concurrent decision already moved the budget.
		return nil, apperrors.State(apperrors.CodeWrongStage, b.ID.String(), string(b.Status), string(next))
	}

	u.publishStatusChange(ctx, entry)
	logger.Info("Recorded budget decision",
		logger.String("budget_id", b.ID.String()),
		logger.String("actor_id", actor.ID.String()),
		logger.String("stage", string(currentStage)),
		logger.String("decision", string(req.Decision)),
		logger.String("to_status", string(next)))

	return u.budgetRepo.GetBudget(ctx, budgetID)
}

// GetBudget loads a budget. Owners see their own; reviewers and admins see all.
func (u *BudgetUC) GetBudget(ctx context.Context, actor *models.Actor, id uuid.UUID) (*models.Budget, error) {
	b, err := u.budgetRepo.GetBudget(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.OwnerID != actor.ID && !canReview(actor.Role.Capabilities()) {
		return nil, apperrors.Authorization("budget belongs to another user")
	}
	return b, nil
}

// ListBudgets lists budgets. Reviewers and admins see all budgets; everyone
// else only their own.
func (u *BudgetUC) ListBudgets(ctx context.Context, actor *models.Actor) ([]*models.Budget, error) {
	if canReview(actor.Role.Capabilities()) {
		return u.budgetRepo.ListBudgets(ctx, nil)
	}
	ownerID := actor.ID
	return u.budgetRepo.ListBudgets(ctx, &ownerID)
}

func canReview(caps models.Capabilities) bool {
	return caps.CanApprove || caps.CanAccount || caps.CanAdminister
}

func (u *BudgetUC) notifyAdmin(ctx context.Context, subject, message string) {
	if err := u.budgetGW.NotifyAdmin(ctx, subject, message); err != nil {
		logger.Warn("Failed to deliver admin notification",
			logger.String("subject", subject),
			logger.ErrorField(err))
	}
}

// publishStatusChange emits the transition event; delivery failures are
// logged and never fail the workflow operation.
func (u *BudgetUC) publishStatusChange(ctx context.Context, entry *models.ActivityEntry) {
	err := u.budgetGW.PublishStatusChange(ctx, &models.BudgetStatusEvent{
		BudgetID:   entry.BudgetID,
		ActorID:    entry.ActorID,
		Action:     entry.Action,
		Stage:      entry.Stage,
		FromStatus: entry.FromStatus,
		ToStatus:   entry.ToStatus,
		Comment:    entry.Comment,
		OccurredAt: time.Now(),
	})
	if err != nil {
		logger.Warn("Failed to publish budget status change",
			logger.String("budget_id", entry.BudgetID.String()),
			logger.ErrorField(err))
	}
}
