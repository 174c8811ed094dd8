package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RehanWaris/vbudget/internal/pkg/apperrors"
	"github.com/RehanWaris/vbudget/internal/pkg/models"
	"github.com/RehanWaris/vbudget/services/budget/mocks"
	vendormocks "github.com/RehanWaris/vbudget/services/vendor/mocks"
)

type budgetFixture struct {
	repo       *mocks.MockBudgetRepo
	vendorRepo *vendormocks.MockVendorRepo
	gw         *mocks.MockBudgetGW
	uc         *BudgetUC
}

func newBudgetFixture(t *testing.T) (*budgetFixture, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockBudgetRepo(ctrl)
	vendorRepo := vendormocks.NewMockVendorRepo(ctrl)
	gw := mocks.NewMockBudgetGW(ctrl)
	cfg := &models.Config{Tax: models.TaxConfig{GSTRate: 0.18}}

	return &budgetFixture{
		repo:       repo,
		vendorRepo: vendorRepo,
		gw:         gw,
		uc:         NewBudgetUC(repo, vendorRepo, gw, cfg),
	}, ctrl
}

func employeeActor() *models.Actor {
	return &models.Actor{ID: uuid.New(), Email: "emp@agency.test", Role: models.RoleEmployee}
}

func approverActor() *models.Actor {
	return &models.Actor{ID: uuid.New(), Email: "approver@agency.test", Role: models.RoleApprover}
}

func accountsActor() *models.Actor {
	return &models.Actor{ID: uuid.New(), Email: "accounts@agency.test", Role: models.RoleAccounts}
}

func TestCreateBudget_Success(t *testing.T) {
	f, ctrl := newBudgetFixture(t)
	defer ctrl.Finish()

	actor := employeeActor()
	vendors := []*models.Vendor{
		approvedVendor("StageCraft", "fabrication", models.RateCard{
			ItemName:     "Stall",
			CategoryTag:  "fabrication",
			Rate:         95000,
			SetupCharges: 5000,
		}),
	}

	f.vendorRepo.EXPECT().ListVendors(gomock.Any(), models.VendorApproved).Return(vendors, nil)
	f.repo.EXPECT().CreateBudget(gomock.Any(), gomock.Any()).Return(nil)

	b, err := f.uc.CreateBudget(context.Background(), actor, &models.BudgetCreateRequest{
		ClientName: "Acme",
		EventName:  "Product Launch",
		Rows: []models.ImportRow{
			{Category: "fabrication", ItemName: "Stall", Quantity: 1},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, models.BudgetDraft, b.Status)
	assert.Equal(t, actor.ID, b.OwnerID)
	assert.Equal(t, 118000.0, b.GrandTotal)
	require.Len(t, b.Activity, 1)
	assert.Equal(t, "created", b.Activity[0].Action)
}

func TestCreateBudget_EmptyRows(t *testing.T) {
	f, ctrl := newBudgetFixture(t)
	defer ctrl.Finish()

	_, err := f.uc.CreateBudget(context.Background(), employeeActor(), &models.BudgetCreateRequest{
		ClientName: "Acme",
		EventName:  "Launch",
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeEmptyBudget))
}

func TestCreateBudget_UnresolvedRowPersistsNothing(t *testing.T) {
	f, ctrl := newBudgetFixture(t)
	defer ctrl.Finish()

	f.vendorRepo.EXPECT().ListVendors(gomock.Any(), models.VendorApproved).Return(nil, nil)

	_, err := f.uc.CreateBudget(context.Background(), employeeActor(), &models.BudgetCreateRequest{
		ClientName: "Acme",
		EventName:  "Launch",
		Rows: []models.ImportRow{
			{Category: "catering", ItemName: "High tea", Quantity: 50},
		},
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeUnresolvedRateItem))
}

func TestSubmitBudget_AdvancesToApproverReview(t *testing.T) {
	f, ctrl := newBudgetFixture(t)
	defer ctrl.Finish()

	actor := employeeActor()
	budgetID := uuid.New()
	draft := &models.Budget{ID: budgetID, OwnerID: actor.ID, Status: models.BudgetDraft}
	inReview := &models.Budget{ID: budgetID, OwnerID: actor.ID, Status: models.BudgetApproverReview}

	f.repo.EXPECT().GetBudget(gomock.Any(), budgetID).Return(draft, nil)
	f.repo.EXPECT().
		TransitionStatus(gomock.Any(), budgetID, models.BudgetDraft, models.BudgetApproverReview, gomock.Any()).
		Return(true, nil)
	f.gw.EXPECT().PublishStatusChange(gomock.Any(), gomock.Any()).Return(nil)
	f.gw.EXPECT().NotifyAdmin(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.repo.EXPECT().GetBudget(gomock.Any(), budgetID).Return(inReview, nil)

	b, err := f.uc.SubmitBudget(context.Background(), actor, budgetID)

	require.NoError(t, err)
	assert.Equal(t, models.BudgetApproverReview, b.Status)
}

func TestSubmitBudget_OnlyOwner(t *testing.T) {
	f, ctrl := newBudgetFixture(t)
	defer ctrl.Finish()

	budgetID := uuid.New()
	f.repo.EXPECT().GetBudget(gomock.Any(), budgetID).Return(&models.Budget{
		ID:      budgetID,
		OwnerID: uuid.New(),
		Status:  models.BudgetDraft,
	}, nil)

	_, err := f.uc.SubmitBudget(context.Background(), employeeActor(), budgetID)

	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeForbidden))
}

func TestSubmitBudget_NotInDraft(t *testing.T) {
	f, ctrl := newBudgetFixture(t)
	defer ctrl.Finish()

	actor := employeeActor()
	budgetID := uuid.New()
	f.repo.EXPECT().GetBudget(gomock.Any(), budgetID).Return(&models.Budget{
		ID:      budgetID,
		OwnerID: actor.ID,
		Status:  models.BudgetApproverReview,
	}, nil)

	_, err := f.uc.SubmitBudget(context.Background(), actor, budgetID)

	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeWrongStage))
}

func TestRecordApproval_ApproveAtBothStages(t *testing.T) {
	f, ctrl := newBudgetFixture(t)
	defer ctrl.Finish()

	budgetID := uuid.New()

	f.repo.EXPECT().GetBudget(gomock.Any(), budgetID).Return(&models.Budget{
		ID: budgetID, OwnerID: uuid.New(), Status: models.BudgetApproverReview,
	}, nil)
	f.repo.EXPECT().
		TransitionStatus(gomock.Any(), budgetID, models.BudgetApproverReview, models.BudgetAccountsReview, gomock.Any()).
		Return(true, nil)
	f.gw.EXPECT().PublishStatusChange(gomock.Any(), gomock.Any()).Return(nil)
	f.repo.EXPECT().GetBudget(gomock.Any(), budgetID).Return(&models.Budget{
		ID: budgetID, Status: models.BudgetAccountsReview,
	}, nil)

	b, err := f.uc.RecordApproval(context.Background(), approverActor(), budgetID, &models.ApprovalRequest{
		Stage:    models.StageApprover,
		Decision: models.DecisionApprove,
	})
	require.NoError(t, err)
	assert.Equal(t, models.BudgetAccountsReview, b.Status)

	f.repo.EXPECT().GetBudget(gomock.Any(), budgetID).Return(&models.Budget{
		ID: budgetID, OwnerID: uuid.New(), Status: models.BudgetAccountsReview,
	}, nil)
	f.repo.EXPECT().
		TransitionStatus(gomock.Any(), budgetID, models.BudgetAccountsReview, models.BudgetApproved, gomock.Any()).
		Return(true, nil)
	f.gw.EXPECT().PublishStatusChange(gomock.Any(), gomock.Any()).Return(nil)
	f.repo.EXPECT().GetBudget(gomock.Any(), budgetID).Return(&models.Budget{
		ID: budgetID, Status: models.BudgetApproved,
	}, nil)

	b, err = f.uc.RecordApproval(context.Background(), accountsActor(), budgetID, &models.ApprovalRequest{
		Stage:    models.StageAccounts,
		Decision: models.DecisionApprove,
	})
	require.NoError(t, err)
	assert.Equal(t, models.BudgetApproved, b.Status)
}

func TestRecordApproval_WrongStage(t *testing.T) {
	f, ctrl := newBudgetFixture(t)
	defer ctrl.Finish()

	budgetID := uuid.New()
	f.repo.EXPECT().GetBudget(gomock.Any(), budgetID).Return(&models.Budget{
		ID: budgetID, Status: models.BudgetApproverReview,
	}, nil)

	// Accounts stage decision while the budget sits at approver review.
	_, err := f.uc.RecordApproval(context.Background(), accountsActor(), budgetID, &models.ApprovalRequest{
		Stage:    models.StageAccounts,
		Decision: models.DecisionApprove,
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeWrongStage))
}

func TestRecordApproval_RoleStageMismatch(t *testing.T) {
	f, ctrl := newBudgetFixture(t)
	defer ctrl.Finish()

	budgetID := uuid.New()
	f.repo.EXPECT().GetBudget(gomock.Any(), budgetID).Return(&models.Budget{
		ID: budgetID, Status: models.BudgetAccountsReview,
	}, nil)

	// An approver cannot decide the accounts stage.
	_, err := f.uc.RecordApproval(context.Background(), approverActor(), budgetID, &models.ApprovalRequest{
		Stage:    models.StageAccounts,
		Decision: models.DecisionApprove,
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeForbidden))
}

func TestRecordApproval_ReturnRequiresComment(t *testing.T) {
	f, ctrl := newBudgetFixture(t)
	defer ctrl.Finish()

	_, err := f.uc.RecordApproval(context.Background(), approverActor(), uuid.New(), &models.ApprovalRequest{
		Stage:    models.StageApprover,
		Decision: models.DecisionReturn,
		Comment:  "   ",
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeMissingComment))
}

func TestRecordApproval_ReturnLoopsBackToDraft(t *testing.T) {
	f, ctrl := newBudgetFixture(t)
	defer ctrl.Finish()

	budgetID := uuid.New()
	f.repo.EXPECT().GetBudget(gomock.Any(), budgetID).Return(&models.Budget{
		ID: budgetID, Status: models.BudgetAccountsReview,
	}, nil)
	f.repo.EXPECT().
		TransitionStatus(gomock.Any(), budgetID, models.BudgetAccountsReview, models.BudgetDraft, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _, _ models.BudgetStatus, entry *models.ActivityEntry) (bool, error) {
			assert.Equal(t, "return", entry.Action)
			assert.Equal(t, "needs itemized AV costs", entry.Comment)
			return true, nil
		})
	f.gw.EXPECT().PublishStatusChange(gomock.Any(), gomock.Any()).Return(nil)
	f.repo.EXPECT().GetBudget(gomock.Any(), budgetID).Return(&models.Budget{
		ID: budgetID, Status: models.BudgetDraft,
	}, nil)

	b, err := f.uc.RecordApproval(context.Background(), accountsActor(), budgetID, &models.ApprovalRequest{
		Stage:    models.StageAccounts,
		Decision: models.DecisionReturn,
		Comment:  "needs itemized AV costs",
	})

	require.NoError(t, err)
	// A returned budget restarts from draft: both stages must re-approve.
	assert.Equal(t, models.BudgetDraft, b.Status)
}

func TestRecordApproval_TerminalState(t *testing.T) {
	f, ctrl := newBudgetFixture(t)
	defer ctrl.Finish()

	budgetID := uuid.New()
	f.repo.EXPECT().GetBudget(gomock.Any(), budgetID).Return(&models.Budget{
		ID: budgetID, Status: models.BudgetApproved,
	}, nil)

	_, err := f.uc.RecordApproval(context.Background(), approverActor(), budgetID, &models.ApprovalRequest{
		Stage:    models.StageApprover,
		Decision: models.DecisionApprove,
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeTerminalState))
}

func TestRecordApproval_ConcurrentDeciderLoses(t *testing.T) {
	f, ctrl := newBudgetFixture(t)
	defer ctrl.Finish()

	budgetID := uuid.New()
	f.repo.EXPECT().GetBudget(gomock.Any(), budgetID).Return(&models.Budget{
		ID: budgetID, Status: models.BudgetApproverReview,
	}, nil)
	// The conditional update reports another writer got there first.
	f.repo.EXPECT().
		TransitionStatus(gomock.Any(), budgetID, models.BudgetApproverReview, models.BudgetAccountsReview, gomock.Any()).
		Return(false, nil)

	_, err := f.uc.RecordApproval(context.Background(), approverActor(), budgetID, &models.ApprovalRequest{
		Stage:    models.StageApprover,
		Decision: models.DecisionApprove,
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeWrongStage))
}

func TestRecordApproval_RejectIsTerminal(t *testing.T) {
	f, ctrl := newBudgetFixture(t)
	defer ctrl.Finish()

	budgetID := uuid.New()
	f.repo.EXPECT().GetBudget(gomock.Any(), budgetID).Return(&models.Budget{
		ID: budgetID, Status: models.BudgetApproverReview,
	}, nil)
	f.repo.EXPECT().
		TransitionStatus(gomock.Any(), budgetID, models.BudgetApproverReview, models.BudgetRejected, gomock.Any()).
		Return(true, nil)
	f.gw.EXPECT().PublishStatusChange(gomock.Any(), gomock.Any()).Return(nil)
	f.repo.EXPECT().GetBudget(gomock.Any(), budgetID).Return(&models.Budget{
		ID: budgetID, Status: models.BudgetRejected,
	}, nil)

	b, err := f.uc.RecordApproval(context.Background(), approverActor(), budgetID, &models.ApprovalRequest{
		Stage:    models.StageApprover,
		Decision: models.DecisionReject,
		Comment:  "vendor quotes are stale",
	})

	require.NoError(t, err)
	assert.Equal(t, models.BudgetRejected, b.Status)
	assert.True(t, b.Status.Terminal())
}

func TestListBudgets_EmployeeSeesOnlyOwn(t *testing.T) {
	f, ctrl := newBudgetFixture(t)
	defer ctrl.Finish()

	actor := employeeActor()
	f.repo.EXPECT().
		ListBudgets(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ownerID *uuid.UUID) ([]*models.Budget, error) {
			require.NotNil(t, ownerID)
			assert.Equal(t, actor.ID, *ownerID)
			return nil, nil
		})

	_, err := f.uc.ListBudgets(context.Background(), actor)
	require.NoError(t, err)
}

func TestListBudgets_ReviewerSeesAll(t *testing.T) {
	f, ctrl := newBudgetFixture(t)
	defer ctrl.Finish()

	f.repo.EXPECT().ListBudgets(gomock.Any(), gomock.Nil()).Return(nil, nil)

	_, err := f.uc.ListBudgets(context.Background(), approverActor())
	require.NoError(t, err)
}

func TestGetBudget_OtherOwnerForbiddenForEmployee(t *testing.T) {
	f, ctrl := newBudgetFixture(t)
	defer ctrl.Finish()

	budgetID := uuid.New()
	f.repo.EXPECT().GetBudget(gomock.Any(), budgetID).Return(&models.Budget{
		ID: budgetID, OwnerID: uuid.New(), Status: models.BudgetDraft,
	}, nil)

	_, err := f.uc.GetBudget(context.Background(), employeeActor(), budgetID)

	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeForbidden))
}
