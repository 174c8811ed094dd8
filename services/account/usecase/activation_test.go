package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/RehanWaris/vbudget/internal/pkg/apperrors"
	"github.com/RehanWaris/vbudget/internal/pkg/models"
	"github.com/RehanWaris/vbudget/services/account/mocks"
	otpmocks "github.com/RehanWaris/vbudget/services/otp/mocks"
)

type accountFixture struct {
	repo *mocks.MockAccountRepo
	otp  *otpmocks.MockManager
	gw   *mocks.MockAccountGW
	uc   *AccountUC
}

func newAccountFixture(t *testing.T) (*accountFixture, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAccountRepo(ctrl)
	otpManager := otpmocks.NewMockManager(ctrl)
	gw := mocks.NewMockAccountGW(ctrl)

	cfg := &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "vbudget-test",
		},
		Admin: models.AdminConfig{
			Email: "admin@vbudget.local",
			Name:  "Admin",
		},
	}

	return &accountFixture{
		repo: repo,
		otp:  otpManager,
		gw:   gw,
		uc:   NewAccountUC(repo, otpManager, gw, cfg),
	}, ctrl
}

func notFoundErr() error {
	return apperrors.NotFound("user", "missing")
}

func TestRegister_Success(t *testing.T) {
	f, ctrl := newAccountFixture(t)
	defer ctrl.Finish()

	f.repo.EXPECT().GetUserByEmail(gomock.Any(), "new@agency.test").Return(nil, notFoundErr())
	f.repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.User) error {
			assert.Equal(t, models.UserPendingSelf, user.Status)
			assert.Equal(t, models.RoleEmployee, user.Role)
			assert.NotEqual(t, "secret123", user.HashedPassword)
			return nil
		})
	f.otp.EXPECT().
		Issue(gomock.Any(), "new@agency.test", models.OTPPurposeSelfRegistration).
		Return(&models.OTPChallenge{Code: "482913"}, nil)
	f.gw.EXPECT().NotifyAdmin(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	user, err := f.uc.Register(context.Background(), &models.RegisterRequest{
		Name:     "New Employee",
		Email:    "  New@Agency.Test ",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, "new@agency.test", user.Email)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	f, ctrl := newAccountFixture(t)
	defer ctrl.Finish()

	f.repo.EXPECT().GetUserByEmail(gomock.Any(), "taken@agency.test").Return(&models.User{
		ID:    uuid.New(),
		Email: "taken@agency.test",
	}, nil)

	_, err := f.uc.Register(context.Background(), &models.RegisterRequest{
		Name:     "Someone",
		Email:    "taken@agency.test",
		Password: "secret123",
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeDuplicateEmail))
}

func TestVerifySelf_Success(t *testing.T) {
	f, ctrl := newAccountFixture(t)
	defer ctrl.Finish()

	userID := uuid.New()
	f.repo.EXPECT().GetUserByEmail(gomock.Any(), "new@agency.test").Return(&models.User{
		ID:     userID,
		Email:  "new@agency.test",
		Status: models.UserPendingSelf,
	}, nil)
	f.otp.EXPECT().
		Consume(gomock.Any(), "new@agency.test", models.OTPPurposeSelfRegistration, "482913").
		Return(nil)
	f.repo.EXPECT().
		UpdateUserStatus(gomock.Any(), userID, models.UserPendingSelf, models.UserPendingAdmin).
		Return(true, nil)
	f.otp.EXPECT().
		Issue(gomock.Any(), userID.String(), models.OTPPurposeAdminApproval).
		Return(&models.OTPChallenge{Code: "915627"}, nil)
	f.gw.EXPECT().NotifyAdmin(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	user, err := f.uc.VerifySelf(context.Background(), "new@agency.test", "482913")

	require.NoError(t, err)
	assert.Equal(t, models.UserPendingAdmin, user.Status)
}

func TestVerifySelf_AlreadyVerified(t *testing.T) {
	f, ctrl := newAccountFixture(t)
	defer ctrl.Finish()

	f.repo.EXPECT().GetUserByEmail(gomock.Any(), "new@agency.test").Return(&models.User{
		ID:     uuid.New(),
		Email:  "new@agency.test",
		Status: models.UserPendingAdmin,
	}, nil)

	// A second verification attempt after success fails loudly instead of
	// silently succeeding.
	_, err := f.uc.VerifySelf(context.Background(), "new@agency.test", "482913")

	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeAlreadyVerified))
}

func TestVerifySelf_InvalidOTPLeavesStatus(t *testing.T) {
	f, ctrl := newAccountFixture(t)
	defer ctrl.Finish()

	f.repo.EXPECT().GetUserByEmail(gomock.Any(), "new@agency.test").Return(&models.User{
		ID:     uuid.New(),
		Email:  "new@agency.test",
		Status: models.UserPendingSelf,
	}, nil)
	f.otp.EXPECT().
		Consume(gomock.Any(), "new@agency.test", models.OTPPurposeSelfRegistration, "000000").
		Return(apperrors.OTP(apperrors.CodeInvalidOrExpiredOTP, "invalid or expired OTP"))

	_, err := f.uc.VerifySelf(context.Background(), "new@agency.test", "000000")

	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeInvalidOrExpiredOTP))
}

func TestAdminApprove_Success(t *testing.T) {
	f, ctrl := newAccountFixture(t)
	defer ctrl.Finish()

	admin := &models.Actor{ID: uuid.New(), Role: models.RoleAdmin}
	userID := uuid.New()

	f.repo.EXPECT().GetUserByID(gomock.Any(), userID).Return(&models.User{
		ID:     userID,
		Status: models.UserPendingAdmin,
	}, nil)
	f.otp.EXPECT().
		Consume(gomock.Any(), userID.String(), models.OTPPurposeAdminApproval, "915627").
		Return(nil)
	f.repo.EXPECT().
		UpdateUserStatus(gomock.Any(), userID, models.UserPendingAdmin, models.UserActive).
		Return(true, nil)

	user, err := f.uc.AdminApprove(context.Background(), admin, userID, "915627")

	require.NoError(t, err)
	assert.Equal(t, models.UserActive, user.Status)
}

func TestAdminApprove_RequiresAdmin(t *testing.T) {
	f, ctrl := newAccountFixture(t)
	defer ctrl.Finish()

	approver := &models.Actor{ID: uuid.New(), Role: models.RoleApprover}

	_, err := f.uc.AdminApprove(context.Background(), approver, uuid.New(), "915627")

	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeForbidden))
}

func TestAdminApprove_NotInPendingAdminState(t *testing.T) {
	f, ctrl := newAccountFixture(t)
	defer ctrl.Finish()

	admin := &models.Actor{ID: uuid.New(), Role: models.RoleAdmin}
	userID := uuid.New()

	f.repo.EXPECT().GetUserByID(gomock.Any(), userID).Return(&models.User{
		ID:     userID,
		Status: models.UserPendingSelf,
	}, nil)

	_, err := f.uc.AdminApprove(context.Background(), admin, userID, "915627")

	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeNotInPendingAdminState))
}

func TestLogin_Success(t *testing.T) {
	f, ctrl := newAccountFixture(t)
	defer ctrl.Finish()

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	f.repo.EXPECT().GetUserByEmail(gomock.Any(), "user@agency.test").Return(&models.User{
		ID:             uuid.New(),
		Email:          "user@agency.test",
		HashedPassword: string(hashed),
		Role:           models.RoleEmployee,
		Status:         models.UserActive,
	}, nil)

	resp, err := f.uc.Login(context.Background(), "user@agency.test", "secret123")

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, models.RoleEmployee, resp.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	f, ctrl := newAccountFixture(t)
	defer ctrl.Finish()

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	f.repo.EXPECT().GetUserByEmail(gomock.Any(), "user@agency.test").Return(&models.User{
		ID:             uuid.New(),
		Email:          "user@agency.test",
		HashedPassword: string(hashed),
		Status:         models.UserActive,
	}, nil)

	_, err = f.uc.Login(context.Background(), "user@agency.test", "wrong")

	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeInvalidCredentials))
}

func TestLogin_PendingAccountCannotLogin(t *testing.T) {
	f, ctrl := newAccountFixture(t)
	defer ctrl.Finish()

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	f.repo.EXPECT().GetUserByEmail(gomock.Any(), "user@agency.test").Return(&models.User{
		ID:             uuid.New(),
		Email:          "user@agency.test",
		HashedPassword: string(hashed),
		Status:         models.UserPendingAdmin,
	}, nil)

	_, err = f.uc.Login(context.Background(), "user@agency.test", "secret123")

	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeAccountNotActive))
}

func TestEnsureAdmin_SeedsOnce(t *testing.T) {
	f, ctrl := newAccountFixture(t)
	defer ctrl.Finish()

	f.repo.EXPECT().GetUserByEmail(gomock.Any(), "admin@vbudget.local").Return(nil, notFoundErr())
	f.repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.User) error {
			assert.Equal(t, models.RoleAdmin, user.Role)
			assert.Equal(t, models.UserActive, user.Status)
			return nil
		})

	require.NoError(t, f.uc.EnsureAdmin(context.Background()))
}

func TestEnsureAdmin_ExistingAdminNoop(t *testing.T) {
	f, ctrl := newAccountFixture(t)
	defer ctrl.Finish()

	f.repo.EXPECT().GetUserByEmail(gomock.Any(), "admin@vbudget.local").Return(&models.User{
		ID:    uuid.New(),
		Email: "admin@vbudget.local",
	}, nil)

	require.NoError(t, f.uc.EnsureAdmin(context.Background()))
}
