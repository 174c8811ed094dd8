package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/RehanWaris/vbudget/internal/pkg/apperrors"
	jwtpkg "github.com/RehanWaris/vbudget/internal/pkg/jwt"
	"github.com/RehanWaris/vbudget/internal/pkg/logger"
	"github.com/RehanWaris/vbudget/internal/pkg/models"
)

// Register creates a new employee account in pending_self and issues the
// self-registration challenge.
func (u *AccountUC) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Name == "" || req.Password == "" {
		return nil, apperrors.Validation(apperrors.CodeInvalidPayload, "name, email and password are required")
	}

	existing, err := u.accountRepo.GetUserByEmail(ctx, email)
	if err != nil && !apperrors.IsCode(err, apperrors.CodeNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, apperrors.Validation(apperrors.CodeDuplicateEmail, "email %s is already registered", email)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:           req.Name,
		Email:          email,
		Phone:          req.Phone,
		Designation:    req.Designation,
		Team:           req.Team,
		Supervisor:     req.Supervisor,
		HashedPassword: string(hashed),
		Role:           models.RoleEmployee,
		Status:         models.UserPendingSelf,
	}
	if err := u.accountRepo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	challenge, err := u.otpManager.Issue(ctx, email, models.OTPPurposeSelfRegistration)
	if err != nil {
		return nil, fmt.Errorf("failed to issue registration challenge: %w", err)
	}

	u.notifyAdmin(ctx, "New employee registration",
		fmt.Sprintf("OTP for %s: %s", email, challenge.Code))

	return user, nil
}

// VerifySelf consumes the self-registration challenge and advances the user
// to pending_admin. A repeated call after success fails with AlreadyVerified
// rather than silently succeeding.
func (u *AccountUC) VerifySelf(ctx context.Context, email, code string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := u.accountRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	next, ok := models.NextUserStatus(user.Status, models.EventVerifySelf)
	if !ok {
		if user.Status == models.UserPendingAdmin || user.Status == models.UserActive {
			return nil, apperrors.OTP(apperrors.CodeAlreadyVerified, "user %s is already verified", email)
		}
		return nil, apperrors.State(apperrors.CodeTerminalState, user.ID.String(), string(user.Status), string(models.UserPendingAdmin))
	}

	if err := u.otpManager.Consume(ctx, email, models.OTPPurposeSelfRegistration, code); err != nil {
		return nil, err
	}

	applied, err := u.accountRepo.UpdateUserStatus(ctx, user.ID, user.Status, next)
	if err != nil {
		return nil, fmt.Errorf("failed to update user status: %w", err)
	}
	if !applied {
		return nil, apperrors.OTP(apperrors.CodeAlreadyVerified, "user %s is already verified", email)
	}
	user.Status = next

	adminChallenge, err := u.otpManager.Issue(ctx, user.ID.String(), models.OTPPurposeAdminApproval)
	if err != nil {
		return nil, fmt.Errorf("failed to issue admin approval challenge: %w", err)
	}

	u.notifyAdmin(ctx, "Approve new employee",
		fmt.Sprintf("OTP for %s: %s", email, adminChallenge.Code))

	return user, nil
}

// AdminApprove consumes the admin challenge and activates the user.
// Requires an administrator caller.
func (u *AccountUC) AdminApprove(ctx context.Context, actor *models.Actor, userID uuid.UUID, code string) (*models.User, error) {
	if !actor.Role.Capabilities().CanAdminister {
		return nil, apperrors.Authorization("role %s cannot approve accounts", actor.Role)
	}

	user, err := u.accountRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	next, ok := models.NextUserStatus(user.Status, models.EventAdminApprove)
	if !ok {
		return nil, apperrors.State(apperrors.CodeNotInPendingAdminState, user.ID.String(), string(user.Status), string(models.UserActive))
	}

	if err := u.otpManager.Consume(ctx, user.ID.String(), models.OTPPurposeAdminApproval, code); err != nil {
		return nil, err
	}

	applied, err := u.accountRepo.UpdateUserStatus(ctx, user.ID, user.Status, next)
	if err != nil {
		return nil, fmt.Errorf("failed to update user status: %w", err)
	}
	if !applied {
		return nil, apperrors.State(apperrors.CodeNotInPendingAdminState, user.ID.String(), string(user.Status), string(next))
	}
	user.Status = next

	logger.Info("Activated user account",
		logger.String("user_id", user.ID.String()),
		logger.String("approved_by", actor.ID.String()))

	return user, nil
}

// RejectUser moves a pending account to rejected. Requires an administrator.
func (u *AccountUC) RejectUser(ctx context.Context, actor *models.Actor, userID uuid.UUID, comment string) (*models.User, error) {
	if !actor.Role.Capabilities().CanAdminister {
		return nil, apperrors.Authorization("role %s cannot reject accounts", actor.Role)
	}

	user, err := u.accountRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	next, ok := models.NextUserStatus(user.Status, models.EventRejectUser)
	if !ok {
		return nil, apperrors.State(apperrors.CodeTerminalState, user.ID.String(), string(user.Status), string(models.UserRejected))
	}

	applied, err := u.accountRepo.UpdateUserStatus(ctx, user.ID, user.Status, next)
	if err != nil {
		return nil, fmt.Errorf("failed to update user status: %w", err)
	}
	if !applied {
		return nil, apperrors.State(apperrors.CodeTerminalState, user.ID.String(), string(user.Status), string(next))
	}
	user.Status = next

	logger.Info("Rejected user account",
		logger.String("user_id", user.ID.String()),
		logger.String("rejected_by", actor.ID.String()),
		logger.String("comment", comment))

	return user, nil
}

// PendingUsers lists accounts awaiting admin approval; a pure read.
func (u *AccountUC) PendingUsers(ctx context.Context) ([]*models.User, error) {
	return u.accountRepo.ListUsersByStatus(ctx, models.UserPendingAdmin)
}

// GetUser returns a single user by id.
func (u *AccountUC) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return u.accountRepo.GetUserByID(ctx, id)
}

// notifyAdmin delivers an admin notification without affecting the caller's
// state transition; failures are logged and dropped.
func (u *AccountUC) notifyAdmin(ctx context.Context, subject, message string) {
	if err := u.accountGW.NotifyAdmin(ctx, subject, message); err != nil {
		logger.Warn("Failed to deliver admin notification",
			logger.String("subject", subject),
			logger.ErrorField(err))
	}
}

var errInvalidCredentials = &apperrors.Error{
	Kind:    apperrors.KindAuthorization,
	Code:    apperrors.CodeInvalidCredentials,
	Message: "invalid email or password",
}

// Login authenticates by email and password and issues a JWT. Only active
// accounts may log in.
func (u *AccountUC) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := u.accountRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if apperrors.IsCode(err, apperrors.CodeNotFound) {
			return nil, errInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, errInvalidCredentials
		}
		return nil, fmt.Errorf("failed to compare password: %w", err)
	}

	if user.Status != models.UserActive {
		return nil, apperrors.State(apperrors.CodeAccountNotActive, user.ID.String(), string(user.Status), string(models.UserActive))
	}

	token, expiresAt, err := jwtpkg.GenerateToken(user.ID, user.Email, user.Role, u.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		Token:     token,
		UserID:    user.ID.String(),
		Role:      user.Role,
		ExpiresAt: expiresAt,
	}, nil
}

// EnsureAdmin seeds the bootstrap administrator account on startup.
func (u *AccountUC) EnsureAdmin(ctx context.Context) error {
	email := strings.ToLower(strings.TrimSpace(u.cfg.Admin.Email))
	if email == "" {
		return nil
	}

	_, err := u.accountRepo.GetUserByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !apperrors.IsCode(err, apperrors.CodeNotFound) {
		return fmt.Errorf("failed to check admin account: %w", err)
	}

	password := u.cfg.Admin.Password
	if password == "" {
		password = "Admin@123"
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.User{
		Name:           u.cfg.Admin.Name,
		Email:          email,
		HashedPassword: string(hashed),
		Role:           models.RoleAdmin,
		Status:         models.UserActive,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
	if err := u.accountRepo.CreateUser(ctx, admin); err != nil {
		return fmt.Errorf("failed to seed admin account: %w", err)
	}

	logger.Info("Seeded bootstrap admin account", logger.String("email", email))
	return nil
}
