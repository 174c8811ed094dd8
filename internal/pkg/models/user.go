package models

import (
	"time"

	"github.com/google/uuid"
)

// UserRole identifies what a user is allowed to do in the approval workflows.
type UserRole string

const (
	RoleEmployee UserRole = "employee"
	RoleApprover UserRole = "approver"
	RoleAccounts UserRole = "accounts"
	RoleAdmin    UserRole = "admin"
)

// UserStatus is the account activation state.
type UserStatus string

const (
	UserPendingSelf  UserStatus = "pending_self"
	UserPendingAdmin UserStatus = "pending_admin"
	UserActive       UserStatus = "active"
	UserRejected     UserStatus = "rejected"
)

// ActivationEvent is an input to the account activation state machine.
type ActivationEvent string

const (
	EventVerifySelf   ActivationEvent = "verify_self"
	EventAdminApprove ActivationEvent = "admin_approve"
	EventRejectUser   ActivationEvent = "reject"
)

// activationTransitions is the account activation transition table.
// Absence of an entry means the transition is illegal.
var activationTransitions = map[UserStatus]map[ActivationEvent]UserStatus{
	UserPendingSelf: {
		EventVerifySelf: UserPendingAdmin,
		EventRejectUser: UserRejected,
	},
	UserPendingAdmin: {
		EventAdminApprove: UserActive,
		EventRejectUser:   UserRejected,
	},
}

// NextUserStatus returns the state the activation machine moves to for the
// given event, or false when the transition is not allowed from the current state.
func NextUserStatus(current UserStatus, event ActivationEvent) (UserStatus, bool) {
	next, ok := activationTransitions[current][event]
	return next, ok
}

// Capabilities is the per-role capability set used for authorization checks.
type Capabilities struct {
	CanSubmit     bool
	CanApprove    bool
	CanAccount    bool
	CanAdminister bool
}

var roleCapabilities = map[UserRole]Capabilities{
	RoleEmployee: {CanSubmit: true},
	RoleApprover: {CanSubmit: true, CanApprove: true},
	RoleAccounts: {CanSubmit: true, CanAccount: true},
	RoleAdmin:    {CanSubmit: true, CanApprove: true, CanAccount: true, CanAdminister: true},
}

// Capabilities returns the capability set for the role. Unknown roles get
// an empty set.
func (r UserRole) Capabilities() Capabilities {
	return roleCapabilities[r]
}

// User represents an employee account in the organization.
type User struct {
	ID             uuid.UUID  `json:"id" db:"id"`
	Name           string     `json:"name" db:"name"`
	Email          string     `json:"email" db:"email"`
	Phone          string     `json:"phone,omitempty" db:"phone"`
	Designation    string     `json:"designation,omitempty" db:"designation"`
	Team           string     `json:"team,omitempty" db:"team"`
	Supervisor     string     `json:"supervisor,omitempty" db:"supervisor"`
	HashedPassword string     `json:"-" db:"hashed_password"`
	Role           UserRole   `json:"role" db:"role"`
	Status         UserStatus `json:"status" db:"status"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
}

// Actor is the authenticated caller of an operation, as supplied by the
// identity collaborator (JWT middleware). The core trusts it and only
// checks role adequacy.
type Actor struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Role  UserRole  `json:"role"`
}

// RegisterRequest is the payload for employee self-registration.
type RegisterRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required"`
	Phone       string `json:"phone"`
	Designation string `json:"designation"`
	Team        string `json:"team"`
	Supervisor  string `json:"supervisor"`
	Password    string `json:"password" validate:"required"`
}

// VerifySelfRequest carries the self-registration OTP check.
type VerifySelfRequest struct {
	Email string `json:"email" validate:"required"`
	Code  string `json:"code" validate:"required"`
}

// AdminApproveRequest carries the admin approval OTP check for a pending user.
type AdminApproveRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
	Code   string    `json:"code" validate:"required"`
}

// LoginRequest is the email/password login payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned after a successful login.
type AuthResponse struct {
	Token     string   `json:"token"`
	UserID    string   `json:"user_id"`
	Role      UserRole `json:"role"`
	ExpiresAt int64    `json:"expires_at"`
}
