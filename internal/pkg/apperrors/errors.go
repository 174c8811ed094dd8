// Package apperrors defines the workflow error taxonomy. Every failure the
// core reports to a caller is one of these kinds, carrying enough context
// (entity id, current state, attempted state) to render a message.
package apperrors

import (
	"errors"
	"fmt"
)

// Kind groups errors by how the caller should treat them.
type Kind string

const (
	KindValidation    Kind = "validation"
	KindState         Kind = "state"
	KindAuthorization Kind = "authorization"
	KindOTP           Kind = "otp"
	KindResolution    Kind = "resolution"
	KindNotFound      Kind = "not_found"
)

// Code identifies the specific failure within a kind.
type Code string

const (
	CodeDuplicateEmail            Code = "duplicate_email"
	CodeInvalidRateCard           Code = "invalid_rate_card"
	CodeEmptyBudget               Code = "empty_budget"
	CodeMissingComment            Code = "missing_comment"
	CodeInvalidPayload            Code = "invalid_payload"
	CodeInvalidOrExpiredOTP       Code = "invalid_or_expired_otp"
	CodeAlreadyVerified           Code = "already_verified"
	CodeNotInPendingAdminState    Code = "not_in_pending_admin_state"
	CodeNotInPendingApprovalState Code = "not_in_pending_approval_state"
	CodeWrongStage                Code = "wrong_stage"
	CodeTerminalState             Code = "terminal_state"
	CodeUnresolvedRateItem        Code = "unresolved_rate_item"
	CodeAccountNotActive          Code = "account_not_active"
	CodeForbidden                 Code = "forbidden"
	CodeInvalidCredentials        Code = "invalid_credentials"
	CodeNotFound                  Code = "not_found"
)

// Error is the single error type of the taxonomy.
type Error struct {
	Kind      Kind   `json:"kind"`
	Code      Code   `json:"code"`
	Message   string `json:"message"`
	EntityID  string `json:"entity_id,omitempty"`
	Current   string `json:"current_state,omitempty"`
	Attempted string `json:"attempted_state,omitempty"`
}

func (e *Error) Error() string {
	if e.EntityID != "" && e.Current != "" {
		return fmt.Sprintf("%s: %s (entity=%s state=%s)", e.Code, e.Message, e.EntityID, e.Current)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is makes errors.Is match on code so callers can compare against sentinels.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// Validation reports malformed input.
func Validation(code Code, format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Code: code, Message: fmt.Sprintf(format, args...)}
}

// State reports an operation that is invalid for the entity's current
// lifecycle state.
func State(code Code, entityID, current, attempted string) *Error {
	return &Error{
		Kind:      KindState,
		Code:      code,
		Message:   fmt.Sprintf("operation not allowed in state %s", current),
		EntityID:  entityID,
		Current:   current,
		Attempted: attempted,
	}
}

// Authorization reports a role mismatch for the attempted operation.
func Authorization(format string, args ...interface{}) *Error {
	return &Error{Kind: KindAuthorization, Code: CodeForbidden, Message: fmt.Sprintf(format, args...)}
}

// OTP reports a challenge validation failure.
func OTP(code Code, format string, args ...interface{}) *Error {
	return &Error{Kind: KindOTP, Code: code, Message: fmt.Sprintf(format, args...)}
}

// Resolution reports an import row that could not be priced.
func Resolution(format string, args ...interface{}) *Error {
	return &Error{Kind: KindResolution, Code: CodeUnresolvedRateItem, Message: fmt.Sprintf(format, args...)}
}

// NotFound reports a missing entity.
func NotFound(entity, id string) *Error {
	return &Error{
		Kind:     KindNotFound,
		Code:     CodeNotFound,
		Message:  fmt.Sprintf("%s not found", entity),
		EntityID: id,
	}
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code Code) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}

// KindOf returns the kind of err, or "" for errors outside the taxonomy
// (infrastructure failures from persistence or notification collaborators).
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
