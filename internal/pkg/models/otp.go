package models

import (
	"time"
)

// OTPPurpose scopes a challenge to the workflow step that issued it.
type OTPPurpose string

const (
	OTPPurposeSelfRegistration OTPPurpose = "self_registration"
	OTPPurposeAdminApproval    OTPPurpose = "admin_approval"
	OTPPurposeVendorUnlock     OTPPurpose = "vendor_unlock"
)

// OTPChallenge is a single-use numeric code bound to a (subject, purpose) pair.
// Issuing a new challenge for the same pair invalidates the previous one.
type OTPChallenge struct {
	Subject   string     `json:"subject"`
	Purpose   OTPPurpose `json:"purpose"`
	Code      string     `json:"code"`
	IssuedAt  time.Time  `json:"issued_at"`
	ExpiresAt time.Time  `json:"expires_at"`
}

// Expired reports whether the challenge is past its expiry at the given instant.
func (c *OTPChallenge) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}
