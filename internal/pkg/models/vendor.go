package models

import (
	"time"

	"github.com/google/uuid"
)

// VendorStatus is the vendor onboarding state.
type VendorStatus string

const (
	VendorPendingApproval VendorStatus = "pending_approval"
	VendorApproved        VendorStatus = "approved"
	VendorRejected        VendorStatus = "rejected"
)

// VendorEvent is an input to the vendor onboarding state machine.
type VendorEvent string

const (
	EventApproveVendor  VendorEvent = "approve"
	EventRejectVendor   VendorEvent = "reject"
	EventResubmitVendor VendorEvent = "resubmit"
)

var vendorTransitions = map[VendorStatus]map[VendorEvent]VendorStatus{
	VendorPendingApproval: {
		EventApproveVendor: VendorApproved,
		EventRejectVendor:  VendorRejected,
	},
	// Rate cards are immutable once approved; edits require a new
	// submission cycle which puts the vendor back under review.
	VendorApproved: {
		EventResubmitVendor: VendorPendingApproval,
	},
	VendorRejected: {
		EventResubmitVendor: VendorPendingApproval,
	},
}

// NextVendorStatus returns the state the onboarding machine moves to for the
// given event, or false when the transition is not allowed.
func NextVendorStatus(current VendorStatus, event VendorEvent) (VendorStatus, bool) {
	next, ok := vendorTransitions[current][event]
	return next, ok
}

// RateCard is a vendor's published price list entry for a billable item.
type RateCard struct {
	ID           uuid.UUID `json:"id" db:"id"`
	VendorID     uuid.UUID `json:"vendor_id" db:"vendor_id"`
	ItemName     string    `json:"item_name" db:"item_name"`
	Description  string    `json:"description,omitempty" db:"description"`
	Unit         string    `json:"unit" db:"unit"`
	Rate         float64   `json:"rate" db:"rate"`
	MinQuantity  float64   `json:"min_quantity" db:"min_quantity"`
	SetupCharges float64   `json:"setup_charges" db:"setup_charges"`
	CategoryTag  string    `json:"category_tag" db:"category_tag"`
	Notes        string    `json:"notes,omitempty" db:"notes"`
}

// Vendor is a supplier record with its embedded rate cards.
type Vendor struct {
	ID            uuid.UUID    `json:"id" db:"id"`
	Name          string       `json:"name" db:"name"`
	Category      string       `json:"category" db:"category"`
	ContactPerson string       `json:"contact_person,omitempty" db:"contact_person"`
	Phone         string       `json:"phone,omitempty" db:"phone"`
	Email         string       `json:"email,omitempty" db:"email"`
	GSTNumber     string       `json:"gst_number,omitempty" db:"gst_number"`
	Region        string       `json:"region,omitempty" db:"region"`
	Status        VendorStatus `json:"status" db:"status"`
	CreatedBy     uuid.UUID    `json:"created_by" db:"created_by"`
	CreatedAt     time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at" db:"updated_at"`
	RateCards     []RateCard   `json:"rate_cards" db:"-"`
}

// RateCardInput is a rate card as submitted by the vendor creator.
type RateCardInput struct {
	ItemName     string  `json:"item_name" validate:"required"`
	Description  string  `json:"description"`
	Unit         string  `json:"unit"`
	Rate         float64 `json:"rate"`
	MinQuantity  float64 `json:"min_quantity"`
	SetupCharges float64 `json:"setup_charges"`
	CategoryTag  string  `json:"category_tag"`
	Notes        string  `json:"notes"`
}

// VendorCreateRequest is the OTP-gated vendor submission payload.
type VendorCreateRequest struct {
	OTPCode       string          `json:"otp_code" validate:"required"`
	Name          string          `json:"name" validate:"required"`
	Category      string          `json:"category" validate:"required"`
	ContactPerson string          `json:"contact_person"`
	Phone         string          `json:"phone"`
	Email         string          `json:"email"`
	GSTNumber     string          `json:"gst_number"`
	Region        string          `json:"region"`
	RateCards     []RateCardInput `json:"rate_cards"`
}

// VendorResubmitRequest replaces a vendor's rate cards and restarts approval.
type VendorResubmitRequest struct {
	RateCards []RateCardInput `json:"rate_cards"`
	Notes     string          `json:"notes"`
}

// DefaultVendorCategories lists the service categories the organization
// books most often; used to seed category pickers.
func DefaultVendorCategories() []string {
	return []string{
		"Sound",
		"Light",
		"Fabrication",
		"Flex",
		"Truss",
		"LED",
		"Artist Management",
		"Hospitality",
		"Logistics",
		"Branding",
	}
}
