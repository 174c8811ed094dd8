package constants

// Redis key formats
const (
	// OTP challenges are keyed by purpose and subject so that issuing a new
	// challenge for the same pair overwrites the previous one.
	KeyOTPChallenge = "otp:%s:%s" // Format: otp:{purpose}:{subject}
)

// NSQ topics
const (
	TopicNotifications = "vbudget.notifications"
	TopicBudgetEvents  = "vbudget.budget.events"
)
