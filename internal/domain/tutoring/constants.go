package tutoring

// Request statuses
const (
	RequestPending  = "pending"
	RequestAccepted = "accepted"
	RequestRejected = "rejected"
	RequestExpired  = "expired"
)

// Session statuses
const (
	SessionPending    = "pending"
	SessionConfirmed  = "confirmed"
	SessionInProgress = "in_progress"
	SessionCompleted  = "completed"
	SessionCancelled  = "cancelled"
)

// Urgency levels
const (
	UrgencyLow    = "low"
	UrgencyMedium = "medium"
	UrgencyHigh   = "high"
)

// Location types
const (
	LocationVirtual  = "virtual"
	LocationInPerson = "in_person"
)
