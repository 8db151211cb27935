package audit

import "time"

// EventCategory classifies audit events by their primary purpose.
// This enables different retention policies and topic routing.
type EventCategory string

const (
	// CategoryCompliance covers events with legal/regulatory significance.
	// Dissolution eligibility decisions land here because registry staff must
	// be able to reconstruct why a dissolution was offered or withheld.
	CategoryCompliance EventCategory = "compliance"

	// CategoryOperations covers events useful for debugging and operational
	// visibility. Routine eligibility reads and draft mutations land here.
	CategoryOperations EventCategory = "operations"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so publishers can fan out to different sinks.
type Event struct {
	Category   EventCategory
	Timestamp  time.Time
	BusinessID string
	Action     string
	Decision   string
	Reason     string
	// Correlation and actor enrichment from the HTTP middleware chain.
	RequestID  string
	ActorID    string
	ActorRoles []string
	ClientIP   string
	Device     string
}

type AuditEvent string

const (
	EventActionEvaluated    AuditEvent = "action_evaluated"
	EventFilingDataUpdated  AuditEvent = "filing_data_updated"
	EventFilingDataCleared  AuditEvent = "filing_data_cleared"
	EventBusinessLoaded     AuditEvent = "business_loaded"
	EventFlagInitSucceeded  AuditEvent = "flag_init_succeeded"
	EventFlagInitFellBack   AuditEvent = "flag_init_fell_back"
	EventDissolutionAllowed AuditEvent = "dissolution_allowed"
	EventDissolutionDenied  AuditEvent = "dissolution_denied"
)
