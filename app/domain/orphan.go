package domain

import "time"

// OrphanReason records why a Keycloak account was left without a matching
// user record.
type OrphanReason string

const (
	// OrphanReasonRollbackFailed marks a compensating delete that failed
	// after a forward step already failed.
	OrphanReasonRollbackFailed OrphanReason = "rollback_failed"

	// OrphanReasonUserServiceUnavailable marks an account stranded because
	// the user-record store was unreachable while creating the record and
	// the compensating delete also failed.
	OrphanReasonUserServiceUnavailable OrphanReason = "user_service_unavailable"

	// OrphanReasonKeycloakDeleteFailed marks an account whose user record
	// was already deleted but whose Keycloak deletion failed.
	OrphanReasonKeycloakDeleteFailed OrphanReason = "keycloak_delete_failed"
)

// OrphanedUser is the durable record of an inconsistency that requires
// manual reconciliation. Invariant: every entry denotes a Keycloak account
// with no matching internal user record. Entries are only removed by an
// operator marking them cleaned.
type OrphanedUser struct {
	ExternalID    string       `json:"external_id"`
	Reason        OrphanReason `json:"reason"`
	OriginalError string       `json:"original_error"`
	RollbackError string       `json:"rollback_error,omitempty"`
	OperationID   string       `json:"operation_id"`
	Timestamp     time.Time    `json:"timestamp"`
}
