package domain

import "time"

// Audit actions recorded for role-affecting mutations.
const (
	AuditApproved  = "approved"
	AuditRejected  = "rejected"
	AuditFraudFlag = "fraud_flagged"
)

// RoleAudit is an append-only record of a role-affecting admin decision.
type RoleAudit struct {
	Actor     string    `json:"actor"`
	Subject   string    `json:"subject"`
	Action    string    `json:"action"`
	RequestID string    `json:"request_id,omitempty"`
	At        time.Time `json:"at"`
}
