package domain

import (
	"errors"
	"time"
)

// RequestStatus represents the lifecycle state of an elevation request.
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

// validTransitions defines the allowed state machine transitions.
// Approved and rejected are terminal: nothing transitions out of them.
var validTransitions = map[RequestStatus][]RequestStatus{
	RequestPending: {RequestApproved, RequestRejected},
}

var ErrRequestNotFound = errors.New("elevation request not found")
var ErrDuplicatePending = errors.New("pending request already exists")
var ErrRequestTerminal = errors.New("request already decided")

// CanTransitionTo reports whether a transition from current status to next is valid.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether the status admits no further transitions.
func (s RequestStatus) Terminal() bool {
	return s == RequestApproved || s == RequestRejected
}

// ElevationRequest is a user-initiated request to change their own role,
// subject to admin approval. At most one pending request may exist per
// (email, requested role) pair; the store enforces this with a unique index.
type ElevationRequest struct {
	ID            string        `json:"id"`
	Email         string        `json:"email"`
	RequestedRole Role          `json:"requested_role"`
	Status        RequestStatus `json:"status"`
	RequestedAt   time.Time     `json:"requested_at"`
	DecidedAt     *time.Time    `json:"decided_at,omitempty"`
}
