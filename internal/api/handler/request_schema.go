package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type submitRequest struct {
	RequesterEmail string `json:"requester_email" validate:"required,email"`
	RequestedRole  string `json:"requested_role"  validate:"required,oneof=chef admin"`
}

// Response-only types owned by the transport layer, kept separate from
// domain types so the JSON contract is not coupled to internal changes.

type requestResponse struct {
	ID            string     `json:"id"`
	Email         string     `json:"email"`
	RequestedRole string     `json:"requested_role"`
	Status        string     `json:"status"`
	RequestedAt   time.Time  `json:"requested_at"`
	DecidedAt     *time.Time `json:"decided_at,omitempty"`
}

type submitResponse struct {
	Request   *requestResponse `json:"request,omitempty"`
	Duplicate bool             `json:"duplicate"`
	Message   string           `json:"message,omitempty"`
}

type listRequestsResponse struct {
	Data []requestResponse `json:"data"`
}

type decisionResponse struct {
	Message string           `json:"message"`
	Request *requestResponse `json:"request"`
}
