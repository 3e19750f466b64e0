package handler

import (
	"github.com/local-bazaar/bazaar-api/internal/core/domain"
)

func toRequestResponse(r *domain.ElevationRequest) *requestResponse {
	if r == nil {
		return nil
	}
	return &requestResponse{
		ID:            r.ID,
		Email:         r.Email,
		RequestedRole: string(r.RequestedRole),
		Status:        string(r.Status),
		RequestedAt:   r.RequestedAt.UTC(),
		DecidedAt:     r.DecidedAt,
	}
}

func toListResponse(requests []*domain.ElevationRequest) listRequestsResponse {
	out := make([]requestResponse, len(requests))
	for i, r := range requests {
		out[i] = *toRequestResponse(r)
	}
	return listRequestsResponse{Data: out}
}
