package request

import "strings"

// RaiseDisputeRequest opens a dispute on behalf of the calling party.
type RaiseDisputeRequest struct {
	Reason  string `json:"reason" binding:"required"`
	Details string `json:"details" binding:"required"`
}

func (r RaiseDisputeRequest) ResolveDetails() string {
	return strings.TrimSpace(r.Details)
}

// ResolveDisputeRequest closes an open dispute with the admin's ruling.
type ResolveDisputeRequest struct {
	ResolutionNotes string `json:"resolution_notes"`
}
