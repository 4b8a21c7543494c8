package request

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidEstimatePrice = errors.New("invalid estimate price")
	ErrMissingResponseFlag  = errors.New("missing accept flag")
)

// CreateEstimateRequest carries a priced proposal from the back office. The
// same payload serves the initial estimate and later revisions; the route
// decides which operation runs.
type CreateEstimateRequest struct {
	Price       float64    `json:"price" binding:"required"`
	Description string     `json:"description"`
	ValidUntil  *time.Time `json:"valid_until"`
}

func (r CreateEstimateRequest) ResolvePrice() (float64, error) {
	if r.Price <= 0 {
		return 0, ErrInvalidEstimatePrice
	}
	return r.Price, nil
}

// ResolveValidUntil applies the default validity window when the back office
// does not provide one.
func (r CreateEstimateRequest) ResolveValidUntil(now time.Time, defaultWindow time.Duration) time.Time {
	if r.ValidUntil != nil && !r.ValidUntil.IsZero() {
		return r.ValidUntil.UTC()
	}
	return now.Add(defaultWindow).UTC()
}

// RespondToEstimateRequest records a party's accept/refuse answer, used both
// for the client's answer to the initial estimate and for either party's
// answer to a revision. Accept is a pointer so that an absent flag binds as
// nil instead of a silent refusal.
type RespondToEstimateRequest struct {
	Accept   *bool  `json:"accept"`
	Response string `json:"response"`
}

func (r RespondToEstimateRequest) ResolveAccept() (bool, error) {
	if r.Accept == nil {
		return false, ErrMissingResponseFlag
	}
	return *r.Accept, nil
}

// RejectEstimateRequest reopens an accepted estimate on the artisan's
// initiative. The reason is validated downstream against the minimum length.
type RejectEstimateRequest struct {
	Reason string `json:"reason" binding:"required"`
}

func (r RejectEstimateRequest) ResolveReason() string {
	return strings.TrimSpace(r.Reason)
}
