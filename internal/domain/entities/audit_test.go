package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisputeReasonValid(t *testing.T) {
	valid := []DisputeReason{
		DisputeReasonWorkQuality,
		DisputeReasonIncompleteWork,
		DisputeReasonNoShow,
		DisputeReasonPricing,
		DisputeReasonBehavior,
		DisputeReasonDamage,
		DisputeReasonOther,
	}
	for _, r := range valid {
		assert.True(t, r.Valid(), "%s should be valid", r)
	}

	assert.False(t, DisputeReason("").Valid())
	assert.False(t, DisputeReason("bad_weather").Valid())
}
