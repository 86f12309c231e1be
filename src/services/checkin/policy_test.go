package checkin

import (
	"testing"

	"github.com/Thiraphat-tony/seminar-checkin-sub000/src/models"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRound(t *testing.T) {
	cases := []struct {
		name string
		in   int
		want int
	}{
		{"round 1", 1, 1},
		{"round 2", 2, 2},
		{"round 3", 3, 3},
		{"zero means closed", 0, 0},
		{"negative clamps to closed", -1, 0},
		{"above max clamps to closed", 4, 0},
		{"garbage value clamps to closed", 99, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeRound(tc.in))
		})
	}
}

func TestIsAdmissible(t *testing.T) {
	t.Run("closed event refuses regardless of round", func(t *testing.T) {
		event := &models.Event{CheckinOpen: false, CheckinRoundOpen: 2}
		decision := IsAdmissible(event)

		assert.False(t, decision.Allowed)
		assert.Equal(t, ReasonCheckinClosed, decision.Reason)
	})

	t.Run("open event without an open round refuses", func(t *testing.T) {
		event := &models.Event{CheckinOpen: true, CheckinRoundOpen: 0}
		decision := IsAdmissible(event)

		assert.False(t, decision.Allowed)
		assert.Equal(t, ReasonRoundNotOpen, decision.Reason)
	})

	t.Run("open event with corrupt round value refuses as round-not-open", func(t *testing.T) {
		event := &models.Event{CheckinOpen: true, CheckinRoundOpen: 7}
		decision := IsAdmissible(event)

		assert.False(t, decision.Allowed)
		assert.Equal(t, ReasonRoundNotOpen, decision.Reason)
	})

	t.Run("open event with valid round admits", func(t *testing.T) {
		for round := 1; round <= MaxRound; round++ {
			event := &models.Event{CheckinOpen: true, CheckinRoundOpen: round}
			decision := IsAdmissible(event)

			assert.True(t, decision.Allowed)
			assert.Empty(t, decision.Reason)
		}
	})
}
