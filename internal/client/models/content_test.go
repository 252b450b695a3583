package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCampaign_Progress(t *testing.T) {
	tests := []struct {
		name string
		c    Campaign
		want float64
	}{
		{"quarter", Campaign{GoalAmount: 1000, CurrentAmount: 250}, 25},
		{"over goal is capped", Campaign{GoalAmount: 1000, CurrentAmount: 1500}, 100},
		{"no goal", Campaign{GoalAmount: 0, CurrentAmount: 10}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.c.Progress(), 0.0001)
		})
	}
}

func TestEvent_SeatsLeft(t *testing.T) {
	_, ok := Event{RegisteredCount: 3}.SeatsLeft()
	assert.False(t, ok)

	limit := 10
	left, ok := Event{MaxParticipants: &limit, RegisteredCount: 4}.SeatsLeft()
	assert.True(t, ok)
	assert.Equal(t, 6, left)

	left, _ = Event{MaxParticipants: &limit, RegisteredCount: 12}.SeatsLeft()
	assert.Equal(t, 0, left)
}
