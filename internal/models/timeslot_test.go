package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMinuteOfDay(t *testing.T) {
	m, err := ParseMinuteOfDay("09:30")
	require.NoError(t, err)
	assert.Equal(t, MinuteOfDay(9*60+30), m)
	assert.Equal(t, "09:30", m.String())

	_, err = ParseMinuteOfDay("25:00")
	assert.Error(t, err)
}

func TestNewTimeSlotRejectsBackwardsRange(t *testing.T) {
	_, err := NewTimeSlot(Monday, 600, 600)
	assert.Error(t, err)

	_, err = NewTimeSlot("Funday", 540, 600)
	assert.Error(t, err)
}

func TestTimeSlotOverlapsExcludesTouchingEndpoints(t *testing.T) {
	a, err := NewTimeSlot(Monday, 540, 600)
	require.NoError(t, err)
	b, err := NewTimeSlot(Monday, 600, 660)
	require.NoError(t, err)
	assert.False(t, a.Overlaps(b), "touching endpoints must not overlap")

	c, err := NewTimeSlot(Monday, 590, 650)
	require.NoError(t, err)
	assert.True(t, a.Overlaps(c))

	d, err := NewTimeSlot(Tuesday, 540, 600)
	require.NoError(t, err)
	assert.False(t, a.Overlaps(d), "different days never overlap")
}

func TestTimeSlotJSONRoundTrip(t *testing.T) {
	slot, err := NewTimeSlot(Wednesday, 570, 630)
	require.NoError(t, err)

	raw, err := json.Marshal(slot)
	require.NoError(t, err)
	assert.JSONEq(t, `{"day":"Wednesday","start_time":"09:30","end_time":"10:30"}`, string(raw))

	var decoded TimeSlot
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.True(t, slot.Equal(decoded))
}
