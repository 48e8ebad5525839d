package booking

import (
	"testing"

	"aspcare/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSlots_EmptyFallsBackToAllOpen(t *testing.T) {
	for _, availability := range []map[string]bool{nil, {}, {"06:00-07:00": false}} {
		slots, fallback := ResolveSlots(availability)

		assert.True(t, fallback)
		require.Len(t, slots, len(CanonicalSlots))
		for i, s := range slots {
			assert.Equal(t, CanonicalSlots[i], s.Slot)
			assert.True(t, s.Available)
		}
	}
}

func TestResolveSlots_KeepsCanonicalOrderAndDropsUnknown(t *testing.T) {
	slots, fallback := ResolveSlots(map[string]bool{
		"09:00-10:00": false,
		"bogus":       true,
		"07:00-08:00": true,
	})

	assert.False(t, fallback)
	assert.Equal(t, []models.Slot{
		{Slot: "07:00-08:00", Available: true},
		{Slot: "09:00-10:00", Available: false},
	}, slots)
}

func TestUnknownSlotKeys(t *testing.T) {
	keys := UnknownSlotKeys(map[string]bool{"07:00-08:00": true, "late": true})
	assert.Equal(t, []string{"late"}, keys)
	assert.Empty(t, UnknownSlotKeys(nil))
}

func TestSlotSelection(t *testing.T) {
	board := []models.Slot{
		{Slot: "07:00-08:00", Available: true},
		{Slot: "08:00-09:00", Available: false},
	}
	var sel SlotSelection
	sel.ChangeDate("2026-01-18", board)

	require.NoError(t, sel.Select("07:00-08:00"))
	assert.Equal(t, "07:00-08:00", sel.Slot)

	err := sel.Select("08:00-09:00")
	require.Error(t, err)
	assert.Equal(t, "This time slot is already booked", err.(*ValidationError).Message)
	assert.Equal(t, "07:00-08:00", sel.Slot)

	err = sel.Select("10:00-11:00")
	require.Error(t, err)
	assert.Equal(t, "Please select a valid time slot", err.(*ValidationError).Message)

	sel.ChangeDate("2026-01-19", board)
	assert.Empty(t, sel.Slot)
	assert.Equal(t, "2026-01-19", sel.Date)
}
