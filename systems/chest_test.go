package systems

import (
	"testing"

	"github.com/automoto/shatterbox/components"
	"github.com/automoto/shatterbox/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenChest_OpensOnlyOnce(t *testing.T) {
	e, _ := newTestRoom()
	chest := factory.CreateChest(e, brassChestDef())

	OpenChest(e, chest)
	require.True(t, components.Chest.Get(chest).Unlocked)

	// Let the flourish finish, then poke the chest again
	pulse := components.Pulse.Get(chest)
	pulse.Done = true
	OpenChest(e, chest)

	assert.True(t, pulse.Done, "reopening must not restart the flourish")
}

func TestOpenChest_PulseSettlesBackToRest(t *testing.T) {
	e, _ := newTestRoom()
	chest := factory.CreateChest(e, brassChestDef())

	OpenChest(e, chest)
	require.False(t, components.Pulse.Get(chest).Done)

	// Two simulated seconds, well past the pulse duration
	for i := 0; i < 120; i++ {
		UpdateTweens(e)
	}

	assert.True(t, components.Pulse.Get(chest).Done)
	assert.Equal(t, 1.0, components.Sprite.Get(chest).Scale)
}
