package systems

import (
	"testing"

	cfg "github.com/automoto/shatterbox/config"
	"github.com/automoto/shatterbox/leveldata"
	"github.com/automoto/shatterbox/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateRoomState_AllChestsOpenWinsRoom(t *testing.T) {
	e, _ := newTestRoom()
	first := factory.CreateChest(e, brassChestDef())
	second := factory.CreateChest(e, leveldata.Chest{
		Name: "lockbox", X: 60, Y: 446, W: 56, H: 54, Unlock: "silver_key",
	})
	level := levelData(e)

	UpdateRoomState(e)
	require.False(t, level.Cleared)

	OpenChest(e, first)
	UpdateRoomState(e)
	require.False(t, level.Cleared, "one open chest out of two is not a win")

	OpenChest(e, second)
	UpdateRoomState(e)
	assert.True(t, level.Cleared)
	assert.Contains(t, GetOrCreateAudio(e).PendingSFX, cfg.SoundRoomClear)

	// The clear is terminal for the loaded room
	UpdateRoomState(e)
	assert.True(t, level.Cleared)
	assert.False(t, level.AdvanceRequested, "no advance without the key press")
}

func TestRequestRoomReset(t *testing.T) {
	e, _ := newTestRoom()

	RequestRoomReset(e)

	assert.True(t, levelData(e).ResetRequested)
}

func TestRequestMenuExit(t *testing.T) {
	e, _ := newTestRoom()

	RequestMenuExit(e)

	assert.True(t, levelData(e).ExitRequested)
}
