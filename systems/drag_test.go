package systems

import (
	"testing"

	"github.com/automoto/shatterbox/components"
	cfg "github.com/automoto/shatterbox/config"
	"github.com/automoto/shatterbox/systems/factory"
	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletePlacement_MergeOpensChestAndConsumesItem(t *testing.T) {
	e, space := newTestRoom()
	chest := factory.CreateChest(e, brassChestDef())
	key := factory.CreateItem(e, brassKeyDef())

	drag := dragTo(key, 815, 470)
	evaluatePlacement(space, key)
	require.Equal(t, chest, drag.Target)

	CompletePlacement(e, key)

	assert.True(t, components.Chest.Get(chest).Unlocked)
	assert.Equal(t, cfg.ChestOpen, components.Sprite.Get(chest).Fill)
	assert.False(t, components.Pulse.Get(chest).Done, "open flourish should start")

	item := components.Item.Get(key)
	assert.True(t, item.Consumed)
	assert.False(t, components.Sprite.Get(key).Visible)
	assert.Nil(t, components.Body.Get(key).Body)
	assert.True(t, key.Valid(), "spent items keep their entity for bookkeeping")

	assert.False(t, drag.Dragging)
	assert.Nil(t, drag.Target)

	assert.Contains(t, GetOrCreateAudio(e).PendingSFX, cfg.SoundChestOpen)
}

func TestCompletePlacement_VanishedTargetBecomesPlainDrop(t *testing.T) {
	e, _ := newTestRoom()
	chest := factory.CreateChest(e, brassChestDef())
	key := factory.CreateItem(e, brassKeyDef())

	drag := dragTo(key, 300, 200)
	drag.Target = chest
	e.World.Remove(chest.Entity())

	CompletePlacement(e, key)

	body := components.Body.Get(key)
	assert.False(t, components.Item.Get(key).Consumed)
	require.NotNil(t, body.Body)
	assert.Equal(t, cp.BODY_DYNAMIC, body.Body.GetType())
	assert.False(t, drag.Dragging)
	assert.Nil(t, drag.Target)
}

func TestCompletePlacement_InvalidDropSnapsHome(t *testing.T) {
	e, _ := newTestRoom()
	key := factory.CreateItem(e, brassKeyDef())
	body := components.Body.Get(key)

	// Grab state the pick-up records, then a carry to a blocked spot
	drag := components.Drag.Get(key)
	drag.Dragging = true
	drag.HomeX, drag.HomeY = 114, 114
	drag.HomeAngle = 0.3
	body.Body.SetType(cp.BODY_KINEMATIC)
	body.Body.SetPosition(cp.Vector{X: 600, Y: 480})
	body.Body.SetVelocityVector(cp.Vector{X: 300})
	drag.InvalidDrop = true

	CompletePlacement(e, key)

	assert.Equal(t, cp.BODY_DYNAMIC, body.Body.GetType())
	pos := body.Body.Position()
	assert.InDelta(t, 114.0, pos.X, 1e-9)
	assert.InDelta(t, 114.0, pos.Y, 1e-9)
	assert.InDelta(t, 0.3, body.Body.Angle(), 1e-9)
	assert.Zero(t, body.Body.Velocity().Length())
	// SetType wipes mass and moment; the release must restore them
	assert.InDelta(t, 0.8, body.Body.Mass(), 1e-9)
	assert.Contains(t, GetOrCreateAudio(e).PendingSFX, cfg.SoundSnapBack)
}

func TestCancelDrag_SnapsHomeWithoutOpeningChest(t *testing.T) {
	e, space := newTestRoom()
	chest := factory.CreateChest(e, brassChestDef())
	key := factory.CreateItem(e, brassKeyDef())
	body := components.Body.Get(key)

	drag := components.Drag.Get(key)
	drag.Dragging = true
	drag.HomeX, drag.HomeY = 100, 100
	body.Body.SetType(cp.BODY_KINEMATIC)
	body.Body.SetPosition(cp.Vector{X: 815, Y: 470})
	evaluatePlacement(space, key)
	require.Equal(t, chest, drag.Target, "hovering the matching chest before cancelling")

	CancelDrag(e, key)

	// The merge must not fire even though the cursor was on target
	assert.False(t, components.Chest.Get(chest).Unlocked)
	assert.False(t, components.Item.Get(key).Consumed)
	pos := body.Body.Position()
	assert.InDelta(t, 100.0, pos.X, 1e-9)
	assert.InDelta(t, 100.0, pos.Y, 1e-9)
	assert.False(t, drag.Dragging)
	assert.Contains(t, GetOrCreateAudio(e).PendingSFX, cfg.SoundSnapBack)
}

func TestCompletePlacement_ReleaseClampsThrowSpeed(t *testing.T) {
	e, _ := newTestRoom()
	key := factory.CreateItem(e, brassKeyDef())
	body := components.Body.Get(key)

	drag := components.Drag.Get(key)
	drag.Dragging = true
	body.Body.SetType(cp.BODY_KINEMATIC)
	body.Body.SetVelocityVector(cp.Vector{X: 2000})

	CompletePlacement(e, key)

	assert.Equal(t, cp.BODY_DYNAMIC, body.Body.GetType())
	assert.InDelta(t, cfg.Drag.MaxThrowSpeed, body.Body.Velocity().Length(), 1e-6)
	assert.Contains(t, GetOrCreateAudio(e).PendingSFX, cfg.SoundDrop)
}
