package systems

import (
	"testing"

	"github.com/automoto/shatterbox/components"
	"github.com/automoto/shatterbox/leveldata"
	"github.com/automoto/shatterbox/systems/factory"
	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func brassChestDef() leveldata.Chest {
	return leveldata.Chest{Name: "mail chest", X: 780, Y: 440, W: 70, H: 60, Unlock: "brass_key"}
}

func brassKeyDef() leveldata.Item {
	return leveldata.Item{Name: "brass key", X: 100, Y: 100, W: 28, H: 28, Mass: 0.8, Trigger: "brass_key"}
}

func TestEvaluatePlacement_MatchingChestClaimsDrop(t *testing.T) {
	e, space := newTestRoom()
	chest := factory.CreateChest(e, brassChestDef())
	key := factory.CreateItem(e, brassKeyDef())

	// Held over the chest and simultaneously deep into the floor; the
	// chest claim must win over the blocking overlap.
	drag := dragTo(key, 815, 492)

	evaluatePlacement(space, key)

	assert.Equal(t, chest, drag.Target)
	assert.False(t, drag.InvalidDrop)
}

func TestEvaluatePlacement_OpenChestNoLongerClaims(t *testing.T) {
	e, space := newTestRoom()
	chest := factory.CreateChest(e, brassChestDef())
	components.Chest.Get(chest).Unlocked = true
	key := factory.CreateItem(e, brassKeyDef())

	drag := dragTo(key, 815, 470)

	evaluatePlacement(space, key)

	assert.Nil(t, drag.Target)
	assert.True(t, drag.InvalidDrop, "an open chest is just an obstacle")
}

func TestEvaluatePlacement_TriggerKindMustMatch(t *testing.T) {
	e, space := newTestRoom()
	factory.CreateChest(e, brassChestDef())
	key := factory.CreateItem(e, leveldata.Item{
		Name: "silver key", X: 100, Y: 100, W: 28, H: 28, Trigger: "silver_key",
	})

	drag := dragTo(key, 815, 470)

	evaluatePlacement(space, key)

	assert.Nil(t, drag.Target)
	assert.True(t, drag.InvalidDrop)
}

func TestEvaluatePlacement_PlainItemsNeverMerge(t *testing.T) {
	e, space := newTestRoom()
	factory.CreateChest(e, leveldata.Chest{
		Name: "broken chest", X: 780, Y: 440, W: 70, H: 60, Unlock: "none",
	})
	crate := factory.CreateItem(e, leveldata.Item{
		Name: "packing crate", X: 100, Y: 100, W: 28, H: 28,
	})

	// Both sides sit at the zero kind, which must never count as a match
	drag := dragTo(crate, 815, 470)

	evaluatePlacement(space, crate)

	assert.Nil(t, drag.Target)
	assert.True(t, drag.InvalidDrop)
}

func TestEvaluatePlacement_OpenSpaceIsValid(t *testing.T) {
	e, space := newTestRoom()
	key := factory.CreateItem(e, brassKeyDef())

	drag := dragTo(key, 300, 200)

	evaluatePlacement(space, key)

	assert.Nil(t, drag.Target)
	assert.False(t, drag.InvalidDrop)
}

func TestEvaluatePlacement_ShallowRestingContactTolerated(t *testing.T) {
	e, space := newTestRoom()
	key := factory.CreateItem(e, brassKeyDef())

	// Bottom edge 0.2px into the floor, inside the overlap slop
	drag := dragTo(key, 200, 486.2)

	evaluatePlacement(space, key)

	assert.False(t, drag.InvalidDrop)
}

func TestEvaluatePlacement_DeepOverlapBlocks(t *testing.T) {
	e, space := newTestRoom()
	key := factory.CreateItem(e, brassKeyDef())

	// Bottom edge 10px into the floor
	drag := dragTo(key, 200, 496)

	evaluatePlacement(space, key)

	assert.Nil(t, drag.Target)
	assert.True(t, drag.InvalidDrop)
}

func TestEvaluatePlacement_DebrisNeverBlocks(t *testing.T) {
	e, space := newTestRoom()
	levelData(e).Shards = factory.CreateShards(e, cp.Vector{X: 300, Y: 480}, 0, 3, cp.Vector{}, 0, 0)
	key := factory.CreateItem(e, brassKeyDef())

	drag := dragTo(key, 300, 480)

	evaluatePlacement(space, key)

	assert.False(t, drag.InvalidDrop, "settled debris must not reject a drop")
}

func TestEvaluatePlacement_IdleItemHasNoVerdict(t *testing.T) {
	e, space := newTestRoom()
	chest := factory.CreateChest(e, brassChestDef())
	key := factory.CreateItem(e, brassKeyDef())

	// Stale state from a previous drag must be wiped for an idle item
	drag := components.Drag.Get(key)
	drag.InvalidDrop = true
	drag.Target = chest

	evaluatePlacement(space, key)

	assert.Nil(t, drag.Target)
	assert.False(t, drag.InvalidDrop)
}

func TestUpdatePlacement_HoldsVerdictAfterClear(t *testing.T) {
	e, _ := newTestRoom()
	key := factory.CreateItem(e, brassKeyDef())

	drag := dragTo(key, 300, 200)
	drag.InvalidDrop = true
	levelData(e).Cleared = true

	UpdatePlacement(e)

	assert.True(t, drag.InvalidDrop, "no re-evaluation after the room is won")
}

func TestUpdatePlacement_HoldsVerdictWhilePaused(t *testing.T) {
	e, _ := newTestRoom()
	key := factory.CreateItem(e, brassKeyDef())

	drag := dragTo(key, 300, 200)
	drag.InvalidDrop = true
	GetOrCreatePause(e).IsPaused = true

	UpdatePlacement(e)

	require.True(t, drag.InvalidDrop)
}
