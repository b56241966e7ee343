package systems

import (
	"math"
	"testing"

	"github.com/automoto/shatterbox/components"
	cfg "github.com/automoto/shatterbox/config"
	"github.com/automoto/shatterbox/leveldata"
	"github.com/automoto/shatterbox/systems/factory"
	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaledImpactForce(t *testing.T) {
	// Side hits pass the impulse through unscaled
	assert.Equal(t, 3.0, scaledImpactForce(3.0, 5.0, false))

	// Top hits multiply by the striker's mass
	assert.Equal(t, 15.0, scaledImpactForce(3.0, 5.0, true))
	assert.Equal(t, 3.0, scaledImpactForce(3.0, 1.0, true))

	// Static geometry has no usable mass and counts as 1
	assert.Equal(t, 3.0, scaledImpactForce(3.0, 0, true))
	assert.Equal(t, 3.0, scaledImpactForce(3.0, math.Inf(1), true))
}

func TestAccumulateCrush_CrossesThreshold(t *testing.T) {
	f := &components.FragileData{CrushThreshold: 1.5, ForceWindow: 0.5}

	// Five back-to-back samples of 0.3 impulse-seconds each
	now := 0.0
	for i := 0; i < 4; i++ {
		now += 0.1
		require.False(t, accumulateCrush(f, 0.3, 1.0, now))
	}
	now += 0.1
	assert.True(t, accumulateCrush(f, 0.3, 1.0, now))
	assert.InDelta(t, 1.5, f.Accum, 1e-9)
}

func TestAccumulateCrush_GapRestartsAccumulator(t *testing.T) {
	f := &components.FragileData{CrushThreshold: 1.0, ForceWindow: 0.25}

	require.False(t, accumulateCrush(f, 0.9, 1.0, 1.0))
	require.InDelta(t, 0.9, f.Accum, 1e-9)

	// The gap since the last sample exceeds the window, so the running
	// total restarts before the new sample lands. Without the restart
	// this second sample would cross the threshold.
	assert.False(t, accumulateCrush(f, 0.9, 1.0, 1.3))
	assert.InDelta(t, 0.9, f.Accum, 1e-9)
}

func TestResetCrush(t *testing.T) {
	f := &components.FragileData{Accum: 3.2, LastForce: 1.0}
	resetCrush(f, 2.5)
	assert.Zero(t, f.Accum)
	assert.Equal(t, 2.5, f.LastForce)
}

func TestBreakage_HardLandingShattersJar(t *testing.T) {
	e, _ := newTestRoom()

	jar := factory.CreateItem(e, leveldata.Item{
		Name: "glass jar", X: 400, Y: 300, W: 30, H: 30,
		Mass: 0.6, Fragile: true,
		ImpactThreshold: 60, CrushThreshold: 1e9, ForceWindow: 0.25,
	})
	components.Body.Get(jar).Body.SetVelocityVector(cp.Vector{Y: 400})

	stepFrames(e, 60)

	assert.False(t, jar.Valid(), "jar should shatter on the floor")
	level := levelData(e)
	assert.Equal(t, 1, level.BrokenCount)
	assert.NotEmpty(t, level.Shards)
}

func TestBreakage_GentleLandingSurvives(t *testing.T) {
	e, _ := newTestRoom()

	jar := factory.CreateItem(e, leveldata.Item{
		Name: "glass jar", X: 400, Y: 460, W: 30, H: 30,
		Mass: 0.6, Fragile: true,
		ImpactThreshold: 5000, CrushThreshold: 1e9, ForceWindow: 0.25,
	})

	stepFrames(e, 120)

	require.True(t, jar.Valid())
	f := components.Fragile.Get(jar)
	assert.False(t, f.Broken)
	// Resting on the floor presses from below and never counts as crush
	assert.Zero(t, f.Accum)
	assert.Zero(t, levelData(e).BrokenCount)
}

func TestBreakage_CrushUnderSustainedLoad(t *testing.T) {
	e, _ := newTestRoom()

	jar := factory.CreateItem(e, leveldata.Item{
		Name: "glass jar", X: 400, Y: 470, W: 30, H: 30,
		Mass: 0.6, Fragile: true,
		ImpactThreshold: 1e9, CrushThreshold: 2.0, ForceWindow: 0.25,
	})
	crate := factory.CreateItem(e, leveldata.Item{
		Name: "packing crate", X: 397, Y: 434, W: 36, H: 36, Mass: 5,
	})

	stepFrames(e, 180)

	assert.False(t, jar.Valid(), "jar should give out under the crate")
	assert.True(t, crate.Valid())
	assert.Equal(t, 1, levelData(e).BrokenCount)
}

func TestBreakage_LiftOffReleasesPressure(t *testing.T) {
	e, _ := newTestRoom()

	jar := factory.CreateItem(e, leveldata.Item{
		Name: "glass jar", X: 400, Y: 470, W: 30, H: 30,
		Mass: 0.6, Fragile: true,
		ImpactThreshold: 1e9, CrushThreshold: 1e9, ForceWindow: 1.0,
	})
	crate := factory.CreateItem(e, leveldata.Item{
		Name: "packing crate", X: 397, Y: 434, W: 36, H: 36, Mass: 5,
	})

	stepFrames(e, 30)
	require.Greater(t, components.Fragile.Get(jar).Accum, 0.0)

	// Lift the crate clear; the separation must dump the whole total
	components.Body.Get(crate).Body.SetPosition(cp.Vector{X: 415, Y: 200})
	stepFrames(e, 2)

	assert.Zero(t, components.Fragile.Get(jar).Accum)
}

func TestBreakage_HeldItemIsImmune(t *testing.T) {
	e, _ := newTestRoom()

	jar := factory.CreateItem(e, leveldata.Item{
		Name: "glass jar", X: 400, Y: 470, W: 30, H: 30,
		Mass: 0.6, Fragile: true,
		ImpactThreshold: 1e9, CrushThreshold: 0.5, ForceWindow: 0.25,
	})
	factory.CreateItem(e, leveldata.Item{
		Name: "packing crate", X: 397, Y: 434, W: 36, H: 36, Mass: 5,
	})

	components.Drag.Get(jar).Dragging = true
	stepFrames(e, 120)

	require.True(t, jar.Valid())
	f := components.Fragile.Get(jar)
	assert.False(t, f.Broken)
	assert.Zero(t, f.Accum)
}

func TestUpdateFragility_SwapsBrokenItemForShards(t *testing.T) {
	e, _ := newTestRoom()

	jar := factory.CreateItem(e, leveldata.Item{
		Name: "glass jar", X: 400, Y: 300, W: 30, H: 30,
		Mass: 0.6, Fragile: true, Strength: 2,
	})
	body := components.Body.Get(jar).Body
	body.SetAngle(0.7)
	body.SetVelocityVector(cp.Vector{X: 120, Y: -40})
	components.Fragile.Get(jar).Broken = true

	UpdateFragility(e)

	assert.False(t, jar.Valid())
	level := levelData(e)
	require.Len(t, level.Shards, 6)
	assert.Equal(t, 1, level.BrokenCount)

	for _, shard := range level.Shards {
		sb := components.Body.Get(shard).Body
		require.NotNil(t, sb)
		assert.InDelta(t, 0.7, sb.Angle(), 1e-9)
		// The outward scatter rides on top of the inherited velocity
		rel := sb.Velocity().Sub(cp.Vector{X: 120, Y: -40})
		assert.GreaterOrEqual(t, rel.Length(), cfg.Shard.MinSpeed-1e-6)
		assert.LessOrEqual(t, rel.Length(), cfg.Shard.MaxSpeed+1e-6)
	}
}

func TestUpdateFragility_BreakSettlesExactlyOnce(t *testing.T) {
	e, _ := newTestRoom()

	jar := factory.CreateItem(e, leveldata.Item{
		Name: "glass jar", X: 400, Y: 300, W: 30, H: 30,
		Mass: 0.6, Fragile: true,
	})
	components.Fragile.Get(jar).Broken = true

	UpdateFragility(e)
	level := levelData(e)
	require.Len(t, level.Shards, 4)
	require.Equal(t, 1, level.BrokenCount)

	// The broken item is gone, so further passes find nothing to settle
	UpdateFragility(e)
	assert.Len(t, level.Shards, 4)
	assert.Equal(t, 1, level.BrokenCount)
}

func TestClearShards_EmptiesRegistry(t *testing.T) {
	e, _ := newTestRoom()
	level := levelData(e)

	shards := factory.CreateShards(e, cp.Vector{X: 300, Y: 300}, 0, 1, cp.Vector{}, 0, 0)
	level.Shards = append(level.Shards, shards...)
	require.Len(t, level.Shards, 4)

	ClearShards(e)

	assert.Empty(t, level.Shards)
	for _, shard := range shards {
		assert.False(t, shard.Valid())
	}

	// A second pass over the empty registry is a no-op
	ClearShards(e)
	assert.Empty(t, level.Shards)
}
