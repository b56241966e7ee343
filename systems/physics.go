package systems

import (
	"github.com/automoto/shatterbox/components"
	cfg "github.com/automoto/shatterbox/config"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics advances the room clock and steps the space one fixed tick.
// Collision handlers fire inside Step; breaks they mark are settled by the
// fragility pass that runs right after this system.
func UpdatePhysics(e *ecs.ECS) {
	if IsPaused(e) {
		return
	}

	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry).Space

	// Clock moves first so every callback inside this step sees the same
	// "now", including the first step after an unpause.
	if levelEntry, ok := components.Level.First(e.World); ok {
		components.Level.Get(levelEntry).Clock += cfg.Physics.TimeStep
	}

	space.Step(cfg.Physics.TimeStep)

	clampBodySpeeds(e)
}

// clampBodySpeeds keeps dynamic bodies under the configured speed cap so a
// hard throw or a deep overlap correction cannot tunnel through walls.
func clampBodySpeeds(e *ecs.ECS) {
	maxSpeed := cfg.Physics.MaxBodySpeed
	components.Body.Each(e.World, func(entry *donburi.Entry) {
		b := components.Body.Get(entry)
		if b.Body == nil || b.Body.GetType() != cp.BODY_DYNAMIC {
			return
		}
		v := b.Body.Velocity()
		if v.Length() > maxSpeed {
			b.Body.SetVelocityVector(v.Clamp(maxSpeed))
		}
	})
}

// RoomClock returns the current simulation time of the loaded room.
func RoomClock(e *ecs.ECS) float64 {
	if levelEntry, ok := components.Level.First(e.World); ok {
		return components.Level.Get(levelEntry).Clock
	}
	return 0
}
