package systems

import (
	"log"
	"math"

	"github.com/automoto/shatterbox/components"
	cfg "github.com/automoto/shatterbox/config"
	"github.com/automoto/shatterbox/systems/factory"
	"github.com/automoto/shatterbox/tags"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// InstallBreakageHandlers registers the collision callbacks that feed the
// fragility state machine. PostSolve carries the solver's impulse for the
// step, which is what both the impact and crush rules are defined over.
func InstallBreakageHandlers(e *ecs.ECS, space *cp.Space) {
	handler := space.NewWildcardCollisionHandler(tags.CollisionItem)
	handler.PostSolveFunc = func(arb *cp.Arbiter, _ *cp.Space, _ interface{}) {
		onContactSolved(e, arb)
	}
	handler.SeparateFunc = func(arb *cp.Arbiter, _ *cp.Space, _ interface{}) {
		onContactEnded(e, arb)
	}
}

func onContactSolved(e *ecs.ECS, arb *cp.Arbiter) {
	selfShape, otherShape := arb.Shapes()
	self := entryFromShape(selfShape)
	if self == nil || !self.Valid() || !self.HasComponent(components.Fragile) {
		return
	}
	f := components.Fragile.Get(self)
	if f.Broken || draggingEntry(self) {
		return
	}
	body := components.Body.Get(self)
	if body.Body == nil || otherShape.Body() == nil {
		return
	}

	normalImpulse := math.Abs(arb.TotalImpulse().Dot(arb.Normal()))
	if arb.IsFirstContact() {
		handleImpact(f, body, otherShape, arb, normalImpulse)
	} else {
		handleCrush(e, f, body, otherShape, arb, normalImpulse)
	}
}

// handleImpact applies the single-hit rule on a fresh contact. Hits landing
// above the body's center get scaled by the striker's mass, so a heavy crate
// dropped on a jar counts for more than the jar bumping a wall.
func handleImpact(f *components.FragileData, body *components.BodyData, otherShape *cp.Shape, arb *cp.Arbiter, normalImpulse float64) {
	point := body.Position()
	topHit := false
	if set := arb.ContactPointSet(); set.Count > 0 {
		point = set.Points[0].PointA
		topHit = point.Y < body.Position().Y
	}
	if scaledImpactForce(normalImpulse, otherShape.Body().Mass(), topHit) >= f.ImpactThreshold {
		markBroken(f, point)
	}
}

// scaledImpactForce multiplies the normal impulse by the striking body's
// mass for top hits. A striker with no measurable mass counts as mass 1 so
// static geometry still registers.
func scaledImpactForce(normalImpulse, otherMass float64, topHit bool) float64 {
	if !topHit {
		return normalImpulse
	}
	if otherMass <= 0 || math.IsInf(otherMass, 0) || math.IsNaN(otherMass) {
		otherMass = 1
	}
	return normalImpulse * otherMass
}

// handleCrush feeds the slow-pressure accumulator on persisting contacts.
// Only weight from above counts: the contact point and the pressing body's
// center must both sit above this body's center, and only the first contact
// that passes both checks contributes this step.
func handleCrush(e *ecs.ECS, f *components.FragileData, body *components.BodyData, otherShape *cp.Shape, arb *cp.Arbiter, normalImpulse float64) {
	selfY := body.Position().Y
	otherY := otherShape.Body().Position().Y

	set := arb.ContactPointSet()
	for i := 0; i < set.Count; i++ {
		if set.Points[i].PointA.Y >= selfY || otherY >= selfY {
			continue
		}
		if accumulateCrush(f, normalImpulse, cfg.Physics.TimeStep, RoomClock(e)) {
			markBroken(f, set.Points[i].PointA)
		}
		break
	}
}

// accumulateCrush adds one pressure sample and reports whether the total
// crossed the crush threshold. A gap longer than the force window since the
// previous sample restarts the accumulator before the new sample lands.
func accumulateCrush(f *components.FragileData, normalImpulse, dt, now float64) bool {
	if now-f.LastForce > f.ForceWindow {
		f.Accum = 0
	}
	f.Accum += normalImpulse * dt
	f.LastForce = now
	return f.Accum >= f.CrushThreshold
}

func onContactEnded(e *ecs.ECS, arb *cp.Arbiter) {
	selfShape, otherShape := arb.Shapes()
	self := entryFromShape(selfShape)
	if self == nil || !self.Valid() || !self.HasComponent(components.Fragile) {
		return
	}
	if draggingEntry(self) {
		return
	}
	body := components.Body.Get(self)
	if body.Body == nil || otherShape.Body() == nil {
		return
	}
	// A load lifting off from above releases the pressure entirely.
	if otherShape.Body().Position().Y < body.Position().Y {
		resetCrush(components.Fragile.Get(self), RoomClock(e))
	}
}

func resetCrush(f *components.FragileData, now float64) {
	f.Accum = 0
	f.LastForce = now
}

// markBroken flips the terminal flag and records where the break happened.
// Collision callbacks run while the space is locked, so the actual entity
// swap waits for UpdateFragility.
func markBroken(f *components.FragileData, point cp.Vector) {
	f.Broken = true
	f.BreakPoint = point
}

// UpdateFragility settles breaks marked during the physics step: each broken
// item is swapped for a burst of shards that inherit its motion. Runs right
// after UpdatePhysics so nothing draws a broken item in one piece.
func UpdateFragility(e *ecs.ECS) {
	if IsPaused(e) {
		return
	}
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry).Space

	var broken []*donburi.Entry
	components.Fragile.Each(e.World, func(entry *donburi.Entry) {
		if components.Fragile.Get(entry).Broken {
			broken = append(broken, entry)
		}
	})
	for _, entry := range broken {
		shatter(e, space, entry)
	}
}

func shatter(e *ecs.ECS, space *cp.Space, entry *donburi.Entry) {
	body := components.Body.Get(entry)
	if body.Body == nil {
		e.World.Remove(entry.Entity())
		return
	}
	f := components.Fragile.Get(entry)
	item := components.Item.Get(entry)

	pos := body.Body.Position()
	angle := body.Body.Angle()
	vel := body.Body.Velocity()
	angVel := body.Body.AngularVelocity()

	shards := factory.CreateShards(e, pos, angle, f.Strength, vel, angVel, RoomClock(e))
	if levelEntry, ok := components.Level.First(e.World); ok {
		level := components.Level.Get(levelEntry)
		level.Shards = append(level.Shards, shards...)
		level.BrokenCount++
	}

	space.RemoveShape(body.Shape)
	space.RemoveBody(body.Body)
	body.Body = nil
	body.Shape = nil
	e.World.Remove(entry.Entity())

	log.Printf("Item %q shattered into %d pieces at (%.0f, %.0f)", item.Name, len(shards), f.BreakPoint.X, f.BreakPoint.Y)
	TriggerScreenShake(e, cfg.ScreenShake.BreakIntensity, cfg.ScreenShake.BreakDuration)
	QueueSFX(e, cfg.SoundShatter)
}

// ClearShards destroys every live shard and empties the registry. The
// registry only ever grows between calls, so iterating a stale entry here
// is impossible; calling it twice in a row is a no-op.
func ClearShards(e *ecs.ECS) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	var space *cp.Space
	if spaceEntry, ok := components.Space.First(e.World); ok {
		space = components.Space.Get(spaceEntry).Space
	}

	for _, shard := range level.Shards {
		if shard == nil || !shard.Valid() {
			continue
		}
		if body := components.Body.Get(shard); body.Body != nil && space != nil {
			space.RemoveShape(body.Shape)
			space.RemoveBody(body.Body)
		}
		e.World.Remove(shard.Entity())
	}
	level.Shards = level.Shards[:0]
}

func entryFromShape(shape *cp.Shape) *donburi.Entry {
	if shape == nil {
		return nil
	}
	entry, ok := shape.UserData.(*donburi.Entry)
	if !ok {
		return nil
	}
	return entry
}

func draggingEntry(entry *donburi.Entry) bool {
	if !entry.HasComponent(components.Drag) {
		return false
	}
	return components.Drag.Get(entry).Dragging
}
