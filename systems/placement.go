package systems

import (
	"github.com/automoto/shatterbox/components"
	cfg "github.com/automoto/shatterbox/config"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlacement re-evaluates the drop of whichever item is being dragged.
// It runs before UpdateDrag so a release later in the same frame acts on a
// fresh verdict.
func UpdatePlacement(e *ecs.ECS) {
	if IsPaused(e) || roomCleared(e) {
		return
	}
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry).Space

	components.Drag.Each(e.World, func(entry *donburi.Entry) {
		evaluatePlacement(space, entry)
	})
}

// evaluatePlacement decides whether the held item could drop where it is
// and whether a locked chest is waiting for it. An idle item is always a
// valid drop and never has a target. The first locked chest found that
// accepts the item's trigger claims the drop outright and ends the scan;
// overlap with static geometry only matters when no chest claimed it.
func evaluatePlacement(space *cp.Space, entry *donburi.Entry) {
	drag := components.Drag.Get(entry)
	if !drag.Dragging {
		drag.InvalidDrop = false
		drag.Target = nil
		return
	}
	body := components.Body.Get(entry)
	if body.Shape == nil {
		drag.InvalidDrop = false
		drag.Target = nil
		return
	}
	item := components.Item.Get(entry)

	var target *donburi.Entry
	blocked := false
	done := false
	space.ShapeQuery(body.Shape, func(shape *cp.Shape, points *cp.ContactPointSet) {
		if done || shape == body.Shape {
			return
		}
		other := entryFromShape(shape)
		if other == nil || !other.Valid() || other.Entity() == entry.Entity() {
			return
		}
		if other.HasComponent(components.Chest) {
			chest := components.Chest.Get(other)
			if !chest.Unlocked && item.Unlock != cfg.UnlockNone && chest.Accepts == item.Unlock {
				target = other
				done = true
				return
			}
		}
		// Only room fixtures block a drop. Overlapping loose items is
		// fine; the solver separates them after release.
		if blocked || points == nil || shape.Body().GetType() != cp.BODY_STATIC {
			return
		}
		for i := 0; i < points.Count; i++ {
			if points.Points[i].Distance < -cfg.Placement.OverlapSlop {
				blocked = true
				return
			}
		}
	})

	drag.Target = target
	drag.InvalidDrop = target == nil && blocked
}
