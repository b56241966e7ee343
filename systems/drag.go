package systems

import (
	"log"

	"github.com/automoto/shatterbox/components"
	cfg "github.com/automoto/shatterbox/config"
	"github.com/automoto/shatterbox/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDrag runs the pick-up, carry and release cycle for the mouse. At
// most one item is ever held; releasing it goes through CompletePlacement
// using the verdict UpdatePlacement produced earlier in the frame.
func UpdateDrag(e *ecs.ECS) {
	if IsPaused(e) || roomCleared(e) {
		return
	}
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry).Space

	cx, cy := ebiten.CursorPosition()
	cursor := cp.Vector{X: float64(cx), Y: float64(cy)}

	held := heldEntry(e)
	switch {
	case held == nil:
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			tryPickUp(e, space, cursor)
		}
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
		CancelDrag(e, held)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		followCursor(held, cursor)
	default:
		CompletePlacement(e, held)
	}
}

func heldEntry(e *ecs.ECS) *donburi.Entry {
	var held *donburi.Entry
	components.Drag.Each(e.World, func(entry *donburi.Entry) {
		if components.Drag.Get(entry).Dragging {
			held = entry
		}
	})
	return held
}

func tryPickUp(e *ecs.ECS, space *cp.Space, cursor cp.Vector) {
	info := space.PointQueryNearest(cursor, cfg.Drag.PickRadius, cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, tags.CategoryItem))
	if info == nil || info.Shape == nil {
		return
	}
	entry := entryFromShape(info.Shape)
	if entry == nil || !entry.Valid() || !entry.HasComponent(components.Drag) {
		return
	}
	if components.Item.Get(entry).Consumed {
		return
	}
	if entry.HasComponent(components.Fragile) && components.Fragile.Get(entry).Broken {
		return
	}
	body := components.Body.Get(entry)
	if body.Body == nil {
		return
	}

	pos := body.Body.Position()
	drag := components.Drag.Get(entry)
	drag.Dragging = true
	drag.InvalidDrop = false
	drag.Target = nil
	drag.GrabDX = pos.X - cursor.X
	drag.GrabDY = pos.Y - cursor.Y
	drag.HomeX = pos.X
	drag.HomeY = pos.Y
	drag.HomeAngle = body.Body.Angle()

	// Kinematic while held: the cursor steers it and gravity lets go.
	body.Body.SetType(cp.BODY_KINEMATIC)
	body.Body.SetVelocityVector(cp.Vector{})
	body.Body.SetAngularVelocity(0)

	bob := components.Bob.Get(entry)
	bob.T = gween.New(0, float32(cfg.Placement.BobAmount), cfg.Placement.BobDuration/2, ease.InOutSine)
	bob.Down = false
	bob.Offset = 0

	QueueSFX(e, cfg.SoundPickUp)
}

// followCursor steers the held body by velocity rather than teleporting it,
// which keeps the solver aware of the motion when it brushes other bodies.
func followCursor(entry *donburi.Entry, cursor cp.Vector) {
	drag := components.Drag.Get(entry)
	body := components.Body.Get(entry)
	if body.Body == nil {
		return
	}
	bobOffset := 0.0
	if entry.HasComponent(components.Bob) {
		bobOffset = components.Bob.Get(entry).Offset
	}
	pos := body.Body.Position()
	body.Body.SetVelocityVector(cp.Vector{
		X: (cursor.X + drag.GrabDX - pos.X) * cfg.Drag.FollowRate,
		Y: (cursor.Y + drag.GrabDY + bobOffset - pos.Y) * cfg.Drag.FollowRate,
	})
}

// CancelDrag abandons the drag outright: the item snaps back to where it
// was grabbed and no chest fires, no matter where the cursor is.
func CancelDrag(e *ecs.ECS, entry *donburi.Entry) {
	drag := components.Drag.Get(entry)
	drag.Target = nil
	drag.InvalidDrop = true
	CompletePlacement(e, entry)
}

// CompletePlacement finishes a release. A valid drop on a waiting chest
// opens it and uses the item up; a target that vanished since evaluation
// turns the merge into a plain drop. Either way the drop itself always
// completes: consumed items just clear their held state, everything else
// gets its physics back, and an invalid position snaps the item home.
func CompletePlacement(e *ecs.ECS, entry *donburi.Entry) {
	drag := components.Drag.Get(entry)
	item := components.Item.Get(entry)
	body := components.Body.Get(entry)

	if target := drag.Target; target != nil && !drag.InvalidDrop && target.Valid() {
		OpenChest(e, target)
		consumeItem(e, entry)
	}

	if !item.Consumed && body.Body != nil {
		body.Body.SetType(cp.BODY_DYNAMIC)
		// SetType wipes mass and moment, so restore them from the sizes
		// the factory recorded.
		body.Body.SetMass(body.Mass)
		body.Body.SetMoment(cp.MomentForBox(body.Mass, body.W, body.H))
		if drag.InvalidDrop {
			body.Body.SetPosition(cp.Vector{X: drag.HomeX, Y: drag.HomeY})
			body.Body.SetAngle(drag.HomeAngle)
			body.Body.SetVelocityVector(cp.Vector{})
			body.Body.SetAngularVelocity(0)
			QueueSFX(e, cfg.SoundSnapBack)
		} else {
			body.Body.SetVelocityVector(body.Body.Velocity().Clamp(cfg.Drag.MaxThrowSpeed))
			QueueSFX(e, cfg.SoundDrop)
		}
	}

	drag.Dragging = false
	drag.Target = nil
	drag.InvalidDrop = false
	if entry.HasComponent(components.Bob) {
		bob := components.Bob.Get(entry)
		bob.T = nil
		bob.Offset = 0
	}
}

// consumeItem hides a used trigger item and pulls it out of the simulation
// without destroying the entity, so the entry stays valid for bookkeeping.
func consumeItem(e *ecs.ECS, entry *donburi.Entry) {
	item := components.Item.Get(entry)
	item.Consumed = true
	components.Sprite.Get(entry).Visible = false

	body := components.Body.Get(entry)
	if body.Body != nil {
		if spaceEntry, ok := components.Space.First(e.World); ok {
			space := components.Space.Get(spaceEntry).Space
			space.RemoveShape(body.Shape)
			space.RemoveBody(body.Body)
		}
		body.Body = nil
		body.Shape = nil
	}
	log.Printf("Item %q used up", item.Name)
}
