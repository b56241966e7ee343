package systems

import (
	"github.com/automoto/shatterbox/archetypes"
	"github.com/automoto/shatterbox/components"
	"github.com/automoto/shatterbox/systems/factory"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestRoom builds a minimal world: a physics space with the breakage
// handlers installed, the room state singleton, and a floor matching the
// bottom wall of the shipped rooms (top edge at y=500).
func newTestRoom() (*ecs.ECS, *cp.Space) {
	e := ecs.NewECS(donburi.NewWorld())

	spaceEntry := factory.CreateSpace(e)
	space := components.Space.Get(spaceEntry).Space
	InstallBreakageHandlers(e, space)

	level := archetypes.Level.Spawn(e)
	components.Level.Get(level).Name = "test room"

	factory.CreateWall(e, 0, 500, 960, 40)

	return e, space
}

func levelData(e *ecs.ECS) *components.LevelData {
	entry, _ := components.Level.First(e.World)
	return components.Level.Get(entry)
}

// dragTo puts an item into the held state at the given body position, the
// way a pick-up followed by cursor movement would.
func dragTo(entry *donburi.Entry, x, y float64) *components.DragData {
	drag := components.Drag.Get(entry)
	drag.Dragging = true
	components.Body.Get(entry).Body.SetPosition(cp.Vector{X: x, Y: y})
	return drag
}

// stepFrames advances the simulation the way the scene does: physics first,
// then the fragility pass that settles any marked breaks.
func stepFrames(e *ecs.ECS, n int) {
	for i := 0; i < n; i++ {
		UpdatePhysics(e)
		UpdateFragility(e)
	}
}
