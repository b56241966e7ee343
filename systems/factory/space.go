package factory

import (
	"github.com/automoto/shatterbox/archetypes"
	"github.com/automoto/shatterbox/components"
	cfg "github.com/automoto/shatterbox/config"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace builds the Chipmunk space for a room. Sleeping stays disabled:
// crush detection needs post-solve callbacks every step, and sleeping bodies
// stop generating them.
func CreateSpace(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.Space.Spawn(ecs)

	space := cp.NewSpace()
	space.Iterations = cfg.Physics.Iterations
	space.SetGravity(cp.Vector{X: 0, Y: cfg.Physics.GravityY})
	space.SetDamping(cfg.Physics.Damping)

	components.Space.SetValue(entry, components.SpaceData{Space: space})
	return entry
}
