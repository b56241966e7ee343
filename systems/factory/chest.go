package factory

import (
	"log"

	"github.com/automoto/shatterbox/archetypes"
	"github.com/automoto/shatterbox/components"
	cfg "github.com/automoto/shatterbox/config"
	"github.com/automoto/shatterbox/leveldata"
	"github.com/automoto/shatterbox/tags"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateChest spawns a locked chest. Chests are room fixtures, so they sit
// on static bodies and never move.
func CreateChest(ecs *ecs.ECS, def leveldata.Chest) *donburi.Entry {
	chest := archetypes.Chest.Spawn(ecs)

	accepts, ok := cfg.ParseUnlockKind(def.Unlock)
	if !ok {
		log.Printf("Warning: chest %q has unknown unlock %q, it can never open", def.Name, def.Unlock)
	}

	body := cp.NewStaticBody()
	body.SetPosition(cp.Vector{X: def.X + def.W/2, Y: def.Y + def.H/2})

	shape := cp.NewBox(body, def.W, def.H, 0)
	shape.SetElasticity(cfg.Chest.Elasticity)
	shape.SetFriction(cfg.Chest.Friction)
	shape.SetCollisionType(tags.CollisionChest)
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, tags.CategoryChest, cp.ALL_CATEGORIES))
	shape.UserData = chest

	components.Body.SetValue(chest, components.BodyData{
		Body:  body,
		Shape: shape,
		W:     def.W,
		H:     def.H,
	})
	components.Chest.SetValue(chest, components.ChestData{
		Name:    def.Name,
		Accepts: accepts,
	})
	components.Pulse.SetValue(chest, components.PulseData{Done: true})
	components.Sprite.SetValue(chest, components.SpriteData{
		Kind:    components.SpriteBox,
		W:       def.W,
		H:       def.H,
		Fill:    cfg.ChestFill,
		Scale:   1,
		Visible: true,
	})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry).Space
		space.AddBody(body)
		space.AddShape(shape)
	}

	return chest
}
