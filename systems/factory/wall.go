package factory

import (
	"github.com/automoto/shatterbox/archetypes"
	"github.com/automoto/shatterbox/components"
	cfg "github.com/automoto/shatterbox/config"
	"github.com/automoto/shatterbox/tags"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	body := cp.NewStaticBody()
	body.SetPosition(cp.Vector{X: x + w/2, Y: y + h/2})

	shape := cp.NewBox(body, w, h, 0)
	shape.SetElasticity(cfg.Physics.WallElasticity)
	shape.SetFriction(cfg.Physics.WallFriction)
	shape.SetCollisionType(tags.CollisionWall)
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, tags.CategoryWall, cp.ALL_CATEGORIES))
	shape.UserData = wall // Link for O(1) lookup from collision callbacks

	components.Body.SetValue(wall, components.BodyData{
		Body:  body,
		Shape: shape,
		W:     w,
		H:     h,
	})
	components.Sprite.SetValue(wall, components.SpriteData{
		Kind:    components.SpriteBox,
		W:       w,
		H:       h,
		Fill:    cfg.WallFill,
		Scale:   1,
		Visible: true,
	})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry).Space
		space.AddBody(body)
		space.AddShape(shape)
	}

	return wall
}
