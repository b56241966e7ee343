package factory

import (
	"math"
	"math/rand"

	"github.com/automoto/shatterbox/archetypes"
	"github.com/automoto/shatterbox/components"
	cfg "github.com/automoto/shatterbox/config"
	"github.com/automoto/shatterbox/tags"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateShards spawns the debris burst for one break. Shards inherit the
// broken item's velocity and spin on top of an outward scatter, and they
// only collide with walls and each other so settled debris cannot shove
// the remaining puzzle around.
//
// The caller owns registration; the returned entries are already in the space.
func CreateShards(ecs *ecs.ECS, pos cp.Vector, angle float64, strength int, vel cp.Vector, angVel float64, bornAt float64) []*donburi.Entry {
	count := cfg.Shard.BaseCount
	if strength > 1 {
		count += cfg.Shard.PerStrength * (strength - 1)
	}
	if count > cfg.Shard.MaxCount {
		count = cfg.Shard.MaxCount
	}

	var spaceRef *cp.Space
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		spaceRef = components.Space.Get(spaceEntry).Space
	}

	shards := make([]*donburi.Entry, 0, count)
	for i := 0; i < count; i++ {
		shard := archetypes.Shard.Spawn(ecs)

		theta := 2*math.Pi*float64(i)/float64(count) + rand.Float64()*0.6 - 0.3
		dir := cp.Vector{X: math.Cos(theta), Y: math.Sin(theta)}
		speed := cfg.Shard.MinSpeed + rand.Float64()*(cfg.Shard.MaxSpeed-cfg.Shard.MinSpeed)
		radius := cfg.Shard.MinRadius + rand.Float64()*(cfg.Shard.MaxRadius-cfg.Shard.MinRadius)

		body := cp.NewBody(cfg.Shard.Mass, cp.MomentForCircle(cfg.Shard.Mass, 0, radius, cp.Vector{}))
		body.SetPosition(pos.Add(dir.Mult(4)))
		body.SetAngle(angle)
		body.SetVelocityVector(vel.Add(dir.Mult(speed)))
		body.SetAngularVelocity(angVel + (rand.Float64()*2-1)*cfg.Shard.MaxSpin)

		shape := cp.NewCircle(body, radius, cp.Vector{})
		shape.SetElasticity(cfg.Shard.Elasticity)
		shape.SetFriction(cfg.Shard.Friction)
		shape.SetCollisionType(tags.CollisionShard)
		shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, tags.CategoryShard, tags.CategoryWall|tags.CategoryShard))
		shape.UserData = shard

		components.Body.SetValue(shard, components.BodyData{
			Body:  body,
			Shape: shape,
			Mass:  cfg.Shard.Mass,
		})
		components.Shard.SetValue(shard, components.ShardData{
			Radius: radius,
			BornAt: bornAt,
		})
		components.Sprite.SetValue(shard, components.SpriteData{
			Kind:    components.SpriteCircle,
			Radius:  radius,
			Fill:    cfg.ShardFill,
			Scale:   1,
			Visible: true,
		})

		if spaceRef != nil {
			spaceRef.AddBody(body)
			spaceRef.AddShape(shape)
		}

		shards = append(shards, shard)
	}

	return shards
}
