package archetypes

import (
	"github.com/automoto/shatterbox/components"
	cfg "github.com/automoto/shatterbox/config"
	"github.com/automoto/shatterbox/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Item = newArchetype(
		tags.Item,
		components.Item,
		components.Body,
		components.Drag,
		components.Bob,
		components.Sprite,
		components.Visual,
	)
	Chest = newArchetype(
		tags.Chest,
		components.Chest,
		components.Body,
		components.Pulse,
		components.Sprite,
		components.Visual,
	)
	Shard = newArchetype(
		tags.Shard,
		components.Shard,
		components.Body,
		components.Sprite,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Body,
		components.Sprite,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		tags.Camera,
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
