package factory

import (
	"github.com/automoto/shatterbox/archetypes"
	"github.com/automoto/shatterbox/components"
	"github.com/automoto/shatterbox/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel spawns the room state singleton and populates the space from
// the room definition. CreateSpace must have run first.
func CreateLevel(ecs *ecs.ECS, room *leveldata.Room, index int) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	components.Level.Set(level, &components.LevelData{
		Name:  room.Title,
		Index: index,
	})

	for _, w := range room.Walls {
		CreateWall(ecs, w.X, w.Y, w.W, w.H)
	}
	for _, it := range room.Items {
		CreateItem(ecs, it)
	}
	for _, ch := range room.Chests {
		CreateChest(ecs, ch)
	}

	return level
}
