package factory

import (
	"github.com/automoto/shatterbox/archetypes"
	"github.com/automoto/shatterbox/components"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{})
}
