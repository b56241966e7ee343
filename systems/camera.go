package systems

import (
	"math"

	"github.com/automoto/shatterbox/components"
	cfg "github.com/automoto/shatterbox/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateCamera keeps the view centered on the room and layers any active
// shake on top.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	camera.Position = dmath.Vec2{
		X: float64(cfg.C.Width) / 2,
		Y: float64(cfg.C.Height) / 2,
	}

	updateScreenShake(cameraEntry, camera)
}

func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData) {
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}
	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed++
	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
		return
	}
	falloff := 1 - float64(shake.Elapsed)/float64(shake.Duration)
	t := float64(shake.Elapsed)
	camera.Position.X += math.Sin(t*1.3) * shake.Intensity * falloff
	camera.Position.Y += math.Cos(t*1.7) * shake.Intensity * falloff
}

// TriggerScreenShake starts a shake, or restarts the active one when the
// new request is at least as strong. A weaker request never cuts a stronger
// shake short.
func TriggerScreenShake(e *ecs.ECS, intensity float64, duration int) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		if shake.Intensity > intensity {
			return
		}
		shake.Intensity = intensity
		shake.Duration = duration
		shake.Elapsed = 0
		return
	}
	cameraEntry.AddComponent(components.ScreenShake)
	components.ScreenShake.SetValue(cameraEntry, components.ScreenShakeData{
		Intensity: intensity,
		Duration:  duration,
	})
}
