package systems

import (
	"github.com/automoto/shatterbox/components"
	cfg "github.com/automoto/shatterbox/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// getOrCreateInput returns the singleton InputData, creating it on first use.
func getOrCreateInput(e *ecs.ECS) *components.InputData {
	if entry, ok := components.Input.First(e.World); ok {
		return components.Input.Get(entry)
	}
	entry := e.World.Entry(e.World.Create(components.Input))
	return components.Input.Get(entry)
}

// UpdateInput polls the keyboard into the merged action state. Must run
// before every system that reads actions.
func UpdateInput(e *ecs.ECS) {
	input := getOrCreateInput(e)
	input.Previous = input.Current

	for action, binding := range cfg.Input.Bindings {
		pressed := false
		for _, k := range binding.Keys {
			if ebiten.IsKeyPressed(k) {
				pressed = true
				break
			}
		}
		input.Current[action] = pressed
	}
}

// GetAction computes the temporal state of one action by comparing frames.
func GetAction(input *components.InputData, action cfg.ActionID) components.ActionState {
	cur := input.Current[action]
	prev := input.Previous[action]
	return components.ActionState{
		Pressed:      cur,
		JustPressed:  cur && !prev,
		JustReleased: !cur && prev,
	}
}
