package systems

import (
	"github.com/automoto/shatterbox/components"
	cfg "github.com/automoto/shatterbox/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTweens advances the cosmetic animations: the hover of a held item
// and the scale pulse of a freshly opened chest.
func UpdateTweens(e *ecs.ECS) {
	if IsPaused(e) {
		return
	}
	dt := float32(cfg.Physics.TimeStep)

	components.Bob.Each(e.World, func(entry *donburi.Entry) {
		bob := components.Bob.Get(entry)
		if bob.T == nil {
			return
		}
		v, done := bob.T.Update(dt)
		bob.Offset = float64(v)
		if !done {
			return
		}
		// Reverse toward the other extreme and keep hovering until the
		// drag ends.
		to := float32(cfg.Placement.BobAmount)
		if !bob.Down {
			to = -to
		}
		bob.T = gween.New(v, to, cfg.Placement.BobDuration/2, ease.InOutSine)
		bob.Down = !bob.Down
	})

	components.Pulse.Each(e.World, func(entry *donburi.Entry) {
		pulse := components.Pulse.Get(entry)
		if pulse.Done {
			return
		}
		sprite := components.Sprite.Get(entry)
		switch pulse.Phase {
		case 0:
			if pulse.Up == nil {
				pulse.Done = true
				return
			}
			v, done := pulse.Up.Update(dt)
			sprite.Scale = float64(v)
			if done {
				pulse.Phase = 1
			}
		default:
			if pulse.Down == nil {
				pulse.Done = true
				sprite.Scale = 1
				return
			}
			v, done := pulse.Down.Update(dt)
			sprite.Scale = float64(v)
			if done {
				pulse.Done = true
				sprite.Scale = 1
			}
		}
	})
}
