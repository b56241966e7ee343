package systems

import (
	"log"

	"github.com/automoto/shatterbox/components"
	cfg "github.com/automoto/shatterbox/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// OpenChest unlocks a chest and starts its open flourish. Calling it on an
// already open chest does nothing, so the effect can only ever fire once.
func OpenChest(e *ecs.ECS, entry *donburi.Entry) {
	chest := components.Chest.Get(entry)
	if chest.Unlocked {
		return
	}
	chest.Unlocked = true

	components.Sprite.Get(entry).Fill = cfg.ChestOpen

	pulse := components.Pulse.Get(entry)
	half := cfg.Chest.PulseDuration / 2
	pulse.Up = gween.New(1, float32(cfg.Chest.OpenPulseMax), half, ease.OutQuad)
	pulse.Down = gween.New(float32(cfg.Chest.OpenPulseMax), 1, half, ease.InQuad)
	pulse.Phase = 0
	pulse.Done = false

	log.Printf("Chest %q opened", chest.Name)
	QueueSFX(e, cfg.SoundChestOpen)
	TriggerScreenShake(e, cfg.ScreenShake.OpenIntensity, cfg.ScreenShake.OpenDuration)
}
