package systems

import (
	"log"

	"github.com/automoto/shatterbox/components"
	cfg "github.com/automoto/shatterbox/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// roomCleared reports whether the loaded room has been won.
func roomCleared(e *ecs.ECS) bool {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return false
	}
	return components.Level.Get(levelEntry).Cleared
}

// RequestRoomReset asks the scene to rebuild the current room on its next
// update.
func RequestRoomReset(e *ecs.ECS) {
	if levelEntry, ok := components.Level.First(e.World); ok {
		components.Level.Get(levelEntry).ResetRequested = true
	}
}

// RequestMenuExit asks the scene to leave the room for the title screen.
func RequestMenuExit(e *ecs.ECS) {
	if levelEntry, ok := components.Level.First(e.World); ok {
		components.Level.Get(levelEntry).ExitRequested = true
	}
}

// UpdateRoomState watches for the winning drop and for the reset and
// advance keys. Physics keeps running after the clear so thrown items and
// debris settle behind the banner.
func UpdateRoomState(e *ecs.ECS) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	input := getOrCreateInput(e)

	if !IsPaused(e) && GetAction(input, cfg.ActionResetRoom).JustPressed {
		level.ResetRequested = true
	}

	if !level.Cleared {
		if IsPaused(e) {
			return
		}
		total, open := chestCounts(e)
		if total > 0 && open == total {
			level.Cleared = true
			log.Printf("Room %q cleared", level.Name)
			QueueSFX(e, cfg.SoundRoomClear)
			RecordRoomClear(level.Name, level.Index, level.BrokenCount)
		}
		return
	}

	if GetAction(input, cfg.ActionAdvance).JustPressed {
		level.AdvanceRequested = true
	}
}

func chestCounts(e *ecs.ECS) (total, open int) {
	components.Chest.Each(e.World, func(entry *donburi.Entry) {
		total++
		if components.Chest.Get(entry).Unlocked {
			open++
		}
	})
	return total, open
}
