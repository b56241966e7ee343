package systems

import (
	"github.com/automoto/shatterbox/components"
	cfg "github.com/automoto/shatterbox/config"
	"github.com/automoto/shatterbox/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreatePause returns the singleton PauseData, creating it on first use.
func GetOrCreatePause(e *ecs.ECS) *components.PauseData {
	if entry, ok := components.Pause.First(e.World); ok {
		return components.Pause.Get(entry)
	}
	entry := e.World.Entry(e.World.Create(components.Pause))
	return components.Pause.Get(entry)
}

// IsPaused reports whether gameplay systems should hold still this frame.
func IsPaused(e *ecs.ECS) bool {
	if entry, ok := components.Pause.First(e.World); ok {
		return components.Pause.Get(entry).IsPaused
	}
	return false
}

// UpdatePause handles the pause toggle and pause menu navigation. Runs after
// UpdateInput and before the gameplay systems it gates.
func UpdatePause(e *ecs.ECS) {
	pause := GetOrCreatePause(e)
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionPause).JustPressed {
		pause.IsPaused = !pause.IsPaused
		if pause.IsPaused {
			pause.SelectedOption = components.MenuResume
			// Don't leave an item hanging in the air under the menu.
			if held := heldEntry(e); held != nil {
				CancelDrag(e, held)
			}
		}
	}

	if !pause.IsPaused {
		return
	}

	// Navigate menu with wrap-around using modulo arithmetic
	numOptions := int(components.MenuExit) + 1
	if GetAction(input, cfg.ActionMenuUp).JustPressed {
		pause.SelectedOption = components.PauseMenuOption(
			(int(pause.SelectedOption) - 1 + numOptions) % numOptions,
		)
		QueueSFX(e, cfg.SoundMenuNavigate)
	}
	if GetAction(input, cfg.ActionMenuDown).JustPressed {
		pause.SelectedOption = components.PauseMenuOption(
			(int(pause.SelectedOption) + 1) % numOptions,
		)
		QueueSFX(e, cfg.SoundMenuNavigate)
	}

	if GetAction(input, cfg.ActionMenuSelect).JustPressed {
		QueueSFX(e, cfg.SoundMenuSelect)
		switch pause.SelectedOption {
		case components.MenuResume:
			pause.IsPaused = false
		case components.MenuRestart:
			RequestRoomReset(e)
			pause.IsPaused = false
		case components.MenuExit:
			RequestMenuExit(e)
			pause.IsPaused = false
		}
	}
}

// DrawPause renders the pause overlay and menu.
func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(e)
	if !pause.IsPaused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), cfg.Pause.OverlayColor, false)

	startY := height/2 - float64(len(cfg.Pause.MenuOptions))*(cfg.Pause.MenuItemHeight+cfg.Pause.MenuItemGap)/2
	for i, option := range cfg.Pause.MenuOptions {
		col := cfg.Pause.TextColorNormal
		label := option
		if i == int(pause.SelectedOption) {
			col = cfg.Pause.TextColorSelected
			label = "> " + option
		}

		face := fonts.Body.Get()
		bounds := text.BoundString(face, label)
		x := int(width/2) - bounds.Dx()/2
		y := int(startY + float64(i)*(cfg.Pause.MenuItemHeight+cfg.Pause.MenuItemGap))
		text.Draw(screen, label, face, x, y, col)
	}
}
