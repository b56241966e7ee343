package systems

import (
	"fmt"

	"github.com/automoto/shatterbox/components"
	cfg "github.com/automoto/shatterbox/config"
	"github.com/automoto/shatterbox/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawRoomCleared renders the cleared-room banner over the settled scene.
// The advance key itself is handled by UpdateRoomState.
func DrawRoomCleared(e *ecs.ECS, screen *ebiten.Image) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	if !level.Cleared {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), cfg.RoomComplete.OverlayColor, false)

	titleFont := fonts.Title.Get()
	title := cfg.RoomComplete.Title
	text.Draw(screen, title, titleFont, centerTextX(title, titleFont, width), int(cfg.RoomComplete.TitleY), cfg.RoomComplete.TitleColor)

	msgFont := fonts.Body.Get()
	msg := clearedMessage(level.BrokenCount)
	text.Draw(screen, msg, msgFont, centerTextX(msg, msgFont, width), int(cfg.RoomComplete.MessageY), cfg.RoomComplete.TextColor)

	hintFont := fonts.Small.Get()
	hint := cfg.RoomComplete.ContinueHint
	text.Draw(screen, hint, hintFont, centerTextX(hint, hintFont, width), int(cfg.RoomComplete.HintY), cfg.HUD.DimTextColor)
}

func clearedMessage(broken int) string {
	switch {
	case broken == 0:
		return "Every chest opened without a single break"
	case broken == 1:
		return "Every chest opened, 1 item broken"
	default:
		return fmt.Sprintf("Every chest opened, %d items broken", broken)
	}
}

// centerTextX calculates the X position to center text on screen
func centerTextX(s string, face font.Face, screenWidth float64) int {
	bounds := text.BoundString(face, s)
	return int((screenWidth - float64(bounds.Dx())) / 2)
}
