package systems

import (
	"fmt"

	"github.com/automoto/shatterbox/components"
	cfg "github.com/automoto/shatterbox/config"
	"github.com/automoto/shatterbox/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudPanelWidth  = 224
	hudPanelHeight = 62
	hudLineHeight  = 18
)

// DrawHUD renders the room readout in the top-left corner plus the held
// item label and key hints along the bottom.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	margin := float32(cfg.HUD.Margin)

	// Backing panel
	vector.DrawFilledRect(screen, margin, margin, hudPanelWidth, hudPanelHeight, cfg.BlackOverlay, false)

	bodyFont := fonts.Body.Get()
	smallFont := fonts.Small.Get()

	x := int(cfg.HUD.Margin) + 8
	y := int(cfg.HUD.Margin) + hudLineHeight
	text.Draw(screen, level.Name, bodyFont, x, y, cfg.HUD.TextColor)

	total, open := chestCounts(e)
	y += hudLineHeight
	text.Draw(screen, fmt.Sprintf("Chests %d/%d", open, total), smallFont, x, y, cfg.HUD.TextColor)

	y += hudLineHeight - 4
	broken := fmt.Sprintf("Broken %d", level.BrokenCount)
	brokenColor := cfg.HUD.DimTextColor
	if level.BrokenCount > 0 {
		brokenColor = cfg.LightRed
	}
	text.Draw(screen, broken, smallFont, x, y, brokenColor)

	drawHeldLabel(e, screen)

	hint := "R to reset, ESC to pause"
	hintBounds := text.BoundString(smallFont, hint)
	hintX := cfg.C.Width - int(cfg.HUD.Margin) - hintBounds.Dx()
	hintY := cfg.C.Height - int(cfg.HUD.Margin)
	text.Draw(screen, hint, smallFont, hintX, hintY, cfg.HUD.DimTextColor)
}

func drawHeldLabel(e *ecs.ECS, screen *ebiten.Image) {
	var label string
	components.Drag.Each(e.World, func(entry *donburi.Entry) {
		if !components.Drag.Get(entry).Dragging {
			return
		}
		item := components.Item.Get(entry)
		label = "Holding: " + item.Name
		if item.Unlock != cfg.UnlockNone {
			label += " (" + item.Unlock.Label() + ")"
		}
	})
	if label == "" {
		return
	}
	x := int(cfg.HUD.Margin)
	y := cfg.C.Height - int(cfg.HUD.Margin)
	text.Draw(screen, label, fonts.Small.Get(), x, y, cfg.HUD.TextColor)
}
