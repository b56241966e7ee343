package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/shatterbox/components"
	cfg "github.com/automoto/shatterbox/config"
	"github.com/automoto/shatterbox/fonts"
	"github.com/automoto/shatterbox/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateDebug returns the singleton DebugData, creating it on first use.
func GetOrCreateDebug(e *ecs.ECS) *components.DebugData {
	if entry, ok := components.Debug.First(e.World); ok {
		return components.Debug.Get(entry)
	}
	entry := e.World.Entry(e.World.Create(components.Debug))
	components.Debug.SetValue(entry, components.DebugData{Visible: cfg.Debug.ShowDebug})
	return components.Debug.Get(entry)
}

// UpdateDebug toggles the physics overlay.
func UpdateDebug(e *ecs.ECS) {
	input := getOrCreateInput(e)
	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		debug := GetOrCreateDebug(e)
		debug.Visible = !debug.Visible
	}
}

// DrawDebug outlines every collision shape and prints the crush accumulator
// over fragile items.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateDebug(e).Visible {
		return
	}
	offX, offY := cameraOffset(e)
	smallFont := fonts.Small.Get()

	components.Body.Each(e.World, func(entry *donburi.Entry) {
		body := components.Body.Get(entry)
		if body.Shape == nil {
			return
		}
		// cp bounding boxes store B as the numerically smaller Y, which is
		// the visual top with our screen-down axis.
		bb := body.Shape.BB()
		x := float32(bb.L - offX)
		y := float32(bb.B - offY)
		w := float32(bb.R - bb.L)
		h := float32(bb.T - bb.B)

		c := debugColor(entry)
		vector.DrawFilledRect(screen, x, y, w, 1, c, false)     // Top
		vector.DrawFilledRect(screen, x, y+h-1, w, 1, c, false) // Bottom
		vector.DrawFilledRect(screen, x, y, 1, h, c, false)     // Left
		vector.DrawFilledRect(screen, x+w-1, y, 1, h, c, false) // Right

		if entry.HasComponent(components.Fragile) {
			f := components.Fragile.Get(entry)
			readout := fmt.Sprintf("acc %.1f/%.0f", f.Accum, f.CrushThreshold)
			text.Draw(screen, readout, smallFont, int(x), int(y)-4, cfg.White)
		}
	})
}

func debugColor(entry *donburi.Entry) color.RGBA {
	switch {
	case entry.HasComponent(tags.Wall):
		return color.RGBA{100, 100, 100, 255} // Grey
	case entry.HasComponent(tags.Chest):
		if components.Chest.Get(entry).Unlocked {
			return color.RGBA{0, 255, 0, 255} // Green
		}
		return color.RGBA{255, 200, 0, 255} // Gold
	case entry.HasComponent(components.Fragile):
		return color.RGBA{255, 0, 0, 255} // Red
	case entry.HasComponent(tags.Shard):
		return color.RGBA{0, 255, 255, 255} // Cyan
	}
	return color.RGBA{0, 0, 255, 255} // Blue
}
