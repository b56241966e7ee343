package systems

import (
	"image"
	"image/color"
	"sync"

	"github.com/automoto/shatterbox/components"
	cfg "github.com/automoto/shatterbox/config"
	"github.com/automoto/shatterbox/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// tintAlpha is the strength of the placement feedback overlay.
const tintAlpha = 0.45

var (
	drawOp    = &ebiten.DrawImageOptions{}
	whiteOnce sync.Once
	whitePx   *ebiten.Image
)

// whitePixel returns the 1x1 stamp used for rotated quads. The surrounding
// border keeps filtering from bleeding the edge.
func whitePixel() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(cfg.White)
		whitePx = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whitePx
}

// DrawRoom renders the whole scene back to front: walls, chests, items,
// then shards so fresh debris lands on top.
func DrawRoom(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.FloorFill)

	offX, offY := cameraOffset(e)

	tags.Wall.Each(e.World, func(entry *donburi.Entry) {
		drawSprite(screen, entry, offX, offY)
	})
	tags.Chest.Each(e.World, func(entry *donburi.Entry) {
		drawSprite(screen, entry, offX, offY)
	})
	tags.Item.Each(e.World, func(entry *donburi.Entry) {
		drawSprite(screen, entry, offX, offY)
	})
	tags.Shard.Each(e.World, func(entry *donburi.Entry) {
		drawSprite(screen, entry, offX, offY)
	})
}

func cameraOffset(e *ecs.ECS) (float64, float64) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return 0, 0
	}
	camera := components.Camera.Get(cameraEntry)
	return camera.Position.X - float64(cfg.C.Width)/2,
		camera.Position.Y - float64(cfg.C.Height)/2
}

func drawSprite(screen *ebiten.Image, entry *donburi.Entry, offX, offY float64) {
	sprite := components.Sprite.Get(entry)
	body := components.Body.Get(entry)
	if !sprite.Visible || body.Body == nil {
		return
	}
	pos := body.Body.Position()
	x, y := pos.X-offX, pos.Y-offY

	if sprite.Kind == components.SpriteCircle {
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(sprite.Radius), sprite.Fill, true)
		return
	}

	scale := sprite.Scale
	if scale <= 0 {
		scale = 1
	}
	w, h := sprite.W*scale, sprite.H*scale
	angle := body.Body.Angle()
	drawBox(screen, x, y, w, h, angle, sprite.Fill, 1)
	if tint, ok := stateTint(entry); ok {
		drawBox(screen, x, y, w, h, angle, tint, tintAlpha)
	}
}

// drawBox stamps a rotated quad centered on x,y.
func drawBox(screen *ebiten.Image, x, y, w, h, angle float64, fill color.RGBA, alpha float32) {
	drawOp.GeoM.Reset()
	drawOp.GeoM.Scale(w, h)
	drawOp.GeoM.Translate(-w/2, -h/2)
	drawOp.GeoM.Rotate(angle)
	drawOp.GeoM.Translate(x, y)
	drawOp.ColorScale.Reset()
	drawOp.ColorScale.ScaleWithColor(fill)
	drawOp.ColorScale.ScaleAlpha(alpha)
	screen.DrawImage(whitePixel(), drawOp)
}

func stateTint(entry *donburi.Entry) (color.RGBA, bool) {
	if !entry.HasComponent(components.Visual) {
		return color.RGBA{}, false
	}
	switch components.Visual.Get(entry).State {
	case components.VisualInvalid:
		return cfg.InvalidTint, true
	case components.VisualCanMerge:
		return cfg.MergeTint, true
	case components.VisualDragging:
		return cfg.DragTint, true
	}
	return color.RGBA{}, false
}
