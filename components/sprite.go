package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// SpriteKind selects the primitive the renderer draws for an entity.
type SpriteKind int

const (
	SpriteBox SpriteKind = iota
	SpriteCircle
)

// SpriteData describes the flat-shaded primitive drawn at the entity's body
// pose. Scale is animated by pulse tweens and is 1.0 at rest. Entities with
// Visible false are skipped entirely.
type SpriteData struct {
	Kind    SpriteKind
	W, H    float64 // Box extents in pixels
	Radius  float64 // Circle radius in pixels
	Fill    color.RGBA
	Scale   float64
	Visible bool
}

var Sprite = donburi.NewComponentType[SpriteData]()
