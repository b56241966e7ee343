package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// DragData is the per-item placement state driven by the cursor.
//
// Target is refreshed every held frame by placement evaluation and only
// ever points at a locked chest the item can open. InvalidDrop means the
// current cursor spot fails the fallback placement rule.
type DragData struct {
	Dragging    bool
	InvalidDrop bool
	Target      *donburi.Entry

	// Cursor offset from the body center at grab time, so the item does
	// not jump under the pointer.
	GrabDX, GrabDY float64

	// Pose at grab time. Invalid releases snap the item back here.
	HomeX, HomeY float64
	HomeAngle    float64
}

var Drag = donburi.NewComponentType[DragData]()

// BobData animates the small hover of a held item around the cursor point.
type BobData struct {
	T      *gween.Tween
	Down   bool
	Offset float64
}

var Bob = donburi.NewComponentType[BobData]()
