package components

import "github.com/yohamta/donburi"

// VisualState is the placement feedback state picked for an entity each
// frame. Priority runs invalid, merge, dragging, normal.
type VisualState int

const (
	VisualNormal VisualState = iota
	VisualDragging
	VisualCanMerge
	VisualInvalid
)

// VisualData holds the entity's current feedback state. The renderer maps
// it to a tint; nothing else reads it.
type VisualData struct {
	State VisualState
}

var Visual = donburi.NewComponentType[VisualData]()
