package components

import "github.com/yohamta/donburi"

// DebugData toggles the physics overlay (singleton component)
type DebugData struct {
	Visible bool
}

var Debug = donburi.NewComponentType[DebugData]()
