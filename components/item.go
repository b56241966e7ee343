package components

import (
	cfg "github.com/automoto/shatterbox/config"
	"github.com/yohamta/donburi"
)

// ItemData marks a placeable room object. Unlock says which chests the item
// opens when dropped onto them; UnlockNone items open nothing and fall back
// to plain placement.
type ItemData struct {
	Name     string // Object name from the room file, for logs and the debug overlay
	Unlock   cfg.UnlockKind
	Consumed bool // Spent opening a chest. The body is out of the space and the sprite hidden.
}

var Item = donburi.NewComponentType[ItemData]()
