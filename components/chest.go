package components

import (
	cfg "github.com/automoto/shatterbox/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ChestData marks a lockable chest. A chest accepts exactly one unlock kind
// and opens at most once.
type ChestData struct {
	Name     string
	Accepts  cfg.UnlockKind
	Unlocked bool
}

var Chest = donburi.NewComponentType[ChestData]()

// PulseData runs the scale pop played when a chest opens. Phase 0 grows the
// sprite, phase 1 settles it back to normal size.
type PulseData struct {
	Up    *gween.Tween
	Down  *gween.Tween
	Phase int
	Done  bool
}

var Pulse = donburi.NewComponentType[PulseData]()
