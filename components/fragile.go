package components

import (
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
)

// FragileData carries breakage thresholds and the running crush state for
// an item that can shatter.
//
// Accum integrates contact impulses from bodies pressing down from above.
// LastForce is the room-clock time of the last counted sample; when the gap
// since then exceeds ForceWindow the accumulator restarts from zero.
type FragileData struct {
	ImpactThreshold float64
	CrushThreshold  float64
	ForceWindow     float64
	Strength        int // Material grade, scales the shard burst

	Accum      float64
	LastForce  float64
	Broken     bool      // Terminal. Set once, never cleared.
	BreakPoint cp.Vector // Contact point of the break, valid once Broken is set
}

var Fragile = donburi.NewComponentType[FragileData]()
