package components

import "github.com/yohamta/donburi"

// ShardData marks one broken piece. BornAt is the room clock time of the
// break that spawned it.
type ShardData struct {
	Radius float64
	BornAt float64
}

var Shard = donburi.NewComponentType[ShardData]()
