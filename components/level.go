package components

import "github.com/yohamta/donburi"

// LevelData is the singleton state of the loaded room.
//
// Clock is the room's simulation time in seconds, advanced once per fixed
// step. Crush accounting stamps against this clock, so pausing the game
// also pauses the force window.
//
// Shards owns every live broken piece in the room. Spawning appends here
// and nothing else mutates the slice until ClearShards tears it down.
type LevelData struct {
	Name  string
	Index int
	Clock float64

	Shards []*donburi.Entry

	Cleared     bool
	BrokenCount int

	// Scene requests, consumed by the puzzle scene on its next update.
	ResetRequested   bool
	AdvanceRequested bool
	ExitRequested    bool
}

var Level = donburi.NewComponentType[LevelData]()
