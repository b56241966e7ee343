// Package leveldata provides TMX room parsing. It has no dependencies on
// ebitengine, donburi, or chipmunk, just plain data.
package leveldata

// Room holds everything parsed from one TMX room file.
type Room struct {
	Title     string
	MapWidth  int
	MapHeight int

	Walls  []Wall
	Items  []Item
	Chests []Chest
}

// Wall represents a static solid rectangle.
type Wall struct {
	X, Y, W, H float64
}

// Item represents a placeable object. Zero-valued physics fields mean
// "use the configured default". Trigger and breakage properties come in as
// raw strings and numbers; interpretation happens at spawn time.
type Item struct {
	Name       string
	X, Y, W, H float64
	Mass       float64
	Trigger    string

	Fragile         bool
	Strength        int
	ImpactThreshold float64
	CrushThreshold  float64
	ForceWindow     float64
}

// Chest represents a locked container and the trigger kind it accepts.
type Chest struct {
	Name       string
	X, Y, W, H float64
	Unlock     string
}
