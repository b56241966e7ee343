package components

import (
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
)

// SpaceData holds the Chipmunk space for the room (singleton component)
type SpaceData struct {
	Space *cp.Space
}

var Space = donburi.NewComponentType[SpaceData]()
