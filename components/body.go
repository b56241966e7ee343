package components

import (
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
)

// BodyData ties an entity to its Chipmunk body and primary shape.
// Shape.UserData points back at the owning *donburi.Entry so collision
// callbacks can reach the entity.
type BodyData struct {
	Body  *cp.Body
	Shape *cp.Shape

	// Box extents in pixels. Zero for circle shapes.
	W, H float64

	// Rest mass. Kept here because switching a body to kinematic for a
	// drag wipes its mass and moment, which must be restored on release.
	Mass float64
}

var Body = donburi.NewComponentType[BodyData]()

// Position returns the body position, or the zero vector without a body.
func (b *BodyData) Position() cp.Vector {
	if b.Body == nil {
		return cp.Vector{}
	}
	return b.Body.Position()
}
