package systems

import (
	"github.com/automoto/shatterbox/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateVisualStates recomputes every sprite's highlight from the current
// drag. The held item shows whether its drop would land, merge or snap
// back, and a chest waiting on the held item glows along with it. Idle
// entities always read as normal.
func UpdateVisualStates(e *ecs.ECS) {
	components.Visual.Each(e.World, func(entry *donburi.Entry) {
		components.Visual.Get(entry).State = components.VisualNormal
	})

	components.Drag.Each(e.World, func(entry *donburi.Entry) {
		drag := components.Drag.Get(entry)
		if !drag.Dragging {
			return
		}
		visual := components.Visual.Get(entry)
		switch {
		case drag.InvalidDrop:
			visual.State = components.VisualInvalid
		case drag.Target != nil && drag.Target.Valid():
			visual.State = components.VisualCanMerge
			if drag.Target.HasComponent(components.Visual) {
				components.Visual.Get(drag.Target).State = components.VisualCanMerge
			}
		default:
			visual.State = components.VisualDragging
		}
	})
}
