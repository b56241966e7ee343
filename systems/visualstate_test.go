package systems

import (
	"testing"

	"github.com/automoto/shatterbox/components"
	"github.com/automoto/shatterbox/systems/factory"
	"github.com/stretchr/testify/assert"
)

func TestUpdateVisualStates_FollowsTheDrag(t *testing.T) {
	e, _ := newTestRoom()
	chest := factory.CreateChest(e, brassChestDef())
	key := factory.CreateItem(e, brassKeyDef())

	// A drop that would merge lights up both sides
	drag := dragTo(key, 815, 470)
	drag.Target = chest
	UpdateVisualStates(e)
	assert.Equal(t, components.VisualCanMerge, components.Visual.Get(key).State)
	assert.Equal(t, components.VisualCanMerge, components.Visual.Get(chest).State)

	// A blocked spot flags only the held item
	drag.Target = nil
	drag.InvalidDrop = true
	UpdateVisualStates(e)
	assert.Equal(t, components.VisualInvalid, components.Visual.Get(key).State)
	assert.Equal(t, components.VisualNormal, components.Visual.Get(chest).State)

	// Open air is a plain carry
	drag.InvalidDrop = false
	UpdateVisualStates(e)
	assert.Equal(t, components.VisualDragging, components.Visual.Get(key).State)

	// Letting go clears every highlight
	drag.Dragging = false
	UpdateVisualStates(e)
	assert.Equal(t, components.VisualNormal, components.Visual.Get(key).State)
}
