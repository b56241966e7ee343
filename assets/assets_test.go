package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRooms_EmbeddedSet(t *testing.T) {
	rooms, names, err := LoadRooms()
	require.NoError(t, err)
	assert.Equal(t, []string{"room01", "room02", "room03"}, names)

	mailroom := rooms["room01"]
	require.NotNil(t, mailroom)
	assert.Equal(t, "The Mailroom", mailroom.Title)
	assert.NotEmpty(t, mailroom.Walls)
	assert.NotEmpty(t, mailroom.Items)
	assert.NotEmpty(t, mailroom.Chests)
}

func TestLoadRooms_EveryRoomIsWinnable(t *testing.T) {
	rooms, _, err := LoadRooms()
	require.NoError(t, err)

	// Trigger items are spent on use, so each chest kind needs at least
	// as many matching items as there are chests of that kind.
	for name, room := range rooms {
		triggers := map[string]int{}
		for _, it := range room.Items {
			if it.Trigger != "" {
				triggers[it.Trigger]++
			}
		}
		wanted := map[string]int{}
		for _, ch := range room.Chests {
			wanted[ch.Unlock]++
		}
		for kind, chests := range wanted {
			assert.GreaterOrEqual(t, triggers[kind], chests,
				"%s needs %d %q item(s)", name, chests, kind)
		}
	}
}
