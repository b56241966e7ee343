package assets

import (
	"embed"

	"github.com/automoto/shatterbox/leveldata"
)

//go:embed all:levels
var assetFS embed.FS

// LoadRooms parses every embedded room file. Rooms come back keyed by file
// stem plus a sorted name list that fixes the play order.
func LoadRooms() (map[string]*leveldata.Room, []string, error) {
	return leveldata.LoadAllRooms(assetFS, "levels")
}
