package leveldata

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
	"github.com/pkg/errors"
)

// LoadRoom parses a TMX file and returns its room definition. It takes an
// fs.FS so callers can pass embed.FS or os.DirFS. Rooms are object-group
// only: a Walls group of solid rectangles, an Items group of placeable
// objects, and a Chests group of locked containers.
func LoadRoom(fsys fs.FS, tmxPath string) (*Room, error) {
	roomMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, errors.Wrapf(err, "load TMX %s", tmxPath)
	}

	room := &Room{
		MapWidth:  roomMap.Width * roomMap.TileWidth,
		MapHeight: roomMap.Height * roomMap.TileHeight,
	}
	// Properties is nil when the map has no <properties> element at all.
	if roomMap.Properties != nil {
		room.Title = roomMap.Properties.GetString("title")
	}
	if room.Title == "" {
		room.Title = strings.TrimSuffix(filepath.Base(tmxPath), ".tmx")
	}

	for _, og := range roomMap.ObjectGroups {
		switch og.Name {
		case "Walls":
			for _, o := range og.Objects {
				room.Walls = append(room.Walls, Wall{
					X: o.X, Y: o.Y, W: o.Width, H: o.Height,
				})
			}
		case "Items":
			for _, o := range og.Objects {
				room.Items = append(room.Items, Item{
					Name:            o.Name,
					X:               o.X,
					Y:               o.Y,
					W:               o.Width,
					H:               o.Height,
					Mass:            o.Properties.GetFloat("mass"),
					Trigger:         o.Properties.GetString("trigger"),
					Fragile:         o.Properties.GetBool("fragile"),
					Strength:        o.Properties.GetInt("strength"),
					ImpactThreshold: o.Properties.GetFloat("impactThreshold"),
					CrushThreshold:  o.Properties.GetFloat("crushThreshold"),
					ForceWindow:     o.Properties.GetFloat("forceWindow"),
				})
			}
		case "Chests":
			for _, o := range og.Objects {
				room.Chests = append(room.Chests, Chest{
					Name:   o.Name,
					X:      o.X,
					Y:      o.Y,
					W:      o.Width,
					H:      o.Height,
					Unlock: o.Properties.GetString("unlock"),
				})
			}
		}
	}

	if len(room.Walls) == 0 {
		return nil, errors.Errorf("room %s has no Walls object group", tmxPath)
	}

	return room, nil
}

// LoadAllRooms discovers all .tmx files in roomsDir within fsys, loads each,
// and returns a map keyed by stem name plus a sorted list of names.
func LoadAllRooms(fsys fs.FS, roomsDir string) (map[string]*Room, []string, error) {
	pattern := roomsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "glob %s", pattern)
	}
	if len(matches) == 0 {
		return nil, nil, errors.Errorf("no .tmx files found in %s", roomsDir)
	}

	rooms := make(map[string]*Room, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		room, err := LoadRoom(fsys, path)
		if err != nil {
			return nil, nil, err
		}
		stem := strings.TrimSuffix(filepath.Base(path), ".tmx")
		rooms[stem] = room
		names = append(names, stem)
	}

	sort.Strings(names)
	return rooms, names, nil
}
