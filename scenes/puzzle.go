package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/shatterbox/assets"
	"github.com/automoto/shatterbox/components"
	cfg "github.com/automoto/shatterbox/config"
	"github.com/automoto/shatterbox/leveldata"
	"github.com/automoto/shatterbox/systems"
	"github.com/automoto/shatterbox/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PuzzleScene runs one room of the packing game. Resets and advances
// rebuild the world from the room data, so every run starts from a clean
// simulation.
type PuzzleScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	rooms        map[string]*leveldata.Room
	names        []string
	roomIndex    int
	startRoom    string
	once         sync.Once
}

// NewPuzzleScene creates a scene starting at the given room index.
func NewPuzzleScene(sc SceneChanger, roomIndex int) *PuzzleScene {
	return &PuzzleScene{sceneChanger: sc, roomIndex: roomIndex}
}

// NewPuzzleSceneForRoom starts directly in the named room. Used by the
// -room debug flag.
func NewPuzzleSceneForRoom(sc SceneChanger, name string) *PuzzleScene {
	return &PuzzleScene{sceneChanger: sc, startRoom: name}
}

func (ps *PuzzleScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	levelEntry, ok := components.Level.First(ps.ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	switch {
	case level.ExitRequested:
		ps.teardown()
		ps.sceneChanger.ChangeScene(NewMenuScene(ps.sceneChanger))
	case level.ResetRequested:
		ps.rebuild(ps.roomIndex)
	case level.AdvanceRequested:
		next := ps.roomIndex + 1
		if next >= len(ps.names) {
			ps.teardown()
			ps.sceneChanger.ChangeScene(NewMenuScene(ps.sceneChanger))
			return
		}
		ps.rebuild(next)
	}
}

func (ps *PuzzleScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PuzzleScene) configure() {
	// Preload effects to avoid lag on the first break (important for WASM)
	systems.PreloadAllSFX()

	rooms, names, err := assets.LoadRooms()
	if err != nil {
		panic("failed to load rooms: " + err.Error())
	}
	ps.rooms = rooms
	ps.names = names

	if ps.startRoom != "" {
		for i, name := range names {
			if name == ps.startRoom {
				ps.roomIndex = i
			}
		}
	}
	if ps.roomIndex < 0 || ps.roomIndex >= len(names) {
		ps.roomIndex = 0
	}

	ps.buildWorld(ps.roomIndex)
}

// teardown releases what the world holds outside the ECS before the world
// itself is dropped.
func (ps *PuzzleScene) teardown() {
	if ps.ecs != nil {
		systems.ClearShards(ps.ecs)
	}
}

func (ps *PuzzleScene) rebuild(index int) {
	ps.teardown()
	ps.buildWorld(index)
}

func (ps *PuzzleScene) buildWorld(index int) {
	ps.roomIndex = index
	room := ps.rooms[ps.names[index]]

	e := ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first, even when paused for menu sounds)
	e.AddSystem(systems.UpdateAudio)

	// Input and pause gate the gameplay systems below
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePause)
	e.AddSystem(systems.UpdateDebug)

	// Placement runs before drag so a release acts on a fresh verdict;
	// fragility runs right after physics to settle marked breaks.
	e.AddSystem(systems.UpdatePlacement)
	e.AddSystem(systems.UpdateDrag)
	e.AddSystem(systems.UpdatePhysics)
	e.AddSystem(systems.UpdateFragility)
	e.AddSystem(systems.UpdateTweens)
	e.AddSystem(systems.UpdateVisualStates)
	e.AddSystem(systems.UpdateRoomState)
	e.AddSystem(systems.UpdateCamera)

	// Renderers, overlays last
	e.AddRenderer(cfg.Default, systems.DrawRoom)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.Default, systems.DrawRoomCleared)
	e.AddRenderer(cfg.Default, systems.DrawPause)

	// The space must exist before anything with a body spawns.
	spaceEntry := factory.CreateSpace(e)
	space := components.Space.Get(spaceEntry).Space
	systems.InstallBreakageHandlers(e, space)

	factory.CreateCamera(e)
	factory.CreateLevel(e, room, index)

	ps.ecs = e
}
