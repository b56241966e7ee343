package scenes

import (
	"image/color"
	"math"
	"os"
	"sync"

	"github.com/automoto/shatterbox/assets"
	cfg "github.com/automoto/shatterbox/config"
	"github.com/automoto/shatterbox/systems"
	"github.com/automoto/shatterbox/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the room select screen using ebitenui
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	menuUI       *ui.RoomSelectUI
	saved        *systems.SavedSettings
	once         sync.Once
	startIndex   int
	shouldStart  bool
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc, startIndex: -1}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)

	// Update ECS for audio
	ms.ecs.Update()

	// Update ebitenui
	ms.menuUI.Update()

	if ms.shouldStart {
		ms.sceneChanger.ChangeScene(NewPuzzleScene(ms.sceneChanger, ms.startIndex))
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	// Audio system
	ms.ecs.AddSystem(systems.UpdateAudio)

	rooms, names, err := assets.LoadRooms()
	if err != nil {
		panic("failed to load rooms: " + err.Error())
	}
	progress, _ := systems.LoadProgress()

	infos := make([]ui.RoomInfo, 0, len(names))
	for i, name := range names {
		room := rooms[name]
		info := ui.RoomInfo{Title: room.Title}
		if progress != nil {
			info.Cleared = progress.ClearedRooms[room.Title]
			info.Locked = i > progress.FurthestRoom
		} else {
			info.Locked = i > 0
		}
		infos = append(infos, info)
	}

	ms.saved = ms.loadOrDefaultSettings()

	ms.menuUI = ui.NewRoomSelectUI(
		infos,
		ms.saved.SFXVolume,
		ms.saved.Fullscreen,
		func(index int) {
			systems.QueueSFX(ms.ecs, cfg.SoundMenuSelect)
			ms.startIndex = index
			ms.shouldStart = true
		},
		ms.cycleVolume,
		ms.toggleFullscreen,
		func() { os.Exit(0) },
	)
}

func (ms *MenuScene) loadOrDefaultSettings() *systems.SavedSettings {
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		return saved
	}
	return &systems.SavedSettings{
		SFXVolume:       systems.SFXVolume(ms.ecs),
		ResolutionIndex: cfg.SettingsMenu.DefaultResolutionIndex,
	}
}

// cycleVolume steps to the next configured volume and plays a blip at the
// new level so the change is audible immediately.
func (ms *MenuScene) cycleVolume() float64 {
	v := nextVolumeStep(systems.SFXVolume(ms.ecs))
	systems.SetSFXVolume(ms.ecs, v)
	systems.QueueSFX(ms.ecs, cfg.SoundMenuNavigate)

	ms.saved.SFXVolume = v
	_ = systems.SaveSettings(ms.saved)
	return v
}

func (ms *MenuScene) toggleFullscreen() bool {
	ms.saved.Fullscreen = !ms.saved.Fullscreen
	ebiten.SetFullscreen(ms.saved.Fullscreen)
	_ = systems.SaveSettings(ms.saved)
	return ms.saved.Fullscreen
}

func nextVolumeStep(v float64) float64 {
	steps := cfg.SettingsMenu.VolumeSteps
	for i, s := range steps {
		if math.Abs(s-v) < 0.01 {
			return steps[(i+1)%len(steps)]
		}
	}
	return steps[len(steps)-1]
}
