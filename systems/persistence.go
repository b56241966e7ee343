package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/shatterbox/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	SFXVolume       float64 `json:"sfxVolume"`
	Fullscreen      bool    `json:"fullscreen"`
	ResolutionIndex int     `json:"resolutionIndex"`
}

// SavedProgress represents room completion stored on disk
type SavedProgress struct {
	FurthestRoom int             `json:"furthestRoom"`
	ClearedRooms map[string]bool `json:"clearedRooms"`
	FewestBroken map[string]int  `json:"fewestBroken"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "shatterbox",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. A missing or unreadable save is
// not an error; the caller just keeps the defaults.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// ApplySavedSettings applies loaded settings to a running world.
func ApplySavedSettings(e *ecs.ECS, saved *SavedSettings) {
	if saved == nil {
		return
	}
	SetSFXVolume(e, saved.SFXVolume)
	applyDisplaySettings(saved)
}

// ApplySavedSettingsGlobal applies settings without needing an ECS
// reference. Used during startup before any scene exists.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	v := saved.SFXVolume
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	globalSFXVolume = v
	applyDisplaySettings(saved)
}

func applyDisplaySettings(saved *SavedSettings) {
	ebiten.SetFullscreen(saved.Fullscreen)
	if !saved.Fullscreen && saved.ResolutionIndex >= 0 && saved.ResolutionIndex < len(cfg.SettingsMenu.Resolutions) {
		res := cfg.SettingsMenu.Resolutions[saved.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}
}

// LoadProgress loads room completion from disk
func LoadProgress() (*SavedProgress, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("progress")
	if err != nil {
		log.Printf("Warning: Could not load progress: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var progress SavedProgress
	if err := json.Unmarshal(data, &progress); err != nil {
		log.Printf("Warning: Could not parse saved progress: %v", err)
		return nil, err
	}

	return &progress, nil
}

// SaveProgress saves room completion to disk
func SaveProgress(p *SavedProgress) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(p)
	if err != nil {
		log.Printf("Warning: Could not serialize progress: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("progress", data); err != nil {
		log.Printf("Warning: Could not save progress: %v", err)
		return err
	}
	return nil
}

// RecordRoomClear merges one cleared room into the saved progress. It keeps
// the furthest room reached and the per-room best breakage count.
func RecordRoomClear(roomName string, roomIndex int, broken int) {
	progress, _ := LoadProgress()
	if progress == nil {
		progress = &SavedProgress{}
	}
	if progress.ClearedRooms == nil {
		progress.ClearedRooms = map[string]bool{}
	}
	if progress.FewestBroken == nil {
		progress.FewestBroken = map[string]int{}
	}

	progress.ClearedRooms[roomName] = true
	if roomIndex+1 > progress.FurthestRoom {
		progress.FurthestRoom = roomIndex + 1
	}
	best, seen := progress.FewestBroken[roomName]
	if !seen || broken < best {
		progress.FewestBroken[roomName] = broken
	}

	_ = SaveProgress(progress)
}

// ClearProgress removes any saved room completion
func ClearProgress() error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}
	if err := gdataManager.SaveItem("progress", nil); err != nil {
		log.Printf("Warning: Could not clear progress: %v", err)
		return err
	}
	return nil
}
