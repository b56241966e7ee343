package systems

import (
	"log"
	"sync"

	"github.com/automoto/shatterbox/assets"
	"github.com/automoto/shatterbox/components"
	cfg "github.com/automoto/shatterbox/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - the context can only exist once per process, so it
// lives here rather than in the world, which is torn down on room changes.
var (
	audioOnce          sync.Once
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
)

func initGlobalAudio() {
	audioOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
		globalAudioLoader.PreloadAll()
	})
}

// PreloadAllSFX warms the effect cache so the first play is not late.
func PreloadAllSFX() {
	initGlobalAudio()
}

// GetOrCreateAudio returns the singleton AudioData, creating it on first
// use. The entity holds only volume and the pending queue; the context is
// attached lazily by UpdateAudio so nothing touches the sound device until
// something actually plays.
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	if entry, ok := components.Audio.First(e.World); ok {
		return components.Audio.Get(entry)
	}
	entry := e.World.Entry(e.World.Create(components.Audio))
	components.Audio.SetValue(entry, components.AudioData{
		SFXVolume: globalSFXVolume,
	})
	return components.Audio.Get(entry)
}

// QueueSFX schedules an effect for the next UpdateAudio drain.
func QueueSFX(e *ecs.ECS, id cfg.SoundID) {
	if id == cfg.SoundNone {
		return
	}
	a := GetOrCreateAudio(e)
	a.PendingSFX = append(a.PendingSFX, id)
}

// UpdateAudio drains the pending effect queue. It runs even while paused so
// menu sounds still play.
func UpdateAudio(e *ecs.ECS) {
	a := GetOrCreateAudio(e)
	if len(a.PendingSFX) == 0 {
		return
	}
	initGlobalAudio()
	if a.Context == nil {
		a.Context = globalAudioContext
	}
	for _, id := range a.PendingSFX {
		playSFX(a, id)
	}
	a.PendingSFX = a.PendingSFX[:0]
}

func playSFX(a *components.AudioData, id cfg.SoundID) {
	if globalAudioLoader == nil || a.SFXVolume <= 0 {
		return
	}
	player, err := globalAudioLoader.SFXPlayer(id)
	if err != nil {
		log.Printf("Warning: could not play sound %d: %v", id, err)
		return
	}
	player.SetVolume(a.SFXVolume)
	player.Play()
}

// SetSFXVolume clamps and stores the effect volume. The global mirror keeps
// the setting alive across room reloads, which rebuild the world.
func SetSFXVolume(e *ecs.ECS, v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	globalSFXVolume = v
	GetOrCreateAudio(e).SFXVolume = v
}

// SFXVolume reports the current effect volume.
func SFXVolume(e *ecs.ECS) float64 {
	return GetOrCreateAudio(e).SFXVolume
}
