package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Drag sounds
	SoundPickUp
	SoundDrop
	SoundSnapBack
	// Breakage sounds
	SoundShatter
	// Chest sounds
	SoundChestOpen
	SoundRoomClear
	// UI sounds
	SoundMenuNavigate
	SoundMenuSelect
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// ToneSpec describes one synthesized effect. All effects are short sine
// sweeps or filtered noise bursts generated at startup.
type ToneSpec struct {
	Freq     float64 // Start frequency in Hz
	EndFreq  float64 // End frequency in Hz (equal to Freq = no sweep)
	Duration float64 // Seconds
	Volume   float64 // Pre-mix gain 0..1
	Noise    bool    // Use filtered noise instead of a sine sweep
}

// SoundConfig maps sound IDs to their synthesis parameters
type SoundConfig struct {
	Tones map[SoundID]ToneSpec
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 1.0,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]ToneSpec{
			SoundPickUp:       {Freq: 520, EndFreq: 780, Duration: 0.07, Volume: 0.45},
			SoundDrop:         {Freq: 180, EndFreq: 120, Duration: 0.09, Volume: 0.5},
			SoundSnapBack:     {Freq: 420, EndFreq: 200, Duration: 0.14, Volume: 0.45},
			SoundShatter:      {Freq: 2400, EndFreq: 600, Duration: 0.28, Volume: 0.7, Noise: true},
			SoundChestOpen:    {Freq: 440, EndFreq: 880, Duration: 0.22, Volume: 0.6},
			SoundRoomClear:    {Freq: 523, EndFreq: 1046, Duration: 0.5, Volume: 0.6},
			SoundMenuNavigate: {Freq: 600, EndFreq: 600, Duration: 0.04, Volume: 0.35},
			SoundMenuSelect:   {Freq: 660, EndFreq: 990, Duration: 0.1, Volume: 0.45},
		},
	}
}
