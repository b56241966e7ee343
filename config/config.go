package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	// Global physics
	GravityY float64 // Downward acceleration in px/s^2 (+y is down in screen space)
	Damping  float64 // Global velocity damping per second (1.0 = none)
	TimeStep float64 // Fixed simulation step in seconds

	// Chipmunk solver
	Iterations uint // Solver iterations per step

	// Room boundaries
	WallElasticity float64
	WallFriction   float64

	// Speed clamp applied to dynamic bodies to keep the solver stable
	MaxBodySpeed float64
}

// ItemConfig contains default physical properties for placeable items
type ItemConfig struct {
	Mass       float64 // Default mass when the room data omits one
	Elasticity float64
	Friction   float64
	Size       float64 // Default edge length in pixels for square items
}

// DragConfig contains drag-and-drop behavior configuration
type DragConfig struct {
	PickRadius    float64 // Max distance from cursor to a shape to start a drag
	FollowRate    float64 // Velocity gain toward the cursor while held (1/s)
	MaxThrowSpeed float64 // Clamp on release velocity in px/s
}

// FragilityConfig contains breakage thresholds used when room data omits them
type FragilityConfig struct {
	ImpactThreshold float64 // Min collision impulse that shatters on a single hit
	CrushThreshold  float64 // Accumulated impulse-seconds of overhead load that shatters
	ForceWindow     float64 // Max gap in seconds before accumulated impulse resets
	Strength        int     // Default material strength grade
}

// ShardConfig contains broken-piece spawn configuration
type ShardConfig struct {
	BaseCount   int     // Shards spawned for strength 1
	PerStrength int     // Extra shards per strength grade above 1
	MaxCount    int     // Hard cap on shards per break
	MinSpeed    float64 // Outward burst speed range in px/s
	MaxSpeed    float64
	MinRadius   float64 // Shard circle radius range in pixels
	MaxRadius   float64
	Mass        float64
	Elasticity  float64
	Friction    float64
	MaxSpin     float64 // Max initial angular velocity magnitude in rad/s
}

// ChestConfig contains chest behavior configuration. Chests sit on static
// bodies, so they have no mass to configure.
type ChestConfig struct {
	Elasticity    float64
	Friction      float64
	OpenPulseMax  float64 // Peak sprite scale during the open pulse
	PulseDuration float32 // Pulse tween duration in seconds
}

// PlacementConfig contains drop validation configuration
type PlacementConfig struct {
	OverlapSlop float64 // Penetration depth in pixels tolerated before a drop counts as blocked
	BobAmount   float64 // Idle hover amplitude for a held item in pixels
	BobDuration float32 // Idle hover tween period in seconds
}

// ScreenShakeConfig contains screen shake effect configuration
type ScreenShakeConfig struct {
	BreakIntensity float64 // pixels
	BreakDuration  int     // frames
	OpenIntensity  float64 // pixels - chest unlock
	OpenDuration   int     // frames
}

// HUDConfig contains HUD layout configuration
type HUDConfig struct {
	Margin       float64
	TextColor    color.RGBA
	DimTextColor color.RGBA
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// RoomCompleteConfig contains the cleared-room overlay configuration
type RoomCompleteConfig struct {
	OverlayColor color.RGBA
	TitleColor   color.RGBA
	TextColor    color.RGBA
	TitleY       float64
	MessageY     float64
	HintY        float64
	Title        string
	ContinueHint string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu  bool   // Skip menu and load a room directly
	Room      string // Room to load when skipping the menu ("" = first)
	ShowDebug bool   // Start with the physics overlay visible
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// Render layer shared by all gameplay renderers
const Default = ecs.LayerDefault

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Item ItemConfig
var Drag DragConfig
var Fragility FragilityConfig
var Shard ShardConfig
var Chest ChestConfig
var Placement PlacementConfig
var ScreenShake ScreenShakeConfig
var HUD HUDConfig
var Pause PauseConfig
var RoomComplete RoomCompleteConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}

	// Room palette
	WallFill   = color.RGBA{R: 52, G: 56, B: 70, A: 255}
	FloorFill  = color.RGBA{R: 28, G: 30, B: 38, A: 255}
	CrateFill  = color.RGBA{R: 168, G: 126, B: 74, A: 255}
	GlassFill  = color.RGBA{R: 150, G: 210, B: 235, A: 220}
	BrassFill  = color.RGBA{R: 205, G: 150, B: 60, A: 255}
	SilverFill = color.RGBA{R: 192, G: 198, B: 208, A: 255}
	SteelFill  = color.RGBA{R: 172, G: 64, B: 52, A: 255}
	ChestFill  = color.RGBA{R: 196, G: 158, B: 62, A: 255}
	ChestOpen  = color.RGBA{R: 120, G: 190, B: 110, A: 255}
	ShardFill  = color.RGBA{R: 190, G: 225, B: 240, A: 235}
	OutlineCol = color.RGBA{R: 12, G: 12, B: 16, A: 255}

	// Placement feedback tints
	InvalidTint = color.RGBA{R: 255, G: 70, B: 70, A: 255}
	MergeTint   = color.RGBA{R: 90, G: 255, B: 120, A: 255}
	DragTint    = color.RGBA{R: 255, G: 240, B: 170, A: 255}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
	}

	// Physics Config
	Physics = PhysicsConfig{
		GravityY:       900.0,
		Damping:        1.0,
		TimeStep:       1.0 / 60.0,
		Iterations:     10,
		WallElasticity: 0.2,
		WallFriction:   0.9,
		MaxBodySpeed:   1400.0,
	}

	// Item Config
	Item = ItemConfig{
		Mass:       1.0,
		Elasticity: 0.15,
		Friction:   0.8,
		Size:       36.0,
	}

	// Drag Config
	Drag = DragConfig{
		PickRadius:    6.0,
		FollowRate:    18.0, // Held items close most of the cursor gap within a few frames
		MaxThrowSpeed: 900.0,
	}

	// Fragility Config
	Fragility = FragilityConfig{
		ImpactThreshold: 420.0, // Roughly a 1kg item dropped from 100px
		CrushThreshold:  40.0,
		ForceWindow:     0.25,
		Strength:        1,
	}

	// Shard Config
	Shard = ShardConfig{
		BaseCount:   4,
		PerStrength: 2,
		MaxCount:    12,
		MinSpeed:    60.0,
		MaxSpeed:    220.0,
		MinRadius:   2.5,
		MaxRadius:   5.5,
		Mass:        0.08,
		Elasticity:  0.35,
		Friction:    0.6,
		MaxSpin:     9.0,
	}

	// Chest Config
	Chest = ChestConfig{
		Elasticity:    0.05,
		Friction:      0.95,
		OpenPulseMax:  1.22,
		PulseDuration: 0.35,
	}

	// Placement Config
	Placement = PlacementConfig{
		OverlapSlop: 0.5,
		BobAmount:   3.0,
		BobDuration: 1.2,
	}

	// Screen Shake Config
	ScreenShake = ScreenShakeConfig{
		BreakIntensity: 3.5,
		BreakDuration:  10,
		OpenIntensity:  2.0,
		OpenDuration:   6,
	}

	// HUD Config
	HUD = HUDConfig{
		Margin:       10.0,
		TextColor:    White,
		DimTextColor: color.RGBA{R: 170, G: 175, B: 190, A: 255},
	}

	// Pause Config
	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		MenuItemHeight:    30,
		MenuItemGap:       15,
		MenuOptions:       []string{"Resume", "Restart Room", "Exit to Menu"},
	}

	// Room Complete Config
	RoomComplete = RoomCompleteConfig{
		OverlayColor: BlackOverlay,
		TitleColor:   BrightGreen,
		TextColor:    White,
		TitleY:       150,
		MessageY:     210,
		HintY:        380,
		Title:        "Room Cleared!",
		ContinueHint: "Press ENTER for the next room",
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu:  false,
		Room:      "",
		ShowDebug: false,
	}
}
