package config

import "image/color"

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement (units per second)
	JumpSpeed  float64
	SteerSpeed float64

	// Spawn point used when the layout map does not define one
	SpawnX float64
	SpawnY float64

	Scale float64
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity float64 // units per second squared

	// Tolerance used when deciding whether a falling body came from above a platform
	LandingTolerance float64
}

// PlatformConfig contains platform pool configuration values
type PlatformConfig struct {
	Count      int
	Scale      float64
	BandHeight float64 // vertical spacing between platforms at setup
	MinX       int     // inclusive range for the random horizontal position
	MaxX       int

	// Recycled platforms are placed this far above the current scroll position
	RespawnMinOffset int
	RespawnMaxOffset int
}

// CarrotConfig contains collectible configuration values
type CarrotConfig struct {
	Scale float64
}

// RunConfig contains the thresholds that drive recycling and the fail condition
type RunConfig struct {
	RecycleDistance float64 // below scrollY by this much, an entity is off-screen
	FailMargin      float64 // distance below the bottom-most platform that ends the run
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	DeadZoneWidthRatio float64 // dead-zone width as a multiple of the viewport width
	DeadZoneHeight     float64
}

// SpaceConfig sizes the camera-anchored collision space
type SpaceConfig struct {
	Margin   float64 // extra room around the viewport on every side
	CellSize int
}

// HUDConfig contains score label configuration values
type HUDConfig struct {
	LabelX        float64 // screen position, label anchored at its top centre
	LabelY        float64
	LabelColor    color.RGBA
	LabelFormat   string
	PulseScale    float32 // label scale right after a collection
	PulseDuration float32 // seconds
}

// ScreenConfig contains title and game over screen configuration values
type ScreenConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
	ButtonIdle      color.RGBA
	ButtonHover     color.RGBA
	ButtonPressed   color.RGBA
	Title           string
	Hint            string
	DropDistance    float32 // title drop-in distance in pixels
	DropDuration    float32 // seconds
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipTitle bool   // Skip the title screen and start a run directly
	Overlay   bool   // Draw collision objects and scroll position
	Seed      uint64 // 0 = seed from the clock
	Muted     bool
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Platform PlatformConfig
var Carrot CarrotConfig
var Run RunConfig
var Camera CameraConfig
var Space SpaceConfig
var HUD HUDConfig
var Title ScreenConfig
var GameOver ScreenConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	SkyBlue      = color.RGBA{R: 120, G: 190, B: 235, A: 255}
	Grass        = color.RGBA{R: 80, G: 160, B: 60, A: 255}
	DarkGrass    = color.RGBA{R: 50, G: 110, B: 40, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Blue         = color.RGBA{R: 0, G: 0, B: 255, A: 255}
)

func init() {
	C = &Config{
		Width:  480,
		Height: 640,
		TPS:    60,
	}

	Physics = PhysicsConfig{
		Gravity:          200,
		LandingTolerance: 4,
	}

	Player = PlayerConfig{
		JumpSpeed:  300,
		SteerSpeed: 200,
		SpawnX:     240,
		SpawnY:     320,
		Scale:      0.5,
	}

	Platform = PlatformConfig{
		Count:            5,
		Scale:            0.5,
		BandHeight:       150,
		MinX:             80,
		MaxX:             480,
		RespawnMinOffset: 51, // strictly above scrollY-50
		RespawnMaxOffset: 100,
	}

	Carrot = CarrotConfig{
		Scale: 0.5,
	}

	Run = RunConfig{
		RecycleDistance: 700,
		FailMargin:      200,
	}

	Camera = CameraConfig{
		DeadZoneWidthRatio: 1.5,
		DeadZoneHeight:     0,
	}

	Space = SpaceConfig{
		Margin:   256,
		CellSize: 32,
	}

	HUD = HUDConfig{
		LabelX:        240,
		LabelY:        10,
		LabelColor:    Black,
		LabelFormat:   "Carrots: %d",
		PulseScale:    1.3,
		PulseDuration: 0.25,
	}

	Title = ScreenConfig{
		BackgroundColor: color.RGBA{R: 20, G: 60, B: 90, A: 255},
		TitleColor:      Orange,
		TextColor:       White,
		ButtonIdle:      color.RGBA{R: 60, G: 60, B: 80, A: 255},
		ButtonHover:     color.RGBA{R: 80, G: 80, B: 100, A: 255},
		ButtonPressed:   color.RGBA{R: 40, G: 40, B: 60, A: 255},
		Title:           "Bunny Hop",
		Hint:            "Press SPACE to start",
		DropDistance:    120,
		DropDuration:    0.6,
	}

	GameOver = ScreenConfig{
		BackgroundColor: color.RGBA{R: 40, G: 10, B: 10, A: 255},
		TitleColor:      LightRed,
		TextColor:       White,
		ButtonIdle:      color.RGBA{R: 60, G: 60, B: 80, A: 255},
		ButtonHover:     color.RGBA{R: 80, G: 80, B: 100, A: 255},
		ButtonPressed:   color.RGBA{R: 40, G: 40, B: 60, A: 255},
		Title:           "Game Over",
		Hint:            "Press SPACE to play again",
		DropDistance:    80,
		DropDuration:    0.4,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{}
}

// StepSeconds is the fixed simulation step.
func StepSeconds() float64 {
	return 1 / float64(C.TPS)
}
