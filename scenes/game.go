package scenes

import (
	"image/color"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/automoto/bunnyhop/assets"
	cfg "github.com/automoto/bunnyhop/config"
	"github.com/automoto/bunnyhop/systems"
	"github.com/automoto/bunnyhop/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameScene runs one attempt from the start layout until the bunny falls.
type GameScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewGameScene creates a new run
func NewGameScene(sc SceneChanger) *GameScene {
	return &GameScene{sceneChanger: sc}
}

func (gs *GameScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()

	if systems.IsRunOver(gs.ecs) {
		score := systems.GetScore(gs.ecs)
		best, isNew := systems.RecordScore(score)
		gs.sceneChanger.ChangeScene(NewGameOverScene(gs.sceneChanger, score, best, isNew))
	}
}

func (gs *GameScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameScene) configure() {
	// Preload assets to avoid lag on first use
	systems.PreloadAllSFX()
	assets.PreloadAllImages()

	ecs := ecs.NewECS(donburi.NewWorld())

	// Engine passes
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdatePhysics)
	ecs.AddSystem(systems.UpdateContacts)

	// Run logic, order matters
	ecs.AddSystem(systems.UpdatePlatforms)
	ecs.AddSystem(systems.UpdateCarrots)
	ecs.AddSystem(systems.UpdateJump)
	ecs.AddSystem(systems.UpdateLanding)
	ecs.AddSystem(systems.UpdateSteering)
	ecs.AddSystem(systems.UpdateWrap)
	ecs.AddSystem(systems.UpdateFall)

	// Pre-render
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdateScoreLabel)
	ecs.AddSystem(systems.UpdateAudio)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	ecs.AddRenderer(cfg.Default, systems.DrawSprites)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	gs.ecs = ecs

	defaults := factory.DefaultLayout()
	layout, err := assets.LoadLayout(assets.LayoutPath, defaults)
	if err != nil {
		log.Warn("could not load layout, using defaults", "path", assets.LayoutPath, "error", err)
		layout = &defaults
	}
	if err := cfg.Tuned.ApplyToLayout(layout); err != nil {
		log.Warn("ignoring tuned platform range", "error", err)
	}

	seed := cfg.Debug.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Debug("starting run", "seed", seed, "platforms", layout.PlatformCount)

	factory.CreateRun(gs.ecs, layout, rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
	systems.RegisterRunContacts(gs.ecs)
}
