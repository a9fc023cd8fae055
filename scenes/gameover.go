package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/bunnyhop/config"
	"github.com/automoto/bunnyhop/systems"
	"github.com/automoto/bunnyhop/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameOverScene displays the result of the run that just ended
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	ui           *ui.ScreenUI
	drop         *titleDrop
	once         sync.Once
	restarted    bool

	score     int
	best      int
	isNewBest bool
}

// NewGameOverScene creates a new game over scene
func NewGameOverScene(sc SceneChanger, score, best int, isNewBest bool) *GameOverScene {
	return &GameOverScene{
		sceneChanger: sc,
		score:        score,
		best:         best,
		isNewBest:    isNewBest,
	}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
	gs.ui.Update()
	gs.drop.Update()

	// Input is ignored until the title has landed so a held key does not
	// skip the screen.
	if gs.drop.done && systems.GetAction(systems.GetInput(gs.ecs), cfg.ActionConfirm).JustPressed {
		gs.restart()
	}
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
	gs.ui.Draw(screen)
	gs.drop.Draw(screen, cfg.GameOver.Title, gs.ui.TitleFace(), cfg.GameOver.TitleColor, 150)
}

func (gs *GameOverScene) restart() {
	if gs.restarted {
		return
	}
	gs.restarted = true
	gs.sceneChanger.ChangeScene(NewGameScene(gs.sceneChanger))
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())

	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.UpdateSettings)
	gs.ecs.AddSystem(systems.UpdateAudio)

	gs.ui = ui.NewGameOverUI(gs.score, gs.best, gs.isNewBest, gs.restart)
	gs.drop = newTitleDrop(cfg.GameOver)
}
