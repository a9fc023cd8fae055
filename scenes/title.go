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

// TitleScene displays the start screen
type TitleScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	ui           *ui.ScreenUI
	drop         *titleDrop
	once         sync.Once
	started      bool
}

// NewTitleScene creates a new title scene
func NewTitleScene(sc SceneChanger) *TitleScene {
	return &TitleScene{sceneChanger: sc}
}

func (ts *TitleScene) Update() {
	ts.once.Do(ts.configure)
	ts.ecs.Update()
	ts.ui.Update()
	ts.drop.Update()

	if ts.drop.done && systems.GetAction(systems.GetInput(ts.ecs), cfg.ActionConfirm).JustPressed {
		ts.start()
	}
}

func (ts *TitleScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ts.ecs == nil {
		return
	}
	ts.ecs.Draw(screen)
	ts.ui.Draw(screen)
	ts.drop.Draw(screen, cfg.Title.Title, ts.ui.TitleFace(), cfg.Title.TitleColor, 150)
}

func (ts *TitleScene) start() {
	if ts.started {
		return
	}
	ts.started = true
	ts.sceneChanger.ChangeScene(NewGameScene(ts.sceneChanger))
}

func (ts *TitleScene) configure() {
	ts.ecs = ecs.NewECS(donburi.NewWorld())

	ts.ecs.AddSystem(systems.UpdateInput)
	ts.ecs.AddSystem(systems.UpdateSettings)
	ts.ecs.AddSystem(systems.UpdateAudio)

	ts.ui = ui.NewTitleUI(systems.LoadBestScore(), ts.start)
	ts.drop = newTitleDrop(cfg.Title)
}
