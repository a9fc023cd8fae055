package systems

import (
	"github.com/automoto/bunnyhop/components"
	cfg "github.com/automoto/bunnyhop/config"
	"github.com/automoto/bunnyhop/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/yohamta/donburi/ecs"
)

var hudDrawOp = &ebiten.DrawImageOptions{}

// DrawHUD renders the carrot counter fixed to the screen, anchored at its top centre.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Score.First(ecs.World)
	if !ok {
		return
	}
	score := components.Score.Get(entry)

	face := fonts.HUD.Get()
	bounds := text.BoundString(face, score.Label)

	hudDrawOp.GeoM.Reset()
	hudDrawOp.ColorScale.Reset()
	hudDrawOp.GeoM.Translate(-float64(bounds.Min.X)-float64(bounds.Dx())/2, -float64(bounds.Min.Y))
	hudDrawOp.GeoM.Scale(score.LabelScale, score.LabelScale)
	hudDrawOp.GeoM.Translate(cfg.HUD.LabelX, cfg.HUD.LabelY)
	hudDrawOp.ColorScale.ScaleWithColor(cfg.HUD.LabelColor)

	text.DrawWithOptions(screen, score.Label, face, hudDrawOp)
}
