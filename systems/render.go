package systems

import (
	"github.com/automoto/bunnyhop/assets"
	"github.com/automoto/bunnyhop/components"
	cfg "github.com/automoto/bunnyhop/config"
	"github.com/automoto/bunnyhop/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// DrawBackground draws the sky fixed vertically. It only follows the camera
// horizontally.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	scrollX := 0.0
	if entry, ok := components.Camera.First(ecs.World); ok {
		scrollX = components.Camera.Get(entry).ScrollX
	}

	bg := assets.GetImage(cfg.ImageBackground)
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(-scrollX, 0)
	screen.DrawImage(bg, drawOp)
}

// DrawSprites draws platforms, then carrots, then the player, relative to the camera.
func DrawSprites(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	draw := func(e *donburi.Entry) {
		sprite := components.Sprite.Get(e)
		if !sprite.Visible {
			return
		}
		t := components.Transform.Get(e)
		w, h := sprite.DisplayWidth(), sprite.DisplayHeight()
		x := t.X - w/2 - camera.ScrollX
		y := t.Y - h/2 - camera.ScrollY

		// Viewport culling
		if x+w < 0 || x > width || y+h < 0 || y > height {
			return
		}

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Scale(sprite.Scale, sprite.Scale)
		drawOp.GeoM.Translate(x, y)
		screen.DrawImage(assets.GetImage(sprite.Key), drawOp)
	}

	tags.Platform.Each(ecs.World, draw)
	tags.Carrot.Each(ecs.World, draw)
	tags.Player.Each(ecs.World, draw)
}
