package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/bunnyhop/components"
	cfg "github.com/automoto/bunnyhop/config"
	"github.com/automoto/bunnyhop/fonts"
	"github.com/automoto/bunnyhop/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every object in the collision space and prints the
// scroll position and pool state.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetSettings(ecs)
	if !settings.Debug {
		return
	}

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	// Object coordinates are relative to the space origin
	offX := space.OriginX - camera.ScrollX
	offY := space.OriginY - camera.ScrollY

	for _, obj := range space.Objects() {
		x := obj.X + offX
		y := obj.Y + offY

		var c color.RGBA
		switch {
		case obj.HasTags(tags.ResolvPlayer):
			c = cfg.Blue
		case obj.HasTags(tags.ResolvCarrot):
			c = cfg.Orange
		default:
			c = cfg.Cyan
		}

		vector.StrokeRect(screen, float32(x), float32(y), float32(obj.W), float32(obj.H), 1, c, false)
	}

	active, pooled := 0, 0
	tags.Carrot.Each(ecs.World, func(e *donburi.Entry) {
		pooled++
		if components.Carrot.Get(e).Active {
			active++
		}
	})

	info := fmt.Sprintf("scrollY %.1f\ncarrots %d/%d", camera.ScrollY, active, pooled)
	text.Draw(screen, info, fonts.Debug.Get(), 8, cfg.C.Height-24, cfg.Black)
}
