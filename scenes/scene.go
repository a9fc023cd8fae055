package scenes

import (
	"image/color"

	"github.com/automoto/bunnyhop/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// titleDrop animates a screen title falling into place.
type titleDrop struct {
	tween  *gween.Tween
	offset float32
	done   bool
}

func newTitleDrop(style config.ScreenConfig) *titleDrop {
	return &titleDrop{
		tween:  gween.New(-style.DropDistance, 0, style.DropDuration, ease.OutBounce),
		offset: -style.DropDistance,
	}
}

func (d *titleDrop) Update() {
	if d.done {
		return
	}
	d.offset, d.done = d.tween.Update(float32(config.StepSeconds()))
}

// Draw renders title centred horizontally with its top at y plus the drop offset.
func (d *titleDrop) Draw(screen *ebiten.Image, title string, face text.Face, clr color.RGBA, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(config.C.Width)/2, y+float64(d.offset))
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(screen, title, face, op)
}
