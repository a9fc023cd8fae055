package ui

import (
	"image/color"

	cfg "github.com/automoto/bunnyhop/config"
	"github.com/automoto/bunnyhop/fonts"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// titleAreaHeight is the space kept free above the content for the title,
// which the scene draws itself so it can animate it.
const titleAreaHeight = 140

// ScreenUI is a full-screen panel with a few text lines and one button.
// The title and game over screens are both built from it.
type ScreenUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnConfirm func()

	lines []*widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func newScreenUI(style cfg.ScreenConfig, lines []string, buttonText string, onConfirm func()) *ScreenUI {
	s := &ScreenUI{
		OnConfirm:  onConfirm,
		titleFace:  fonts.UIFace(44),
		normalFace: fonts.UIFace(22),
		smallFace:  fonts.UIFace(16),
	}
	s.buildUI(style, lines, buttonText)
	return s
}

func (s *ScreenUI) buildUI(style cfg.ScreenConfig, lines []string, buttonText string) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(style.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	// Room for the animated title
	contentContainer.AddChild(widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.MinSize(1, titleAreaHeight)),
	))

	for _, line := range lines {
		label := widget.NewLabel(
			widget.LabelOpts.Text(line, &s.normalFace, &widget.LabelColor{
				Idle: style.TextColor,
			}),
			widget.LabelOpts.TextOpts(widget.TextOpts.WidgetOpts(
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
			)),
		)
		s.lines = append(s.lines, label)
		contentContainer.AddChild(label)
	}

	button := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(200, 44),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
		),
		widget.ButtonOpts.Image(buttonImage(style)),
		widget.ButtonOpts.Text(buttonText, &s.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if s.OnConfirm != nil {
				s.OnConfirm()
			}
		}),
	)
	contentContainer.AddChild(button)

	hint := widget.NewLabel(
		widget.LabelOpts.Text(style.Hint, &s.smallFace, &widget.LabelColor{
			Idle: color.RGBA{180, 180, 180, 255},
		}),
		widget.LabelOpts.TextOpts(widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
		)),
	)
	contentContainer.AddChild(hint)

	rootContainer.AddChild(contentContainer)

	s.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func buttonImage(style cfg.ScreenConfig) *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(style.ButtonIdle),
		Hover:   image.NewNineSliceColor(style.ButtonHover),
		Pressed: image.NewNineSliceColor(style.ButtonPressed),
	}
}

// TitleFace is the face the scene draws the title with.
func (s *ScreenUI) TitleFace() text.Face {
	return s.titleFace
}

func (s *ScreenUI) Update() {
	s.UI.Update()
}

func (s *ScreenUI) Draw(screen *ebiten.Image) {
	s.UI.Draw(screen)
}
