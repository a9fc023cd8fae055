package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type ScoreData struct {
	Carrots    int
	Label      string
	LabelScale float64
	Pulse      *gween.Tween // nil when the label is at rest
}

var Score = donburi.NewComponentType[ScoreData]()
