package components

import (
	cfg "github.com/automoto/bunnyhop/config"
	"github.com/yohamta/donburi"
)

type SpriteData struct {
	Key     cfg.ImageKey
	Scale   float64
	Visible bool
}

// DisplayWidth is the on-screen width of the current image after scaling.
func (s *SpriteData) DisplayWidth() float64 {
	return cfg.Images[s.Key].Width * s.Scale
}

// DisplayHeight is the on-screen height of the current image after scaling.
func (s *SpriteData) DisplayHeight() float64 {
	return cfg.Images[s.Key].Height * s.Scale
}

var Sprite = donburi.NewComponentType[SpriteData]()
