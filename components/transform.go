package components

import "github.com/yohamta/donburi"

// TransformData is the world position of an entity's centre.
type TransformData struct {
	X, Y float64
}

var Transform = donburi.NewComponentType[TransformData]()
