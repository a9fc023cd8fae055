package components

import (
	"github.com/yohamta/donburi"
)

// CameraData is the scroll offset of the view's top-left corner in world space.
type CameraData struct {
	ScrollX   float64
	ScrollY   float64
	DeadZoneW float64
	DeadZoneH float64
	Target    *donburi.Entry
}

var Camera = donburi.NewComponentType[CameraData]()
