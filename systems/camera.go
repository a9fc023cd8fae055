package systems

import (
	"github.com/automoto/bunnyhop/components"
	"github.com/automoto/bunnyhop/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera scrolls the view so its target stays inside the dead-zone, a
// rectangle centred on the view. The view moves only as far as needed to put
// the target back on the dead-zone edge.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	if camera.Target == nil || !camera.Target.Valid() {
		return
	}
	target := components.Transform.Get(camera.Target)

	camera.ScrollX = followAxis(camera.ScrollX, target.X, float64(config.C.Width), camera.DeadZoneW)
	camera.ScrollY = followAxis(camera.ScrollY, target.Y, float64(config.C.Height), camera.DeadZoneH)
}

func followAxis(scroll, target, viewSize, deadZone float64) float64 {
	low := scroll + (viewSize-deadZone)/2
	high := low + deadZone
	switch {
	case target < low:
		return scroll + target - low
	case target > high:
		return scroll + target - high
	}
	return scroll
}
