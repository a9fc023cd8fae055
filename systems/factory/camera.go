package factory

import (
	"github.com/automoto/bunnyhop/archetypes"
	"github.com/automoto/bunnyhop/components"
	cfg "github.com/automoto/bunnyhop/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera creates a camera following target. The view starts centred on
// the target vertically and at the left edge of the world horizontally.
func CreateCamera(ecs *ecs.ECS, target *donburi.Entry) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	scrollY := 0.0
	if target != nil {
		scrollY = components.Transform.Get(target).Y - float64(cfg.C.Height)/2
	}
	components.Camera.SetValue(camera, components.CameraData{
		ScrollY:   scrollY,
		DeadZoneW: float64(cfg.C.Width) * cfg.Camera.DeadZoneWidthRatio,
		DeadZoneH: cfg.Camera.DeadZoneHeight,
		Target:    target,
	})
	return camera
}
