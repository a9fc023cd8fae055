package systems

import (
	"github.com/automoto/bunnyhop/components"
	cfg "github.com/automoto/bunnyhop/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var bodies = donburi.NewQuery(filter.Contains(components.Transform, components.Body))

// UpdatePhysics advances every enabled dynamic body by one fixed step.
// Contacts are cleared here and set again by UpdateContacts.
func UpdatePhysics(ecs *ecs.ECS) {
	dt := cfg.StepSeconds()

	bodies.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		body.TouchingDown = false
		if !body.Enabled || body.Static {
			return
		}

		t := components.Transform.Get(e)
		body.PrevY = t.Y

		if body.AllowGravity {
			body.Velocity.Y += cfg.Physics.Gravity * dt
		}
		t.X += body.Velocity.X * dt
		t.Y += body.Velocity.Y * dt
	})
}
