package systems

import (
	"fmt"

	"github.com/automoto/bunnyhop/components"
	cfg "github.com/automoto/bunnyhop/config"
	"github.com/automoto/bunnyhop/systems/factory"
	"github.com/automoto/bunnyhop/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCarrots retires active carrots that dropped out below the view.
// Nothing is scored for them.
func UpdateCarrots(ecs *ecs.ECS) {
	scrollY := getScrollY(ecs)

	var missed []*donburi.Entry
	tags.Carrot.Each(ecs.World, func(e *donburi.Entry) {
		if !components.Carrot.Get(e).Active {
			return
		}
		if components.Transform.Get(e).Y >= scrollY+cfg.Run.RecycleDistance {
			missed = append(missed, e)
		}
	})

	for _, carrot := range missed {
		retireCarrot(ecs, carrot)
	}
}

// SpawnCarrotAbove activates a pooled carrot one platform-height above the
// platform's centre, allocating a new one when every carrot is in use.
func SpawnCarrotAbove(ecs *ecs.ECS, platform *donburi.Entry) *donburi.Entry {
	pt := components.Transform.Get(platform)
	ps := components.Sprite.Get(platform)
	x, y := pt.X, pt.Y-ps.DisplayHeight()

	carrot := firstInactiveCarrot(ecs)
	if carrot == nil {
		carrot = factory.CreateCarrot(ecs)
	}
	activateCarrot(ecs, carrot, x, y)
	return carrot
}

// CollectCarrot is the player/carrot overlap handler. It retires the carrot
// and scores one point. Carrots that are already retired are ignored.
func CollectCarrot(ecs *ecs.ECS, player, carrot *donburi.Entry) {
	if !components.Carrot.Get(carrot).Active {
		return
	}

	components.Body.Get(player).TouchingDown = false
	retireCarrot(ecs, carrot)
	addCarrot(ecs)
}

func firstInactiveCarrot(ecs *ecs.ECS) *donburi.Entry {
	var found *donburi.Entry
	tags.Carrot.Each(ecs.World, func(e *donburi.Entry) {
		if found == nil && !components.Carrot.Get(e).Active {
			found = e
		}
	})
	return found
}

func activateCarrot(ecs *ecs.ECS, carrot *donburi.Entry, x, y float64) {
	components.Carrot.Get(carrot).Active = true

	sprite := components.Sprite.Get(carrot)
	sprite.Visible = true

	t := components.Transform.Get(carrot)
	t.X, t.Y = x, y

	body := components.Body.Get(carrot)
	body.Width = sprite.DisplayWidth()
	body.Height = sprite.DisplayHeight()
	body.Velocity.X, body.Velocity.Y = 0, 0
	body.PrevY = y
	enableBody(ecs, carrot)
}

// retireCarrot hides a carrot and takes it out of physics. Safe to call twice.
func retireCarrot(ecs *ecs.ECS, carrot *donburi.Entry) {
	components.Carrot.Get(carrot).Active = false
	components.Sprite.Get(carrot).Visible = false
	disableBody(ecs, carrot)
}

func addCarrot(ecs *ecs.ECS) {
	entry, ok := components.Score.First(ecs.World)
	if !ok {
		return
	}
	score := components.Score.Get(entry)
	score.Carrots++
	score.Label = fmt.Sprintf(cfg.HUD.LabelFormat, score.Carrots)
	score.Pulse = gween.New(cfg.HUD.PulseScale, 1, cfg.HUD.PulseDuration, ease.OutQuad)
	score.LabelScale = float64(cfg.HUD.PulseScale)
}
