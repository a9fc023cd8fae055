package systems

import (
	"github.com/automoto/bunnyhop/components"
	cfg "github.com/automoto/bunnyhop/config"
	"github.com/automoto/bunnyhop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateJump bounces the player off whatever it is standing on.
// TouchingDown is left set for the rest of the frame so steering still sees
// the player as grounded.
func UpdateJump(ecs *ecs.ECS) {
	withPlayer(ecs, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		if !body.TouchingDown {
			return
		}
		body.Velocity.Y = -cfg.Player.JumpSpeed
		setPose(e, components.PoseJumping)
		PlaySFX(ecs, cfg.SoundJump)
	})
}

// UpdateLanding switches back to the standing pose once the player starts falling.
func UpdateLanding(ecs *ecs.ECS) {
	withPlayer(ecs, func(e *donburi.Entry) {
		if components.Body.Get(e).Velocity.Y > 0 && components.Player.Get(e).Pose != components.PoseStanding {
			setPose(e, components.PoseStanding)
		}
	})
}

// UpdateSteering applies horizontal speed while airborne. Left wins over right.
func UpdateSteering(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	left := GetAction(input, cfg.ActionMoveLeft).Pressed
	right := GetAction(input, cfg.ActionMoveRight).Pressed

	withPlayer(ecs, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		airborne := !body.TouchingDown
		switch {
		case left && airborne:
			body.Velocity.X = -cfg.Player.SteerSpeed
		case right && airborne:
			body.Velocity.X = cfg.Player.SteerSpeed
		default:
			body.Velocity.X = 0
		}
	})
}

// UpdateWrap moves the player to the opposite side once it is fully off screen.
func UpdateWrap(ecs *ecs.ECS) {
	width := float64(cfg.C.Width)
	withPlayer(ecs, func(e *donburi.Entry) {
		t := components.Transform.Get(e)
		halfWidth := components.Sprite.Get(e).DisplayWidth() / 2
		if t.X < -halfWidth {
			t.X = width + halfWidth
		} else if t.X > width+halfWidth {
			t.X = -halfWidth
		}
	})
}

func setPose(e *donburi.Entry, pose components.Pose) {
	components.Player.Get(e).Pose = pose
	sprite := components.Sprite.Get(e)
	switch pose {
	case components.PoseJumping:
		sprite.Key = cfg.ImageBunnyJump
	default:
		sprite.Key = cfg.ImageBunnyStand
	}
}

func withPlayer(ecs *ecs.ECS, fn func(e *donburi.Entry)) {
	if e, ok := tags.Player.First(ecs.World); ok {
		fn(e)
	}
}
