package factory

import (
	"github.com/automoto/bunnyhop/archetypes"
	"github.com/automoto/bunnyhop/components"
	cfg "github.com/automoto/bunnyhop/config"
	"github.com/automoto/bunnyhop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the bunny centred on (x, y). Only its lower side takes
// part in collisions, so it passes up through platforms and lands on top.
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	components.Player.SetValue(player, components.PlayerData{Pose: components.PoseStanding})
	sprite := components.SpriteData{
		Key:     cfg.ImageBunnyStand,
		Scale:   cfg.Player.Scale,
		Visible: true,
	}
	components.Sprite.SetValue(player, sprite)

	t := components.TransformData{X: x, Y: y}
	components.Transform.SetValue(player, t)

	w, h := sprite.DisplayWidth(), sprite.DisplayHeight()
	components.Body.SetValue(player, components.BodyData{
		Width:          w,
		Height:         h,
		Enabled:        true,
		AllowGravity:   true,
		CheckCollision: components.CollisionSides{Down: true},
		PrevY:          y,
	})

	space := spaceOf(ecs)
	obj := newBodyObject(player, space, t, w, h, tags.ResolvPlayer)
	space.Add(obj)

	return player
}
