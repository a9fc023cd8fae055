package factory

import (
	"github.com/automoto/bunnyhop/archetypes"
	"github.com/automoto/bunnyhop/components"
	cfg "github.com/automoto/bunnyhop/config"
	"github.com/automoto/bunnyhop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCarrot adds a new, inactive member to the carrot pool. Its object is
// built but stays out of the space until the carrot is activated.
func CreateCarrot(ecs *ecs.ECS) *donburi.Entry {
	carrot := archetypes.Carrot.Spawn(ecs)

	sprite := components.SpriteData{
		Key:   cfg.ImageCarrot,
		Scale: cfg.Carrot.Scale,
	}
	components.Sprite.SetValue(carrot, sprite)

	w, h := sprite.DisplayWidth(), sprite.DisplayHeight()
	components.Body.SetValue(carrot, components.BodyData{
		Width:          w,
		Height:         h,
		AllowGravity:   true,
		CheckCollision: components.AllSides(),
	})

	space := spaceOf(ecs)
	newBodyObject(carrot, space, components.TransformData{}, w, h, tags.ResolvCarrot)

	return carrot
}
