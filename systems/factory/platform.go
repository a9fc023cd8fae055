package factory

import (
	"math/rand/v2"

	"github.com/automoto/bunnyhop/archetypes"
	"github.com/automoto/bunnyhop/components"
	cfg "github.com/automoto/bunnyhop/config"
	"github.com/automoto/bunnyhop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlatform spawns a static platform centred on (x, y) with its body
// matching the scaled image.
func CreatePlatform(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)

	sprite := components.SpriteData{
		Key:     cfg.ImagePlatform,
		Scale:   cfg.Platform.Scale,
		Visible: true,
	}
	components.Sprite.SetValue(platform, sprite)

	t := components.TransformData{X: x, Y: y}
	components.Transform.SetValue(platform, t)

	w, h := sprite.DisplayWidth(), sprite.DisplayHeight()
	components.Body.SetValue(platform, components.BodyData{
		Width:   w,
		Height:  h,
		Static:  true,
		Enabled: true,
		PrevY:   y,
	})

	space := spaceOf(ecs)
	space.Add(newBodyObject(platform, space, t, w, h, tags.ResolvPlatform))

	return platform
}

// CreatePlatforms lays out count platforms, one per band of bandHeight
// starting at y = 0, each at a random x in [minX, maxX].
func CreatePlatforms(ecs *ecs.ECS, rng *rand.Rand, count int, bandHeight float64, minX, maxX int) []*donburi.Entry {
	platforms := make([]*donburi.Entry, 0, count)
	for i := 0; i < count; i++ {
		x := float64(RandomIntBetween(rng, minX, maxX))
		y := bandHeight * float64(i)
		platforms = append(platforms, CreatePlatform(ecs, x, y))
	}
	return platforms
}

// RandomIntBetween returns a random integer in [lo, hi].
func RandomIntBetween(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.IntN(hi-lo+1)
}
