package systems

import (
	"github.com/automoto/bunnyhop/components"
	cfg "github.com/automoto/bunnyhop/config"
	"github.com/automoto/bunnyhop/systems/factory"
	"github.com/automoto/bunnyhop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlatforms moves every platform that dropped out below the view back
// up to just above it, and puts a carrot on it.
func UpdatePlatforms(ecs *ecs.ECS) {
	scrollY := getScrollY(ecs)
	run := GetRun(ecs)

	var recycled []*donburi.Entry
	tags.Platform.Each(ecs.World, func(e *donburi.Entry) {
		if components.Transform.Get(e).Y >= scrollY+cfg.Run.RecycleDistance {
			recycled = append(recycled, e)
		}
	})

	for _, platform := range recycled {
		offset := factory.RandomIntBetween(run.Rand, cfg.Platform.RespawnMinOffset, cfg.Platform.RespawnMaxOffset)
		t := components.Transform.Get(platform)
		t.Y = scrollY - float64(offset)
		components.Body.Get(platform).PrevY = t.Y
		syncBody(ecs, platform)

		SpawnCarrotAbove(ecs, platform)
	}
}

// BottomMostPlatform returns the platform with the largest y. On a tie the
// one visited last wins. It returns nil when there are no platforms.
func BottomMostPlatform(world donburi.World) *donburi.Entry {
	var bottom *donburi.Entry
	largestY := 0.0
	tags.Platform.Each(world, func(e *donburi.Entry) {
		y := components.Transform.Get(e).Y
		if bottom == nil || y >= largestY {
			bottom = e
			largestY = y
		}
	})
	return bottom
}
