package factory

import (
	"math/rand/v2"

	"github.com/automoto/bunnyhop/archetypes"
	"github.com/automoto/bunnyhop/components"
	cfg "github.com/automoto/bunnyhop/config"
	"github.com/automoto/bunnyhop/levels"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DefaultLayout is the start layout used when no map is available. It is
// also the fallback for any property the map leaves out.
func DefaultLayout() levels.Layout {
	return levels.Layout{
		Spawn:         levels.SpawnPoint{X: cfg.Player.SpawnX, Y: cfg.Player.SpawnY},
		PlatformCount: cfg.Platform.Count,
		BandHeight:    cfg.Platform.BandHeight,
		PlatformMinX:  cfg.Platform.MinX,
		PlatformMaxX:  cfg.Platform.MaxX,
	}
}

// CreateRun builds the start state of a run: collision space, run state,
// score, player, platform pool and camera. The carrot pool starts empty.
// Contact rules are registered separately by the caller. It returns the
// player entry.
func CreateRun(ecs *ecs.ECS, layout *levels.Layout, rng *rand.Rand) *donburi.Entry {
	if layout == nil {
		l := DefaultLayout()
		layout = &l
	}

	CreateSpace(ecs, cfg.C.Width, cfg.C.Height, cfg.Space.Margin, cfg.Space.CellSize)

	run := archetypes.Run.Spawn(ecs)
	components.Run.SetValue(run, components.RunData{Rand: rng})
	components.Contacts.SetValue(run, components.ContactsData{})

	CreateScore(ecs)
	player := CreatePlayer(ecs, layout.Spawn.X, layout.Spawn.Y)
	CreatePlatforms(ecs, rng, layout.PlatformCount, layout.BandHeight, layout.PlatformMinX, layout.PlatformMaxX)
	CreateCamera(ecs, player)

	return player
}
