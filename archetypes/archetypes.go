package archetypes

import (
	"github.com/automoto/bunnyhop/components"
	cfg "github.com/automoto/bunnyhop/config"
	"github.com/automoto/bunnyhop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Transform,
		components.Body,
		components.Sprite,
		components.Object,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Transform,
		components.Body,
		components.Sprite,
		components.Object,
	)
	Carrot = newArchetype(
		tags.Carrot,
		components.Carrot,
		components.Transform,
		components.Body,
		components.Sprite,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Score = newArchetype(
		components.Score,
	)
	Run = newArchetype(
		components.Run,
		components.Contacts,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
