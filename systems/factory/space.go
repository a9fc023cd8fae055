package factory

import (
	"github.com/automoto/bunnyhop/archetypes"
	"github.com/automoto/bunnyhop/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace builds a collision grid covering the viewport plus a margin on
// every side. The origin starts at the top-left of that area and is moved by
// the contact pass to follow the camera.
func CreateSpace(ecs *ecs.ECS, viewW, viewH int, margin float64, cellSize int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	width := viewW + 2*int(margin)
	height := viewH + 2*int(margin)
	components.Space.SetValue(space, components.SpaceData{
		Space:   resolv.NewSpace(width, height, cellSize, cellSize),
		OriginX: -margin,
		OriginY: -margin,
	})
	return space
}

// newBodyObject creates a resolv object for a body centred on t, in the
// space's local coordinates, and links it back to its entry.
func newBodyObject(entry *donburi.Entry, space *components.SpaceData, t components.TransformData, w, h float64, tag string) *resolv.Object {
	obj := resolv.NewObject(t.X-w/2-space.OriginX, t.Y-h/2-space.OriginY, w, h, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	return obj
}

func spaceOf(ecs *ecs.ECS) *components.SpaceData {
	entry, ok := components.Space.First(ecs.World)
	if !ok {
		panic("factory: no collision space in world")
	}
	return components.Space.Get(entry)
}
