package systems

import (
	"math"

	"github.com/automoto/bunnyhop/components"
	cfg "github.com/automoto/bunnyhop/config"
	"github.com/automoto/bunnyhop/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RegisterContact appends a contact rule to the world's registry. Rules run
// in registration order every frame.
func RegisterContact(e *ecs.ECS, rule components.ContactRule) {
	entry, ok := components.Contacts.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Contacts))
	}
	contacts := components.Contacts.Get(entry)
	contacts.Rules = append(contacts.Rules, rule)
}

// RegisterRunContacts installs the three rules of a run: platforms carry the
// player and the carrots, and touching a carrot collects it.
func RegisterRunContacts(e *ecs.ECS) {
	RegisterContact(e, components.ContactRule{
		A:    tags.ResolvPlatform,
		B:    tags.ResolvPlayer,
		Kind: components.ContactCollide,
	})
	RegisterContact(e, components.ContactRule{
		A:    tags.ResolvPlatform,
		B:    tags.ResolvCarrot,
		Kind: components.ContactCollide,
	})
	RegisterContact(e, components.ContactRule{
		A:       tags.ResolvPlayer,
		B:       tags.ResolvCarrot,
		Kind:    components.ContactOverlap,
		Handler: CollectCarrot,
	})
}

// UpdateContacts re-anchors the collision space on the camera, resyncs every
// enabled body and then runs the registered rules.
func UpdateContacts(e *ecs.ECS) {
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	anchorSpace(e, space)

	contactsEntry, ok := components.Contacts.First(e.World)
	if !ok {
		return
	}
	for _, rule := range components.Contacts.Get(contactsEntry).Rules {
		switch rule.Kind {
		case components.ContactCollide:
			collide(e, space, rule)
		case components.ContactOverlap:
			overlap(e, rule)
		}
	}
}

// anchorSpace moves the space origin so the grid covers the camera view plus
// the margin, then moves every object to match.
func anchorSpace(e *ecs.ECS, space *components.SpaceData) {
	scrollY := 0.0
	if cam, ok := components.Camera.First(e.World); ok {
		scrollY = components.Camera.Get(cam).ScrollY
	}
	space.OriginX = -cfg.Space.Margin
	space.OriginY = scrollY - cfg.Space.Margin

	components.Object.Each(e.World, func(entry *donburi.Entry) {
		if !components.Body.Get(entry).Enabled {
			return
		}
		syncObject(space, entry)
	})
}

// syncObject places an entry's resolv object on its transform and body size.
func syncObject(space *components.SpaceData, entry *donburi.Entry) {
	obj := components.Object.Get(entry)
	t := components.Transform.Get(entry)
	body := components.Body.Get(entry)

	obj.W = body.Width
	obj.H = body.Height
	obj.X = t.X - body.Width/2 - space.OriginX
	obj.Y = t.Y - body.Height/2 - space.OriginY
	obj.Update()
}

// syncBody resyncs one entry's object against the current space.
func syncBody(e *ecs.ECS, entry *donburi.Entry) {
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	syncObject(components.Space.Get(spaceEntry), entry)
}

// enableBody turns physics on for entry and puts its object in the space.
func enableBody(e *ecs.ECS, entry *donburi.Entry) {
	body := components.Body.Get(entry)
	body.Enabled = true

	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	obj := components.Object.Get(entry)
	if obj.Space == nil {
		space.Add(obj.Object)
	}
	syncObject(space, entry)
}

// disableBody turns physics off for entry and takes its object out of the space.
func disableBody(e *ecs.ECS, entry *donburi.Entry) {
	body := components.Body.Get(entry)
	body.Enabled = false
	body.Velocity.X, body.Velocity.Y = 0, 0
	body.TouchingDown = false

	obj := components.Object.Get(entry)
	if obj.Space != nil {
		obj.Space.Remove(obj.Object)
	}
}

// collide lands falling B bodies on top of A bodies. A body only lands when
// its lower side checks collisions and it was above the surface last frame.
func collide(e *ecs.ECS, space *components.SpaceData, rule components.ContactRule) {
	components.Object.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		if !obj.HasTags(rule.B) {
			return
		}
		body := components.Body.Get(entry)
		if !body.Enabled || body.Static || !body.CheckCollision.Down || body.Velocity.Y < 0 {
			return
		}

		check := obj.Check(0, 0, rule.A)
		if check == nil {
			return
		}

		t := components.Transform.Get(entry)
		for _, other := range check.ObjectsByTags(rule.A) {
			otherEntry, ok := other.Data.(*donburi.Entry)
			if !ok || !otherEntry.Valid() {
				continue
			}
			otherBody := components.Body.Get(otherEntry)
			if !otherBody.Enabled || !overlaps(entry, otherEntry) {
				continue
			}

			top := components.Transform.Get(otherEntry).Y - otherBody.Height/2
			if body.Bottom(body.PrevY) > top+cfg.Physics.LandingTolerance {
				continue
			}

			t.Y = top - body.Height/2
			body.Velocity.Y = 0
			body.TouchingDown = true
			syncObject(space, entry)

			if rule.Handler != nil {
				rule.Handler(e, otherEntry, entry)
			}
			return
		}
	})
}

// overlap reports every overlapping, enabled (A, B) pair to the rule's handler.
func overlap(e *ecs.ECS, rule components.ContactRule) {
	if rule.Handler == nil {
		return
	}

	type pair struct{ a, b *donburi.Entry }
	var pairs []pair

	components.Object.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		if !obj.HasTags(rule.A) || !components.Body.Get(entry).Enabled {
			return
		}
		check := obj.Check(0, 0, rule.B)
		if check == nil {
			return
		}
		for _, other := range uniqueObjects(check.ObjectsByTags(rule.B)) {
			otherEntry, ok := other.Data.(*donburi.Entry)
			if !ok || !otherEntry.Valid() {
				continue
			}
			if components.Body.Get(otherEntry).Enabled && overlaps(entry, otherEntry) {
				pairs = append(pairs, pair{entry, otherEntry})
			}
		}
	})

	// Handlers may change the world, so they run after the scan.
	for _, p := range pairs {
		if !components.Body.Get(p.a).Enabled || !components.Body.Get(p.b).Enabled {
			continue
		}
		rule.Handler(e, p.a, p.b)
	}
}

// overlaps tests the world-space bounds of two bodies. Touching edges do not count.
func overlaps(a, b *donburi.Entry) bool {
	ta, ba := components.Transform.Get(a), components.Body.Get(a)
	tb, bb := components.Transform.Get(b), components.Body.Get(b)
	return math.Abs(ta.X-tb.X) < (ba.Width+bb.Width)/2 &&
		math.Abs(ta.Y-tb.Y) < (ba.Height+bb.Height)/2
}

func uniqueObjects(objs []*resolv.Object) []*resolv.Object {
	seen := make(map[*resolv.Object]struct{}, len(objs))
	out := objs[:0:0]
	for _, o := range objs {
		if _, ok := seen[o]; ok {
			continue
		}
		seen[o] = struct{}{}
		out = append(out, o)
	}
	return out
}
