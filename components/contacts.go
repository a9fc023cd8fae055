package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ContactKind selects how a contact rule reacts.
type ContactKind int

const (
	// ContactCollide separates the dynamic body from the other one.
	ContactCollide ContactKind = iota
	// ContactOverlap only reports the pair to the handler.
	ContactOverlap
)

// ContactHandler receives both participants in rule order (A, B).
type ContactHandler func(e *ecs.ECS, a, b *donburi.Entry)

// ContactRule pairs two resolv tags with a reaction.
type ContactRule struct {
	A, B    string
	Kind    ContactKind
	Handler ContactHandler
}

type ContactsData struct {
	Rules []ContactRule
}

var Contacts = donburi.NewComponentType[ContactsData]()
