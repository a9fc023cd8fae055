package components

import "github.com/yohamta/donburi"

// CarrotData marks a pooled collectible. Visibility lives on SpriteData and
// physics participation on BodyData; the pool keeps all three in step.
type CarrotData struct {
	Active bool
}

var Carrot = donburi.NewComponentType[CarrotData]()
