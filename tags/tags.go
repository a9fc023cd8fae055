package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Platform = donburi.NewTag().SetName("Platform")
	Carrot   = donburi.NewTag().SetName("Carrot")
)

// Resolv tags for physics collision
const (
	ResolvPlayer   = "player"
	ResolvPlatform = "platform"
	ResolvCarrot   = "carrot"
)
