package components

import "github.com/yohamta/donburi"

// SettingsData holds toggles that can change during play (singleton component)
type SettingsData struct {
	Debug bool
	Muted bool
}

var Settings = donburi.NewComponentType[SettingsData]()
