package systems

import (
	"github.com/automoto/bunnyhop/components"
	cfg "github.com/automoto/bunnyhop/config"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the in-game toggles: F1 for the debug overlay and
// M for mute. Changes are saved right away.
func UpdateSettings(ecs *ecs.ECS) {
	settings := GetSettings(ecs)
	input := getOrCreateInput(ecs)

	changed := false
	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
		cfg.Debug.Overlay = settings.Debug
		changed = true
		log.Debug("debug overlay", "on", settings.Debug)
	}
	if GetAction(input, cfg.ActionToggleMute).JustPressed {
		settings.Muted = !settings.Muted
		SetMuted(settings.Muted)
		changed = true
		log.Debug("mute", "on", settings.Muted)
	}

	if !changed {
		return
	}
	if err := SaveSettings(&SavedSettings{Muted: settings.Muted, Debug: settings.Debug}); err != nil {
		return
	}
	log.Debug("settings saved")
}

// GetSettings returns the world's settings, seeded from the command line and
// the current mute state on first use.
func GetSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			Debug: cfg.Debug.Overlay,
			Muted: IsMuted(),
		})
	}
	return components.Settings.Get(entry)
}
