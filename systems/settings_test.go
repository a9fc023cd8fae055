package systems

import (
	"testing"

	cfg "github.com/automoto/bunnyhop/config"
)

func TestUpdateSettingsToggles(t *testing.T) {
	savedDebug := cfg.Debug
	defer func() {
		SetMuted(false)
		cfg.Debug = savedDebug
	}()

	e, _ := newTestRun(t, 1)
	settings := GetSettings(e)
	input := getOrCreateInput(e)

	input.Current[cfg.ActionToggleDebug] = true
	input.Current[cfg.ActionToggleMute] = true
	UpdateSettings(e)

	if !settings.Debug {
		t.Error("F1 did not turn the overlay on")
	}
	if !settings.Muted || !IsMuted() {
		t.Error("M did not mute")
	}

	// Holding the keys does not toggle again.
	input.Previous = input.Current
	UpdateSettings(e)
	if !settings.Debug || !settings.Muted {
		t.Error("held keys toggled settings again")
	}
}

func TestDebugOverlaySurvivesRestart(t *testing.T) {
	savedDebug := cfg.Debug
	defer func() { cfg.Debug = savedDebug }()
	cfg.Debug.Overlay = false

	e, _ := newTestRun(t, 1)
	input := getOrCreateInput(e)
	input.Current[cfg.ActionToggleDebug] = true
	UpdateSettings(e)

	next, _ := newTestRun(t, 2)
	if !GetSettings(next).Debug {
		t.Error("overlay toggle was lost when a new run started")
	}
}

func TestApplySavedSettings(t *testing.T) {
	savedDebug := cfg.Debug
	defer func() {
		SetMuted(false)
		cfg.Debug = savedDebug
	}()

	tests := []struct {
		name        string
		flag        bool
		saved       *SavedSettings
		wantOverlay bool
		wantMuted   bool
	}{
		{"nothing saved", false, nil, false, false},
		{"saved overlay", false, &SavedSettings{Debug: true}, true, false},
		{"flag kept", true, &SavedSettings{Debug: false}, true, false},
		{"saved mute", false, &SavedSettings{Muted: true}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetMuted(false)
			cfg.Debug.Overlay = tt.flag
			ApplySavedSettings(tt.saved)
			if cfg.Debug.Overlay != tt.wantOverlay {
				t.Errorf("Overlay = %v, want %v", cfg.Debug.Overlay, tt.wantOverlay)
			}
			if IsMuted() != tt.wantMuted {
				t.Errorf("muted = %v, want %v", IsMuted(), tt.wantMuted)
			}
		})
	}
}
